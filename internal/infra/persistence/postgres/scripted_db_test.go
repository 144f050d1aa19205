package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// scriptedRows is the answer to one statement. Exec reports len(values) rows affected.
type scriptedRows struct {
	columns []string
	values  [][]driver.Value
}

// scriptedDB answers statements in order from a script and records what was sent.
type scriptedDB struct {
	mu         sync.Mutex
	script     []scriptedRows
	statements []string
}

// newScriptedDB opens GORM on the postgres dialector over a scripted connection.
func newScriptedDB(t *testing.T, script ...scriptedRows) (*gorm.DB, *scriptedDB) {
	t.Helper()

	state := &scriptedDB{script: script}
	sqlDB := sql.OpenDB(state)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	require.NoError(t, err)

	return db, state
}

func (s *scriptedDB) Connect(context.Context) (driver.Conn, error) { return &scriptedConn{db: s}, nil }
func (s *scriptedDB) Driver() driver.Driver                        { return scriptedDriver{} }

func (s *scriptedDB) next(query string) scriptedRows {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statements = append(s.statements, query)
	if len(s.script) == 0 {
		return scriptedRows{}
	}
	rows := s.script[0]
	s.script = s.script[1:]

	return rows
}

func (s *scriptedDB) sent() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.statements...)
}

type scriptedDriver struct{}

func (scriptedDriver) Open(string) (driver.Conn, error) { return nil, driver.ErrBadConn }

type scriptedConn struct {
	db *scriptedDB
}

func (c *scriptedConn) Prepare(string) (driver.Stmt, error) { return nil, driver.ErrSkip }
func (c *scriptedConn) Close() error                        { return nil }
func (c *scriptedConn) Begin() (driver.Tx, error)           { return c, nil }
func (c *scriptedConn) Commit() error                       { return nil }
func (c *scriptedConn) Rollback() error                     { return nil }

func (c *scriptedConn) CheckNamedValue(*driver.NamedValue) error { return nil }

func (c *scriptedConn) ExecContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Result, error) {
	return driver.RowsAffected(len(c.db.next(query).values)), nil
}

func (c *scriptedConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	return &scriptedCursor{rows: c.db.next(query)}, nil
}

type scriptedCursor struct {
	rows scriptedRows
	pos  int
}

func (r *scriptedCursor) Columns() []string { return r.rows.columns }
func (r *scriptedCursor) Close() error      { return nil }

func (r *scriptedCursor) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows.values) {
		return io.EOF
	}
	copy(dest, r.rows.values[r.pos])
	r.pos++

	return nil
}
