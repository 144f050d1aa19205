package model

import (
	"time"

	"github.com/lib/pq"
)

// PublisherModel is the GORM-specific struct for the 'publishers' table.
type PublisherModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null;index"`
	IsCompany bool   `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (PublisherModel) TableName() string {
	return "publishers"
}

// GameModel is the GORM-specific struct for the 'games' table.
type GameModel struct {
	ID          int64          `gorm:"primaryKey;autoIncrement"`
	PublisherID int64          `gorm:"not null;index"`
	Name        string         `gorm:"type:varchar(255);not null"`
	Version     string         `gorm:"type:varchar(32);not null"`
	ReleaseDate time.Time      `gorm:"type:timestamptz;not null"`
	Platforms   pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Genres      pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
}

// TableName explicitly sets the table name for GORM.
func (GameModel) TableName() string {
	return "games"
}

// PatchModel is the GORM-specific struct for the 'patches' table.
type PatchModel struct {
	ID              int64          `gorm:"primaryKey;autoIncrement"`
	GameID          int64          `gorm:"not null;index"`
	Version         string         `gorm:"type:varchar(32);not null"`
	Tags            pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	Description     string         `gorm:"type:text;not null;default:''"`
	PublicationDate time.Time      `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (PatchModel) TableName() string {
	return "patches"
}

// ReviewMirrorModel keeps the distributor review id as its primary key.
type ReviewMirrorModel struct {
	ID              int64     `gorm:"primaryKey;autoIncrement:false"`
	GameID          int64     `gorm:"not null;index"`
	Rating          int       `gorm:"type:smallint;not null"`
	Comment         string    `gorm:"type:text;not null;default:''"`
	PublicationDate time.Time `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReviewMirrorModel) TableName() string {
	return "review_mirrors"
}

// CrashReportModel is the GORM-specific struct for the 'crash_reports' table.
type CrashReportModel struct {
	ID            int64     `gorm:"primaryKey;autoIncrement"`
	GameID        int64     `gorm:"not null;index"`
	DistributorID int64     `gorm:"not null"`
	Platform      string    `gorm:"type:varchar(32);not null"`
	Version       string    `gorm:"type:varchar(32);not null;default:''"`
	ErrorCode     int       `gorm:"not null"`
	Message       string    `gorm:"type:text;not null;default:''"`
	ReportDate    time.Time `gorm:"type:timestamptz;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CrashReportModel) TableName() string {
	return "crash_reports"
}
