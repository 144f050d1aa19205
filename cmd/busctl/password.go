package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"gamehub/config"
	"gamehub/internal/infra/auth"

	"github.com/pkg/errors"
)

// runHashPassword reads one line from in and prints its bcrypt hash.
func runHashPassword(in io.Reader, out io.Writer, cost int) error {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "failed to read password")
	}

	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		return errors.New("password is empty")
	}

	hasher := auth.NewBcryptHasher(&config.Config{Admin: &config.AdminConfig{BcryptCost: cost}})
	hash, err := hasher.Hash(password)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, hash)

	return nil
}
