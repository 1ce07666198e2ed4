package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"

	"github.com/JaimeStill/ots-portal/internal/users"
)

func init() {
	registerSeeder(&UserSeeder{})
}

// UserSeedData is the JSON structure of a user seed file.
type UserSeedData struct {
	Users []users.CreateCommand `json:"users"`
}

// UserSeeder inserts directory users, updating names of users that already exist.
// Existing password hashes are left untouched.
type UserSeeder struct {
	file string
}

func (s *UserSeeder) Name() string {
	return "users"
}

func (s *UserSeeder) Description() string {
	return "Seeds the user directory with development accounts"
}

// SetFile configures an external seed file path, overriding the embedded default.
func (s *UserSeeder) SetFile(path string) {
	s.file = path
}

func (s *UserSeeder) Seed(ctx context.Context, tx *sql.Tx) error {
	data, err := s.loadSeedData()
	if err != nil {
		return err
	}

	for _, cmd := range data.Users {
		if err := s.saveUser(ctx, tx, cmd); err != nil {
			return fmt.Errorf("save user %s: %w", cmd.Email, err)
		}
	}

	return nil
}

func (s *UserSeeder) loadSeedData() (*UserSeedData, error) {
	var content []byte
	var err error

	if s.file != "" {
		content, err = os.ReadFile(s.file)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	} else {
		content, err = seedFiles.ReadFile("seeds/users.json")
		if err != nil {
			return nil, fmt.Errorf("read embedded seed file: %w", err)
		}
	}

	var data UserSeedData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse seed data: %w", err)
	}

	for i := range data.Users {
		data.Users[i].Normalize()
		if err := data.Users[i].Validate(); err != nil {
			return nil, fmt.Errorf("user %d: %w", i, err)
		}
	}

	return &data, nil
}

func (s *UserSeeder) saveUser(ctx context.Context, tx *sql.Tx, cmd users.CreateCommand) error {
	const query = `
		INSERT INTO users (email, first_name, last_name, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			updated_at = NOW()`

	hash, err := users.HashPassword(cmd.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	_, err = tx.ExecContext(ctx, query, cmd.Email, cmd.FirstName, cmd.LastName, hash)
	return err
}
