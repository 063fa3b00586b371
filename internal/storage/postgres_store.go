package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/notiplan/notiplan/internal/models"
	_ "github.com/lib/pq"
)

type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{
		connStr: connStr,
	}
}

func (s *PostgresStore) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Test connection
	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS config (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create config table: %w", err)
	}

	return nil
}

func (s *PostgresStore) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *PostgresStore) GetConfig() (models.Config, error) {
	var blob string
	err := s.db.QueryRow(`SELECT value FROM config WHERE key = 'config'`).Scan(&blob)
	if err == sql.ErrNoRows {
		return models.Config{}, fmt.Errorf("no configuration found, run 'notiplan setup' first")
	}
	if err != nil {
		return models.Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg models.Config
	if err := json.Unmarshal([]byte(blob), &cfg); err != nil {
		return models.Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func (s *PostgresStore) SaveConfig(cfg models.Config) error {
	blob, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	_, err = s.db.Exec(`INSERT INTO config (key, value) VALUES ('config', $1)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, string(blob))
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	return nil
}

func (s *PostgresStore) GetConfigPath() string {
	return s.connStr
}
