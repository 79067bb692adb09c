package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// StoreConfig holds SQLite connection-pool settings.
type StoreConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// SQLiteStore implements DocumentStore over a single documents table keyed by
// (collection, id) with the document body stored as JSON text.
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore opens (and if needed creates) the store at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	config := StoreConfig{}

	// In-memory SQLite must run on exactly one connection: every additional
	// connection would see a fresh empty database.
	if isInMemoryPath(dbPath) {
		config.MaxOpenConns = 1
		config.MaxIdleConns = 1
	}

	return NewSQLiteStoreWithConfig(dbPath, config)
}

// isInMemoryPath reports whether the path refers to an in-memory SQLite
// database.
func isInMemoryPath(dbPath string) bool {
	if dbPath == ":memory:" {
		return true
	}

	// file:memdb?mode=memory&cache=shared also lives in memory
	if strings.HasPrefix(dbPath, "file:") && strings.Contains(dbPath, "mode=memory") {
		return true
	}

	return false
}

// NewSQLiteStoreWithConfig opens the store with explicit pool settings.
func NewSQLiteStoreWithConfig(dbPath string, config StoreConfig) (*SQLiteStore, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open document store: %w", err)
	}

	// SQLite handles many concurrent writers poorly; cap the pool.
	if config.MaxOpenConns > 0 {
		conn.SetMaxOpenConns(config.MaxOpenConns)
	} else {
		conn.SetMaxOpenConns(10)
	}

	if config.MaxIdleConns > 0 {
		conn.SetMaxIdleConns(config.MaxIdleConns)
	} else {
		conn.SetMaxIdleConns(3)
	}

	if config.ConnMaxLifetime > 0 {
		conn.SetConnMaxLifetime(config.ConnMaxLifetime)
	} else {
		conn.SetConnMaxLifetime(5 * time.Minute)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping document store: %w", err)
	}

	// WAL lets readers run concurrently with the single writer.
	if _, err := conn.Exec("PRAGMA journal_mode = WAL"); err != nil {
		slog.Warn("failed to enable WAL mode", "error", err)
	}

	if _, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS documents (
			collection TEXT NOT NULL,
			id         TEXT NOT NULL,
			data       TEXT NOT NULL,
			updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now')),
			PRIMARY KEY (collection, id)
		)
	`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize documents table: %w", err)
	}

	return &SQLiteStore{conn: conn}, nil
}

// Close closes the underlying connection pool.
func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// Ping verifies the database connection.
func (s *SQLiteStore) Ping() error {
	return s.conn.Ping()
}

// Get returns the document and true, or nil and false when absent.
func (s *SQLiteStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	var data string
	err := s.conn.QueryRowContext(ctx,
		"SELECT data FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get document %s/%s: %w", collection, id, err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return nil, false, fmt.Errorf("failed to decode document %s/%s: %w", collection, id, err)
	}

	return doc, true, nil
}

// Put writes the document, merging top-level fields into the stored body when
// merge is set. The merge runs inside the upsert via json_patch, so a single
// statement covers both the create and the update path.
func (s *SQLiteStore) Put(ctx context.Context, collection, id string, doc Document, merge bool) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode document %s/%s: %w", collection, id, err)
	}

	update := "data = excluded.data"
	if merge {
		update = "data = json_patch(documents.data, excluded.data)"
	}

	query := fmt.Sprintf(`
		INSERT INTO documents (collection, id, data, updated_at)
		VALUES (?, ?, ?, strftime('%%Y-%%m-%%dT%%H:%%M:%%fZ', 'now'))
		ON CONFLICT (collection, id) DO UPDATE SET
			%s,
			updated_at = excluded.updated_at
	`, update)

	if _, err := s.conn.ExecContext(ctx, query, collection, id, string(data)); err != nil {
		return fmt.Errorf("failed to put document %s/%s: %w", collection, id, err)
	}

	return nil
}

// Delete removes the document; deleting an absent id succeeds silently.
func (s *SQLiteStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.conn.ExecContext(ctx,
		"DELETE FROM documents WHERE collection = ? AND id = ?",
		collection, id,
	); err != nil {
		return fmt.Errorf("failed to delete document %s/%s: %w", collection, id, err)
	}
	return nil
}

// Enumerate returns every document of the collection ordered by id.
func (s *SQLiteStore) Enumerate(ctx context.Context, collection string) ([]Entry, error) {
	rows, err := s.conn.QueryContext(ctx,
		"SELECT id, data FROM documents WHERE collection = ? ORDER BY id",
		collection,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate collection %s: %w", collection, err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, fmt.Errorf("failed to scan document from %s: %w", collection, err)
		}

		var doc Document
		if err := json.Unmarshal([]byte(data), &doc); err != nil {
			return nil, fmt.Errorf("failed to decode document %s/%s: %w", collection, id, err)
		}

		entries = append(entries, Entry{ID: id, Doc: doc})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to enumerate collection %s: %w", collection, err)
	}

	return entries, nil
}
