package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/aalvaropc/ninjasvg/internal/domain"
	"github.com/aalvaropc/ninjasvg/internal/ports"
)

const schema = `
CREATE TABLE IF NOT EXISTS templates (
	namespace  TEXT NOT NULL,
	key        TEXT NOT NULL,
	content    BLOB NOT NULL,
	updated_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
	PRIMARY KEY (namespace, key)
);`

// Store keeps templates in a single SQLite table keyed by (namespace, key).
type Store struct {
	db *sql.DB
}

var (
	_ ports.TemplateStore  = (*Store)(nil)
	_ ports.TemplateWriter = (*Store)(nil)
	_ ports.TemplateLister = (*Store)(nil)
)

// Open opens (or creates) the database at dsn and applies the schema.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, &domain.OpError{Op: "sqlitestore.open", Kind: domain.KindStorage, Path: dsn, Err: err}
	}

	for _, stmt := range []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA journal_mode = WAL",
		schema,
	} {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, &domain.OpError{Op: "sqlitestore.init", Kind: domain.KindStorage, Path: dsn, Err: err}
		}
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Read(ctx context.Context, ns domain.Namespace, key string) ([]byte, bool, error) {
	if !ns.Valid() {
		return nil, false, &domain.OpError{
			Op:   "sqlitestore.read",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown namespace %q", ns),
		}
	}

	var content []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT content FROM templates WHERE namespace = ? AND key = ?`,
		string(ns), key,
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &domain.OpError{
			Op:   "sqlitestore.read",
			Kind: domain.KindStorage,
			Path: string(ns) + "/" + key,
			Err:  err,
		}
	}
	return content, true, nil
}

func (s *Store) Put(ctx context.Context, ns domain.Namespace, key string, data []byte) error {
	if !ns.Valid() {
		return &domain.OpError{
			Op:   "sqlitestore.put",
			Kind: domain.KindInvalidConfig,
			Err:  fmt.Errorf("unknown namespace %q", ns),
		}
	}
	if data == nil {
		data = []byte{}
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO templates (namespace, key, content) VALUES (?, ?, ?)
		ON CONFLICT (namespace, key) DO UPDATE SET
			content = excluded.content,
			updated_at = strftime('%Y-%m-%dT%H:%M:%fZ','now')`,
		string(ns), key, data,
	)
	if err != nil {
		return &domain.OpError{
			Op:   "sqlitestore.put",
			Kind: domain.KindStorage,
			Path: string(ns) + "/" + key,
			Err:  err,
		}
	}
	return nil
}

// Keys lists the keys stored in a namespace, sorted.
func (s *Store) Keys(ctx context.Context, ns domain.Namespace) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM templates WHERE namespace = ? ORDER BY key`, string(ns))
	if err != nil {
		return nil, &domain.OpError{Op: "sqlitestore.keys", Kind: domain.KindStorage, Err: err}
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, &domain.OpError{Op: "sqlitestore.keys", Kind: domain.KindStorage, Err: err}
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.OpError{Op: "sqlitestore.keys", Kind: domain.KindStorage, Err: err}
	}
	return keys, nil
}
