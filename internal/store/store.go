package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"natnails.dev/internal/models"
)

// ErrNotFound is returned when a submission id is unknown.
var ErrNotFound = errors.New("not found")

// DB wraps a sql.DB holding contact submissions.
type DB struct {
	*sql.DB
	path string
}

// Open creates or opens a SQLite database at the given path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// OpenMemory creates an in-memory SQLite database (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	// every pooled connection would get its own empty :memory: database
	sqlDB.SetMaxOpenConns(1)

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS contact_submissions (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    email TEXT NOT NULL,
    phone TEXT NOT NULL DEFAULT '',
    message TEXT NOT NULL,
    remote_addr TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_contact_created ON contact_submissions(created_at);
`

// SaveContact inserts a submission.
func (d *DB) SaveContact(ctx context.Context, s *models.ContactSubmission) error {
	_, err := d.ExecContext(ctx,
		`INSERT INTO contact_submissions (id, name, email, phone, message, remote_addr, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Email, s.Phone, s.Message, s.RemoteAddr, s.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("inserting contact submission: %w", err)
	}
	return nil
}

// GetContact returns a submission by id.
func (d *DB) GetContact(ctx context.Context, id string) (*models.ContactSubmission, error) {
	row := d.QueryRowContext(ctx,
		`SELECT id, name, email, phone, message, remote_addr, created_at
		 FROM contact_submissions WHERE id = ?`, id)
	s, err := scanContact(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading contact submission: %w", err)
	}
	return s, nil
}

// ListContacts returns the most recent submissions, newest first.
func (d *DB) ListContacts(ctx context.Context, limit int) ([]models.ContactSubmission, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := d.QueryContext(ctx,
		`SELECT id, name, email, phone, message, remote_addr, created_at
		 FROM contact_submissions ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing contact submissions: %w", err)
	}
	defer rows.Close()

	var out []models.ContactSubmission
	for rows.Next() {
		s, err := scanContact(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning contact submission: %w", err)
		}
		out = append(out, *s)
	}
	return out, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanContact(sc scanner) (*models.ContactSubmission, error) {
	var s models.ContactSubmission
	var created string
	if err := sc.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Message, &s.RemoteAddr, &created); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, created)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at %q: %w", created, err)
	}
	s.CreatedAt = t
	return &s, nil
}
