package contactRepo

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"cerberus/database"
	"cerberus/models"
)

type sqlHandle interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type sqlSubmissionRepo struct {
	db     sqlHandle
	driver string
}

var schemas = map[string]string{
	database.DriverSQLite: `
		CREATE TABLE IF NOT EXISTS clients (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL,
			project_type TEXT,
			preferred_date TEXT,
			song_link TEXT,
			notes TEXT,
			estimate TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	database.DriverPostgres: `
		CREATE TABLE IF NOT EXISTS clients (
			id             SERIAL PRIMARY KEY,
			name           TEXT NOT NULL,
			email          TEXT NOT NULL,
			project_type   TEXT NOT NULL DEFAULT '',
			preferred_date TEXT NOT NULL DEFAULT '',
			song_link      TEXT NOT NULL DEFAULT '',
			notes          TEXT NOT NULL DEFAULT '',
			estimate       TEXT NOT NULL DEFAULT '',
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
}

const insertClient = `
	INSERT INTO clients
	(name, email, project_type, preferred_date, song_link, notes, estimate, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

// NewSQLSubmissionRepo migrates the clients table and returns a repository
// backed by db. driver is sqlite3 or postgres.
func NewSQLSubmissionRepo(ctx context.Context, db *sql.DB, driver string) (SubmissionRepository, error) {
	schema, ok := schemas[driver]
	if !ok {
		return nil, fmt.Errorf("contact repository: unsupported sql driver %q", driver)
	}
	if db == nil {
		return nil, fmt.Errorf("contact repository: %s handle not initialized", driver)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("contact repository: migrate: %w", err)
	}
	return &sqlSubmissionRepo{db: db, driver: driver}, nil
}

// Create inserts a row and returns its auto-increment id via sub.ID.
func (r *sqlSubmissionRepo) Create(ctx context.Context, sub *models.ContactSubmission) error {
	createdAt := time.Now().UTC()
	args := []any{sub.Name, sub.Email, sub.ProjectType, sub.PreferredDate, sub.SongLink, sub.Notes, sub.Estimate, createdAt}

	if r.driver == database.DriverPostgres {
		var id int64
		if err := r.db.QueryRowContext(ctx, rebind(insertClient)+" RETURNING id", args...).Scan(&id); err != nil {
			return fmt.Errorf("insert client: %w", err)
		}
		sub.ID = id
	} else {
		res, err := r.db.ExecContext(ctx, insertClient, args...)
		if err != nil {
			return fmt.Errorf("insert client: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("insert client: last id: %w", err)
		}
		sub.ID = id
	}

	sub.CreatedAt = createdAt
	return nil
}

// rebind turns ? placeholders into $n for postgres.
func rebind(query string) string {
	var b strings.Builder
	n := 0
	for _, ch := range query {
		if ch == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(ch)
	}
	return b.String()
}
