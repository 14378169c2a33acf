package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"clainai/internal/agenttask/repository"
	"clainai/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new SQLite-backed task Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("agenttask/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("agenttask/repository/sqlite.%s", method)
}
