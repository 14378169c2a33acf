package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"clainai/internal/conversation/repository"
	"clainai/pkg/log"
)

type implRepository struct {
	db  *sql.DB
	l   log.Logger
	now func() time.Time
}

// New creates a new SQLite-backed conversation Repository.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("conversation/repository/sqlite: db is required")
	}
	return &implRepository{db: db, l: l, now: time.Now}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("conversation/repository/sqlite.%s", method)
}
