package gallery

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/lewtec/galeria/internal/repository"
)

// GetDatabase opens a SQLite database and applies the schema migrations
func GetDatabase(filename string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", filename)
	if err != nil {
		return nil, err
	}
	if filename == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err := repository.Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("while preparing database '%s': %w", filename, err)
	}
	return db, nil
}
