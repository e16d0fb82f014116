// Package word reads the display identity of dictionary words.
package word

//go:generate mockgen -source=catalog.go -destination=../mocks/word/mock_catalog.go -package=mock_word

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Word is a dictionary word the user can look up.
type Word struct {
	ID        int64     `db:"id"`
	Text      string    `db:"text"`
	CreatedAt time.Time `db:"created_at"`
}

// Catalog resolves word IDs to words.
type Catalog interface {
	// FindByIDs returns the words with the given IDs keyed by ID. Unknown IDs are absent from the map.
	FindByIDs(ctx context.Context, ids []int64) (map[int64]Word, error)
}

// DBCatalog implements Catalog using the words table.
type DBCatalog struct {
	db *sqlx.DB
}

// NewDBCatalog creates a new DBCatalog.
func NewDBCatalog(db *sqlx.DB) *DBCatalog {
	return &DBCatalog{db: db}
}

func (c *DBCatalog) FindByIDs(ctx context.Context, ids []int64) (map[int64]Word, error) {
	if len(ids) == 0 {
		return map[int64]Word{}, nil
	}

	query, args, err := sqlx.In("SELECT id, text, created_at FROM words WHERE id IN (?)", ids)
	if err != nil {
		return nil, fmt.Errorf("build words query: %w", err)
	}

	var words []Word
	if err := c.db.SelectContext(ctx, &words, c.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("load words: %w", err)
	}

	result := make(map[int64]Word, len(words))
	for _, w := range words {
		result[w.ID] = w
	}
	return result, nil
}
