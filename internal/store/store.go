// Package store implements the entry store: an ordered, append-only
// collection of reflection entries with newest-first reads and deletion by
// id. Entries are created only by an explicit commit and never mutated in
// place.
package store

import (
	"crypto/rand"
	"database/sql"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/ameara/reverie/internal/db"
	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/errors"
)

// List limits.
const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// AppendInput contains parameters for the Append operation.
type AppendInput struct {
	Entry entry.Entry
}

// AppendOutput contains the result of the Append operation.
type AppendOutput struct {
	ID string `json:"id"`
}

// Append validates the entry, assigns identity and commit time if absent,
// and inserts it at the logical end of the store.
func Append(database *sql.DB, input AppendInput) (*AppendOutput, error) {
	e := input.Entry

	if e.ID == "" {
		id, err := generateULID()
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		e.ID = id
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}

	if err := e.Validate(); err != nil {
		return nil, err
	}

	if err := db.Insert(database, &e); err != nil {
		return nil, err
	}

	return &AppendOutput{ID: e.ID}, nil
}

// RemoveInput contains parameters for the Remove operation.
type RemoveInput struct {
	ID string
}

// RemoveOutput contains the result of the Remove operation.
type RemoveOutput struct {
	Removed bool   `json:"removed"`
	ID      string `json:"id"`
}

// Remove deletes an entry by id. A missing id is an idempotent no-op
// reported through Removed, not an error.
func Remove(database *sql.DB, input RemoveInput) (*RemoveOutput, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}

	removed, err := db.DeleteByID(database, input.ID)
	if err != nil {
		return nil, err
	}

	return &RemoveOutput{Removed: removed, ID: input.ID}, nil
}

// ListRecentInput contains parameters for the ListRecent operation.
type ListRecentInput struct {
	Kind  entry.Kind // optional filter
	Limit int        // default: 20, max: 100
}

// ListRecentOutput contains the result of the ListRecent operation.
type ListRecentOutput struct {
	Items []entry.Entry `json:"items"`
	Total int           `json:"total"`
	Sort  string        `json:"sort"`
}

// ListRecent returns the newest-first read view, optionally filtered by
// kind and capped.
func ListRecent(database *sql.DB, input ListRecentInput) (*ListRecentOutput, error) {
	if input.Kind != "" && !entry.ValidKind(input.Kind) {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown entry kind: %q", input.Kind))
	}

	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	items, err := db.ListRecent(database, input.Kind, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []entry.Entry{}
	}

	total, err := db.Count(database, input.Kind)
	if err != nil {
		return nil, err
	}

	return &ListRecentOutput{
		Items: items,
		Total: total,
		Sort:  "newest_first",
	}, nil
}

// CountInput contains parameters for the Count operation.
type CountInput struct {
	Kind entry.Kind // optional filter
}

// CountOutput contains the result of the Count operation.
type CountOutput struct {
	Count int `json:"count"`
}

// CountEntries returns the number of stored entries, optionally by kind.
func CountEntries(database *sql.DB, input CountInput) (*CountOutput, error) {
	if input.Kind != "" && !entry.ValidKind(input.Kind) {
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown entry kind: %q", input.Kind))
	}

	n, err := db.Count(database, input.Kind)
	if err != nil {
		return nil, err
	}

	return &CountOutput{Count: n}, nil
}

// FetchInput contains parameters for the Fetch operation.
type FetchInput struct {
	ID string
}

// Fetch retrieves a single entry by id for detail views.
func Fetch(database *sql.DB, input FetchInput) (*entry.Entry, error) {
	if input.ID == "" {
		return nil, errors.NewInvalidRequest("id is required")
	}
	return db.GetByID(database, input.ID)
}

// generateULID generates a new ULID.
func generateULID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
