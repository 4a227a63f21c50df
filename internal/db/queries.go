package db

import (
	"database/sql"
	"encoding/json"

	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/errors"
)

const entryColumns = `id, kind, created_at, emotion, intensity, notes,
	content, mood_label, insights_json, word_count,
	duration_seconds, audio_ref, transcript, emotions_json,
	answers_json, category_scores_json, overall_score`

// Insert stores a new entry. Entries are immutable once inserted; there is
// no update path.
func Insert(db *sql.DB, e *entry.Entry) error {
	insightsJSON, err := toNullJSON(e.Insights)
	if err != nil {
		return errors.NewInternal(err)
	}
	emotionsJSON, err := toNullJSON(e.Emotions)
	if err != nil {
		return errors.NewInternal(err)
	}
	answersJSON, err := toNullJSON(e.Answers)
	if err != nil {
		return errors.NewInternal(err)
	}
	scoresJSON, err := toNullJSON(e.CategoryScores)
	if err != nil {
		return errors.NewInternal(err)
	}

	query := `
		INSERT INTO entries (` + entryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = db.Exec(query,
		e.ID, string(e.Kind), e.CreatedAt,
		nullIfEmpty(string(e.Emotion)), e.Intensity, nullIfEmpty(e.Notes),
		nullIfEmpty(e.Content), nullIfEmpty(e.MoodLabel), insightsJSON, e.WordCount,
		e.DurationSeconds, nullIfEmpty(e.AudioRef), toNullString(e.Transcript), emotionsJSON,
		answersJSON, scoresJSON, e.OverallScore,
	)
	if err != nil {
		return errors.NewInternal(err)
	}

	return nil
}

// GetByID retrieves an entry by its ULID.
func GetByID(db *sql.DB, id string) (*entry.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = ?`

	row := db.QueryRow(query, id)
	e, err := scanEntry(row.Scan)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound(id)
	}
	if err != nil {
		return nil, errors.NewInternal(err)
	}

	return e, nil
}

// DeleteByID removes an entry. Returns whether a row was deleted; a missing
// id is not an error (idempotent no-op).
func DeleteByID(db *sql.DB, id string) (bool, error) {
	result, err := db.Exec("DELETE FROM entries WHERE id = ?", id)
	if err != nil {
		return false, errors.NewInternal(err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, errors.NewInternal(err)
	}
	return n > 0, nil
}

// ListRecent returns entries newest-first (insertion order reversed),
// optionally filtered by kind, capped at limit (0 means no cap).
func ListRecent(db *sql.DB, kind entry.Kind, limit int) ([]entry.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries`
	args := []any{}
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, string(kind))
	}
	query += " ORDER BY rowid DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	defer rows.Close()

	var entries []entry.Entry
	for rows.Next() {
		e, err := scanEntry(rows.Scan)
		if err != nil {
			return nil, errors.NewInternal(err)
		}
		entries = append(entries, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewInternal(err)
	}

	return entries, nil
}

// Count returns the number of entries, optionally filtered by kind.
func Count(db *sql.DB, kind entry.Kind) (int, error) {
	query := "SELECT COUNT(*) FROM entries"
	args := []any{}
	if kind != "" {
		query += " WHERE kind = ?"
		args = append(args, string(kind))
	}

	var n int
	if err := db.QueryRow(query, args...).Scan(&n); err != nil {
		return 0, errors.NewInternal(err)
	}
	return n, nil
}

// scanEntry reads one entry row via the given scan function, which lets the
// same code serve both *sql.Row and *sql.Rows.
func scanEntry(scan func(...any) error) (*entry.Entry, error) {
	var (
		e            entry.Entry
		kind         string
		emotion      sql.NullString
		intensity    sql.NullInt64
		notes        sql.NullString
		content      sql.NullString
		moodLabel    sql.NullString
		insightsJSON sql.NullString
		wordCount    sql.NullInt64
		duration     sql.NullInt64
		audioRef     sql.NullString
		transcript   sql.NullString
		emotionsJSON sql.NullString
		answersJSON  sql.NullString
		scoresJSON   sql.NullString
		overallScore sql.NullInt64
	)

	err := scan(
		&e.ID, &kind, &e.CreatedAt, &emotion, &intensity, &notes,
		&content, &moodLabel, &insightsJSON, &wordCount,
		&duration, &audioRef, &transcript, &emotionsJSON,
		&answersJSON, &scoresJSON, &overallScore,
	)
	if err != nil {
		return nil, err
	}

	e.Kind = entry.Kind(kind)
	e.Emotion = entry.Emotion(emotion.String)
	e.Intensity = int(intensity.Int64)
	e.Notes = notes.String
	e.Content = content.String
	e.MoodLabel = moodLabel.String
	e.WordCount = int(wordCount.Int64)
	e.DurationSeconds = int(duration.Int64)
	e.AudioRef = audioRef.String
	e.Transcript = fromNullString(transcript)
	e.OverallScore = int(overallScore.Int64)

	if err := fromNullJSON(insightsJSON, &e.Insights); err != nil {
		return nil, err
	}
	if err := fromNullJSON(emotionsJSON, &e.Emotions); err != nil {
		return nil, err
	}
	if err := fromNullJSON(answersJSON, &e.Answers); err != nil {
		return nil, err
	}
	if err := fromNullJSON(scoresJSON, &e.CategoryScores); err != nil {
		return nil, err
	}

	return &e, nil
}

func toNullJSON(v any) (sql.NullString, error) {
	if isEmptyCollection(v) {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func isEmptyCollection(v any) bool {
	switch c := v.(type) {
	case []string:
		return len(c) == 0
	case []int:
		return len(c) == 0
	case map[string]int:
		return len(c) == 0
	}
	return v == nil
}

func fromNullJSON(ns sql.NullString, dest any) error {
	if !ns.Valid {
		return nil
	}
	return json.Unmarshal([]byte(ns.String), dest)
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func toNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func fromNullString(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
