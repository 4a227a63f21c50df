package db

import (
	"database/sql"
	"testing"

	"github.com/ameara/reverie/internal/entry"
	"github.com/ameara/reverie/internal/errors"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := InitMemory()
	if err != nil {
		t.Fatalf("InitMemory() error = %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestInsertAndGetByID_Mood(t *testing.T) {
	database := openTestDB(t)

	e := &entry.Entry{
		ID:        "01MOOD",
		Kind:      entry.KindMood,
		CreatedAt: 1700000000,
		Emotion:   entry.EmotionEnergetic,
		Intensity: 8,
		Notes:     "morning run",
	}
	if err := Insert(database, e); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := GetByID(database, "01MOOD")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if got.Emotion != entry.EmotionEnergetic || got.Intensity != 8 || got.Notes != "morning run" {
		t.Errorf("round-trip mismatch: %+v", got)
	}
	if got.CreatedAt != 1700000000 {
		t.Errorf("CreatedAt = %d, want 1700000000", got.CreatedAt)
	}
}

func TestInsertAndGetByID_Assessment(t *testing.T) {
	database := openTestDB(t)

	e := &entry.Entry{
		ID:        "01ASSESS",
		Kind:      entry.KindAssessment,
		CreatedAt: 1700000001,
		Answers:   []int{5, 4, 3, 2},
		CategoryScores: map[string]int{
			"Self-Awareness": 100, "Self-Regulation": 80,
			"Social Awareness": 60, "Relationship Management": 40,
		},
		OverallScore: 70,
	}
	if err := Insert(database, e); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, err := GetByID(database, "01ASSESS")
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if len(got.Answers) != 4 || got.Answers[0] != 5 {
		t.Errorf("Answers = %v, want [5 4 3 2]", got.Answers)
	}
	if got.CategoryScores["Social Awareness"] != 60 {
		t.Errorf("CategoryScores = %v", got.CategoryScores)
	}
	if got.OverallScore != 70 {
		t.Errorf("OverallScore = %d, want 70", got.OverallScore)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	database := openTestDB(t)

	_, err := GetByID(database, "missing")
	if !errors.Is(err, errors.ErrNotFound) {
		t.Errorf("error = %v, want NOT_FOUND", err)
	}
}

func TestDeleteByID(t *testing.T) {
	database := openTestDB(t)

	e := &entry.Entry{ID: "01DEL", Kind: entry.KindVoice, CreatedAt: 1, DurationSeconds: 3}
	if err := Insert(database, e); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	found, err := DeleteByID(database, "01DEL")
	if err != nil {
		t.Fatalf("DeleteByID() error = %v", err)
	}
	if !found {
		t.Error("DeleteByID() = false, want true")
	}

	// Idempotent no-op on the second delete
	found, err = DeleteByID(database, "01DEL")
	if err != nil {
		t.Fatalf("second DeleteByID() error = %v", err)
	}
	if found {
		t.Error("second DeleteByID() = true, want false")
	}
}

func TestListRecent_NewestFirstAndFilters(t *testing.T) {
	database := openTestDB(t)

	seed := []entry.Entry{
		{ID: "a", Kind: entry.KindMood, CreatedAt: 1, Emotion: entry.EmotionHappy, Intensity: 5},
		{ID: "b", Kind: entry.KindJournal, CreatedAt: 2, Content: "notes", WordCount: 1},
		{ID: "c", Kind: entry.KindMood, CreatedAt: 3, Emotion: entry.EmotionSad, Intensity: 2},
	}
	for i := range seed {
		if err := Insert(database, &seed[i]); err != nil {
			t.Fatalf("Insert(%s) error = %v", seed[i].ID, err)
		}
	}

	all, err := ListRecent(database, "", 0)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(all) != 3 || all[0].ID != "c" || all[2].ID != "a" {
		t.Errorf("ListRecent order = %v", ids(all))
	}

	moods, err := ListRecent(database, entry.KindMood, 0)
	if err != nil {
		t.Fatalf("ListRecent(mood) error = %v", err)
	}
	if len(moods) != 2 || moods[0].ID != "c" {
		t.Errorf("ListRecent(mood) = %v", ids(moods))
	}

	capped, err := ListRecent(database, "", 1)
	if err != nil {
		t.Fatalf("ListRecent(limit=1) error = %v", err)
	}
	if len(capped) != 1 || capped[0].ID != "c" {
		t.Errorf("ListRecent(limit=1) = %v", ids(capped))
	}
}

func TestCount(t *testing.T) {
	database := openTestDB(t)

	for _, e := range []entry.Entry{
		{ID: "a", Kind: entry.KindMood, CreatedAt: 1, Emotion: entry.EmotionHappy, Intensity: 5},
		{ID: "b", Kind: entry.KindJournal, CreatedAt: 2, Content: "x", WordCount: 1},
	} {
		if err := Insert(database, &e); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	total, err := Count(database, "")
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if total != 2 {
		t.Errorf("Count() = %d, want 2", total)
	}

	journals, err := Count(database, entry.KindJournal)
	if err != nil {
		t.Fatalf("Count(journal) error = %v", err)
	}
	if journals != 1 {
		t.Errorf("Count(journal) = %d, want 1", journals)
	}
}

func ids(entries []entry.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}
