package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func save(t *testing.T, s *Store, difficulty string, score int) {
	t.Helper()
	if _, err := s.SaveScore(ScoreEntry{Name: "abc", Difficulty: difficulty, Animal: "frog", Score: score, Level: 1}); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if store.Backend() != "sqlite" {
		t.Errorf("Backend() = %q, want sqlite", store.Backend())
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveScore(ScoreEntry{
		Name:       "ada",
		Difficulty: "hard",
		Animal:     "hedgehog",
		Score:      1260,
		Level:      2,
		Seed:       4000000000,
	})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("SaveScore() id = %d, want > 0", id)
	}
	save(t, store, "easy", 500)

	scores, err := store.TopScores("hard", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 hard score, got %d", len(scores))
	}

	got := scores[0]
	if got.Name != "ADA" || got.Animal != "hedgehog" || got.Score != 1260 || got.Level != 2 {
		t.Errorf("unexpected entry: %+v", got)
	}
	if got.Seed != 4000000000 {
		t.Errorf("Seed = %d, want 4000000000", got.Seed)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt was not populated")
	}
}

func TestStoreTopScoresOrderAndLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		save(t, store, "easy", (i+1)*100)
	}

	scores, err := store.TopScores("easy", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	all, err := store.TopScores("easy", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 5 {
		t.Errorf("default limit returned %d scores, want 5", len(all))
	}
}

func TestStoreTopScoresTieKeepsInsertionOrder(t *testing.T) {
	store := openTestStore(t)

	for _, name := range []string{"AAA", "BBB", "CCC"} {
		if _, err := store.SaveScore(ScoreEntry{Name: name, Difficulty: "pro", Animal: "frog", Score: 100}); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("pro", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	for i, want := range []string{"AAA", "BBB", "CCC"} {
		if scores[i].Name != want {
			t.Errorf("scores[%d].Name = %q, want %q", i, scores[i].Name, want)
		}
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("medium")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty difficulty, got %d", high)
	}

	save(t, store, "medium", 100)
	save(t, store, "medium", 300)
	save(t, store, "medium", 200)

	high, err = store.HighScore("medium")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreQualifies(t *testing.T) {
	store := openTestStore(t)

	ok, err := store.Qualifies("easy", 0, 3)
	if err != nil {
		t.Fatalf("Qualifies() failed: %v", err)
	}
	if ok {
		t.Error("a zero score should never qualify")
	}

	for _, s := range []int{100, 200, 300} {
		save(t, store, "easy", s)
	}

	tests := []struct {
		score int
		want  bool
	}{
		{50, false},
		{100, false},
		{150, true},
		{1000, true},
	}
	for _, tt := range tests {
		got, err := store.Qualifies("easy", tt.score, 3)
		if err != nil {
			t.Fatalf("Qualifies() failed: %v", err)
		}
		if got != tt.want {
			t.Errorf("Qualifies(%d) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	save(t, store, "easy", 100)
	save(t, store, "easy", 200)
	save(t, store, "hard", 300)

	if err := store.ClearScores("easy"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	easy, _ := store.TopScores("easy", 10)
	if len(easy) != 0 {
		t.Errorf("Expected 0 easy scores after clear, got %d", len(easy))
	}
	hard, _ := store.TopScores("hard", 10)
	if len(hard) != 1 {
		t.Errorf("Hard scores should not be affected by clearing easy")
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores(\"\") failed: %v", err)
	}
	all, _ := store.AllScores("")
	if len(all) != 0 {
		t.Errorf("Expected empty store, got %d scores", len(all))
	}
}

func TestStoreAllScores(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 20; i++ {
		save(t, store, "easy", i*10)
	}
	save(t, store, "pro", 5)

	scores, err := store.AllScores("easy")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}

	all, err := store.AllScores("")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(all) != 21 {
		t.Errorf("Expected 21 scores across difficulties, got %d", len(all))
	}
}

func TestStoreNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.safari/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".safari", "scores.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "YOU"},
		{"ada", "ADA"},
		{"grace hopper", "GRA"},
		{"a1-b", "AB"},
		{"123", "YOU"},
		{"Zoe", "ZOE"},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRebind(t *testing.T) {
	pg := &Store{dialect: dialectPostgres}
	lite := &Store{dialect: dialectSQLite}
	q := "SELECT * FROM scores WHERE difficulty = ? AND score > ? LIMIT ?"

	if got := pg.rebind(q); got != "SELECT * FROM scores WHERE difficulty = $1 AND score > $2 LIMIT $3" {
		t.Errorf("postgres rebind = %q", got)
	}
	if got := lite.rebind(q); got != q {
		t.Errorf("sqlite rebind changed query: %q", got)
	}
}

func TestIsPostgresDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want bool
	}{
		{"postgres://user@localhost/safari", true},
		{"postgresql://localhost/safari?sslmode=disable", true},
		{"~/.safari/scores.db", false},
		{"/tmp/postgres.db", false},
	}
	for _, tt := range tests {
		if got := IsPostgresDSN(tt.dsn); got != tt.want {
			t.Errorf("IsPostgresDSN(%q) = %v, want %v", tt.dsn, got, tt.want)
		}
	}
}
