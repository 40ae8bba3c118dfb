package storage

import "testing"

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open()
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("millipede", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("other", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("millipede", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []int{200, 100, 50}
	for i, s := range scores {
		if s.Score != want[i] {
			t.Errorf("scores[%d] = %d, want %d", i, s.Score, want[i])
		}
	}
}

func TestStoreTopScoresLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	runs := []ScoreEntry{
		{GameID: "millipede", Player: "ann", Score: 300, Level: 2},
		{GameID: "millipede", Player: "bob", Score: 300, Level: 3},
		{GameID: "millipede", Player: "cy", Score: 10, Level: 0},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	top, err := store.TopScores("millipede", 2)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("got %d entries, want 2", len(top))
	}
	if top[0].Player != "ann" || top[1].Player != "bob" {
		t.Errorf("tie order = %s, %s; want ann, bob", top[0].Player, top[1].Player)
	}
	if top[1].Level != 3 {
		t.Errorf("level = %d, want 3", top[1].Level)
	}
}

func TestStoreHighScoreAndStats(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("millipede")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("empty high score = %d, want 0", high)
	}

	store.SaveRun(ScoreEntry{GameID: "millipede", Score: 1000, Level: 4})
	store.SaveRun(ScoreEntry{GameID: "millipede", Score: 3000, Level: 2})

	stats, err := store.GetGameStats("millipede")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 3000 || stats.BestLevel != 4 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 2000 {
		t.Errorf("avg = %v, want 2000", stats.AvgScore)
	}
}

func TestStoreIsPerSession(t *testing.T) {
	a := openTestStore(t)
	b := openTestStore(t)

	a.SaveScore("millipede", 42)
	scores, err := b.TopScores("millipede", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("second store sees %d scores from the first", len(scores))
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	store.SaveScore("millipede", 5)
	if err := store.ClearScores("millipede"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if high, _ := store.HighScore("millipede"); high != 0 {
		t.Errorf("high score after clear = %d", high)
	}
}
