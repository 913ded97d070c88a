package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/skill-runner/internal/runner"
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

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, run := range []struct {
		profile string
		score   int
	}{
		{"alice", 100},
		{"alice", 50},
		{"alice", 200},
		{"bob", 500},
	} {
		if _, err := store.SaveScore(run.profile, run.score, run.score/10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores("alice", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %v", scores)
	}
	if scores[0].Earned != 20 {
		t.Errorf("Expected earned 20, got %d", scores[0].Earned)
	}

	all, err := store.TopScores("", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(all) != 4 || all[0].Profile != "bob" {
		t.Errorf("Expected bob on top of 4 runs, got %v", all)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("test", (i+1)*100, 0)
	}

	scores, err := store.TopScores("test", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty profile, got %d", high)
	}

	store.SaveScore("alice", 100, 10)
	store.SaveScore("alice", 300, 30)
	store.SaveScore("bob", 900, 90)

	high, err = store.HighScore("alice")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}

	high, _ = store.HighScore("")
	if high != 900 {
		t.Errorf("Expected overall high score of 900, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("alice", 100, 10)
	store.SaveScore("alice", 200, 20)
	store.SaveScore("bob", 300, 30)

	if err := store.ClearScores("alice"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("alice", 10); len(scores) != 0 {
		t.Errorf("Expected 0 alice scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("bob", 10); len(scores) != 1 {
		t.Errorf("bob scores should not be affected by clearing alice")
	}

	if err := store.ClearScores(""); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if scores, _ := store.TopScores("", 10); len(scores) != 0 {
		t.Errorf("Expected no scores after clearing all, got %d", len(scores))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats("alice")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.RunsCount != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.SaveScore("alice", 100, 10)
	store.SaveScore("alice", 300, 30)

	stats, err = store.GetStats("alice")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.RunsCount != 2 || stats.HighScore != 300 || stats.AvgScore != 200 || stats.TotalEarned != 40 {
		t.Errorf("Unexpected stats: %+v", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("Expected LastPlayed to be set")
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store := openTestStore(t)

	fresh, err := store.LoadProfile("alice")
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	if fresh.Money != 0 || fresh.Skin != runner.SpritePlayerDefault {
		t.Errorf("Expected a fresh profile, got %+v", fresh)
	}

	data := runner.NewGameData()
	data.Money = 420
	data.HighScore = 1337
	data.PlayerSkills.ShotgunSkill = 3
	data.PlayerSkills.ExtraScore = true
	data.PlayerSkills.Mugen.Active = 4

	if err := store.SaveProfile("alice", data); err != nil {
		t.Fatalf("SaveProfile() failed: %v", err)
	}

	got, err := store.LoadProfile("alice")
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	if got.Money != 420 || got.HighScore != 1337 {
		t.Errorf("Wallet not restored: %+v", got)
	}
	if got.PlayerSkills.ShotgunSkill != 3 || !got.PlayerSkills.ExtraScore {
		t.Errorf("Skills not restored: %+v", got.PlayerSkills)
	}
	if got.PlayerSkills.Mugen != (runner.MugenState{}) {
		t.Errorf("Mugen timers should not persist, got %+v", got.PlayerSkills.Mugen)
	}

	data.Money = 10
	if err := store.SaveProfile("alice", data); err != nil {
		t.Fatalf("SaveProfile() update failed: %v", err)
	}
	got, _ = store.LoadProfile("alice")
	if got.Money != 10 {
		t.Errorf("Expected updated money 10, got %d", got.Money)
	}
}

func TestProfilesList(t *testing.T) {
	store := openTestStore(t)

	store.SaveProfile("zed", runner.NewGameData())
	store.SaveProfile("", runner.NewGameData())
	store.SaveProfile("amy", runner.NewGameData())

	names, err := store.Profiles()
	if err != nil {
		t.Fatalf("Profiles() failed: %v", err)
	}
	want := []string{"amy", DefaultProfile, "zed"}
	if len(names) != len(want) {
		t.Fatalf("Expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Profiles()[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if err := store.SaveProfile("nil", nil); err == nil {
		t.Error("Expected error saving nil profile")
	}
}
