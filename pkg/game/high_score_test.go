package game

import "testing"

func TestHighScoreStoreNilGdata(t *testing.T) {
	hs := NewHighScoreStore(nil)

	if hs.Best() != 0 {
		t.Errorf("Best() = %d, want 0", hs.Best())
	}
	if !hs.Submit(300) {
		t.Error("first positive score should be a new best")
	}
	if hs.Submit(300) {
		t.Error("equal score should not be a new best")
	}
	if hs.Submit(100) {
		t.Error("lower score should not be a new best")
	}
	if err := hs.Save(); err != nil {
		t.Errorf("Save() in degraded mode should return nil, got %v", err)
	}
}

func TestHighScoreStorePersists(t *testing.T) {
	gdataManager := newTestGdata(t, "cannonbox_test_high_score")

	hs := NewHighScoreStore(gdataManager)
	hs.Submit(1200)

	reloaded := NewHighScoreStore(gdataManager)
	if reloaded.Best() != 1200 {
		t.Errorf("reloaded Best() = %d, want 1200", reloaded.Best())
	}
}

func TestHighScoreStoreRejectsInvalidRecord(t *testing.T) {
	gdataManager := newTestGdata(t, "cannonbox_test_high_score_invalid")
	if err := gdataManager.SaveObjectProp(highScoreObject, highScoreProperty, []byte("best: -5\n")); err != nil {
		t.Fatalf("SaveObjectProp: %v", err)
	}

	hs := &HighScoreStore{gdataManager: gdataManager}
	if err := hs.Load(); err == nil {
		t.Error("expected error for negative stored score")
	}
	if hs.Best() != 0 {
		t.Errorf("Best() = %d, want 0 after a failed load", hs.Best())
	}
}
