package game

import "testing"

func TestFormatScore(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "0000000"},
		{100, "0000100"},
		{1234567, "1234567"},
		{12345678, "12345678"},
	}

	for _, tt := range tests {
		if got := FormatScore(tt.score); got != tt.want {
			t.Errorf("FormatScore(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestScoreBoardProjectsToDisplay(t *testing.T) {
	label := &TextLabel{}
	sb := NewScoreBoard(label, nil)

	if label.Text() != "0000000" {
		t.Errorf("initial display = %q, want 0000000", label.Text())
	}

	sb.AddScore(100)
	sb.AddScore(250)

	if sb.Total() != 350 {
		t.Errorf("Total() = %d, want 350", sb.Total())
	}
	if label.Text() != "0000350" || sb.Text() != "0000350" {
		t.Errorf("display = %q / %q, want 0000350", label.Text(), sb.Text())
	}
}

func TestScoreBoardIgnoresNegative(t *testing.T) {
	label := &TextLabel{}
	sb := NewScoreBoard(label, nil)
	sb.AddScore(100)
	sb.AddScore(-50)

	if sb.Total() != 100 {
		t.Errorf("Total() = %d, want 100", sb.Total())
	}
	if label.Text() != "0000100" {
		t.Errorf("display = %q, want 0000100", label.Text())
	}
}

func TestScoreBoardWithoutDisplay(t *testing.T) {
	sb := NewScoreBoard(nil, nil)
	sb.AddScore(0)
	sb.AddScore(7)
	if sb.Text() != "0000007" {
		t.Errorf("Text() = %q, want 0000007", sb.Text())
	}
}

func TestScoreBoardSubmitsBest(t *testing.T) {
	best := NewHighScoreStore(nil)
	sb := NewScoreBoard(nil, best)

	sb.AddScore(100)
	sb.AddScore(100)
	if best.Best() != 200 {
		t.Errorf("Best() = %d, want 200", best.Best())
	}

	// 新的一局分数较低时不覆盖
	sb2 := NewScoreBoard(nil, best)
	sb2.AddScore(100)
	if best.Best() != 200 {
		t.Errorf("Best() = %d, want 200 after a lower round", best.Best())
	}
}
