package complexity

import "testing"

func TestRank(t *testing.T) {
	tests := []struct {
		class Class
		want  int
	}{
		{O1, 1},
		{OLogN, 2},
		{ON, 3},
		{ONLog, 4},
		{ON2, 5},
		{O2N, 6},
		{ONFac, 7},
		{Class("O(??)"), 3},
		{Class(""), 3},
	}

	for _, tt := range tests {
		if got := tt.class.Rank(); got != tt.want {
			t.Errorf("Rank(%q) = %d, want %d", tt.class, got, tt.want)
		}
	}
}

func TestFromRankClamps(t *testing.T) {
	if got := FromRank(0); got != O1 {
		t.Errorf("FromRank(0) = %q, want %q", got, O1)
	}
	if got := FromRank(8); got != ONFac {
		t.Errorf("FromRank(8) = %q, want %q", got, ONFac)
	}
	if got := FromRank(4); got != ONLog {
		t.Errorf("FromRank(4) = %q, want %q", got, ONLog)
	}
}

func TestAverage(t *testing.T) {
	if got := Average(nil); got != O1 {
		t.Errorf("Average(nil) = %q, want %q", got, O1)
	}

	// Mean rank (1+3)/2 = 2 maps to the logarithmic class even though
	// neither input was logarithmic.
	if got := Average([]Class{O1, ON}); got != OLogN {
		t.Errorf("Average(O(1), O(n)) = %q, want %q", got, OLogN)
	}

	if got := Average([]Class{ON2, ON2, ON2}); got != ON2 {
		t.Errorf("Average of identical classes = %q, want %q", got, ON2)
	}

	// Unknown labels average at the default rank.
	if got := Average([]Class{Class("bogus")}); got != ON {
		t.Errorf("Average(bogus) = %q, want %q", got, ON)
	}
}

func TestIsHigh(t *testing.T) {
	for _, class := range []Class{ON2, O2N, ONFac} {
		if !class.IsHigh() {
			t.Errorf("%q should be high complexity", class)
		}
	}
	for _, class := range []Class{O1, OLogN, ON, ONLog} {
		if class.IsHigh() {
			t.Errorf("%q should not be high complexity", class)
		}
	}
}

func TestNewRecordWarning(t *testing.T) {
	rec := NewRecord("slow", "a.py", ON2, 10)
	if rec.Warning == "" {
		t.Error("O(n²) record should carry a warning")
	}
	if rec.Warning != "Consider optimizing - complexity is O(n²)" {
		t.Errorf("unexpected warning text: %q", rec.Warning)
	}

	rec = NewRecord("fast", "a.py", ON, 3)
	if rec.Warning != "" {
		t.Errorf("O(n) record should not warn, got %q", rec.Warning)
	}
	if rec.Line != 3 || rec.File != "a.py" || rec.Function != "fast" {
		t.Errorf("record fields not preserved: %+v", rec)
	}
}
