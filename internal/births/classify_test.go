package births

import (
	"testing"
	"time"
)

var target = time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC)

func TestLooksDead_EachRule(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"word died", "Jane Doe, American actress, died 2001"},
		{"word death", "Jane Doe, American actress, death announced"},
		{"abbreviated death year", "Jane Doe, American actress (d. 1990)"},
		{"dagger", "Jane Doe, American actress †"},
		{"paren d", "Jane Doe, American actress (d. 1990 in Paris)"},
		{"paren died", "Jane Doe, American actress (died 1990)"},
		{"lifespan range", "Jane Doe, American actress (1920 – 1990)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !LooksDead(tt.text) {
				t.Errorf("expected %q to match a death heuristic", tt.text)
			}
		})
	}
}

func TestLooksDead_LivingEntries(t *testing.T) {
	tests := []string{
		"Jane Doe, American actress and singer",
		"Bob Lee, deathcore vocalist", // "death" must match as a whole word only
	}
	for _, text := range tests {
		if LooksDead(text) {
			t.Errorf("expected %q to look alive", text)
		}
	}
	// Known limitation: incidental whole-word mentions are false positives.
	if !LooksDead("Sue Park, curator of a Black Death exhibition") {
		t.Error("expected incidental whole-word mention to trip the heuristic")
	}
}

func TestClassify_DeceasedExcludedRegardlessOfFilter(t *testing.T) {
	rec, ok := Parse("1950 – Jane Doe, American painter (d. 2020)", 2025)
	if !ok {
		t.Fatal("expected entry to parse")
	}
	for _, keyword := range []string{"", "American"} {
		if _, ok := NewClassifier(keyword).ClassifyAndFormat(rec, target); ok {
			t.Errorf("keyword %q: expected deceased entry to be excluded", keyword)
		}
	}
}

func TestClassify_KeywordFilter(t *testing.T) {
	cls := NewClassifier("American")
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"plain match", "1950 – Jane Doe, American painter", true},
		{"hyphenated compound", "1950 – Mei Chen, Chinese-American violinist", true},
		{"keyword later in text", "1950 – Jane Doe, painter of American landscapes", true},
		{"no match", "1950 – Pierre Blanc, French chef", false},
		{"prefix of longer word", "1950 – Jane Doe, scholar of Americanism", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, ok := Parse(tt.raw, 2025)
			if !ok {
				t.Fatalf("expected %q to parse", tt.raw)
			}
			_, got := cls.ClassifyAndFormat(rec, target)
			if got != tt.want {
				t.Errorf("expected included=%v for %q", tt.want, tt.raw)
			}
		})
	}
}

func TestClassify_FilterDisabledKeepsEverything(t *testing.T) {
	cls := NewClassifier("")
	rec, ok := Parse("1950 – Pierre Blanc, French chef", 2025)
	if !ok {
		t.Fatal("expected entry to parse")
	}
	entry, ok := cls.ClassifyAndFormat(rec, target)
	if !ok {
		t.Fatal("expected entry to be kept with the filter disabled")
	}
	if entry.Age != 75 {
		t.Errorf("expected age 75, got %d", entry.Age)
	}
}

func TestClassify_ImplausibleAge(t *testing.T) {
	cls := NewClassifier("")
	rec, ok := Parse("1880 – Methuselah Jones, American farmer", 2025)
	if !ok {
		t.Fatal("expected entry to parse")
	}
	if _, ok := cls.ClassifyAndFormat(rec, target); ok {
		t.Error("expected age above 125 to be excluded")
	}
}

func TestNormalize_LeadingKeywordStripped(t *testing.T) {
	cls := NewClassifier("American")
	tests := []struct {
		in   string
		want string
	}{
		{"American painter", "Painter"},
		{"american painter", "Painter"},
		{"AMERICAN painter", "Painter"},
		{"American actress and singer", "Actress and singer"},
		{"American", "American"},
		{"Chinese-American violinist", "Chinese-American violinist"},
		{"painter of American landscapes", "Painter of American landscapes"},
		{"actor ,voice artist", "Actor, voice artist"},
		{"singer – songwriter", "Singer – songwriter"},
		{"actor,", "Actor"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := cls.Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q): expected %q, got %q", tt.in, tt.want, got)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	cls := NewClassifier("American")
	inputs := []string{
		"American painter",
		"american painter",
		"American American painter",
		"American american painter",
		"Chinese-American violinist",
		"actor ,voice artist  –  director",
		"Painter",
		"",
	}
	for _, in := range inputs {
		once := cls.Normalize(in)
		twice := cls.Normalize(once)
		if once != twice {
			t.Errorf("Normalize(%q): not idempotent, %q then %q", in, once, twice)
		}
	}
}
