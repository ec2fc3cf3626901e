package bookmark

import "testing"

var sample = []Bookmark{
	{"proj", KindPath, "/a"},
	{"work", KindPath, "/b"},
	{"Proj", KindPath, "/c"},
	{"build", KindCommand, "make"},
	{"project-x", KindPath, "/d"},
}

func TestFindAllIgnoresCase(t *testing.T) {
	got := FindAll(sample, "PROJ")
	if len(got) != 2 {
		t.Fatalf("len(FindAll) = %d, want 2", len(got))
	}
	if got[0].Value != "/a" || got[1].Value != "/c" {
		t.Errorf("FindAll order = %v, want /a then /c", got)
	}
}

func TestFindAllNoMatch(t *testing.T) {
	if got := FindAll(sample, "missing"); len(got) != 0 {
		t.Errorf("FindAll(missing) = %v, want empty", got)
	}
	if got := FindAll(sample, "pro"); len(got) != 0 {
		t.Errorf("FindAll(pro) = %v, want empty (no prefix matching)", got)
	}
}

func TestFindFirst(t *testing.T) {
	b, ok := FindFirst(sample, "proj")
	if !ok {
		t.Fatal("FindFirst(proj) not found")
	}
	if b.Value != "/a" {
		t.Errorf("Value = %q, want %q", b.Value, "/a")
	}

	if _, ok := FindFirst(sample, "nope"); ok {
		t.Error("FindFirst(nope) should not match")
	}
}

func TestFilterGlob(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    int
	}{
		{"empty matches all", "", 5},
		{"prefix star", "proj*", 2},
		{"case sensitive", "Proj*", 1},
		{"single char", "wor?", 1},
		{"alternation", "{build,work}", 2},
		{"no match", "zzz*", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FilterGlob(sample, tt.pattern)
			if err != nil {
				t.Fatalf("FilterGlob(%q) error: %v", tt.pattern, err)
			}
			if len(got) != tt.want {
				t.Errorf("len(FilterGlob(%q)) = %d, want %d", tt.pattern, len(got), tt.want)
			}
		})
	}
}

func TestFilterGlobInvalid(t *testing.T) {
	if _, err := FilterGlob(sample, "[abc"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestOfKind(t *testing.T) {
	got := OfKind(sample, KindCommand)
	if len(got) != 1 || got[0].Alias != "build" {
		t.Errorf("OfKind(command) = %v, want [build]", got)
	}
}
