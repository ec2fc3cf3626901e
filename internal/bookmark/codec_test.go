package bookmark

import (
	"errors"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	b := Bookmark{Alias: "proj", Kind: KindPath, Value: "/home/me/proj"}
	got := Encode(b)
	want := "proj;path;/home/me/proj\n"
	if got != want {
		t.Errorf("Encode() = %q, want %q", got, want)
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Bookmark
	}{
		{"path record", "proj;path;/home/me/proj", Bookmark{"proj", KindPath, "/home/me/proj"}},
		{"command record", "up;command;docker compose up", Bookmark{"up", KindCommand, "docker compose up"}},
		{"no value segment", "x;path", Bookmark{"x", KindPath, ""}},
		{"empty value", "x;path;", Bookmark{"x", KindPath, ""}},
		{"free-form kind", "x;url;https://example.com", Bookmark{"x", Kind("url"), "https://example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.line)
			if err != nil {
				t.Fatalf("Decode(%q) error: %v", tt.line, err)
			}
			if got != tt.want {
				t.Errorf("Decode(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestDecodeMalformed(t *testing.T) {
	for _, line := range []string{"", "onlyalias"} {
		_, err := Decode(line)
		if !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("Decode(%q) error = %v, want ErrMalformedRecord", line, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	records := []Bookmark{
		{"proj", KindPath, "/home/me/proj"},
		{"Docs", KindPath, "/Users/me/Documents/My Files"},
		{"build", KindCommand, "make -j8 all"},
		{"e", KindPath, ""},
	}

	for _, r := range records {
		line := strings.TrimSuffix(Encode(r), "\n")
		got, err := Decode(line)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", line, err)
		}
		if got != r {
			t.Errorf("round trip = %+v, want %+v", got, r)
		}
	}
}

// Values containing the delimiter lose it on decode.
func TestRoundTripDropsDelimiterInValue(t *testing.T) {
	r := Bookmark{Alias: "x", Kind: KindCommand, Value: "cd /tmp;ls;pwd"}

	line := strings.TrimSuffix(Encode(r), "\n")
	if line != "x;command;cd /tmp;ls;pwd" {
		t.Fatalf("Encode() = %q", line)
	}

	got, err := Decode(line)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if got.Value != "cd /tmplspwd" {
		t.Errorf("Value = %q, want %q", got.Value, "cd /tmplspwd")
	}
	if got.Value == r.Value {
		t.Error("value with delimiter should not round-trip")
	}
}

func TestLinePrefix(t *testing.T) {
	if got := LinePrefix("proj"); got != "proj;" {
		t.Errorf("LinePrefix() = %q, want %q", got, "proj;")
	}
}
