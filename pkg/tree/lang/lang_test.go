package lang

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{"main.go", "go"},
		{"src/lib.rs", "rust"},
		{"Widget.HPP", "cpp"},
		{"x.c++", "cpp"},
		{"script.pl", "perl"},
		{"rules.pro", "prolog"},
		{"legacy.vbs", "visual-basic"},
		{"archive.tar.ts", "typescript"},
		{"README", Unknown},
		{"notes.", Unknown},
		{".bashrc", Unknown},
		{"data.json", Unknown},
	}

	for _, tt := range tests {
		if got := Classify(tt.filename); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.filename, got, tt.want)
		}
	}
}

func TestKnown(t *testing.T) {
	if !Known("a.py") || Known("a.txt") {
		t.Error("Known mismatch")
	}
}
