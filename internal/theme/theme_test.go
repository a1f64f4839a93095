package theme

import "testing"

func TestGet(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"nord", "nord"},
		{"Gruvbox", "gruvbox"},
		{"solarized", "solarized-dark"},
		{"Solarized-Light", "solarized-light"},
		{" monokai ", "monokai"},
		{"", "default"},
		{"neon", "default"},
	}
	for _, tt := range tests {
		if got := Get(tt.name).Name; got != tt.want {
			t.Errorf("Get(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestNamesMatchAll(t *testing.T) {
	names := Names()
	if len(names) != len(All()) || names[0] != "default" {
		t.Fatalf("unexpected names: %v", names)
	}
	seen := map[string]bool{}
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate theme %q", n)
		}
		seen[n] = true
		if Get(n).Name != n {
			t.Errorf("Get(%q) does not round-trip", n)
		}
	}
}

func TestMarkdownStyle(t *testing.T) {
	if got := SolarizedLight.MarkdownStyle(); got != "light" {
		t.Errorf("light theme style = %q", got)
	}
	if got := Get("nord").MarkdownStyle(); got != "dark" {
		t.Errorf("dark theme style = %q", got)
	}
}
