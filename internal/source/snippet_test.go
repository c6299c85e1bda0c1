package source

import "testing"

func TestLineAt(t *testing.T) {
	content := "first\nsecond\r\nthird"

	tests := []struct {
		line int
		want string
		ok   bool
	}{
		{1, "first", true},
		{2, "second", true},
		{3, "third", true},
		{0, "", false},
		{4, "", false},
	}
	for _, tt := range tests {
		got, ok := LineAt(content, tt.line)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LineAt(%d) = %q, %v, want %q, %v", tt.line, got, ok, tt.want, tt.ok)
		}
	}
}

func TestPositionString(t *testing.T) {
	if got := NewPosition(3, 7).String(); got != "3:7" {
		t.Errorf("String() = %q", got)
	}
	if got := (Position{}).String(); got != "?:?" {
		t.Errorf("zero String() = %q", got)
	}
	if (Position{}).Known() {
		t.Error("zero position reports Known")
	}
}
