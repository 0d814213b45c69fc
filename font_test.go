package bramble

import "testing"

func TestDefaultFontMetrics(t *testing.T) {
	f := DefaultFont()
	if f.LineHeight() != 13 {
		t.Errorf("LineHeight = %v, want 13", f.LineHeight())
	}
	if f.Ascent() != 11 {
		t.Errorf("Ascent = %v, want 11", f.Ascent())
	}
	if f.Face() == nil {
		t.Error("Face should not be nil")
	}

	tests := []struct {
		name string
		s    string
		w, h float64
	}{
		{"empty", "", 0, 0},
		{"single line", "abc", 21, 13},
		{"multi line uses widest", "ab\nabcd", 28, 26},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := f.MeasureString(tt.s)
			if w != tt.w || h != tt.h {
				t.Errorf("MeasureString(%q) = (%v, %v), want (%v, %v)", tt.s, w, h, tt.w, tt.h)
			}
		})
	}
}
