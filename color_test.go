package navball

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#5AA7FF", color.RGBA{0x5A, 0xA7, 0xFF, 0xFF}},
		{"8b6a3b", color.RGBA{0x8B, 0x6A, 0x3B, 0xFF}},
		{"fff", color.RGBA{255, 255, 255, 255}},
		{"0008", color.RGBA{0, 0, 0, 0x88}},
		{"10101080", color.RGBA{0x10, 0x10, 0x10, 0x80}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			if err != nil {
				t.Fatalf("ParseHex(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "12", "12345", "zzzzzz", "#12345g"} {
		if _, err := ParseHex(in); err == nil {
			t.Errorf("ParseHex(%q) succeeded, want error", in)
		}
	}
}

func TestToByteTruncates(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{-3, 0},
		{0.99, 0},
		{127.9, 127},
		{255, 255},
		{300, 255},
	}
	for _, tt := range tests {
		if got := toByte(tt.in); got != tt.want {
			t.Errorf("toByte(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
