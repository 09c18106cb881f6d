package core

import "testing"

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#0096ff", RGB(0, 150, 255), false},
		{"96ff00", RGB(150, 255, 0), false},
		{" #ff3232 ", RGB(255, 50, 50), false},
		{"#fff", Color{}, true},
		{"#zzzzzz", Color{}, true},
		{"", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseHex(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseHex(%q) expected error, got %v", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHex(%q) failed: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("ParseHex(%q) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := RGB(255, 0, 128).RGBA()
	if r != 0xffff || g != 0 || b != 0x8080 || a != 0xffff {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}
}

func TestColorHex(t *testing.T) {
	if got := RGB(20, 20, 20).Hex(); got != "#141414" {
		t.Errorf("Hex() = %q, expected #141414", got)
	}
}
