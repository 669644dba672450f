package style

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Color
		wantErr bool
	}{
		{name: "rrggbb", in: "#1a2b3c", want: Color{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}},
		{name: "short rgb", in: "#f0a", want: Color{R: 0xff, G: 0x00, B: 0xaa, A: 0xff}},
		{name: "rrggbbaa", in: "#11223380", want: Color{R: 0x11, G: 0x22, B: 0x33, A: 0x80}},
		{name: "whitespace", in: "  #ffffff ", want: Color{R: 255, G: 255, B: 255, A: 255}},
		{name: "missing hash", in: "ffffff", wantErr: true},
		{name: "bad length", in: "#ffff", wantErr: true},
		{name: "bad digits", in: "#zzzzzz", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorHexRoundTrip(t *testing.T) {
	c := Color{R: 0xab, G: 0xcd, B: 0xef, A: 0xff}
	if c.Hex() != "#abcdef" {
		t.Errorf("Hex() = %s, want #abcdef", c.Hex())
	}

	translucent := Color{R: 1, G: 2, B: 3, A: 4}
	back, err := ParseColor(translucent.Hex())
	if err != nil {
		t.Fatalf("ParseColor(%s): %v", translucent.Hex(), err)
	}
	if back != translucent {
		t.Errorf("round trip = %+v, want %+v", back, translucent)
	}
}
