package colour

import (
	"encoding/json"
	"errors"
	"image/color"
	"math"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Color
	}{
		{name: "with hash", input: "#1a2b3c", want: FromRGB8(0x1a, 0x2b, 0x3c)},
		{name: "without hash", input: "FF8000", want: FromRGB8(255, 128, 0)},
		{name: "mixed case", input: "#aBcDeF", want: FromRGB8(0xab, 0xcd, 0xef)},
		{name: "surrounding whitespace", input: "  #767676\n", want: FromRGB8(0x76, 0x76, 0x76)},
		{name: "black", input: "000000", want: Black},
		{name: "white", input: "#FFFFFF", want: White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexInvalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "hash only", input: "#"},
		{name: "short form", input: "#FFF"},
		{name: "too long", input: "#FFFFFFF"},
		{name: "with alpha", input: "#FFFFFF00"},
		{name: "non hex", input: "#GGGGGG"},
		{name: "sign prefix", input: "+FFFFF"},
		{name: "double hash", input: "##FFFFF"},
		{name: "inner space", input: "FF FF F"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseHex(tt.input)
			if err == nil {
				t.Fatalf("ParseHex(%q) expected error", tt.input)
			}
			var formatErr *InvalidFormatError
			if !errors.As(err, &formatErr) {
				t.Fatalf("ParseHex(%q) error = %T, want *InvalidFormatError", tt.input, err)
			}
			if formatErr.Input != tt.input {
				t.Errorf("InvalidFormatError.Input = %q, want %q", formatErr.Input, tt.input)
			}
			if !errors.Is(err, ErrInvalidColour) {
				t.Error("expected error to match ErrInvalidColour")
			}
		})
	}
}

func TestNew(t *testing.T) {
	c, err := New(70, 130, 180)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if c.R() != 70 || c.G() != 130 || c.B() != 180 {
		t.Errorf("New(70, 130, 180) = %s", c.RGBString())
	}

	for _, tt := range []struct {
		name    string
		r, g, b int
		channel string
		value   int
	}{
		{name: "negative red", r: -1, g: 0, b: 0, channel: "red", value: -1},
		{name: "green too large", r: 0, g: 256, b: 0, channel: "green", value: 256},
		{name: "blue too large", r: 0, g: 0, b: 1000, channel: "blue", value: 1000},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.r, tt.g, tt.b)
			var rangeErr *OutOfRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("New() error = %v, want *OutOfRangeError", err)
			}
			if rangeErr.Channel != tt.channel || rangeErr.Value != tt.value {
				t.Errorf("OutOfRangeError = %+v, want channel %s value %d", rangeErr, tt.channel, tt.value)
			}
			if !errors.Is(err, ErrInvalidColour) {
				t.Error("expected error to match ErrInvalidColour")
			}
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	for _, input := range []string{"#000000", "#FFFFFF", "#4682B4", "#0A0B0C"} {
		if got := MustParseHex(input).Hex(); got != input {
			t.Errorf("Hex() = %s, want %s", got, input)
		}
	}
	if got := MustParseHex("abcdef").Hex(); got != "#ABCDEF" {
		t.Errorf("Hex() = %s, want uppercase #ABCDEF", got)
	}
}

func TestMustParseHexPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParseHex did not panic on invalid input")
		}
	}()
	MustParseHex("nope")
}

func TestColorImplementsImageColor(t *testing.T) {
	var c color.Color = MustParseHex("#336699")
	got := FromColor(color.RGBAModel.Convert(c))
	if got != MustParseHex("#336699") {
		t.Errorf("FromColor round trip = %s", got)
	}
	if FromColor(c) != c {
		t.Error("FromColor should return a Color unchanged")
	}
}

func TestColorJSON(t *testing.T) {
	type doc struct {
		Fg Color `json:"fg"`
	}
	data, err := json.Marshal(doc{Fg: MustParseHex("#4682b4")})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `{"fg":"#4682B4"}` {
		t.Errorf("Marshal = %s", data)
	}

	var d doc
	if err := json.Unmarshal([]byte(`{"fg":"#zzzzzz"}`), &d); err == nil {
		t.Error("expected error for invalid colour in JSON")
	}
}

func TestLuminance(t *testing.T) {
	tests := []struct {
		hex  string
		want float64
	}{
		{hex: "#000000", want: 0},
		{hex: "#FFFFFF", want: 1},
		{hex: "#FF0000", want: 0.2126},
		{hex: "#00FF00", want: 0.7152},
		{hex: "#0000FF", want: 0.0722},
		{hex: "#808080", want: 0.2158605},
		{hex: "#767676", want: 0.1811642},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			got := Luminance(MustParseHex(tt.hex))
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Luminance(%s) = %.7f, want %.7f", tt.hex, got, tt.want)
			}
		})
	}
}

func TestLinearLowSegment(t *testing.T) {
	// 10/255 = 0.0392 falls on the linear segment of the transfer function.
	lin := FromRGB8(10, 10, 10).Linear()
	want := 10.0 / 255.0 / 12.92
	if math.Abs(lin.R-want) > 1e-12 {
		t.Errorf("Linear().R = %v, want %v", lin.R, want)
	}
}

func TestHSL(t *testing.T) {
	h, s, l := MustParseHex("#336699").HSL()
	if math.Abs(h-210) > 1e-9 || math.Abs(s-0.5) > 1e-9 || math.Abs(l-0.4) > 1e-9 {
		t.Errorf("HSL(#336699) = (%v, %v, %v), want (210, 0.5, 0.4)", h, s, l)
	}

	h, s, _ = MustParseHex("#808080").HSL()
	if h != 0 || s != 0 {
		t.Errorf("grey HSL = (%v, %v), want hue and saturation 0", h, s)
	}
}

func TestFromHSL(t *testing.T) {
	tests := []struct {
		name    string
		h, s, l float64
		want    string
	}{
		{name: "steel blue", h: 210, s: 0.5, l: 0.4, want: "#336699"},
		{name: "black", h: 120, s: 1, l: 0, want: "#000000"},
		{name: "white", h: 120, s: 1, l: 1, want: "#FFFFFF"},
		{name: "grey", h: 0, s: 0, l: 0.5, want: "#808080"},
		{name: "clamped lightness", h: 0, s: 0, l: 1.5, want: "#FFFFFF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromHSL(tt.h, tt.s, tt.l).Hex(); got != tt.want {
				t.Errorf("FromHSL(%v, %v, %v) = %s, want %s", tt.h, tt.s, tt.l, got, tt.want)
			}
		})
	}
}

func TestWithLightness(t *testing.T) {
	c := MustParseHex("#336699")
	if got := c.WithLightness(0.4); got != c {
		t.Errorf("WithLightness(current) = %s, want %s", got, c)
	}
	if got := c.WithLightness(0); got != Black {
		t.Errorf("WithLightness(0) = %s, want black", got)
	}
}
