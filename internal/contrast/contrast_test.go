package contrast

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/jmylchreest/wcagcheck/internal/colour"
)

func TestEvaluateKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		a, b   string
		want   Result
		margin float64
	}{
		{
			name:   "white on black",
			a:      "#FFFFFF",
			b:      "#000000",
			want:   Result{Ratio: 21, PassesNormalText: true, PassesLargeText: true},
			margin: 1e-9,
		},
		{
			name:   "grey on white just passes",
			a:      "#767676",
			b:      "#FFFFFF",
			want:   Result{Ratio: 4.54, PassesNormalText: true, PassesLargeText: true},
			margin: 0.005,
		},
		{
			name:   "large only",
			a:      "#FFFFFF",
			b:      "#4682B4",
			want:   Result{Ratio: 4.11, PassesNormalText: false, PassesLargeText: true},
			margin: 0.005,
		},
		{
			name:   "fails both",
			a:      "#FFFFFF",
			b:      "#BED2E6",
			want:   Result{Ratio: 1.55, PassesNormalText: false, PassesLargeText: false},
			margin: 0.01,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(colour.MustParseHex(tt.a), colour.MustParseHex(tt.b))
			opt := cmpopts.EquateApprox(0, tt.margin)
			if diff := cmp.Diff(tt.want, got, opt); diff != "" {
				t.Errorf("Evaluate(%s, %s) mismatch (-want +got):\n%s", tt.a, tt.b, diff)
			}
		})
	}
}

func TestEvaluateSymmetry(t *testing.T) {
	colours := []string{"#000000", "#FFFFFF", "#767676", "#4682B4", "#FF0000", "#00FF00", "#1E466E", "#F0F0F0"}
	for _, a := range colours {
		for _, b := range colours {
			ca, cb := colour.MustParseHex(a), colour.MustParseHex(b)
			if Evaluate(ca, cb) != Evaluate(cb, ca) {
				t.Errorf("Evaluate(%s, %s) != Evaluate(%s, %s)", a, b, b, a)
			}
		}
	}
}

func TestEvaluateIdentity(t *testing.T) {
	for _, hex := range []string{"#000000", "#FFFFFF", "#808080", "#4682B4"} {
		c := colour.MustParseHex(hex)
		got := Evaluate(c, c)
		if got.Ratio != 1.0 {
			t.Errorf("Evaluate(%s, %s).Ratio = %v, want 1", hex, hex, got.Ratio)
		}
		if got.PassesLargeText || got.PassesNormalText {
			t.Errorf("identical colours %s should fail both verdicts", hex)
		}
	}
}

func TestRatioBounds(t *testing.T) {
	for r := 0; r <= 255; r += 51 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 51 {
				c := colour.FromRGB8(uint8(r), uint8(g), uint8(b))
				for _, partner := range []colour.Color{colour.Black, colour.White} {
					ratio := Ratio(c, partner)
					if ratio < 1 || ratio > 21+1e-9 || math.IsNaN(ratio) {
						t.Fatalf("Ratio(%s, %s) = %v outside [1, 21]", c, partner, ratio)
					}
				}
			}
		}
	}
}

func TestResultPasses(t *testing.T) {
	r := Result{Ratio: 3.5}
	if r.Passes(Normal) {
		t.Error("3.5 should not pass normal text")
	}
	if !r.Passes(Large) {
		t.Error("3.5 should pass large text")
	}
	if !(Result{Ratio: 4.5}).Passes(Normal) {
		t.Error("threshold is inclusive")
	}
}

func TestTarget(t *testing.T) {
	tests := []struct {
		input     string
		want      Target
		threshold float64
	}{
		{input: "normal", want: Normal, threshold: 4.5},
		{input: "LARGE", want: Large, threshold: 3.0},
		{input: " large ", want: Large, threshold: 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTarget(tt.input)
			if err != nil {
				t.Fatalf("ParseTarget(%q): %v", tt.input, err)
			}
			if got != tt.want || got.Threshold() != tt.threshold {
				t.Errorf("ParseTarget(%q) = %s (%v), want %s (%v)", tt.input, got, got.Threshold(), tt.want, tt.threshold)
			}
		})
	}

	if _, err := ParseTarget("aaa"); err == nil {
		t.Error("expected error for unsupported target")
	}

	var target Target
	if err := target.Set("large"); err != nil || target != Large {
		t.Errorf("Set(large) = %v, %v", target, err)
	}
	if target.Type() != "target" {
		t.Errorf("Type() = %s", target.Type())
	}
}
