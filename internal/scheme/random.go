package scheme

import (
	"math/rand/v2"

	"github.com/jmylchreest/wcagcheck/internal/colour"
	"github.com/jmylchreest/wcagcheck/internal/correct"
	"github.com/jmylchreest/wcagcheck/internal/palette"
)

var fallbackAppBackground = colour.MustParseHex("#F0F0F0")

// Random builds a compliant scheme from colours drawn out of p.
//
// The application background is a light colour (luminance above 0.5). Each
// button fill is a palette colour darker than the application background,
// darkened further until it meets the component target; its text starts as
// white and is corrected against the fill.
func (f *Fixer) Random(rng *rand.Rand, p *palette.Palette) Scheme {
	app := fallbackAppBackground
	if light := p.Light(); light.Len() > 0 {
		app = light.Colors[rng.IntN(light.Len())]
	}

	appLum := colour.Luminance(app)
	var darker []colour.Color
	for _, c := range p.Colors {
		if colour.Luminance(c) < appLum {
			darker = append(darker, c)
		}
	}
	if len(darker) == 0 {
		darker = []colour.Color{colour.Black}
	}

	out := Scheme{AppBackground: app, States: make(map[State]Pair, len(States))}
	for _, st := range States {
		bg := darker[rng.IntN(len(darker))]
		bg = f.corrector.Correct(app, bg, f.component, correct.Background).Color
		out.States[st] = Pair{
			Foreground: f.Foreground(colour.White, bg),
			Background: bg,
		}
	}

	f.logger.Debug("generated random scheme", "app_background", app.Hex())
	return out
}
