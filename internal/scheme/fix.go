package scheme

import (
	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/wcagcheck/internal/colour"
	"github.com/jmylchreest/wcagcheck/internal/contrast"
	"github.com/jmylchreest/wcagcheck/internal/correct"
)

// highContrastFallbacks are tried in order when a foreground cannot be
// corrected along its own lightness axis.
var highContrastFallbacks = []colour.Color{colour.White, colour.Black}

// Fixer corrects non-compliant schemes.
type Fixer struct {
	corrector correct.Corrector
	text      contrast.Target
	component contrast.Target
	logger    hclog.Logger
}

// NewFixer creates a Fixer. A nil logger discards output.
func NewFixer(corrector correct.Corrector, text, component contrast.Target, logger hclog.Logger) *Fixer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Fixer{
		corrector: corrector.WithLogger(logger.Named("correct")),
		text:      text,
		component: component,
		logger:    logger,
	}
}

// Fix returns a corrected copy of s and the number of colours it changed.
//
// For each state the foreground is corrected against the button fill, then
// the fill is corrected against the application background, and finally the
// foreground is re-checked against the new fill. The application background
// itself is never changed.
func (f *Fixer) Fix(s Scheme) (Scheme, int) {
	out := s.Clone()
	fixes := 0

	for _, st := range States {
		p, ok := out.States[st]
		if !ok {
			continue
		}
		logger := f.logger.With("state", string(st))

		if f.fixForeground(&p, logger, "adjusted foreground") {
			fixes++
		}

		if contrast.Ratio(out.AppBackground, p.Background) < f.component.Threshold() {
			outcome := f.corrector.Correct(out.AppBackground, p.Background, f.component, correct.Background)
			if !outcome.Reached {
				logger.Warn("button background cannot reach target against app background",
					"background", p.Background.Hex(), "best", outcome.Color.Hex(), "ratio", outcome.Ratio)
			}
			if outcome.Changed {
				p.Background = outcome.Color
				logger.Debug("adjusted background", "background", p.Background.Hex())
				fixes++

				if f.fixForeground(&p, logger, "re-adjusted foreground") {
					fixes++
				}
			}
		}

		out.States[st] = p
	}

	return out, fixes
}

// fixForeground corrects p's text colour if it fails the text target and
// reports whether the colour changed.
func (f *Fixer) fixForeground(p *Pair, logger hclog.Logger, msg string) bool {
	if contrast.Ratio(p.Foreground, p.Background) >= f.text.Threshold() {
		return false
	}
	fg := f.Foreground(p.Foreground, p.Background)
	if fg == p.Foreground {
		logger.Warn("button text cannot reach target", "foreground", fg.Hex(), "background", p.Background.Hex())
		return false
	}
	p.Foreground = fg
	logger.Debug(msg, "foreground", fg.Hex())
	return true
}

// Foreground returns a text colour for bg that meets the text target,
// preferring the lightness-corrected fg and falling back to white or black.
// If nothing passes, the best-effort correction is returned.
func (f *Fixer) Foreground(fg, bg colour.Color) colour.Color {
	outcome := f.corrector.Correct(fg, bg, f.text, correct.Foreground)
	if outcome.Reached {
		return outcome.Color
	}

	for _, candidate := range highContrastFallbacks {
		if contrast.Ratio(candidate, bg) >= f.text.Threshold() {
			f.logger.Debug("using high contrast fallback", "foreground", candidate.Hex(), "background", bg.Hex())
			return candidate
		}
	}
	return outcome.Color
}
