package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/jmylchreest/wcagcheck/internal/colour"
)

var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

// printer writes command output, styling it only when w is a terminal.
type printer struct {
	w      io.Writer
	styled bool
}

func newPrinter(w io.Writer) printer {
	styled := false
	if f, ok := w.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return printer{w: w, styled: styled}
}

func (p printer) printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}

// verdict renders PASS or FAIL.
func (p printer) verdict(ok bool) string {
	switch {
	case ok && p.styled:
		return passStyle.Render("PASS")
	case ok:
		return "PASS"
	case p.styled:
		return failStyle.Render("FAIL")
	default:
		return "FAIL"
	}
}

// swatch renders a colour's hex code, preceded by a filled block on a terminal.
func (p printer) swatch(c colour.Color) string {
	if !p.styled {
		return c.Hex()
	}
	block := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("   ")
	return block + " " + c.Hex()
}

// sample renders example text in fg on bg. It is empty off a terminal.
func (p printer) sample(fg, bg colour.Color) string {
	if !p.styled {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Padding(0, 1).
		Render("The quick brown fox")
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}

// formatRatio renders a contrast ratio as "4.54:1".
func formatRatio(r float64) string {
	return fmt.Sprintf("%.2f:1", r)
}
