package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"github.com/tim-ck/putting-Navigation-Rule-from-Xml-to-db/pkg/domain"
	"golang.org/x/term"
)

// colorize applies a foreground color when stdout is an interactive
// terminal; piped output stays plain.
func colorize(text, hex string) string {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	p := termenv.ColorProfile()
	return termenv.String(text).Foreground(p.Color(hex)).String()
}

// PrintVerdict writes a human-readable resolution verdict.
func PrintVerdict(w io.Writer, res domain.Resolution) {
	if res.Resolved {
		fmt.Fprintf(w, "%s %s (source: %s)\n", colorize("->", "#22c55e"), res.ToLocation, res.Source)
		return
	}
	fmt.Fprintf(w, "%s no rule matched; caller default applies\n", colorize("unresolved:", "#eab308"))
}

// PrintError writes a resolution failure.
func PrintError(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", colorize("error:", "#ef4444"), err)
}
