//nolint:forbidigo // Printer is used for customer friendly output to terminal
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guumaster/logsymbols"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // read only, initialize objects once for performance.
var (
	successStyle      = lipgloss.NewStyle().Bold(true)
	errorStyle        = lipgloss.NewStyle().Bold(true)
	warningStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	headerStyle       = lipgloss.NewStyle().Bold(true).Underline(true)
	notificationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("178")) // Bright yellow, good for notifications

	out io.Writer = os.Stdout
)

// SetOutput redirects everything the printer writes. Passing nil restores stdout.
// It returns the previous writer so callers can restore it.
func SetOutput(w io.Writer) io.Writer {
	prev := out
	if w == nil {
		w = os.Stdout
	}
	out = w
	return prev
}

func Successln(msg string) {
	fmt.Fprintln(out, successStyle.Render(string(logsymbols.Success)+" "+msg))
}

func Successf(format string, args ...any) {
	newFormat, linesRemoved := trimAndCountTrailingNewlines(format)
	msg := successStyle.Render(string(logsymbols.Success) + " " + fmt.Sprintf(newFormat, args...))
	fmt.Fprint(out, msg)
	NewLine(linesRemoved)
}

func Errorln(msg string) {
	fmt.Fprintln(out, errorStyle.Render(string(logsymbols.Error)+" "+msg))
}

func Errorf(format string, args ...any) {
	newFormat, linesRemoved := trimAndCountTrailingNewlines(format)
	msg := errorStyle.Render(string(logsymbols.Error) + " " + fmt.Sprintf(newFormat, args...))
	fmt.Fprint(out, msg)
	NewLine(linesRemoved)
}

func Warnln(msg string) {
	fmt.Fprintln(out, warningStyle.Render(string(logsymbols.Warning)+" "+msg))
}

func Warnf(format string, args ...any) {
	newFormat, linesRemoved := trimAndCountTrailingNewlines(format)
	msg := warningStyle.Render(string(logsymbols.Warning) + " " + fmt.Sprintf(newFormat, args...))
	fmt.Fprint(out, msg)
	NewLine(linesRemoved)
}

func Info(msg string) {
	fmt.Fprint(out, msg)
}

func Infoln(msg string) {
	fmt.Fprintln(out, msg)
}

func Infof(format string, args ...any) {
	fmt.Fprintf(out, format, args...)
}

func Headerln(msg string) {
	fmt.Fprintln(out, headerStyle.Render(msg))
}

func Notificationln(msg string) {
	fmt.Fprintln(out, notificationStyle.Render(msg))
}

func Notificationf(format string, args ...any) {
	newFormat, linesRemoved := trimAndCountTrailingNewlines(format)
	msg := notificationStyle.Render(fmt.Sprintf(newFormat, args...))
	fmt.Fprint(out, msg)
	NewLine(linesRemoved)
}

func NewLine(numberOfLines int) {
	if numberOfLines <= 0 {
		return
	}
	fmt.Fprint(out, strings.Repeat("\n", numberOfLines))
}

func MoveCursorUp(numberOfLines int) {
	output := termenv.NewOutput(os.Stdout)
	output.CursorUp(numberOfLines)
}

func MoveCursorRight(numberOfCells int) {
	output := termenv.NewOutput(os.Stdout)
	output.CursorForward(numberOfCells)
}

// SectionDivider prints a divider line of a given symbol and length.
// Default length is 1.
func SectionDivider(symbol string, length int) {
	if length <= 0 {
		length = 1
	}
	fmt.Fprintln(out, strings.Repeat(symbol, length))
}

// trimAndCountTrailingNewlines trims trailing newlines from a string and returns the count.
// Used for stylized output to ensure the cursor is reset properly.
func trimAndCountTrailingNewlines(s string) (string, int) {
	if s == "" {
		return "", 0
	}

	count := 0
	i := len(s)
	for i > 0 && s[i-1] == '\n' {
		i--
		count++
	}
	return s[:i], count
}
