package interpreter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the terminal styles used for banners and section headings.
// Writers that are not terminals get plain text.
type Styles struct {
	Heading lipgloss.Style
}

// NewStyles builds styles for output written to w.
func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{Heading: r.NewStyle().Bold(true)}
}

func (it *Interpreter) printWelcome() {
	it.out(it.styles.Heading.Render("Welcome to the Calculator REPL!"))
	it.out("Available operations: " + strings.Join(it.reg.Names(), ", "))
	it.out("Usage: operation operand1 operand2")
	it.out("Example: add 1 1")
	it.out("Special commands: help, history, exit")
	it.out("Type 'help' for more information.")
	it.out("")
}

func (it *Interpreter) printHelp() {
	it.out("")
	it.out(it.styles.Heading.Render("=== Calculator Help ==="))
	it.out("")
	it.out("Available operations:")
	names := it.reg.Names()
	sort.Strings(names)
	for _, name := range names {
		it.out(fmt.Sprintf("  %-10s - Perform %s operation", name, name))
	}
	it.out("")
	it.out("Special commands:")
	it.out("  help       - Display this help message")
	it.out("  history    - Show calculation history")
	it.out("  exit       - Exit the calculator")
	it.out("")
	it.out("Usage: <operation> <operand1> <operand2>")
	it.out("Example: add 5 3")
	it.out("")
}

func (it *Interpreter) printHistory() {
	if it.history == nil {
		it.out("History tracking is disabled.")
		return
	}
	entries := it.history.Entries()
	if len(entries) == 0 {
		it.out("No calculations in history.")
		return
	}
	it.out("")
	it.out(it.styles.Heading.Render(fmt.Sprintf("=== Calculation History (%d entries) ===", len(entries))))
	for i, entry := range entries {
		it.out(fmt.Sprintf("%d. %s", i+1, entry))
	}
	it.out("")
}
