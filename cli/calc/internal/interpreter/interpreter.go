package interpreter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"calckit/cli/calc/internal/history"
	"calckit/cli/calc/internal/lineio"
	"calckit/cli/calc/internal/opregistry"
)

const DefaultPrompt = ">>> "

// Input supplies one line of text per prompt.
type Input interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

// Options tunes an Interpreter. The zero value is usable.
type Options struct {
	Prompt string
	// History records successful results; nil disables tracking.
	History *history.History
	Logger  *log.Entry
	Styles  *Styles
}

// Interpreter drives one calculator session.
type Interpreter struct {
	reg     *opregistry.Registry
	in      Input
	out     lineio.Sink
	prompt  string
	history *history.History
	log     *log.Entry
	styles  Styles
}

// New wires an interpreter around reg, reading from in and writing to out.
func New(reg *opregistry.Registry, in Input, out lineio.Sink, opts Options) *Interpreter {
	it := &Interpreter{
		reg:     reg,
		in:      in,
		out:     out,
		prompt:  opts.Prompt,
		history: opts.History,
		log:     opts.Logger,
	}
	if it.prompt == "" {
		it.prompt = DefaultPrompt
	}
	if it.log == nil {
		discard := log.New()
		discard.SetOutput(io.Discard)
		it.log = log.NewEntry(discard)
	}
	if opts.Styles != nil {
		it.styles = *opts.Styles
	} else {
		it.styles = NewStyles(io.Discard)
	}
	return it
}

// Run prints the welcome banner and processes lines until exit, end of input
// or interruption, all of which return nil. Other input errors are returned.
func (it *Interpreter) Run(ctx context.Context) error {
	it.log.Info("session started")
	it.printWelcome()
	for {
		line, err := it.in.ReadLine(ctx, it.prompt)
		if err != nil {
			if errors.Is(err, lineio.ErrInterrupted) || errors.Is(err, io.EOF) {
				it.log.WithField("reason", err.Error()).Info("session ended")
				it.out("")
				it.out("")
				it.out("Goodbye!")
				return nil
			}
			return fmt.Errorf("read input: %w", err)
		}
		if it.Eval(line) {
			it.log.Info("session ended")
			return nil
		}
	}
}

// Eval handles one input line and reports whether the session should end.
func (it *Interpreter) Eval(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	switch strings.ToLower(line) {
	case "exit":
		it.out("Goodbye!")
		return true
	case "help":
		it.printHelp()
		return false
	case "history":
		it.printHistory()
		return false
	}

	result, err := it.Execute(line)
	if err != nil {
		entry := it.log.WithFields(log.Fields{"line": line, "outcome": "error"})
		if Classified(err) {
			entry.WithError(err).Debug("command rejected")
		} else {
			entry.WithError(err).Error("unexpected failure")
		}
		it.out(Message(err))
		return false
	}
	it.log.WithFields(log.Fields{"line": line, "outcome": "ok"}).Debug("command evaluated")
	if it.history != nil {
		it.history.Append(result)
	}
	it.out(result)
	return false
}

// Execute parses line, dispatches it and returns the formatted result. A
// panic inside an operation is recovered and returned as an error.
func (it *Interpreter) Execute(line string) (result string, err error) {
	cmd, err := Parse(line)
	if err != nil {
		return "", err
	}
	value, err := it.compute(cmd)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %s %s = %s", FormatFloat(cmd.A), cmd.Op, FormatFloat(cmd.B), FormatFloat(value)), nil
}

func (it *Interpreter) compute(cmd Command) (value float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	return it.reg.Compute(strings.ToLower(cmd.Op), cmd.A, cmd.B)
}
