package lineio

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInterrupted is returned by ReadLine when its context is cancelled while
// waiting for input.
var ErrInterrupted = errors.New("input interrupted")

// Sink displays one line of output.
type Sink func(line string)

// WriterSink returns a Sink that writes each line to w followed by a newline.
func WriterSink(w io.Writer) Sink {
	return func(line string) {
		fmt.Fprintln(w, line)
	}
}

type lineResult struct {
	line string
	err  error
}

// Prompter reads lines from an input stream on demand. The blocking read runs
// on a dedicated goroutine so that ReadLine can return as soon as its context
// is cancelled.
type Prompter struct {
	out   io.Writer
	reqs  chan struct{}
	lines chan lineResult
	once  sync.Once
}

// NewPrompter starts reading from in; prompts are written to out. Call Close
// when done.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{
		out:   out,
		reqs:  make(chan struct{}),
		lines: make(chan lineResult, 1),
	}
	go p.loop(bufio.NewReader(in))
	return p
}

func (p *Prompter) loop(r *bufio.Reader) {
	var sticky error
	for range p.reqs {
		if sticky != nil {
			p.lines <- lineResult{err: sticky}
			continue
		}
		line, err := r.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if err != nil {
			sticky = err
			if line != "" {
				err = nil
			}
		}
		p.lines <- lineResult{line: line, err: err}
	}
}

// ReadLine writes prompt and returns the next line without its terminator.
// It returns io.EOF at end of input and ErrInterrupted if ctx is done first.
func (p *Prompter) ReadLine(ctx context.Context, prompt string) (string, error) {
	if ctx.Err() != nil {
		return "", ErrInterrupted
	}
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	select {
	case p.reqs <- struct{}{}:
	case <-ctx.Done():
		return "", ErrInterrupted
	}
	select {
	case res := <-p.lines:
		return res.line, res.err
	case <-ctx.Done():
		return "", ErrInterrupted
	}
}

// Close stops the reader goroutine once any in-flight read returns.
func (p *Prompter) Close() error {
	p.once.Do(func() { close(p.reqs) })
	return nil
}
