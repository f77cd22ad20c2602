// Package lineio provides the line-oriented collaborators of the REPL: a
// Prompter that reads one line per prompt and turns cancellation of its
// context (SIGINT in the CLI) into ErrInterrupted, and a Sink that writes one
// line of output.
package lineio
