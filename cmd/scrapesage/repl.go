package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
)

// REPL is the interactive interpreter loop: read one line, dispatch it to
// completion, render the output, repeat. It exits on the exit command or
// end of input.
type REPL struct {
	Dispatcher *Dispatcher
	Stdin      io.Reader
	Stdout     io.Writer
}

// Run executes the loop until exit or EOF.
func (r *REPL) Run(ctx context.Context) error {
	fmt.Fprintln(r.Stdout, Banner())
	fmt.Fprintln(r.Stdout, HelpText())
	fmt.Fprintln(r.Stdout)

	scanner := bufio.NewScanner(r.Stdin)
	for {
		fmt.Fprint(r.Stdout, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(r.Stdout)
			return scanner.Err()
		}

		output, quit := r.Dispatcher.Dispatch(ctx, scanner.Text())
		if output != "" {
			fmt.Fprintln(r.Stdout, output)
		}
		if quit {
			return nil
		}
	}
}
