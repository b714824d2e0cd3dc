// Command topolab builds, analyses and stress-tests network topology models.
//
// Without a subcommand it starts the interactive menu. Exit code 0 on normal
// exit or interrupt, 1 on any error.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	os.Exit(execute(os.Stdin, os.Stdout, os.Stderr, os.Args[1:]))
}

// execute runs the command tree and maps every outcome, panics included,
// to an exit code.
func execute(in io.Reader, out, errOut io.Writer, args []string) (code int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(errOut, "Error:", r)
			code = 1
		}
	}()

	root := newRootCmd(newApp(in, out, errOut))
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(errOut, "Error:", err)
		return 1
	}
	return 0
}
