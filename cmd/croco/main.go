// Package main is the entry point for the croco CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/crocofactory/croco-cli/internal/cmd"
	oerrors "github.com/crocofactory/croco-cli/internal/errors"
	"github.com/crocofactory/croco-cli/internal/output"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		code := oerrors.ExitCodeFromError(err)

		// Only print if the command layer hasn't already printed it
		var exitErr *oerrors.ExitError
		if !errors.As(err, &exitErr) || !exitErr.Printed {
			fmt.Fprintln(os.Stderr, err)
		}
		output.Debug("exiting", "code", code, "reason", oerrors.ExitCodeName(code))
		stop()
		os.Exit(code)
	}
}
