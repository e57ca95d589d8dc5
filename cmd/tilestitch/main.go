package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/tilestitch/internal/cli"
	tserr "github.com/matzehuels/tilestitch/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c := cli.New(os.Stderr, cli.LogInfo)
	if err := c.RootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, "error:", tserr.UserMessage(err))
		os.Exit(exitCode(err))
	}
}

// exitCode maps input problems to 2 and everything else to 1.
func exitCode(err error) int {
	switch tserr.GetCode(err) {
	case tserr.ErrCodeInvalidInput, tserr.ErrCodeInvalidTile, tserr.ErrCodeInvalidFormat,
		tserr.ErrCodeInvalidConfig, tserr.ErrCodeFileNotFound:
		return 2
	}
	return 1
}
