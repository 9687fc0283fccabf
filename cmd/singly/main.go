package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := &config{}
	root := &cobra.Command{
		Use:   "singly",
		Short: "Replay singly linked list scenarios",
		Long: `singly replays scenarios of list operations against a fresh singly
linked list of strings and checks the results of every step.

Scenario files are YAML:

  name: remove head
  steps:
    - op: addFirst
      value: Bailey
    - op: size
      expect: 1`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.setup(cmd, stderr)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			cfg.close()
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	cfg.bindFlags(root)

	root.AddCommand(
		newRunCmd(cfg),
		newDemoCmd(cfg),
	)

	return root
}
