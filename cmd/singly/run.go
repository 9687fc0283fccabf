package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnstructures/singly/internal/xerrors"
	"github.com/learnstructures/singly/scenario"
)

func newRunCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE...",
		Short: "Replay scenario files and report mismatches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := make([]*scenario.Scenario, 0, len(args))
			for _, path := range args {
				s, err := scenario.Load(path)
				if err != nil {
					return err
				}
				scenarios = append(scenarios, s)
			}

			reports, err := scenario.RunAll(cmd.Context(), scenarios, cfg.parallel, cfg.scenarioOptions()...)
			failed := 0
			for i, r := range reports {
				if r.Failed > 0 || r.Steps < len(scenarios[i].Steps) {
					failed++
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			switch {
			case err == nil:
			case xerrors.Is(err, scenario.ErrMismatch, scenario.ErrUnknownOperation):
				return fmt.Errorf("%d of %d scenarios failed: %w", failed, len(reports), err)
			default:
				return fmt.Errorf("run interrupted: %w", err)
			}

			return nil
		},
	}
}
