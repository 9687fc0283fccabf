package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learnstructures/singly/scenario"
	"github.com/learnstructures/singly/trace"
)

func newDemoCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Walk through the built-in scenario printing the list after every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := scenario.Demo()
			out := cmd.OutOrStdout()
			printer := trace.Scenario{
				OnStep: func(info trace.ScenarioStepStartInfo) func(trace.ScenarioStepDoneInfo) {
					step := s.Steps[info.Index]
					call := info.Op + "(" + step.Value + ")"

					return func(info trace.ScenarioStepDoneInfo) {
						fmt.Fprintf(out, "%-22s %s\n", call, info.List)
					}
				},
			}

			r, err := scenario.Run(cmd.Context(), s, cfg.scenarioOptions(scenario.WithTrace(printer))...)
			fmt.Fprintln(out, r)

			return err
		},
	}
}
