package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"justisgipson/monads/internal/verify"
)

var lawsCmd = &cobra.Command{
	Use:   "laws",
	Short: "Check the Pointed, Functor and Monad laws",
	Long: `Check round trip, functor identity, functor composition, left identity,
right identity and associativity for Identity[int], Identity[string] and
Pair[int, int] over fixed sample values.

Exits with status 1 if any law is violated.`,
	Args: cobra.NoArgs,
	RunE: runLaws,
}

func runLaws(cmd *cobra.Command, args []string) error {
	report, err := verify.Run(logger)
	out := cmd.OutOrStdout()
	for _, r := range report.Results {
		status := "ok"
		if !r.OK() {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%-4s %-16s %-20s %s\n", status, r.Container, r.Law, r.Sample)
	}
	if err != nil {
		return fmt.Errorf("%d of %d checks failed: %w", len(report.Failed()), len(report.Results), err)
	}
	fmt.Fprintf(out, "%d checks passed\n", len(report.Results))
	return nil
}
