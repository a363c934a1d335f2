package commands

import (
	"github.com/spf13/cobra"

	"justisgipson/monads/internal/demo"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Print the Identity and Pair demonstration",
	Long: `Print six values, one per line: Identity(5) mapped with x*3 and chained
with x-3, then Pair(1, 2) mapped with (a*2, b+3) and chained with a swap.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func runDemo(cmd *cobra.Command, args []string) error {
	logger.Debug("running demo")
	return demo.Run(cmd.OutOrStdout())
}
