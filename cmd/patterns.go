package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ryndalv/skein/cmd/patterns"
)

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(newPatternsCmd())
}

func newPatternsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Commands for inspecting the patterns loaded by a skein deployment",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(cmd.UsageString())
		},
	}

	cmd.PersistentFlags().StringP("endpoint", "e", "", `The base URL of skein's deployment.
Note: The endpoint URL should point to a single skein deployment.
If the endpoint URL points to a Load Balancer, these commands will effective test the Load Balancer.`)
	cmd.PersistentFlags().StringP("output", "o", "text", `The format for the result output.
Can be "json", "text", or "yaml".`)

	cmd.AddCommand(patterns.NewListCommand())
	cmd.AddCommand(patterns.NewGetCommand())

	return cmd
}
