package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"rrcapi/cmd/initdb"
	"rrcapi/cmd/serve"
)

func main() {
	// Running without a subcommand serves the API with default flags.
	rootCmd := &cobra.Command{
		Use:          "rrcapi",
		Short:        "Red Roof Company integration backend",
		Args:         cobra.NoArgs,
		RunE:         serve.Run,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(serve.NewServeCommand())
	rootCmd.AddCommand(initdb.NewInitDBCommand())

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
