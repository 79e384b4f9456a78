package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonwraymond/toolintrospect/cli"
)

// Set via ldflags at build time.
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "introspect",
	Short: "GraphQL introspection tool configuration",
	Long:  "Publish the JSON Schema of the introspection tool configuration and check configuration files.",
	// SilenceUsage prevents printing usage on every error
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all logging except errors")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("introspect version %s\n", version))

	rootCmd.AddCommand(cli.NewSchemaCmd())
	rootCmd.AddCommand(cli.NewCheckCmd())
}
