// Package commands implements the CLI commands for toysetup.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/toysetup/internal/app"
)

// App is the application surface the commands drive.
type App interface {
	Provision(ctx context.Context, opts app.ProvisionOptions) error
	Check(ctx context.Context, opts app.Options) error
}

// CLI represents the command line interface for toysetup.
type CLI struct {
	app     App
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a App) *CLI {
	rootCmd := &cobra.Command{
		Use:           "toysetup",
		Short:         "Provision the native toolchain needed to build the ToyLang compiler",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "toysetup.yaml", "Setup file, relative to the project root")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("root", ".", "ToyLang checkout to provision")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newProvisionCmd())
	rootCmd.AddCommand(c.newCheckCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects the command output. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

func options(cmd *cobra.Command) app.Options {
	root, _ := cmd.Flags().GetString("root")
	configPath, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")
	return app.Options{
		Root:       root,
		ConfigPath: configPath,
		Verbose:    verbose,
	}
}
