package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/toysetup/internal/app"
)

func (c *CLI) newProvisionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Install and configure the build toolchain",
		Long: "Installs Clang, LLD, the LLVM headers, CMake, Ninja, rustup with the nightly " +
			"release and the support library, then persists the variables the build needs. " +
			"Every step is skipped when its work is already done, so the command can be re-run.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			yes, _ := cmd.Flags().GetBool("yes")
			return c.app.Provision(cmd.Context(), app.ProvisionOptions{
				Options: options(cmd),
				Yes:     yes,
			})
		},
	}
	cmd.Flags().BoolP("yes", "y", false, "Do not ask for consent")
	return cmd
}
