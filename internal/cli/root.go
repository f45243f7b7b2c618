package cli

import (
	"fmt"

	"github.com/r9s-ai/onr-provider-gen/internal/version"
	"github.com/spf13/cobra"
)

// Run executes the CLI with the given arguments (excluding the binary name).
func Run(args []string) error {
	root := newRootCmd()
	root.SetArgs(args)
	return root.Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "onr-providergen",
		Short:         "Render and check ONR provider config DSL files",
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(
		newRenderCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}
