package cmd

import (
	"fmt"

	"logmerge/pkg/version"

	"github.com/spf13/cobra"
)

var versionShort bool

// versionCmd prints build information. With --short only the version number is printed.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display the version of logmerge",
	Long:  `Display the version, commit, build time and platform of the logmerge binary.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v := version.Get()
		if versionShort {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), v.Version)
			return err
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), v.String())
		return err
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionShort, "short", "s", false, "Print the version number only")
	RootCmd.AddCommand(versionCmd)
}
