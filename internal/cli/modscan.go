package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modscan/internal/format"
)

// NewModscanCommand builds the modscan command, the per-file verbose
// lister. It always renders the file report, one per scanned file.
func NewModscanCommand() *cobra.Command {
	var excludeCore bool

	cmd := &cobra.Command{
		Use:   "modscan [files...]",
		Short: "Show per-file module usage with core release annotations",
		Long: `modscan statically scans each given file and prints the modules it
imports, annotating standard-library packages with the Go release they
first shipped in, followed by a per-file core/external tally.

Examples:
  modscan main.go
  modscan -e internal/server/*.go`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return run(cmd, args, options{
				excludeCore: excludeCore,
				mode:        format.ModeVerbose,
				providers:   viper.GetStringSlice("providers"),
			})
		},
	}

	cmd.Flags().BoolVarP(&excludeCore, "exclude-core", "e", viper.GetBool("exclude_core"),
		"Exclude core/standard-library modules")

	return cmd
}
