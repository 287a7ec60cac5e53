package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modscan/internal/format"
)

// NewPrereqsCommand builds the modprereqs command: scan the given
// files and print the modules they require in the selected format.
func NewPrereqsCommand() *cobra.Command {
	var (
		excludeCore  bool
		listMode     bool
		nullMode     bool
		jsonMode     bool
		manifestMode bool
		save         bool
		providers    []string
	)

	cmd := &cobra.Command{
		Use:   "modprereqs [files...]",
		Short: "List the modules your source files depend on",
		Long: `modprereqs statically scans Go source files and go.mod manifests and
prints the modules they declare as dependencies. Nothing is executed;
detection delegates to a scanner provider chosen at startup.

Without an output flag every file gets a verbose report annotated with
core release information. The list flags print one deduplicated,
sorted name set for the whole batch; -c emits a requires-style
dependency manifest in file order, duplicates included.

Examples:
  modprereqs main.go
  modprereqs -l $(git ls-files '*.go')
  modprereqs -e -c go.mod > requires.txt
  modprereqs -0 go.mod | xargs -0 -n1 echo`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}

			return run(cmd, args, options{
				excludeCore: excludeCore,
				mode:        format.ResolveMode(listMode, nullMode, jsonMode, manifestMode),
				providers:   providers,
				save:        save,
			})
		},
	}

	cmd.Flags().BoolVarP(&excludeCore, "exclude-core", "e", viper.GetBool("exclude_core"),
		"Exclude core/standard-library modules from all output")
	cmd.Flags().BoolVarP(&listMode, "list", "l", false,
		"Print one module name per line, sorted and deduplicated")
	cmd.Flags().BoolVarP(&nullMode, "null", "0", false,
		"Like --list but null-separated")
	cmd.Flags().BoolVarP(&jsonMode, "json", "j", false,
		"Print the module names as a JSON array")
	cmd.Flags().BoolVarP(&manifestMode, "manifest", "c", false,
		"Print a requires-style dependency manifest in file order")
	cmd.Flags().BoolVar(&save, "save", false,
		"Record each scanned file in the local catalog")
	cmd.Flags().StringSliceVar(&providers, "providers", viper.GetStringSlice("providers"),
		"Scanner provider preference order")

	cmd.AddCommand(newHistoryCommand())

	return cmd
}
