package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modscan/internal/catalog"
)

// newHistoryCommand lists scans recorded with --save.
func newHistoryCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List scans recorded in the local catalog",
		Long: `Display scans previously recorded with --save, newest first.

Examples:
  modprereqs history
  modprereqs history -n 5`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog.Open(cmd.Context(), viper.GetString("catalog.path"))
			if err != nil {
				return fmt.Errorf("failed to open catalog: %w", err)
			}

			defer func() {
				_ = cat.Close()
			}()

			entries, err := cat.RecentScans(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if len(entries) == 0 {
				cmd.Println("No recorded scans")
				return nil
			}

			for _, entry := range entries {
				cmd.Printf("%s  %s  %d module(s)\n",
					entry.ScannedAt.Format("2006-01-02 15:04"), entry.Source, entry.ModuleCount)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of scans to show (0 = all)")

	return cmd
}
