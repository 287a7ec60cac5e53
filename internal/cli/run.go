// Package cli builds the cobra commands behind the modprereqs and
// modscan binaries. Both share one scan pipeline: select a provider,
// collect records file by file, then render.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"modscan/internal/catalog"
	"modscan/internal/collector"
	"modscan/internal/corelist"
	"modscan/internal/format"
	"modscan/internal/scan"
)

// options carries the resolved settings for one run.
type options struct {
	excludeCore bool
	mode        format.Mode
	providers   []string
	save        bool
}

// newClassifier resolves the core classification capability once per
// run. Returning nil marks the capability unavailable, which the
// verbose tally semantics depend on.
func newClassifier() scan.CoreClassifier {
	if viper.GetBool("corelist.disabled") {
		return nil
	}

	classifier, err := corelist.New()
	if err != nil {
		slog.Warn("core release table unavailable", "error", err)
		return nil
	}

	return classifier
}

func run(cmd *cobra.Command, args []string, opts options) error {
	provider, err := scan.Select(scan.DefaultFactories(), opts.providers)
	if err != nil {
		return fmt.Errorf("%w; install the Go toolchain for the golist provider, or allow gosyntax/linescan in the provider preference", err)
	}

	slog.Debug("selected scanner provider", "name", provider.Name())

	classifier := newClassifier()
	col := collector.New(provider, classifier, opts.excludeCore)
	formatter := format.New(classifier)

	var cat *catalog.Catalog

	if opts.save {
		cat, err = catalog.Open(cmd.Context(), viper.GetString("catalog.path"))
		if err != nil {
			return err
		}

		defer func() {
			_ = cat.Close()
		}()
	}

	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	for _, path := range args {
		contributed, err := col.ScanFile(cmd.Context(), path)
		if err != nil {
			// Unreadable or unscannable files are reported and
			// skipped; the rest of the batch still runs.
			_, _ = fmt.Fprintf(errOut, "skipping %s: %v\n", path, err)
			continue
		}

		if cat != nil {
			if err := cat.RecordScan(cmd.Context(), path, contributed); err != nil {
				_, _ = fmt.Fprintf(errOut, "failed to record %s: %v\n", path, err)
			}
		}

		if opts.mode == format.ModeVerbose {
			if err := formatter.WriteFileReport(out, path, contributed); err != nil {
				return err
			}
		}
	}

	switch opts.mode {
	case format.ModeList:
		return formatter.WriteList(out, col.Records())
	case format.ModeNull:
		return formatter.WriteNull(out, col.Records())
	case format.ModeJSON:
		return formatter.WriteJSON(out, col.Records())
	case format.ModeManifest:
		return formatter.WriteManifest(out, col.Records())
	}

	return nil
}
