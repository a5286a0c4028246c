package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DrSkyle/shopnet/pkg/engine/report"
	"github.com/DrSkyle/shopnet/pkg/storage"
)

func newExportCmd(app *cliApp) *cobra.Command {
	var skipExisting bool

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the reduction report to a directory or bucket",
		Long: `Analyses a network and stores the full report.

The target is a local directory or an s3://bucket/prefix URL.`,
		Example: `  shopnet export network.txt --format yaml
  shopnet export network.txt --out s3://reports/shopnet`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			exp := app.config.Export

			res, err := app.run(ctx, args[0])
			if err != nil {
				return err
			}

			blob, prefix, err := storage.Open(ctx, exp.Out)
			if err != nil {
				return err
			}

			rep := report.Build(res)
			if skipExisting {
				key, found, err := report.Exists(ctx, blob, prefix, exp.Format, rep)
				if err != nil {
					return fmt.Errorf("export failed: %w", err)
				}
				if found {
					app.logger.Info("Report already exported", "key", key)
					_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
					return err
				}
			}

			key, err := report.Save(ctx, blob, prefix, exp.Format, rep)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			app.logger.Info("Report exported", "key", key, "format", exp.Format)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), key)
			return err
		},
	}

	cmd.Flags().String("format", "", "Report format: json, yaml or csv")
	cmd.Flags().String("out", "", "Target directory or s3:// URL")
	cmd.Flags().BoolVar(&skipExisting, "skip-existing", false, "Leave an already exported report untouched")
	_ = app.v.BindPFlag("export.format", cmd.Flags().Lookup("format"))
	_ = app.v.BindPFlag("export.out", cmd.Flags().Lookup("out"))

	return cmd
}
