package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/DrSkyle/shopnet/pkg/engine"
)

func newBatchCmd(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file>...",
		Short: "Reduce several networks concurrently",
		Long: `Each network is analysed independently. Results are printed as
"<file>: <result>" in argument order. The first failing file aborts the batch.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := app.newEngine()
			if err != nil {
				return err
			}

			results, err := runBatch(cmd.Context(), eng, args, app.config.Workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, path := range args {
				if _, err := fmt.Fprintf(out, "%s: %d\n", path, results[i]); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().Int("workers", 0, "Networks analysed in parallel")
	_ = app.v.BindPFlag("workers", cmd.Flags().Lookup("workers"))

	return cmd
}

// runBatch reduces every path with at most workers in flight. Each network
// gets its own store, so the engine is the only shared state.
func runBatch(ctx context.Context, eng *engine.Engine, paths []string, workers int) ([]int, error) {
	results := make([]int, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := eng.Run(ctx, path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res.Analysis.Result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
