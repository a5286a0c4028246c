package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/DrSkyle/shopnet/pkg/engine/policy"
	"github.com/DrSkyle/shopnet/pkg/engine/report"
	"github.com/DrSkyle/shopnet/pkg/graph"
	"github.com/DrSkyle/shopnet/pkg/tui"
)

func newInspectCmd(app *cliApp) *cobra.Command {
	var (
		where       string
		dump        bool
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show the hubs behind a reduction",
		Long: `Prints the reduction together with every shop's degree, impact and role.

Rows can be narrowed with a CEL expression over id, degree, impact,
core and winner, for example:

  shopnet inspect network.txt --where "core && impact > 10"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := policy.NewShopFilter(where)
			if err != nil {
				return err
			}

			res, err := app.run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if dump {
				return graph.Dump(cmd.OutOrStdout(), res.Store)
			}

			rep := report.Build(res)
			rows, err := rep.Filter(filter)
			if err != nil {
				return err
			}

			if interactive {
				p := tea.NewProgram(tui.NewModel(res, rep, rows),
					tea.WithAltScreen(),
					tea.WithInput(cmd.InOrStdin()),
					tea.WithOutput(cmd.OutOrStdout()),
				)
				if _, err := p.Run(); err != nil {
					return fmt.Errorf("dashboard failed: %w", err)
				}
				return nil
			}

			return report.RenderTable(cmd.OutOrStdout(), rep, rows)
		},
	}

	cmd.Flags().StringVar(&where, "where", "", "CEL filter over id, degree, impact, core, winner")
	cmd.Flags().BoolVar(&dump, "dump", false, "Print the adjacency listing instead of the table")
	cmd.Flags().BoolVar(&interactive, "tui", false, "Browse the shops interactively")
	cmd.MarkFlagsMutuallyExclusive("dump", "tui")

	return cmd
}
