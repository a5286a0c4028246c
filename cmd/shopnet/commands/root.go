package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/DrSkyle/shopnet/pkg/config"
	"github.com/DrSkyle/shopnet/pkg/engine"
	"github.com/DrSkyle/shopnet/pkg/telemetry"
	"github.com/DrSkyle/shopnet/pkg/version"
)

// cliApp carries the state shared by every command of one invocation.
type cliApp struct {
	v        *viper.Viper
	cfgFile  string
	config   config.Config
	logger   *slog.Logger
	shutdown telemetry.ShutdownFunc
}

// Execute runs the command line and exits non-zero on any fatal error.
// Nothing is written to stdout in that case.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	app := &cliApp{v: viper.New()}

	rootCmd := &cobra.Command{
		Use:   "shopnet <file>",
		Short: "Road network hub reduction",
		Long: `shopnet - Road Network Reduction

Reads a network of shops and roads and prints how many maximally
connected hubs are tied for the highest exposure to the rest of the
network (0 when there is no contested tie).`,
		Version:       version.Current,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.teardown(cmd.Context())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Analysis.Result)
			return err
		},
	}

	// Persistent Flags
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.cfgFile, "config", "", "Config file (default $HOME/.shopnet.yaml)")
	flags.BoolP("verbose", "v", false, "Log every reduction step to stderr")
	flags.Bool("json-logs", false, "Emit logs as JSON")
	flags.Bool("strict-targets", false, "Also range-check road destinations")
	flags.String("otel-endpoint", "", "OTLP HTTP endpoint for traces")
	flags.Bool("skip-telemetry", false, "Do not install a tracer provider")
	_ = flags.MarkHidden("skip-telemetry")

	for key, flag := range map[string]string{
		"verbose":        "verbose",
		"json_logs":      "json-logs",
		"strict_targets": "strict-targets",
		"otel_endpoint":  "otel-endpoint",
		"skip_telemetry": "skip-telemetry",
	} {
		_ = app.v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		renderHelp(cmd.OutOrStdout(), cmd)
	})

	rootCmd.AddCommand(
		newInspectCmd(app),
		newExportCmd(app),
		newBatchCmd(app),
		newCompletionCmd(rootCmd),
	)

	return rootCmd
}

func (a *cliApp) setup(cmd *cobra.Command) error {
	if err := a.initConfig(); err != nil {
		return err
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.config = cfg
	a.logger = engine.NewLogger(cmd.ErrOrStderr(), cfg.JSONLogs, cfg.Verbose)
	slog.SetDefault(a.logger)

	if !cfg.SkipTelemetry {
		shutdown, err := telemetry.Init(cmd.Context(), version.AppName, version.Current, cfg.OtelEndpoint)
		if err != nil {
			a.logger.Warn("Telemetry failed", "error", err)
		} else {
			a.shutdown = shutdown
		}
	}
	return nil
}

func (a *cliApp) teardown(ctx context.Context) error {
	if a.shutdown == nil {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.shutdown(ctx); err != nil {
		a.logger.Warn("Telemetry shutdown failed", "error", err)
	}
	return nil
}

func (a *cliApp) initConfig() error {
	explicit := a.cfgFile != ""
	if explicit {
		a.v.SetConfigFile(a.cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		a.v.SetConfigFile(filepath.Join(home, ".shopnet.yaml"))
		a.v.SetConfigType("yaml")
	}

	a.v.SetEnvPrefix("SHOPNET")
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func (a *cliApp) newEngine() (*engine.Engine, error) {
	return engine.New(
		engine.WithConfig(a.config),
		engine.WithLogger(a.logger),
		engine.WithTracer(telemetry.Tracer("shopnet/engine")),
		engine.WithMeter(telemetry.Meter("shopnet/engine")),
	)
}

func (a *cliApp) run(ctx context.Context, path string) (*engine.Result, error) {
	eng, err := a.newEngine()
	if err != nil {
		return nil, err
	}
	return eng.Run(ctx, path)
}

func renderHelp(w io.Writer, cmd *cobra.Command) {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF99")).
		MarginBottom(1)

	flagStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA"))

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("SHOPNET %s", version.Current)))
	fmt.Fprintln(w, cmd.Short+".")

	fmt.Fprintln(w, titleStyle.Render("USAGE"))
	fmt.Fprintf(w, "  %s\n\n", cmd.UseLine())

	if cmd.HasAvailableSubCommands() {
		fmt.Fprintln(w, titleStyle.Render("COMMANDS"))
		for _, c := range cmd.Commands() {
			if c.IsAvailableCommand() {
				fmt.Fprintf(w, "  %-12s %s\n", c.Name(), c.Short)
			}
		}
		fmt.Fprintln(w, "")
	}

	fmt.Fprintln(w, titleStyle.Render("EXAMPLES"))
	fmt.Fprintln(w, "  shopnet network.txt                      # Print the reduction result")
	fmt.Fprintln(w, "  shopnet inspect network.txt --where core # Show core shops")
	fmt.Fprintln(w, "  shopnet export network.txt --out s3://bucket/reports")
	fmt.Fprintln(w, "")

	fmt.Fprintln(w, titleStyle.Render("FLAGS"))
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		output := fmt.Sprintf("  --%-15s %s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			output += fmt.Sprintf(" (default %s)", f.DefValue)
		}
		fmt.Fprintln(w, flagStyle.Render(output))
	})
	fmt.Fprintln(w, "")
}
