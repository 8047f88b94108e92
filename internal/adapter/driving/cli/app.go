package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/diillson/pos-sales-dashboard-go/internal/adapter/driving/scheduler"
	"github.com/diillson/pos-sales-dashboard-go/internal/adapter/driving/web"
	"github.com/diillson/pos-sales-dashboard-go/internal/application/usecase"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/entity"
	"github.com/diillson/pos-sales-dashboard-go/internal/domain/repository"
	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
	"github.com/diillson/pos-sales-dashboard-go/pkg/console"
	"github.com/diillson/pos-sales-dashboard-go/pkg/version"
)

// Services são os casos de uso montados a partir da configuração carregada.
type Services struct {
	Dashboard *usecase.DashboardUseCase
	Report    *usecase.DailyReportUseCase
	// Close libera conexões abertas pelos repositórios (ex.: Redis).
	Close func() error
}

// Builder wires the driven adapters for a loaded configuration.
type Builder func(cfg *types.Config, console types.ConsoleInterface) (*Services, error)

// CLIApp represents the command-line interface application.
type CLIApp struct {
	rootCmd    *cobra.Command
	configRepo repository.ConfigRepository
	build      Builder
	version    string
}

// NewCLIApp cria uma nova aplicação CLI.
func NewCLIApp(versionStr string, configRepo repository.ConfigRepository, build Builder) *CLIApp {
	app := &CLIApp{
		configRepo: configRepo,
		build:      build,
		version:    versionStr,
	}

	// Obtem a versão formatada
	formattedVersion := version.FormatVersion()

	rootCmd := &cobra.Command{
		Use:           "pos-report",
		Short:         "POS sales dashboard API and daily sales report",
		Version:       formattedVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Personaliza a template para incluir mais informações de versão
	rootCmd.SetVersionTemplate(`{{printf "POS Sales Dashboard version: %s\n" .Version}}`)

	rootCmd.PersistentFlags().StringP("config-file", "C", "", "Path to a TOML, YAML, or JSON configuration file")
	rootCmd.PersistentFlags().StringP("env-file", "e", ".env", "Path to a .env file with environment overrides")
	rootCmd.PersistentFlags().String("log-format", console.FormatText, "Log output: text or json")

	rootCmd.AddCommand(
		app.serveCommand(),
		app.scheduleCommand(),
		app.sendReportCommand(),
		app.testEmailCommand(),
		app.summaryCommand(),
		app.exportCommand(),
	)

	app.rootCmd = rootCmd
	return app
}

// Execute runs the CLI application.
func (app *CLIApp) Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return app.rootCmd.ExecuteContext(ctx)
}

func (app *CLIApp) serveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard JSON API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, false, func(ctx context.Context, env *runEnv) error {
				if env.args.Addr != "" {
					env.cfg.Server.Addr = env.args.Addr
				}
				return web.NewServer(env.services.Dashboard, env.console, env.cfg.Server).Run(ctx)
			})
		},
	}
	cmd.Flags().String("addr", "", "Listen address (default from HTTP_ADDR or :8080)")
	return cmd
}

func (app *CLIApp) scheduleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the daily sales report on its cron schedule",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, true, func(ctx context.Context, env *runEnv) error {
				sched, err := scheduler.NewScheduler(env.services.Report, env.console, env.cfg)
				if err != nil {
					return err
				}
				// Em desenvolvimento o relatório também roda na inicialização.
				return sched.Run(ctx, env.args.RunNow || env.cfg.IsDevelopment())
			})
		},
	}
	cmd.Flags().Bool("run-now", false, "Also run the report once at startup")
	return cmd
}

func (app *CLIApp) sendReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "send-report",
		Short: "Send the daily sales report once (yesterday by default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, true, func(ctx context.Context, env *runEnv) error {
				if env.args.Date == "" {
					_, err := env.services.Report.RunNow(ctx)
					return err
				}
				day, err := entity.ParseDate(env.args.Date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", env.args.Date, err)
				}
				_, err = env.services.Report.RunForDate(ctx, day)
				return err
			})
		},
	}
	cmd.Flags().String("date", "", "Report day as YYYY-MM-DD")
	return cmd
}

func (app *CLIApp) testEmailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "test-email",
		Short: "Send a test email to the first recipient",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, true, func(ctx context.Context, env *runEnv) error {
				_, err := env.services.Report.SendTest(ctx)
				return err
			})
		},
	}
}

func (app *CLIApp) summaryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show sales totals and the daily chart in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, false, func(ctx context.Context, env *runEnv) error {
				app.welcome(ctx, env)
				return env.services.Dashboard.RunSummary(ctx, env.args)
			})
		},
	}
	addRangeFlags(cmd)
	return cmd
}

func (app *CLIApp) exportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write summary and report exports to a directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.run(cmd, false, func(ctx context.Context, env *runEnv) error {
				app.welcome(ctx, env)
				return env.services.Dashboard.RunExport(ctx, env.args)
			})
		},
	}
	addRangeFlags(cmd)
	cmd.Flags().StringSliceP("kind", "k", nil, "Exports to write: summary, report (default both)")
	cmd.Flags().StringSliceP("format", "f", nil, "Formats: csv, pdf, xlsx, json (default csv,pdf)")
	cmd.Flags().StringP("dir", "d", "", "Directory to save the files (default: current directory)")
	return cmd
}

func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("preset", "p", "", "Date preset: today, yesterday, last-7-days, last-30-days, this-week, this-month")
	cmd.Flags().String("from", "", "Start date (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "End date (YYYY-MM-DD)")
}

// runEnv é o que cada comando recebe depois de carregar a configuração.
type runEnv struct {
	args     *types.CLIArgs
	cfg      *types.Config
	console  types.ConsoleInterface
	services *Services
}

// run carrega e valida a configuração, monta os serviços e executa fn.
func (app *CLIApp) run(cmd *cobra.Command, requireMail bool, fn func(context.Context, *runEnv) error) error {
	args, err := parseArgs(cmd)
	if err != nil {
		return err
	}

	out, err := console.New(args.LogFormat)
	if err != nil {
		return err
	}

	cfg, err := app.configRepo.Load(args.ConfigFile, args.EnvFile)
	if err != nil {
		return err
	}
	if err := app.configRepo.Validate(cfg, requireMail); err != nil {
		return err
	}

	services, err := app.build(cfg, out)
	if err != nil {
		return err
	}
	defer func() {
		if services.Close == nil {
			return
		}
		if err := services.Close(); err != nil {
			out.LogWarning("Failed to release resources: %s", err)
		}
	}()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	err = fn(ctx, &runEnv{args: args, cfg: cfg, console: out, services: services})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// welcome exibe o banner nos comandos interativos e verifica novas versões.
func (app *CLIApp) welcome(ctx context.Context, env *runEnv) {
	if env.args.LogFormat == console.FormatJSON {
		return
	}
	displayWelcomeBanner(env.cfg.BrandName)
	go version.CheckLatestVersion(ctx, app.version)
}

// parseArgs parses command-line arguments into a CLIArgs struct.
// Flags a subcommand does not define are left at their zero value.
func parseArgs(cmd *cobra.Command) (*types.CLIArgs, error) {
	flags := cmd.Flags()
	configFile, _ := flags.GetString("config-file")
	envFile, _ := flags.GetString("env-file")
	logFormat, _ := flags.GetString("log-format")
	addr, _ := flags.GetString("addr")
	runNow, _ := flags.GetBool("run-now")
	date, _ := flags.GetString("date")
	preset, _ := flags.GetString("preset")
	from, _ := flags.GetString("from")
	to, _ := flags.GetString("to")
	kinds, _ := flags.GetStringSlice("kind")
	formats, _ := flags.GetStringSlice("format")
	dir, _ := flags.GetString("dir")

	// Converte para caminho absoluto
	if dir != "" {
		absDir, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		dir = absDir
	}

	return &types.CLIArgs{
		ConfigFile: configFile,
		EnvFile:    envFile,
		LogFormat:  logFormat,
		Addr:       addr,
		RunNow:     runNow,
		Date:       date,
		Preset:     preset,
		From:       from,
		To:         to,
		Kinds:      kinds,
		Formats:    formats,
		Dir:        dir,
	}, nil
}
