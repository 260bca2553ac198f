// Package cmd holds the catalogapi command line: the HTTP server plus the
// maintenance commands that share its configuration.
package cmd

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/starwars-blog/catalogapi/config"
	"github.com/starwars-blog/catalogapi/database"
	"github.com/starwars-blog/catalogapi/logging"
)

// App carries what every command needs once the root command has run its setup.
type App struct {
	cfg    config.Config
	logger zerolog.Logger
	out    io.Writer
	errOut io.Writer
}

// New returns an App writing command output to out and logs to errOut.
func New(out, errOut io.Writer) *App {
	return &App{out: out, errOut: errOut, logger: zerolog.Nop()}
}

// Execute builds the command tree and runs it with args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	return root.ExecuteContext(ctx)
}

func (a *App) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "catalogapi",
		Short: "Star Wars catalog API",
		Long: `catalogapi serves users, people, planets and per-user favorites over HTTP.

Run without a subcommand to start the server. Configuration comes from the
environment, optionally seeded from a .env file in the working directory.`,
		PersistentPreRunE: a.setup,
		RunE:              a.runServe,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	root.AddCommand(a.newServeCommand())
	root.AddCommand(a.newMigrateCommand())
	root.AddCommand(a.newUserCommand())
	return root
}

// setup loads .env and the environment, then builds the logger.
func (a *App) setup(cmd *cobra.Command, _ []string) error {
	envErr := godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cfg.LogLevel, cfg.LogFormat, a.errOut)

	switch {
	case envErr == nil:
		a.logger.Debug().Msg("loaded .env")
	case errors.Is(envErr, fs.ErrNotExist):
		a.logger.Debug().Msg("no .env file found, using environment only")
	default:
		a.logger.Info().Err(envErr).Msg("could not load .env")
	}
	return nil
}

// openDB opens the configured store and brings the schema up to date.
func (a *App) openDB() (*gorm.DB, error) {
	db, err := database.InitGormDB(a.cfg, a.logger)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrateModels(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return db, nil
}

// ExitOnError prints err and exits with status 1.
func ExitOnError(err error) {
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
