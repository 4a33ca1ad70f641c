package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/welloca/railsui/internal/config"
	"github.com/welloca/railsui/internal/logger"
	"github.com/welloca/railsui/models"
)

// options is shared by the root command and its subcommands. app is set by
// the root's PersistentPreRunE before any subcommand runs.
type options struct {
	info   models.AppBuildInfo
	stdout io.Writer
	stderr io.Writer

	app *App
}

// NewRootCommand builds the railsui command tree. Command output goes to
// stdout, logs and host command errors to stderr (the process streams when
// nil).
func NewRootCommand(info models.AppBuildInfo, stdout, stderr io.Writer) *cobra.Command {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	opts := &options{info: info, stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:           "railsui",
		Short:         "Manage the Rails UI settings of a Rails project",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.initApp(cmd)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		newShowCommand(opts),
		newSetCommand(opts),
		newInstallCommand(opts),
		newTemplateCommand(opts),
		newWatchCommand(opts),
		newVersionCommand(opts),
	)

	return cmd
}

func (o *options) initApp(cmd *cobra.Command) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}

	log := logger.NewConsoleLogger("railsui", cfg.Log.Level, o.stderr)
	log.Debug().
		Str(logger.FieldDir, cfg.Project.Root).
		Bool(logger.FieldDryRun, cfg.Host.DryRun).
		Msg("configuration loaded")

	app, err := NewApp(cmd.Context(), cfg, o.stdout, o.stderr, log)
	if err != nil {
		return err
	}
	o.app = app
	return nil
}
