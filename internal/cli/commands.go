package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/welloca/railsui/internal/workers"
	"github.com/welloca/railsui/models"
)

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderSettings(opts.stdout, opts.app.context.Current(), opts.app.store.Path())
		},
	}
}

func newSetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "set key=value...",
		Short: "Change settings, save them and run the install steps",
		Long: `Change one or more settings, save them to the settings file and run
the install steps: the css framework is installed unless already present,
the blog is scaffolded when requested, and the about and pricing pages are
generated unless marked as already present.`,
		Example: `  railsui set css_framework=tailwind theme=hound
  railsui set about=true pricing=false`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignments, err := parseAssignments(args)
			if err != nil {
				return err
			}

			next := opts.app.context.Current().Clone()
			if err := applyAssignments(next, assignments); err != nil {
				return err
			}

			if err := opts.app.services.InstallerService.Save(cmd.Context(), next); err != nil {
				return err
			}

			fmt.Fprintf(opts.stdout, "Settings saved to %s\n", opts.app.store.Path())
			return nil
		},
	}
}

func newInstallCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the configured css framework unless already present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.app.services.InstallerService.InstallFramework(cmd.Context())
		},
	}
}

func newTemplateCommand(opts *options) *cobra.Command {
	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Manage bundled templates",
	}

	templateCmd.AddCommand(&cobra.Command{
		Use:   "copy file...",
		Short: "Copy bundled templates into the project, never overwriting",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, file := range args {
				copied, err := opts.app.services.InstallerService.CopyTemplate(cmd.Context(), file)
				if err != nil {
					return err
				}
				if copied {
					fmt.Fprintf(opts.stdout, "copied  %s\n", file)
				} else {
					fmt.Fprintf(opts.stdout, "exists  %s\n", file)
				}
			}
			return nil
		},
	})

	return templateCmd
}

func newWatchCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Reload the settings whenever the settings file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			opts.app.watcher.OnReload(func(*models.Settings) {
				_ = renderSettings(opts.stdout, opts.app.context.Current(), opts.app.store.Path())
			})

			return workers.NewWorkers(opts.app.watcher).Run(ctx)
		},
	}
}

func newVersionCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		// needs no project
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(opts.stdout, opts.info.String())
		},
	}
}
