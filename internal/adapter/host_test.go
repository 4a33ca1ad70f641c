package adapter

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/welloca/railsui/internal/config"
	"github.com/welloca/railsui/internal/logger"
	"github.com/welloca/railsui/models"
)

// recordingRunner: CommandRunner that records every invocation.
type recordingRunner struct {
	calls [][]string
	err   error
}

func (r *recordingRunner) Run(_ context.Context, name string, args ...string) error {
	r.calls = append(r.calls, append([]string{name}, args...))
	return r.err
}

func newTestHost(t *testing.T) (HostAdapter, *recordingRunner, string) {
	t.Helper()
	root := t.TempDir()
	runner := &recordingRunner{}
	host := NewHostAdapter(
		config.Project{Root: root},
		config.Host{RailsBin: "bin/rails", BundleBin: "bundle"},
		runner,
		logger.Nop(),
	)
	return host, runner, root
}

func touch(t *testing.T, root, rel string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, nil, 0o644))
}

// ── FrameworkInstalled ───────────────────────────────────────────────────────

func TestFrameworkInstalled_NoMarkers(t *testing.T) {
	host, _, _ := newTestHost(t)

	for _, fw := range models.Frameworks {
		installed, err := host.FrameworkInstalled(context.Background(), fw)
		require.NoError(t, err)
		assert.False(t, installed, fw.String())
	}
}

func TestFrameworkInstalled_Markers(t *testing.T) {
	tests := []struct {
		fw     models.Framework
		marker string
	}{
		{models.FrameworkBootstrap, "app/assets/stylesheets/application.bootstrap.scss"},
		{models.FrameworkTailwind, "config/tailwind.config.js"},
		{models.FrameworkTailwind, "app/assets/stylesheets/application.tailwind.css"},
		{models.FrameworkTailwind, "app/assets/tailwind/application.css"},
		{models.FrameworkBulma, "app/assets/stylesheets/application.bulma.scss"},
	}

	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			host, runner, root := newTestHost(t)
			touch(t, root, tt.marker)

			installed, err := host.FrameworkInstalled(context.Background(), tt.fw)

			require.NoError(t, err)
			assert.True(t, installed)
			assert.Empty(t, runner.calls)
		})
	}
}

func TestFrameworkInstalled_OtherFrameworkMarkerIgnored(t *testing.T) {
	host, _, root := newTestHost(t)
	touch(t, root, "app/assets/stylesheets/application.bootstrap.scss")

	installed, err := host.FrameworkInstalled(context.Background(), models.FrameworkBulma)

	require.NoError(t, err)
	assert.False(t, installed)
}

func TestFrameworkInstalled_None(t *testing.T) {
	host, _, _ := newTestHost(t)

	_, err := host.FrameworkInstalled(context.Background(), models.FrameworkNone)

	assert.ErrorIs(t, err, ErrUnsupportedFramework)
}

// ── commands ─────────────────────────────────────────────────────────────────

func TestHostAdapter_Commands(t *testing.T) {
	tests := []struct {
		name string
		call func(HostAdapter) error
		want []string
	}{
		{
			name: "run task",
			call: func(h HostAdapter) error {
				return h.RunTask(context.Background(), "railsui:framework:install:tailwind")
			},
			want: []string{"bin/rails", "railsui:framework:install:tailwind"},
		},
		{
			name: "add dependency",
			call: func(h HostAdapter) error {
				return h.AddDependency(context.Background(), "sass-rails")
			},
			want: []string{"bundle", "add", "sass-rails"},
		},
		{
			name: "static page without theme",
			call: func(h HostAdapter) error {
				return h.GenerateStaticPage(context.Background(), models.PageAbout, models.FrameworkBootstrap, "")
			},
			want: []string{"bin/rails", "generate", "railsui:static", "about", "-c", "bootstrap"},
		},
		{
			name: "static page without framework",
			call: func(h HostAdapter) error {
				return h.GenerateStaticPage(context.Background(), models.PageAbout, models.FrameworkNone, "")
			},
			want: []string{"bin/rails", "generate", "railsui:static", "about"},
		},
		{
			name: "static page with theme",
			call: func(h HostAdapter) error {
				return h.GenerateStaticPage(context.Background(), models.PagePricing, models.FrameworkBulma, "hound")
			},
			want: []string{"bin/rails", "generate", "railsui:static", "pricing", "-c", "bulma", "-t", "hound"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, runner, _ := newTestHost(t)

			require.NoError(t, tt.call(host))

			require.Len(t, runner.calls, 1)
			assert.Equal(t, tt.want, runner.calls[0])
		})
	}
}

func TestHostAdapter_RunnerErrorReturnedUnchanged(t *testing.T) {
	host, runner, _ := newTestHost(t)
	boom := errors.New("boom")
	runner.err = boom

	err := host.RunTask(context.Background(), "railsui:framework:install:bootstrap")

	assert.Same(t, boom, err)
}

func TestHostAdapter_GenerateBlogRunsNothing(t *testing.T) {
	host, runner, _ := newTestHost(t)

	err := host.GenerateBlog(context.Background(), models.FrameworkTailwind, "hound")

	require.NoError(t, err)
	assert.Empty(t, runner.calls)
}

func TestHostAdapter_GenerateBlogLogsWithRunScopedLogger(t *testing.T) {
	host, _, _ := newTestHost(t)
	var buf bytes.Buffer
	run := &logger.Logger{Logger: zerolog.New(&buf).With().Str(logger.FieldRunID, "run-7").Logger()}

	err := host.GenerateBlog(run.WithContext(context.Background()), models.FrameworkBulma, "")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"run_id":"run-7"`)
}
