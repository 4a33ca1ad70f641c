// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/welloca/railsui/internal/config"
	"github.com/welloca/railsui/internal/logger"
)

type execRunner struct {
	dir     string
	timeout time.Duration
	dryRun  bool

	stdout io.Writer
	stderr io.Writer

	logger *logger.Logger
}

// NewCommandRunner constructs a [CommandRunner] that executes commands in
// dir. Command output is streamed to stdout and stderr (the process streams
// when nil). hostCfg.CommandTimeout bounds every command when positive;
// hostCfg.DryRun turns every call into a log line.
func NewCommandRunner(dir string, hostCfg config.Host, stdout, stderr io.Writer, log *logger.Logger) CommandRunner {
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}

	return &execRunner{
		dir:     dir,
		timeout: hostCfg.CommandTimeout,
		dryRun:  hostCfg.DryRun,
		stdout:  stdout,
		stderr:  stderr,
		logger:  log.WithComponent("runner"),
	}
}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) error {
	// the caller's run-scoped logger carries run_id and step
	log := logger.FromContextOr(ctx, r.logger).With().
		Str(logger.FieldCommand, name).
		Strs(logger.FieldArgs, args).
		Str(logger.FieldDir, r.dir).
		Logger()

	if r.dryRun {
		log.Info().Bool(logger.FieldDryRun, true).Msg("skipping host command")
		return nil
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	// #nosec G204 -- name and args are built from configuration and known task names
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.dir
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	start := time.Now()
	log.Info().Msg("running host command")
	err := cmd.Run()
	log = log.With().Dur(logger.FieldDuration, time.Since(start)).Logger()

	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Error().Err(ctxErr).Msg("host command interrupted")
			return fmt.Errorf("%w: %s: %w", ErrCommandFailed, commandLine(name, args), ctxErr)
		}
		log.Error().Err(err).Msg("host command failed")
		return fmt.Errorf("%w: %s: %w", ErrCommandFailed, commandLine(name, args), err)
	}

	log.Debug().Msg("host command finished")
	return nil
}

func commandLine(name string, args []string) string {
	return strings.TrimSpace(name + " " + strings.Join(args, " "))
}
