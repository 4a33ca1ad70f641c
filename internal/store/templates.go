package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/welloca/railsui/internal/logger"
)

// CopyTemplateIfAbsent copies <templates>/<filename> to <root>/<filename>.
// An existing destination is never touched, including when it appears
// between the existence check and the copy: the destination is created
// exclusively.
func (s *fileSettingsStore) CopyTemplateIfAbsent(_ context.Context, filename string) (bool, error) {
	dst, err := confineRelPath(s.root, filename)
	if err != nil {
		return false, err
	}
	src, err := confineRelPath(s.templatesDir, filename)
	if err != nil {
		return false, err
	}

	log := s.logger.With().Str(logger.FieldPath, dst).Logger()

	if _, err := os.Lstat(dst); err == nil {
		log.Debug().Msg("destination exists, template not copied")
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("error checking %s: %w", dst, err)
	}

	// #nosec G304 -- src is confined to the templates directory
	in, err := os.Open(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("%w: %s", ErrTemplateNotFound, filename)
		}
		return false, fmt.Errorf("error opening template: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return false, fmt.Errorf("error creating destination directory: %w", err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			log.Debug().Msg("destination appeared, template not copied")
			return false, nil
		}
		return false, fmt.Errorf("error creating %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return false, fmt.Errorf("error copying template: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return false, fmt.Errorf("error copying template: %w", err)
	}

	log.Info().Msg("template copied")
	return true, nil
}

// confineRelPath joins root and rel, refusing absolute names and names that
// climb out of root.
func confineRelPath(root, rel string) (string, error) {
	if rel == "" || strings.Contains(rel, "\\") {
		return "", fmt.Errorf("%w: %q", ErrPathOutsideProject, rel)
	}

	clean := filepath.Clean(rel)
	if filepath.IsAbs(clean) || clean == "." || clean == ".." ||
		strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %q", ErrPathOutsideProject, rel)
	}

	return filepath.Join(root, clean), nil
}
