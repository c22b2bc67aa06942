package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/logger"
)

// installerFileStore is the filesystem-backed implementation of
// [InstallerFileStore]. Installer artifacts live in a flat directory that
// operators update out of band; the store rescans it on every request so a
// freshly dropped build is served without a restart.
type installerFileStore struct {
	dir    string
	logger *logger.Logger
}

// NewInstallerFileStore constructs an [InstallerFileStore] serving artifacts
// from the directory configured in cfg.
func NewInstallerFileStore(cfg config.Files, logger *logger.Logger) InstallerFileStore {
	logger.Debug().Str("dir", cfg.InstallerDir).Msg("creating installer file store")
	return &installerFileStore{
		dir:    cfg.InstallerDir,
		logger: logger,
	}
}

// WindowsInstaller scans the installer directory for a ".exe" artifact and
// opens the lexicographically last match, so versioned file names resolve to
// the newest build. Returns [ErrInstallerNotFound] when the directory is
// missing or holds no match.
func (s *installerFileStore) WindowsInstaller(ctx context.Context) (io.ReadCloser, string, error) {
	log := logger.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, "", ErrInstallerNotFound
		}
		log.Err(err).Str("func", "*installerFileStore.WindowsInstaller").Msg("error reading installer directory")
		return nil, "", fmt.Errorf("error reading installer directory: %w", err)
	}

	names := make([]string, 0, 1)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".exe") {
			names = append(names, entry.Name())
		}
	}
	if len(names) == 0 {
		return nil, "", ErrInstallerNotFound
	}
	sort.Strings(names)
	name := names[len(names)-1]

	f, err := os.Open(filepath.Join(s.dir, name))
	if err != nil {
		log.Err(err).Str("func", "*installerFileStore.WindowsInstaller").Msg("error opening installer file")
		return nil, "", fmt.Errorf("error opening installer file: %w", err)
	}

	return f, name, nil
}
