package store

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-member-portal/internal/config"
	"github.com/MKhiriev/go-member-portal/internal/logger"
)

func TestWindowsInstaller_EmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	s := NewInstallerFileStore(config.Files{InstallerDir: dir}, logger.Nop())

	_, _, err := s.WindowsInstaller(context.Background())
	if !errors.Is(err, ErrInstallerNotFound) {
		t.Fatalf("expected ErrInstallerNotFound, got %v", err)
	}
}

func TestWindowsInstaller_MissingDirectory(t *testing.T) {
	s := NewInstallerFileStore(config.Files{InstallerDir: "/does/not/exist"}, logger.Nop())

	_, _, err := s.WindowsInstaller(context.Background())
	if !errors.Is(err, ErrInstallerNotFound) {
		t.Fatalf("expected ErrInstallerNotFound, got %v", err)
	}
}

func TestWindowsInstaller_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"readme.txt", "setup.dmg", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}
	}

	s := NewInstallerFileStore(config.Files{InstallerDir: dir}, logger.Nop())

	_, _, err := s.WindowsInstaller(context.Background())
	if !errors.Is(err, ErrInstallerNotFound) {
		t.Fatalf("expected ErrInstallerNotFound, got %v", err)
	}
}

func TestWindowsInstaller_ServesNewestBuild(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"setup-1.0.0.exe": "old build",
		"setup-1.2.0.exe": "new build",
		"readme.txt":      "docs",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}
	}

	s := NewInstallerFileStore(config.Files{InstallerDir: dir}, logger.Nop())

	rc, name, err := s.WindowsInstaller(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	if name != "setup-1.2.0.exe" {
		t.Errorf("expected setup-1.2.0.exe, got %s", name)
	}

	content, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("failed to read installer stream: %v", err)
	}
	if string(content) != "new build" {
		t.Errorf("expected newest build content, got %q", content)
	}
}

func TestWindowsInstaller_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	s := NewInstallerFileStore(config.Files{InstallerDir: dir}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.WindowsInstaller(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
