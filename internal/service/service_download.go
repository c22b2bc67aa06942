// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/store"
	"github.com/MKhiriev/go-member-portal/models"
)

// osWindows is the platform label recorded for Windows installer downloads.
const osWindows = "Windows"

// downloadService is the concrete implementation of [DownloadService].
type downloadService struct {
	installers store.InstallerFileStore
	history    store.InstallHistoryRepository
	logger     *logger.Logger
}

// NewDownloadService constructs a [DownloadService] over the given stores.
func NewDownloadService(installers store.InstallerFileStore, history store.InstallHistoryRepository, logger *logger.Logger) DownloadService {
	return &downloadService{
		installers: installers,
		history:    history,
		logger:     logger,
	}
}

// WindowsInstaller opens the installer stream and appends one
// install-history record. The record is written only after the artifact is
// confirmed present, and a failed write aborts the download: a served file
// without its record would make the history incomplete.
func (d *downloadService) WindowsInstaller(ctx context.Context, userID string) (io.ReadCloser, string, error) {
	log := logger.FromContext(ctx)

	stream, name, err := d.installers.WindowsInstaller(ctx)
	if err != nil {
		if errors.Is(err, store.ErrInstallerNotFound) {
			return nil, "", ErrInstallerNotAvailable
		}
		log.Err(err).Str("func", "*downloadService.WindowsInstaller").Msg("error opening installer")
		return nil, "", fmt.Errorf("error opening installer: %w", err)
	}

	record := models.InstallHistoryRecord{
		UserID:      userID,
		OS:          osWindows,
		InstalledAt: time.Now(),
	}
	if _, err := d.history.AddRecord(ctx, record); err != nil {
		stream.Close()
		log.Err(err).Str("func", "*downloadService.WindowsInstaller").Msg("error recording download")
		return nil, "", fmt.Errorf("error recording download: %w", err)
	}

	log.Info().Str("userID", userID).Str("artifact", name).Msg("installer download recorded")
	return stream, name, nil
}
