// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-member-portal/internal/service"
)

func TestDownloadWindowsInstaller_StreamsBinary(t *testing.T) {
	auth := validSessionAuth("sess-1", "user-1")
	download := &mockDownloadService{
		windowsInstallerFn: func(_ context.Context, userID string) (io.ReadCloser, string, error) {
			assert.Equal(t, "user-1", userID)
			return io.NopCloser(strings.NewReader("installer bytes")), "setup-1.2.0.exe", nil
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth, DownloadService: download})

	rec := doRequest(t, h, http.MethodGet, "/api/download/windows", "", sessionCookie("sess-1"))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="setup-1.2.0.exe"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "installer bytes", rec.Body.String())
}

func TestDownloadWindowsInstaller_NotAvailable(t *testing.T) {
	auth := validSessionAuth("sess-1", "user-1")
	download := &mockDownloadService{
		windowsInstallerFn: func(_ context.Context, _ string) (io.ReadCloser, string, error) {
			return nil, "", service.ErrInstallerNotAvailable
		},
	}
	h := newTestHandler(t, &service.Services{AuthService: auth, DownloadService: download})

	rec := doRequest(t, h, http.MethodGet, "/api/download/windows", "", sessionCookie("sess-1"))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "installer is not available", decodeProblem(t, rec).Title)
}

func TestDownloadWindowsInstaller_RequiresSession(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	rec := doRequest(t, h, http.MethodGet, "/api/download/windows", "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
