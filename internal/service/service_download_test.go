package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/mock"
	"github.com/MKhiriev/go-member-portal/internal/store"
	"github.com/MKhiriev/go-member-portal/models"
)

type trackingReadCloser struct {
	io.Reader
	closed bool
}

func (t *trackingReadCloser) Close() error {
	t.closed = true
	return nil
}

func newTestDownloadSvc(t *testing.T, ctrl *gomock.Controller) (
	*downloadService,
	*mock.MockInstallerFileStore,
	*mock.MockInstallHistoryRepository,
) {
	t.Helper()
	mockInstallers := mock.NewMockInstallerFileStore(ctrl)
	mockHistory := mock.NewMockInstallHistoryRepository(ctrl)

	svc := NewDownloadService(mockInstallers, mockHistory, logger.Nop()).(*downloadService)
	return svc, mockInstallers, mockHistory
}

func TestDownloadService_WindowsInstaller_RecordsDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockInstallers, mockHistory := newTestDownloadSvc(t, ctrl)
	ctx := context.Background()

	stream := &trackingReadCloser{Reader: strings.NewReader("installer bytes")}
	gomock.InOrder(
		mockInstallers.EXPECT().WindowsInstaller(ctx).Return(stream, "setup-1.2.0.exe", nil),
		mockHistory.EXPECT().AddRecord(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, r models.InstallHistoryRecord) (models.InstallHistoryRecord, error) {
				assert.Equal(t, "user-1", r.UserID)
				assert.Equal(t, "Windows", r.OS)
				assert.False(t, r.InstalledAt.IsZero())
				r.ID = 1
				return r, nil
			},
		),
	)

	rc, name, err := svc.WindowsInstaller(ctx, "user-1")
	require.NoError(t, err)
	defer rc.Close()

	assert.Equal(t, "setup-1.2.0.exe", name)
	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "installer bytes", string(content))
}

func TestDownloadService_WindowsInstaller_MissingArtifactLeavesNoRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockInstallers, _ := newTestDownloadSvc(t, ctrl)
	ctx := context.Background()

	// no AddRecord expectation: a missing artifact must not appear in history
	mockInstallers.EXPECT().WindowsInstaller(ctx).Return(nil, "", store.ErrInstallerNotFound)

	_, _, err := svc.WindowsInstaller(ctx, "user-1")
	require.ErrorIs(t, err, ErrInstallerNotAvailable)
}

func TestDownloadService_WindowsInstaller_RecordFailureAbortsDownload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockInstallers, mockHistory := newTestDownloadSvc(t, ctrl)
	ctx := context.Background()

	stream := &trackingReadCloser{Reader: strings.NewReader("installer bytes")}
	mockInstallers.EXPECT().WindowsInstaller(ctx).Return(stream, "setup.exe", nil)
	mockHistory.EXPECT().AddRecord(ctx, gomock.Any()).Return(models.InstallHistoryRecord{}, errors.New("db down"))

	_, _, err := svc.WindowsInstaller(ctx, "user-1")
	require.Error(t, err)
	assert.True(t, stream.closed, "stream must be closed when the record write fails")
}
