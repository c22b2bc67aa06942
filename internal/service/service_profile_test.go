package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-member-portal/internal/logger"
	"github.com/MKhiriev/go-member-portal/internal/mock"
	"github.com/MKhiriev/go-member-portal/internal/store"
	"github.com/MKhiriev/go-member-portal/models"
)

func newTestProfileSvc(t *testing.T, ctrl *gomock.Controller) (
	*profileService,
	*mock.MockUserRepository,
	*mock.MockInstallHistoryRepository,
) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockHistory := mock.NewMockInstallHistoryRepository(ctrl)

	svc := NewProfileService(mockUsers, mockHistory, logger.Nop()).(*profileService)
	return svc, mockUsers, mockHistory
}

func TestProfileService_MyPage_AggregatesHistory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockHistory := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	user := models.User{UserID: "user-1", Email: "john@example.com", FirstName: "John"}
	records := []models.InstallHistoryRecord{
		{ID: 2, UserID: "user-1", OS: "Windows", InstalledAt: time.Now()},
		{ID: 1, UserID: "user-1", OS: "Windows", InstalledAt: time.Now().Add(-time.Hour)},
	}

	mockUsers.EXPECT().FindUserByID(ctx, "user-1").Return(user, nil)
	mockHistory.EXPECT().ListByUser(ctx, "user-1").Return(records, nil)

	gotUser, gotRecords, err := svc.MyPage(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, user.Email, gotUser.Email)
	assert.Len(t, gotRecords, 2)
}

func TestProfileService_Info_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().FindUserByID(ctx, "ghost").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Info(ctx, "ghost")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileService_UpdateProfile_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().UpdateProfile(ctx, "user-1", "Jane", "Doe", "ACME").Return(nil)

	err := svc.UpdateProfile(ctx, "user-1", models.UpdateProfileRequest{
		FirstName:    "Jane",
		LastName:     "Doe",
		Organization: "ACME",
	})
	require.NoError(t, err)
}

func TestProfileService_SetTwoFactor_Enable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().SetTwoFactorEnabled(ctx, "user-1", true).Return(nil)

	require.NoError(t, svc.SetTwoFactor(ctx, "user-1", true))
}

func TestProfileService_SetTwoFactor_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	mockUsers.EXPECT().SetTwoFactorEnabled(ctx, "ghost", false).Return(store.ErrNoUserWasFound)

	err := svc.SetTwoFactor(ctx, "ghost", false)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestProfileService_UpdateProfile_MissingNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestProfileSvc(t, ctrl)
	ctx := context.Background()

	err := svc.UpdateProfile(ctx, "user-1", models.UpdateProfileRequest{})
	require.ErrorIs(t, err, ErrInvalidDataProvided)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Reasons, 2)
}
