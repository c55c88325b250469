package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobforge/jobwork-api/internal/application/dto"
	"github.com/jobforge/jobwork-api/internal/application/usecase"
	"github.com/jobforge/jobwork-api/internal/domain"
	"github.com/jobforge/jobwork-api/internal/domain/entity"
	"github.com/jobforge/jobwork-api/internal/infrastructure/memory"
)

func newNotificationUseCase() *usecase.NotificationUseCase {
	return usecase.NewNotificationUseCase(memory.NewNotificationRepository(memory.NewStore()))
}

func TestNotify_ListScopedToUser(t *testing.T) {
	uc := newNotificationUseCase()

	require.NoError(t, uc.Notify(context.Background(), "user-1", entity.NotificationInvite, "New RFQ invitation", "details"))
	require.NoError(t, uc.Notify(context.Background(), "user-2", entity.NotificationOrderStatus, "Order shipped", ""))

	out, err := uc.List(context.Background(), dto.Caller{UserID: "user-1"}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, entity.NotificationInvite, out.Items[0].Kind)
	assert.False(t, out.Items[0].Read)
}

func TestMarkRead_OwnNotification(t *testing.T) {
	uc := newNotificationUseCase()

	require.NoError(t, uc.Notify(context.Background(), "user-1", entity.NotificationInvite, "New RFQ invitation", ""))
	out, err := uc.List(context.Background(), dto.Caller{UserID: "user-1"}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	require.NoError(t, uc.MarkRead(context.Background(), dto.Caller{UserID: "user-1"}, out.Items[0].ID))

	out, err = uc.List(context.Background(), dto.Caller{UserID: "user-1"}, dto.PageRequest{})
	require.NoError(t, err)
	assert.True(t, out.Items[0].Read)
}

func TestMarkRead_OtherUsersNotification_Forbidden(t *testing.T) {
	uc := newNotificationUseCase()

	require.NoError(t, uc.Notify(context.Background(), "user-1", entity.NotificationInvite, "New RFQ invitation", ""))
	out, err := uc.List(context.Background(), dto.Caller{UserID: "user-1"}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)

	err = uc.MarkRead(context.Background(), dto.Caller{UserID: "user-2"}, out.Items[0].ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestMarkRead_Missing_NotFound(t *testing.T) {
	uc := newNotificationUseCase()

	err := uc.MarkRead(context.Background(), dto.Caller{UserID: "user-1"}, "no-such-id")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
