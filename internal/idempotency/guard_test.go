package idempotency

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/aliskhannn/overdue-reminder/internal/mocks/idempotency"
	"github.com/aliskhannn/overdue-reminder/internal/model"
	"github.com/aliskhannn/overdue-reminder/internal/repository/history"
)

func TestGuard_AlreadySent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mocks.NewMockhistoryFinder(ctrl)
	g := NewGuard(finder, nil, 0)

	userID, lendingID := uuid.New(), uuid.New()

	finder.EXPECT().
		FindSent(gomock.Any(), userID, lendingID, model.TierFirst).
		Return(model.ReminderHistory{ID: uuid.New(), Status: model.HistorySent}, nil)

	sent, err := g.AlreadySent(context.Background(), userID, lendingID, model.TierFirst)
	require.NoError(t, err)
	assert.True(t, sent)
}

func TestGuard_AlreadySent_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mocks.NewMockhistoryFinder(ctrl)
	g := NewGuard(finder, nil, 0)

	finder.EXPECT().
		FindSent(gomock.Any(), gomock.Any(), gomock.Any(), model.TierSecond).
		Return(model.ReminderHistory{}, history.ErrHistoryNotFound)

	sent, err := g.AlreadySent(context.Background(), uuid.New(), uuid.New(), model.TierSecond)
	require.NoError(t, err)
	assert.False(t, sent)
}

func TestGuard_AlreadySent_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finder := mocks.NewMockhistoryFinder(ctrl)
	g := NewGuard(finder, nil, 0)

	finder.EXPECT().
		FindSent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(model.ReminderHistory{}, errors.New("connection reset"))

	_, err := g.AlreadySent(context.Background(), uuid.New(), uuid.New(), model.TierThird)
	assert.Error(t, err)
}

func TestGuard_Acquire(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leases := mocks.NewMockleaseClient(ctrl)
	g := NewGuard(mocks.NewMockhistoryFinder(ctrl), leases, time.Minute)

	lendingID := uuid.New()
	key := LeaseKey(lendingID, model.TierFinal)

	leases.EXPECT().
		SetNX(gomock.Any(), key, gomock.Any(), time.Minute).
		Return(redis.NewBoolResult(true, nil))

	token, ok, err := g.Acquire(context.Background(), lendingID, model.TierFinal)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NotEmpty(t, token)
}

func TestGuard_Acquire_Held(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leases := mocks.NewMockleaseClient(ctrl)
	g := NewGuard(mocks.NewMockhistoryFinder(ctrl), leases, time.Minute)

	leases.EXPECT().
		SetNX(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(redis.NewBoolResult(false, nil))

	_, ok, err := g.Acquire(context.Background(), uuid.New(), model.TierFirst)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGuard_Acquire_RedisError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leases := mocks.NewMockleaseClient(ctrl)
	g := NewGuard(mocks.NewMockhistoryFinder(ctrl), leases, time.Minute)

	leases.EXPECT().
		SetNX(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(redis.NewBoolResult(false, errors.New("dial tcp: refused")))

	_, ok, err := g.Acquire(context.Background(), uuid.New(), model.TierFirst)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestGuard_Acquire_NoLeaseClient(t *testing.T) {
	g := NewGuard(nil, nil, 0)

	token, ok, err := g.Acquire(context.Background(), uuid.New(), model.TierFirst)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, token)
}

func TestGuard_Release(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leases := mocks.NewMockleaseClient(ctrl)
	g := NewGuard(mocks.NewMockhistoryFinder(ctrl), leases, time.Minute)

	lendingID := uuid.New()

	leases.EXPECT().
		Eval(gomock.Any(), releaseScript, []string{LeaseKey(lendingID, model.TierSecond)}, "tok").
		Return(redis.NewCmdResult(int64(1), nil))

	g.Release(context.Background(), lendingID, model.TierSecond, "tok")
}

func TestGuard_Release_EmptyToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no Eval expected
	g := NewGuard(nil, mocks.NewMockleaseClient(ctrl), time.Minute)

	g.Release(context.Background(), uuid.New(), model.TierFirst, "")
}

func TestLeaseKey(t *testing.T) {
	id := uuid.MustParse("7c2b95c4-61c8-4b46-b030-933721931362")

	assert.Equal(t, "reminder:lease:7c2b95c4-61c8-4b46-b030-933721931362:third", LeaseKey(id, model.TierThird))
}
