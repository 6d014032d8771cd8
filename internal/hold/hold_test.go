package hold

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotKey(t *testing.T) {
	key := SlotKey("room-1", "2026-09-01", 600, 720)
	assert.Equal(t, "hold:room-1:2026-09-01:600-720", key)
}

func TestRedisLockerAcquire(t *testing.T) {
	client, mock := redismock.NewClientMock()
	locker := NewRedisLocker(client)

	key := SlotKey("room-1", "2026-09-01", 600, 720)
	mock.ExpectSetNX(key, "1", 30*time.Second).SetVal(true)

	ok, err := locker.Acquire(context.Background(), key, 30*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLockerAcquireContested(t *testing.T) {
	client, mock := redismock.NewClientMock()
	locker := NewRedisLocker(client)

	key := SlotKey("room-1", "2026-09-01", 600, 720)
	mock.ExpectSetNX(key, "1", 30*time.Second).SetVal(false)

	ok, err := locker.Acquire(context.Background(), key, 30*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisLockerRelease(t *testing.T) {
	client, mock := redismock.NewClientMock()
	locker := NewRedisLocker(client)

	key := SlotKey("room-1", "2026-09-01", 600, 720)
	mock.ExpectDel(key).SetVal(1)

	require.NoError(t, locker.Release(context.Background(), key))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoopLocker(t *testing.T) {
	locker := NewNoopLocker()

	ok, err := locker.Acquire(context.Background(), "anything", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, locker.Release(context.Background(), "anything"))
}
