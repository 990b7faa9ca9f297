package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nvent/inventory-backend/internal/pkg/database"
	"github.com/nvent/inventory-backend/internal/pkg/models"
)

func newTestStateRepo(t *testing.T) (*StateRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	cfg := &models.Config{
		Auth: models.AuthConfig{
			TempSessionTTLMinutes: 5,
			OTPTTLMinutes:         5,
			OTPResendCap:          3,
			OTPResendWindowMin:    10,
			LinkCodeTTLMinutes:    5,
			LinkResultTTLMinutes:  5,
		},
	}
	return NewStateRepo(cfg, client), mr
}

func TestTempSession_Lifecycle(t *testing.T) {
	repo, mr := newTestStateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateTempSession(ctx, "handle-1", "alice"))

	// stored under the expected key with the configured TTL
	assert.Equal(t, "alice", mustGet(t, mr, "TEMP_LOGIN:handle-1"))
	assert.Equal(t, 5*time.Minute, mr.TTL("TEMP_LOGIN:handle-1"))

	username, found, err := repo.GetTempSession(ctx, "handle-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "alice", username)

	require.NoError(t, repo.DeleteTempSession(ctx, "handle-1"))
	_, found, err = repo.GetTempSession(ctx, "handle-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestTempSession_Expiry(t *testing.T) {
	repo, mr := newTestStateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateTempSession(ctx, "handle-1", "alice"))

	mr.FastForward(5*time.Minute + time.Second)

	_, found, err := repo.GetTempSession(ctx, "handle-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestOTP_OverwriteAndExpiry(t *testing.T) {
	repo, mr := newTestStateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreOTP(ctx, "alice", "111111"))
	require.NoError(t, repo.StoreOTP(ctx, "alice", "222222"))

	// only the latest code is live
	code, found, err := repo.GetOTP(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "222222", code)

	mr.FastForward(5*time.Minute + time.Second)

	_, found, err = repo.GetOTP(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestIncrementOTPAttempts_WindowAnchoredAtFirstAttempt(t *testing.T) {
	repo, mr := newTestStateRepo(t)
	ctx := context.Background()

	count, err := repo.IncrementOTPAttempts(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	mr.FastForward(4 * time.Minute)

	// later increments must not extend the window
	count, err = repo.IncrementOTPAttempts(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	cooldown, found, err := repo.OTPAttemptsCooldown(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 6*time.Minute, cooldown)

	// once the window lapses the counter restarts
	mr.FastForward(6*time.Minute + time.Second)
	count, err = repo.IncrementOTPAttempts(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestIncrementOTPAttempts_ConcurrentCallersNeverLoseCounts(t *testing.T) {
	repo, _ := newTestStateRepo(t)
	ctx := context.Background()

	const callers = 20
	var wg sync.WaitGroup
	results := make([]int64, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			count, err := repo.IncrementOTPAttempts(ctx, "alice")
			assert.NoError(t, err)
			results[i] = count
		}(i)
	}
	wg.Wait()

	// every caller observed a distinct count: the increment never races
	seen := make(map[int64]bool, callers)
	var max int64
	for _, c := range results {
		assert.False(t, seen[c], "duplicate count %d", c)
		seen[c] = true
		if c > max {
			max = c
		}
	}
	assert.Equal(t, int64(callers), max)
}

func TestLinkCode_Lifecycle(t *testing.T) {
	repo, mr := newTestStateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.StoreLinkCode(ctx, "code-1", "alice"))
	assert.Equal(t, 5*time.Minute, mr.TTL("code-1"))

	username, found, err := repo.GetLinkCode(ctx, "code-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "alice", username)

	require.NoError(t, repo.DeleteLinkCode(ctx, "code-1"))
	_, found, err = repo.GetLinkCode(ctx, "code-1")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPendingLink_Lifecycle(t *testing.T) {
	repo, mr := newTestStateRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.StorePendingLink(ctx, "555", "alice", "code-1"))

	username, code, found, err := repo.GetPendingLink(ctx, "555")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "alice", username)
	assert.Equal(t, "code-1", code)

	// a newer redemption from the same chat overwrites the stale attempt
	require.NoError(t, repo.StorePendingLink(ctx, "555", "alice", "code-2"))
	_, code, _, err = repo.GetPendingLink(ctx, "555")
	require.NoError(t, err)
	assert.Equal(t, "code-2", code)

	require.NoError(t, repo.DeletePendingLink(ctx, "555"))
	_, _, found, err = repo.GetPendingLink(ctx, "555")
	require.NoError(t, err)
	assert.False(t, found)

	// abandonment: both halves expire together
	require.NoError(t, repo.StorePendingLink(ctx, "777", "bob", "code-3"))
	mr.FastForward(5*time.Minute + time.Second)
	_, _, found, err = repo.GetPendingLink(ctx, "777")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLinkResult_Lifecycle(t *testing.T) {
	repo, mr := newTestStateRepo(t)
	ctx := context.Background()

	_, found, err := repo.GetLinkResult(ctx, "code-1")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.StoreLinkResult(ctx, "code-1", models.LinkStatusSuccess))
	assert.Equal(t, 5*time.Minute, mr.TTL(fmt.Sprintf("linkResult:%s", "code-1")))

	result, found, err := repo.GetLinkResult(ctx, "code-1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, models.LinkStatusSuccess, result)
}

func mustGet(t *testing.T, mr *miniredis.Miniredis, key string) string {
	t.Helper()
	val, err := mr.Get(key)
	require.NoError(t, err)
	return val
}
