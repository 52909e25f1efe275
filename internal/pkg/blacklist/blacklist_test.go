package blacklist

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBlacklist_AddContains(t *testing.T) {
	b := New()

	assert.False(t, b.Contains("t1"))

	b.Add("t1", time.Now().Add(time.Hour))
	assert.True(t, b.Contains("t1"))
	assert.False(t, b.Contains("t2"))
}

func TestBlacklist_PurgeDropsExpiredOnly(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	b := New(WithClock(func() time.Time { return now }))

	b.Add("expired", now.Add(-time.Minute))
	b.Add("exactly-now", now)
	b.Add("live", now.Add(time.Minute))

	assert.Equal(t, 2, b.Purge())
	assert.False(t, b.Contains("expired"))
	assert.False(t, b.Contains("exactly-now"))
	assert.True(t, b.Contains("live"))
	assert.Equal(t, 1, b.Len())
}

func TestBlacklist_RunPurgesUntilCancelled(t *testing.T) {
	b := New()
	b.Add("expired", time.Now().Add(-time.Second))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return !b.Contains("expired") }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}

func TestBlacklist_ConcurrentAccess(t *testing.T) {
	b := New()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			b.Add("token", time.Now().Add(time.Hour))
		}()
		go func() {
			defer wg.Done()
			_ = b.Contains("token")
			_ = b.Purge()
		}()
	}
	wg.Wait()

	assert.True(t, b.Contains("token"))
}
