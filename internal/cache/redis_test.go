package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/mamadbah2/khamar/internal/domain/models"
)

func TestNewInsightCacheRejectsBadURL(t *testing.T) {
	if _, err := NewInsightCache(context.Background(), "://not-a-url", time.Minute, zap.NewNop()); err == nil {
		t.Fatal("expected parse error")
	}
}

// Runs against a real server when REDIS_TEST_URL is set, e.g. redis://localhost:6379/15.
func TestInsightCacheRoundTrip(t *testing.T) {
	url := os.Getenv("REDIS_TEST_URL")
	if url == "" {
		t.Skip("REDIS_TEST_URL not set")
	}

	ctx := context.Background()
	c, err := NewInsightCache(ctx, url, time.Minute, zap.NewNop())
	if err != nil {
		t.Fatalf("NewInsightCache: %v", err)
	}
	defer c.Close()

	key := "market:2024-01:test-" + time.Now().Format("150405.000000")
	if _, ok, err := c.GetInsight(ctx, key); err != nil || ok {
		t.Fatalf("expected miss, ok=%v err=%v", ok, err)
	}

	want := models.Insight{Text: "Eggs trade at 12 taka", Sources: []string{"https://example.com/prices"}}
	if err := c.SetInsight(ctx, key, want); err != nil {
		t.Fatalf("SetInsight: %v", err)
	}
	got, ok, err := c.GetInsight(ctx, key)
	if err != nil || !ok {
		t.Fatalf("expected hit, ok=%v err=%v", ok, err)
	}
	if got.Text != want.Text || len(got.Sources) != 1 || got.Sources[0] != want.Sources[0] {
		t.Errorf("got %+v", got)
	}
}
