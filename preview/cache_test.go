package preview

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/familykitchen/recipeshelf/internal/types"
)

// blockingSource counts fetches and holds them until released.
type blockingSource struct {
	calls   int32
	release chan struct{}
	meta    *types.PreviewMetadata
	err     error
}

func (s *blockingSource) FetchPreview(ctx context.Context, url string) (*types.PreviewMetadata, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.release != nil {
		select {
		case <-s.release:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return s.meta, s.err
}

func TestGet_DeduplicatesInFlight(t *testing.T) {
	t.Parallel()
	src := &blockingSource{release: make(chan struct{}), meta: &types.PreviewMetadata{Title: "Example"}}
	c := NewCache(src)
	defer c.Close()

	const url = "https://example.com/kimchi"
	var wg sync.WaitGroup
	lookups := make([]*Lookup, 2)
	for i := 0; i < 2; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			lookups[i] = c.Get(url)
		}()
	}
	wg.Wait()
	close(src.release)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if meta := lookups[0].Wait(ctx); meta == nil || meta.Title != "Example" {
		t.Fatalf("first lookup meta = %+v", meta)
	}
	if lookups[0] != lookups[1] {
		t.Fatal("concurrent callers must share one lookup slot")
	}
	if n := atomic.LoadInt32(&src.calls); n != 1 {
		t.Fatalf("fetch count = %d, want exactly 1", n)
	}
}

func TestGet_MemoizedAfterResolve(t *testing.T) {
	t.Parallel()
	src := &blockingSource{meta: &types.PreviewMetadata{Title: "Once"}}
	c := NewCache(src)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	first := c.Get("https://example.com")
	if meta := first.Wait(ctx); meta == nil {
		t.Fatal("first lookup did not resolve")
	}
	second := c.Get("https://example.com")
	if second != first {
		t.Fatal("resolved lookup must be reused")
	}
	if n := atomic.LoadInt32(&src.calls); n != 1 {
		t.Fatalf("fetch count = %d after second Get, want 1", n)
	}
}

func TestGet_ErrorsResolveNil(t *testing.T) {
	t.Parallel()
	src := &blockingSource{err: fmt.Errorf("upstream down")}
	c := NewCache(src)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if meta := c.Get("https://broken.example.com").Wait(ctx); meta != nil {
		t.Fatalf("failed lookup resolved to %+v, want nil", meta)
	}
	// Still memoized: no second fetch for the same URL.
	_ = c.Get("https://broken.example.com")
	time.Sleep(20 * time.Millisecond)
	if n := atomic.LoadInt32(&src.calls); n != 1 {
		t.Fatalf("fetch count = %d, want 1 (failures are not retried)", n)
	}
}

func TestLookup_MetaNonBlocking(t *testing.T) {
	t.Parallel()
	src := &blockingSource{release: make(chan struct{}), meta: &types.PreviewMetadata{Title: "Later"}}
	c := NewCache(src)
	defer c.Close()

	l := c.Get("https://example.com/slow")
	if l.Meta() != nil {
		t.Fatal("Meta must be nil before the lookup settles")
	}
	close(src.release)
	select {
	case <-l.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("lookup never settled")
	}
	if meta := l.Meta(); meta == nil || meta.Title != "Later" {
		t.Fatalf("Meta after settle = %+v", meta)
	}
}

func TestWait_CtxExpiry(t *testing.T) {
	t.Parallel()
	src := &blockingSource{release: make(chan struct{})}
	c := NewCache(src)
	defer func() {
		close(src.release)
		c.Close()
	}()

	l := c.Get("https://example.com/hang")
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if meta := l.Wait(ctx); meta != nil {
		t.Fatalf("Wait past deadline = %+v, want nil", meta)
	}
}
