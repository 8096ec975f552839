package fetchq

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFIFOPerKey(t *testing.T) {
	t.Parallel()
	q := New(Config{Workers: 2, QueueSize: 16})
	defer q.Stop()

	var mu sync.Mutex
	var order []int
	for i := 0; i < 8; i++ {
		i := i
		err := q.Submit(context.Background(), "example.com", JobFunc(func(context.Context) error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		}))
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	deadline := time.After(2 * time.Second)
	for {
		mu.Lock()
		n := len(order)
		mu.Unlock()
		if n == 8 {
			break
		}
		select {
		case <-deadline:
			t.Fatalf("jobs did not finish, got %d", n)
		case <-time.After(5 * time.Millisecond):
		}
	}

	mu.Lock()
	defer mu.Unlock()
	for i, v := range order {
		if v != i {
			t.Fatalf("order broken at %d: %v", i, order)
		}
	}
}

func TestSubmitAfterStop(t *testing.T) {
	t.Parallel()
	q := New(Config{})
	q.Stop()
	err := q.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil }))
	if !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("err = %v, want ErrQueueClosed", err)
	}
}

func TestQueueFull(t *testing.T) {
	t.Parallel()
	q := New(Config{Workers: 1, QueueSize: 1, EnqueueTimeout: 20 * time.Millisecond})
	defer q.Stop()

	block := make(chan struct{})
	// First job occupies the worker, second fills the buffer.
	_ = q.Submit(context.Background(), "k", JobFunc(func(context.Context) error { <-block; return nil }))
	time.Sleep(10 * time.Millisecond)
	_ = q.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil }))

	err := q.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return nil }))
	close(block)
	if !IsQueueFull(err) {
		t.Fatalf("err = %v, want QueueFullError", err)
	}
}

func TestStopDrains(t *testing.T) {
	t.Parallel()
	q := New(Config{Workers: 1, QueueSize: 16})
	var ran int32
	for i := 0; i < 5; i++ {
		if err := q.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
			atomic.AddInt32(&ran, 1)
			return nil
		})); err != nil {
			t.Fatalf("submit: %v", err)
		}
	}
	q.Stop()
	if got := atomic.LoadInt32(&ran); got != 5 {
		t.Fatalf("ran = %d, want 5 (Stop must drain)", got)
	}
}

func TestPanickingJobDoesNotKillWorker(t *testing.T) {
	t.Parallel()
	q := New(Config{Workers: 1, QueueSize: 8})
	defer q.Stop()

	_ = q.Submit(context.Background(), "k", JobFunc(func(context.Context) error { panic("boom") }))
	done := make(chan struct{})
	if err := q.Submit(context.Background(), "k", JobFunc(func(context.Context) error {
		close(done)
		return nil
	})); err != nil {
		t.Fatalf("submit: %v", err)
	}
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("worker died after panicking job")
	}
}

func TestErrorHandlerObservesFailures(t *testing.T) {
	t.Parallel()
	got := make(chan error, 1)
	q := New(Config{Workers: 1, ErrorHandler: func(err error) { got <- err }})
	defer q.Stop()

	want := errors.New("fetch failed")
	_ = q.Submit(context.Background(), "k", JobFunc(func(context.Context) error { return want }))
	select {
	case err := <-got:
		if !errors.Is(err, want) {
			t.Fatalf("handler got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("error handler never called")
	}
}

func TestCancelledJobSkipsRun(t *testing.T) {
	t.Parallel()
	q := New(Config{Workers: 1, QueueSize: 8})
	defer q.Stop()

	gate := make(chan struct{})
	_ = q.Submit(context.Background(), "k", JobFunc(func(context.Context) error { <-gate; return nil }))

	ctx, cancel := context.WithCancel(context.Background())
	var ran int32
	_ = q.Submit(ctx, "k", JobFunc(func(context.Context) error {
		atomic.AddInt32(&ran, 1)
		return nil
	}))
	cancel()
	close(gate)
	q.Stop()
	if atomic.LoadInt32(&ran) != 0 {
		t.Fatal("cancelled job should not run")
	}
}
