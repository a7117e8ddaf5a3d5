package wpool

import (
	"context"
	"runtime"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsAllSubmittedTasks(t *testing.T) {
	p := New(nil)
	defer p.Shutdown()

	var count atomic.Int64
	ctx := context.Background()
	const n = 100
	done := make(chan struct{}, n)
	for i := 0; i < n; i++ {
		if err := p.Submit(ctx, func() {
			count.Add(1)
			done <- struct{}{}
		}); err != nil {
			t.Fatalf("Submit: %v", err)
		}
	}
	for i := 0; i < n; i++ {
		<-done
	}
	if got := count.Load(); got != n {
		t.Fatalf("count = %d, want %d", got, n)
	}
}

func TestPoolSubmitAfterShutdownFails(t *testing.T) {
	p := New(nil)
	p.Shutdown()

	ctx := context.Background()
	if err := p.Submit(ctx, func() {}); err == nil {
		t.Fatalf("expected error submitting after shutdown")
	}
}

func TestPoolSubmitRespectsContextCancellation(t *testing.T) {
	p := New(nil)
	defer p.Shutdown()

	// Occupy every worker (one per GOMAXPROCS) with a blocking task so the
	// next submit on the unbuffered channel has no worker free to take it.
	block := make(chan struct{})
	ctx := context.Background()
	workers := 0
	for i := 0; i < runtime.GOMAXPROCS(0); i++ {
		if err := p.Submit(ctx, func() { <-block }); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		workers++
	}

	cctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Submit(cctx, func() {})
	close(block)
	if err == nil {
		t.Fatalf("expected cancellation error")
	}
}
