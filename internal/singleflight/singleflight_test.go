package singleflight

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestDo_CoalescesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var g Group[string, int]
	var calls atomic.Int32
	release := make(chan struct{})

	const followers = 16
	var wg sync.WaitGroup
	var sharedCnt atomic.Int32

	// leader
	leaderDone := make(chan int)
	go func() {
		v, _, _ := g.Do(context.Background(), "k", func() (int, error) {
			calls.Add(1)
			<-release
			return 7, nil
		})
		leaderDone <- v
	}()

	// wait until the leader is in flight
	for {
		g.mu.Lock()
		_, inFlight := g.m["k"]
		g.mu.Unlock()
		if inFlight {
			break
		}
		time.Sleep(time.Millisecond)
	}

	wg.Add(followers)
	for i := 0; i < followers; i++ {
		go func() {
			defer wg.Done()
			v, err, shared := g.Do(context.Background(), "k", func() (int, error) {
				calls.Add(1) // joined after the flight finished
				return 7, nil
			})
			if err != nil || v != 7 {
				t.Errorf("follower got v=%d err=%v", v, err)
			}
			if shared {
				sharedCnt.Add(1)
			}
		}()
	}

	// give followers a moment to join, then release the leader
	time.Sleep(10 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := <-leaderDone; got != 7 {
		t.Fatalf("leader want 7, got %d", got)
	}
	// followers that arrived after the flight finished run fn themselves
	if got := calls.Load(); got != 1+followers-sharedCnt.Load() {
		t.Fatalf("fn calls %d inconsistent with %d shared results", got, sharedCnt.Load())
	}
}

func TestDo_FollowerContextCancel(t *testing.T) {
	t.Parallel()

	var g Group[string, string]
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _, _ = g.Do(context.Background(), "k", func() (string, error) {
			close(started)
			<-release
			return "v", nil
		})
	}()
	<-started

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err, shared := g.Do(ctx, "k", func() (string, error) { return "", nil })
	if !errors.Is(err, context.Canceled) || shared {
		t.Fatalf("cancelled follower want context.Canceled, got err=%v shared=%v", err, shared)
	}
	close(release)
}

func TestDo_PanicReleasesFollowers(t *testing.T) {
	t.Parallel()

	var g Group[int, int]
	started := make(chan struct{})
	release := make(chan struct{})

	go func() {
		defer func() { _ = recover() }()
		_, _, _ = g.Do(context.Background(), 1, func() (int, error) {
			close(started)
			<-release
			panic("boom")
		})
	}()
	<-started

	res := make(chan error, 1)
	go func() {
		_, err, _ := g.Do(context.Background(), 1, func() (int, error) { return 0, nil })
		res <- err
	}()
	time.Sleep(10 * time.Millisecond)
	close(release)

	select {
	case err := <-res:
		// the follower either shared the panicked flight or ran after it
		if err != nil && !errors.Is(err, ErrLeaderPanicked) {
			t.Fatalf("unexpected error %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("follower blocked after leader panic")
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if len(g.m) != 0 {
		t.Fatalf("in-flight marker leaked: %v", g.m)
	}
}
