// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package syncx

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.astrophena.name/fixlicense/internal/testutil"
)

func TestLazy(t *testing.T) {
	t.Parallel()

	var (
		l     Lazy[int]
		calls atomic.Int32
		wg    sync.WaitGroup
	)
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := l.Get(func() int {
				calls.Add(1)
				return 42
			})
			if got != 42 {
				t.Errorf("got %d, want 42", got)
			}
		}()
	}
	wg.Wait()
	testutil.AssertEqual(t, int(calls.Load()), 1)
}

func TestLimitedWaitGroup(t *testing.T) {
	t.Parallel()

	const limit = 3

	var (
		lwg     = NewLimitedWaitGroup(limit)
		running atomic.Int32
		peak    atomic.Int32
		done    atomic.Int32
	)
	for range 20 {
		lwg.Go(func() {
			n := running.Add(1)
			defer running.Add(-1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			done.Add(1)
		})
	}
	lwg.Wait()

	testutil.AssertEqual(t, int(done.Load()), 20)
	if p := peak.Load(); p > limit {
		t.Fatalf("%d goroutines ran at once, limit is %d", p, limit)
	}
}

func TestLimitedWaitGroupZeroLimit(t *testing.T) {
	t.Parallel()

	lwg := NewLimitedWaitGroup(0)
	var n int
	for range 3 {
		lwg.Go(func() { n++ })
		lwg.Wait()
	}
	testutil.AssertEqual(t, n, 3)
}
