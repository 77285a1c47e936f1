// Command bench runs a synthetic concurrent workload against the cache,
// checks the capacity bound at quiescence, and exposes optional
// pprof/Prometheus endpoints.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	_ "net/http/pprof" // registers /debug/pprof/* on DefaultServeMux
	"runtime"
	"sync/atomic"
	"time"

	"github.com/IvanBrykalov/lrucache/cache"
	pmet "github.com/IvanBrykalov/lrucache/metrics/prom"
	"github.com/IvanBrykalov/lrucache/recency"
	"github.com/IvanBrykalov/lrucache/recency/linked"
	"github.com/IvanBrykalov/lrucache/recency/scan"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
)

func main() {
	// ---- Flags ----
	var (
		capacity = flag.Int("cap", 100_000, "cache capacity (entries)")
		sequence = flag.String("sequence", "linked", "recency sequence: linked | scan")

		workers  = flag.Int("workers", 2*runtime.GOMAXPROCS(0), "number of worker goroutines")
		duration = flag.Duration("duration", 10*time.Second, "benchmark duration")
		readPct  = flag.Int("reads", 80, "read percentage [0..100]")

		keys    = flag.Int("keys", 1_000_000, "keyspace size")
		zipfS   = flag.Float64("zipf_s", 1.1, "Zipf s > 1 (skew)")
		zipfV   = flag.Float64("zipf_v", 1.0, "Zipf v")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		preload = flag.Int("preload", 0, "preload entries (0 = cap/2)")

		pprofAddr   = flag.String("pprof", "", "serve pprof at addr (e.g. :6060); empty = disabled")
		metricsAddr = flag.String("http", "", "serve Prometheus metrics at addr (e.g. :8080); empty = disabled")
	)
	flag.Parse()

	var seq recency.Factory[uint64]
	switch *sequence {
	case "linked":
		seq = linked.New[uint64]()
	case "scan":
		seq = scan.New[uint64]()
	default:
		log.Fatalf("unknown sequence: %q (use linked or scan)", *sequence)
	}
	if *keys < 1 {
		log.Fatalf("keys must be >= 1, got %d", *keys)
	}

	// ---- pprof server (on DefaultServeMux) ----
	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof: serving at %s", *pprofAddr)
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	opt := cache.Options[uint64, string]{
		Capacity: *capacity,
		Sequence: seq,
	}

	// ---- Prometheus metrics (on DefaultServeMux) ----
	if *metricsAddr != "" {
		opt.Metrics = pmet.New(nil, "lrucache", "bench", nil)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			log.Printf("metrics: serving at %s", *metricsAddr)
			log.Println(http.ListenAndServe(*metricsAddr, nil))
		}()
	}

	// ---- Build cache ----
	c, err := cache.New(opt)
	if err != nil {
		log.Fatalf("cache: %v", err)
	}

	// ---- Preload to get a realistic hit-rate ----
	pl := *preload
	if pl == 0 {
		pl = *capacity / 2
	}
	for i := 0; i < pl; i++ {
		c.Put(uint64(i), "v")
	}

	workersN := *workers
	if workersN <= 0 {
		workersN = 1
	}

	// ---- Load generation: every op is a Put or a Get ----
	var reads, writes, hits, total atomic.Uint64
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < workersN; w++ {
		g.Go(func() error {
			// Each worker gets its own RNG + Zipf (rand.Rand is NOT goroutine-safe).
			r := rand.New(rand.NewSource(*seed + int64(w)*9973))
			z := rand.NewZipf(r, *zipfS, *zipfV, uint64(*keys-1))
			if z == nil {
				return fmt.Errorf("invalid zipf parameters s=%v v=%v", *zipfS, *zipfV)
			}

			for ctx.Err() == nil {
				total.Add(1)
				k := z.Uint64()
				if int(r.Int31n(100)) < *readPct {
					reads.Add(1)
					if _, ok := c.Get(k); ok {
						hits.Add(1)
					}
				} else {
					writes.Add(1)
					c.Put(k, "v")
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)

	// ---- Quiescent check ----
	if n := c.Len(); n > *capacity {
		log.Fatalf("capacity violated: Len()=%d > cap=%d", n, *capacity)
	}

	// ---- Report ----
	ops, readsN, hitsN := total.Load(), reads.Load(), hits.Load()
	hitRate := 0.0
	if readsN > 0 {
		hitRate = float64(hitsN) / float64(readsN) * 100
	}
	st := c.Stats()

	fmt.Printf("sequence=%s cap=%d workers=%d keys=%d dur=%v seed=%d\n",
		*sequence, *capacity, workersN, *keys, elapsed, *seed)
	fmt.Printf("ops=%d (%.0f ops/s)  reads=%d  writes=%d\n",
		ops, float64(ops)/elapsed.Seconds(), readsN, writes.Load())
	fmt.Printf("hits=%d  misses=%d  hit-rate=%.2f%%  evictions=%d\n",
		hitsN, readsN-hitsN, hitRate, st.Evictions)
	fmt.Printf("Len()=%d\n", c.Len())
}
