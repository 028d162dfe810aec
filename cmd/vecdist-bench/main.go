// Command vecdist-bench measures scan throughput of the vecdist engine.
//
// The database is either generated (seeded uniform floats) or loaded
// from an .fvecs file, optionally zstd-compressed (.fvecs.zst). The
// scan is sharded across workers - the engine itself is single-threaded
// per call, so parallelism lives here, on the caller side.
//
// Usage:
//
//	vecdist-bench -metric l2 -dim 128 -ny 100000 -iters 50 -workers 8
//	vecdist-bench -mode byids -dataset sift_base.fvecs.zst -iters 20
//	vecdist-bench -mode handle -blocksize 32 -segments 4
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/vecdist"
	"github.com/hupe1980/vecdist/idlist"
)

var (
	metricFlag = flag.String("metric", "l2", "distance metric (l2, ip)")
	mode       = flag.String("mode", "bulk", "scan mode (bulk, byids, handle)")
	dim        = flag.Int("dim", 128, "vector dimension")
	ny         = flag.Int("ny", 100000, "database vectors per segment")
	segments   = flag.Int("segments", 1, "segment count (handle mode)")
	blocksize  = flag.Int("blocksize", 32, "transposed block size (handle mode)")
	iters      = flag.Int("iters", 50, "scan repetitions per worker")
	workers    = flag.Int("workers", runtime.GOMAXPROCS(0), "parallel workers")
	dataset    = flag.String("dataset", "", "path to .fvecs or .fvecs.zst database (overrides -ny)")
	seed       = flag.Int64("seed", 42, "rng seed for generated data")
	verbose    = flag.Bool("v", false, "debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	vecdist.SetLogger(log)

	metric := vecdist.MetricL2
	if *metricFlag == "ip" {
		metric = vecdist.MetricInnerProduct
	}

	rng := rand.New(rand.NewSource(*seed))

	var db []float32
	if *dataset != "" {
		vecs, d, err := loadFvecs(*dataset)
		if err != nil {
			log.Error("dataset load failed", "path", *dataset, "err", err)
			os.Exit(1)
		}
		db = vecs
		*dim = d
		*ny = len(vecs) / d
		*segments = 1
		log.Info("dataset loaded", "path", *dataset, "dim", d, "ny", *ny)
	} else {
		db = randomFloats(rng, *segments**ny**dim)
	}

	query := randomFloats(rng, *segments**dim)

	var elapsed time.Duration
	var err error
	switch *mode {
	case "bulk":
		elapsed, err = benchBulk(metric, query, db)
	case "byids":
		elapsed, err = benchByIDs(metric, query, db)
	case "handle":
		elapsed, err = benchHandle(metric, query, db)
	default:
		log.Error("unknown mode", "mode", *mode)
		os.Exit(1)
	}
	if err != nil {
		log.Error("benchmark failed", "mode", *mode, "err", err)
		os.Exit(1)
	}

	total := int64(*iters) * int64(*segments) * int64(*ny)
	rate := float64(total) / elapsed.Seconds()
	fmt.Printf("mode=%s metric=%s dim=%d ny=%d segments=%d workers=%d\n",
		*mode, metric, *dim, *ny, *segments, *workers)
	fmt.Printf("%d distances in %s (%.1fM vectors/s)\n", total, elapsed.Round(time.Millisecond), rate/1e6)
}

// benchBulk shards the contiguous scan across workers. Each worker owns
// a disjoint row range and output range, as the engine's concurrency
// contract requires.
func benchBulk(metric vecdist.Metric, query, db []float32) (time.Duration, error) {
	scan, err := vecdist.Scanner(metric)
	if err != nil {
		return 0, err
	}

	rows := *segments * *ny
	dis := make([]float32, rows)
	shards := shardRanges(rows, *workers)

	start := time.Now()
	for it := 0; it < *iters; it++ {
		g, _ := errgroup.WithContext(context.Background())
		for _, s := range shards {
			s := s
			g.Go(func() error {
				return scan(dis[s.lo:s.hi], query, db[s.lo**dim:], s.hi-s.lo, *dim)
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}

func benchByIDs(metric vecdist.Metric, query, db []float32) (time.Duration, error) {
	scan, err := vecdist.ScannerByIDs(metric)
	if err != nil {
		return 0, err
	}

	rows := *segments * *ny
	ids := idlist.Sequential(rows)
	rand.New(rand.NewSource(*seed)).Shuffle(rows, func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	dis := make([]float32, rows)
	shards := shardRanges(rows, *workers)

	start := time.Now()
	for it := 0; it < *iters; it++ {
		g, _ := errgroup.WithContext(context.Background())
		for _, s := range shards {
			s := s
			g.Go(func() error {
				return scan(dis[s.lo:s.hi], query, db, ids[s.lo:s.hi], s.hi-s.lo, *dim)
			})
		}
		if err := g.Wait(); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}

// benchHandle scans a block-transposed snapshot. Segments are the
// sharding unit here: each worker gets whole segments, so the handle is
// scanned once per iteration via per-worker sub-handles.
func benchHandle(metric vecdist.Metric, query, db []float32) (time.Duration, error) {
	h, err := vecdist.BuildHandle(metric, *blocksize, *dim, *ny, *segments, db)
	if err != nil {
		return 0, err
	}

	dis := make([]float32, *segments**ny)

	start := time.Now()
	for it := 0; it < *iters; it++ {
		if err := h.Scan(dis, query); err != nil {
			return 0, err
		}
	}
	return time.Since(start), nil
}

type shard struct{ lo, hi int }

func shardRanges(n, workers int) []shard {
	if workers < 1 {
		workers = 1
	}
	if workers > n {
		workers = n
	}
	out := make([]shard, 0, workers)
	step := n / workers
	lo := 0
	for w := 0; w < workers; w++ {
		hi := lo + step
		if w == workers-1 {
			hi = n
		}
		out = append(out, shard{lo: lo, hi: hi})
		lo = hi
	}
	return out
}

func randomFloats(rng *rand.Rand, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = rng.Float32()*2 - 1
	}
	return out
}
