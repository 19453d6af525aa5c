package search

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/liuyuxuan666390/miller-rabin-prime-tester/internal/core"
	"github.com/liuyuxuan666390/miller-rabin-prime-tester/internal/util"
)

// Result is an accepted probable prime with its search metadata.
type Result struct {
	Prime    core.BigUint
	Attempts uint64
	Elapsed  time.Duration
	Worker   int // index of the accepting worker
}

// Search runs the generate -> sieve -> Miller-Rabin retry loop until a
// candidate is accepted, a configured budget runs out, or ctx is canceled.
// Each worker owns an independently seeded generator; no global PRNG state
// is touched. Cancellation is cooperative: workers check between
// candidates and never interrupt an in-flight round.
func Search(ctx context.Context, cfg SearchConfig, logger *logrus.Logger) (Result, error) {
	if err := cfg.normalize(); err != nil {
		return Result{}, err
	}
	if logger == nil {
		logger = logrus.New()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = util.NewSeed()
	}

	start := time.Now()
	reporter := util.NewProgressReporter(logger, cfg.ProgressEvery, cfg.Verbose)
	util.Log(cfg.Verbose, logger, "searching for a %d-bit prime (%d rounds, %d workers, seed=%d)",
		cfg.Bits, cfg.Rounds, cfg.Workers, seed)

	var attempts atomic.Uint64
	var mu sync.Mutex
	var found *Result

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(searchCtx)

	for w := 0; w < cfg.Workers; w++ {
		worker := w
		workerSeed := seed
		if cfg.Workers > 1 {
			workerSeed = util.FoldSeed(seed, uint64(worker))
		}
		g.Go(func() error {
			rng := util.NewRand(workerSeed)
			lastReseed := start
			var local uint64
			for {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				total := attempts.Add(1)
				local++
				if cfg.MaxAttempts > 0 && total > cfg.MaxAttempts {
					return ErrBudgetExhausted
				}
				if cfg.MaxDuration > 0 && time.Since(start) > cfg.MaxDuration {
					return ErrBudgetExhausted
				}
				if cfg.ReseedInterval > 0 && time.Since(lastReseed) >= cfg.ReseedInterval {
					rng = util.NewRand(util.FoldSeed(workerSeed, local))
					lastReseed = time.Now()
					util.Log(cfg.Verbose, logger, "worker %d reseeded after %d attempts", worker, local)
				}

				candidate, err := RandomOdd(rng, cfg.LimbCount, cfg.Bits)
				if err != nil {
					return err
				}
				reporter.Report(total)

				if core.QuickReject(candidate) == core.SieveDivisible {
					continue
				}
				if !IsProbablePrime(rng, candidate, cfg.Rounds) {
					continue
				}

				mu.Lock()
				if found == nil {
					found = &Result{
						Prime:    candidate,
						Attempts: attempts.Load(),
						Elapsed:  time.Since(start),
						Worker:   worker,
					}
				}
				mu.Unlock()
				cancel()
				return nil
			}
		})
	}

	err := g.Wait()
	mu.Lock()
	res := found
	mu.Unlock()
	if res != nil {
		reporter.Finalize(res.Attempts)
		return *res, nil
	}
	reporter.Finalize(attempts.Load())
	return Result{}, err
}
