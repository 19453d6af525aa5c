package search

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestSearchFindsPrime(t *testing.T) {
	cfg := DefaultSearchConfig(30)
	cfg.Seed = 12345
	res, err := Search(context.Background(), cfg, quietLogger())
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if res.Prime.BitLen() != 30 {
		t.Errorf("prime has %d bits, want 30", res.Prime.BitLen())
	}
	if res.Prime.IsEven() {
		t.Errorf("prime %s is even", res.Prime)
	}
	if res.Attempts == 0 {
		t.Errorf("attempt count not tracked")
	}
	rng := rand.New(rand.NewSource(1))
	if !IsProbablePrime(rng, res.Prime, 20) {
		t.Errorf("accepted value %s fails an independent primality check", res.Prime)
	}
}

func TestSearchDeterministicWithSeed(t *testing.T) {
	cfg := DefaultSearchConfig(24)
	cfg.Seed = 99
	cfg.Workers = 1
	first, err := Search(context.Background(), cfg, quietLogger())
	if err != nil {
		t.Fatalf("first search failed: %v", err)
	}
	second, err := Search(context.Background(), cfg, quietLogger())
	if err != nil {
		t.Fatalf("second search failed: %v", err)
	}
	if first.Prime.Cmp(second.Prime) != 0 {
		t.Errorf("same seed produced different primes: %s vs %s", first.Prime, second.Prime)
	}
	if first.Attempts != second.Attempts {
		t.Errorf("same seed produced different attempt counts: %d vs %d", first.Attempts, second.Attempts)
	}
}

func TestSearchParallelWorkers(t *testing.T) {
	cfg := DefaultSearchConfig(30)
	cfg.Seed = 7
	cfg.Workers = 4
	res, err := Search(context.Background(), cfg, quietLogger())
	if err != nil {
		t.Fatalf("parallel search failed: %v", err)
	}
	if res.Prime.BitLen() != 30 {
		t.Errorf("prime has %d bits, want 30", res.Prime.BitLen())
	}
	if res.Worker < 0 || res.Worker >= 4 {
		t.Errorf("accepting worker index %d out of range", res.Worker)
	}
}

func TestSearchAttemptBudgetIsHardStop(t *testing.T) {
	// Testing 1024-bit candidates with one attempt allowed: the budget
	// must trip long before a prime shows up.
	cfg := DefaultSearchConfig(1024)
	cfg.Seed = 5
	cfg.MaxAttempts = 1
	cfg.Rounds = 1
	_, err := Search(context.Background(), cfg, quietLogger())
	if !errors.Is(err, ErrBudgetExhausted) {
		t.Fatalf("err = %v, want ErrBudgetExhausted", err)
	}
}

func TestSearchDurationBudgetIsHardStop(t *testing.T) {
	cfg := DefaultSearchConfig(1024)
	cfg.Seed = 5
	cfg.MaxDuration = time.Nanosecond
	_, err := Search(context.Background(), cfg, quietLogger())
	if !errors.Is(err, ErrBudgetExhausted) {
		t.Fatalf("err = %v, want ErrBudgetExhausted", err)
	}
}

func TestSearchHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := DefaultSearchConfig(1024)
	cfg.Seed = 5
	_, err := Search(ctx, cfg, quietLogger())
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestSearchRejectsTinyBitLength(t *testing.T) {
	cfg := DefaultSearchConfig(1)
	if _, err := Search(context.Background(), cfg, quietLogger()); !errors.Is(err, ErrBitLengthTooSmall) {
		t.Fatalf("bits=1: err = %v, want ErrBitLengthTooSmall", err)
	}
}
