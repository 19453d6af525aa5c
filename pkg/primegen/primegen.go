// Package primegen is the public surface of the prime generator: random
// probable-prime search at a configurable bit length, and one-shot
// primality checks of externally supplied hex values.
//
// The randomness behind both is a seeded math/rand generator, inherited
// by design and not cryptographically secure; see internal/util.
package primegen

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/liuyuxuan666390/miller-rabin-prime-tester/internal/core"
	"github.com/liuyuxuan666390/miller-rabin-prime-tester/internal/search"
	"github.com/liuyuxuan666390/miller-rabin-prime-tester/internal/util"
)

// Config is the search configuration; see search.SearchConfig for the
// budget and reproducibility semantics.
type Config = search.SearchConfig

// Result is an accepted prime plus attempt/timing metadata.
type Result = search.Result

// WitnessReport is one recorded Miller-Rabin round.
type WitnessReport = search.WitnessReport

// DefaultConfig returns the default search configuration for a bit length.
func DefaultConfig(bits int) Config {
	return search.DefaultSearchConfig(bits)
}

// Generator runs searches and checks against one logger.
type Generator struct {
	logger *logrus.Logger
}

// New creates a Generator. A nil logger falls back to a default logrus
// instance.
func New(logger *logrus.Logger) *Generator {
	if logger == nil {
		logger = logrus.New()
	}
	return &Generator{logger: logger}
}

// Generate searches for a probable prime per cfg. It returns
// search.ErrBudgetExhausted when a configured budget runs out first.
func (g *Generator) Generate(ctx context.Context, cfg Config) (Result, error) {
	return search.Search(ctx, cfg, g.logger)
}

// CheckResult is the outcome of a one-shot primality check.
type CheckResult struct {
	Value         core.BigUint
	ProbablePrime bool
	// Sieved is true when the small-prime stage decided the value exactly
	// and no Miller-Rabin rounds ran; Witnesses is nil in that case.
	Sieved    bool
	Witnesses []WitnessReport
}

// Check tests an explicit hex-encoded candidate: the sieve decides trivial
// cases exactly, anything else gets the requested number of random
// witness rounds, all of them recorded. seed 0 draws a fresh one.
func (g *Generator) Check(hexValue string, rounds int, seed uint64) (CheckResult, error) {
	limbCount := search.LimbsForBits(core.HexDigits(hexValue) * 4)
	if limbCount == 0 {
		limbCount = 1
	}
	n, err := core.ParseHex(limbCount, hexValue)
	if err != nil {
		return CheckResult{}, fmt.Errorf("check: %w", err)
	}
	if rounds <= 0 {
		rounds = 10
	}
	if seed == 0 {
		seed = util.NewSeed()
	}
	rng := util.NewRand(seed)
	ok, reports := search.Test(rng, n, rounds)
	return CheckResult{
		Value:         n,
		ProbablePrime: ok,
		Sieved:        reports == nil,
		Witnesses:     reports,
	}, nil
}
