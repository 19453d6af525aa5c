package util

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Log logs a message if verbose is true.
func Log(verbose bool, logger *logrus.Logger, format string, args ...any) {
	if verbose {
		logger.Infof(format, args...)
	}
}

// ProgressReporter tracks and prints search progress. A prime search has no
// known total, so progress is reported every 'every' attempts as an
// attempt count, elapsed time and rate rather than a percentage.
// Safe for use from concurrent search workers.
type ProgressReporter struct {
	mu        sync.Mutex
	logger    *logrus.Logger
	every     uint64
	nextAt    uint64
	startTime time.Time
	enabled   bool
}

// NewProgressReporter creates a reporter firing every 'every' attempts.
func NewProgressReporter(logger *logrus.Logger, every uint64, enable bool) *ProgressReporter {
	if every == 0 {
		every = 1
	}
	return &ProgressReporter{
		logger:    logger,
		every:     every,
		nextAt:    every,
		startTime: time.Now(),
		enabled:   enable,
	}
}

// Report logs a progress line when the attempt count crosses the next
// reporting step. attempts is the cumulative count across all workers.
func (p *ProgressReporter) Report(attempts uint64) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if attempts < p.nextAt {
		return
	}
	for p.nextAt <= attempts {
		p.nextAt += p.every
	}
	elapsed := time.Since(p.startTime)
	p.logger.WithFields(logrus.Fields{
		"attempts": attempts,
		"elapsed":  elapsed.Round(time.Millisecond).String(),
		"rate":     rate(attempts, elapsed),
	}).Info("searching")
}

// Finalize logs the closing progress line.
func (p *ProgressReporter) Finalize(attempts uint64) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	elapsed := time.Since(p.startTime)
	p.logger.WithFields(logrus.Fields{
		"attempts": attempts,
		"elapsed":  elapsed.Round(time.Millisecond).String(),
		"rate":     rate(attempts, elapsed),
	}).Info("search finished")
}

func rate(attempts uint64, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(attempts) / secs
}
