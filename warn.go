package tunit

import (
	"sync"

	"go.uber.org/zap"
)

var (
	loggerOnce sync.Once
	logger     *zap.SugaredLogger
)

func log() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewProduction()
		if err != nil {
			l = zap.NewNop()
		}
		logger = l.Sugar()
	})
	return logger
}

// WithLogger overrides the package-level logger, letting a host
// application route deprecation notices into its own zap core.
func WithLogger(l *zap.Logger) {
	loggerOnce.Do(func() {})
	logger = l.Sugar()
}

var (
	legacyTupleWarnOnce sync.Once
	tzinfoWarnOnce      sync.Once
)

// warnLegacyTuple emits the one-shot deprecation notice for a 3- or
// 4-element descriptor tuple (spec.md §4.E, §7): the legacy "event"
// slot is ignored.
func warnLegacyTuple() {
	legacyTupleWarnOnce.Do(func() {
		log().Warn("descriptor tuple with a legacy event slot was supplied; the event slot is ignored")
	})
}

// warnTzinfo emits the one-shot deprecation notice for a tzinfo-bearing
// broken-down object input (spec.md §4.F, §7).
func warnTzinfo() {
	tzinfoWarnOnce.Do(func() {
		log().Warn("datetime-like input carried tzinfo; offset was normalised into UTC and discarded")
	})
}
