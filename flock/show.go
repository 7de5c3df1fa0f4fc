package flock

import (
	"context"
	"fmt"
	"io"
	"reflect"
	"time"

	"go.uber.org/zap"
)

// Act is one performance over the flock. Acts may declare Query fields;
// the Show binds them on Register and executes them before every Perform.
type Act interface {
	Perform(stage *Stage) error
}

// Stage is what an Act performs against during one round.
type Stage struct {
	Round    int64
	Flock    *Flock
	Commands *Commands
	Out      io.Writer
	Logger   *zap.Logger
}

// ShowStats provides statistics about show execution.
type ShowStats struct {
	ActCount    int
	TotalRounds int64
	Acts        []ActStats
}

// ActStats provides execution statistics for a single act.
type ActStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type actStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type registeredAct struct {
	act     Act
	queries []*Query
	stats   *actStatsInternal
}

// Show runs registered acts over a flock, in registration order.
type Show struct {
	flock  *Flock
	out    io.Writer
	logger *zap.Logger
	acts   []*registeredAct
	rounds int64
}

// NewShow creates a show writing its performances to out.
// A nil logger disables logging.
func NewShow(f *Flock, out io.Writer, logger *zap.Logger) *Show {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Show{
		flock:  f,
		out:    out,
		logger: logger,
	}
}

// Register adds an act to the show and binds its Query fields to the flock.
func (s *Show) Register(act Act) {
	actType := reflect.TypeOf(act)
	if actType.Kind() == reflect.Ptr {
		actType = actType.Elem()
	}

	s.acts = append(s.acts, &registeredAct{
		act:     act,
		queries: s.bindQueries(act),
		stats: &actStatsInternal{
			name:        actType.Name(),
			minDuration: time.Duration(1<<63 - 1),
		},
	})
}

// bindQueries initializes every exported Query or *Query field of act.
func (s *Show) bindQueries(act Act) []*Query {
	actValue := reflect.ValueOf(act)
	if actValue.Kind() == reflect.Ptr {
		actValue = actValue.Elem()
	}
	if actValue.Kind() != reflect.Struct {
		return nil
	}

	var queries []*Query
	for i := 0; i < actValue.NumField(); i++ {
		field := actValue.Field(i)
		if !field.CanSet() {
			continue
		}

		switch q := field.Addr().Interface().(type) {
		case *Query:
			q.Init(s.flock)
			queries = append(queries, q)
		case **Query:
			if *q == nil {
				*q = &Query{}
			}
			(*q).Init(s.flock)
			queries = append(queries, *q)
		}
	}
	return queries
}

// Once runs every act once, then flushes the commands they queued.
// The first failing act aborts the round; its queued commands are discarded.
func (s *Show) Once() error {
	s.rounds++
	stage := &Stage{
		Round:    s.rounds,
		Flock:    s.flock,
		Commands: newCommands(),
		Out:      s.out,
		Logger:   s.logger,
	}

	for _, ra := range s.acts {
		for _, q := range ra.queries {
			q.Execute()
		}

		start := time.Now()
		err := ra.act.Perform(stage)
		duration := time.Since(start)

		stats := ra.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration
		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}

		if err != nil {
			s.logger.Error("act failed", zap.String("act", stats.name), zap.Int64("round", s.rounds), zap.Error(err))
			return fmt.Errorf("act %s: %w", stats.name, err)
		}
	}

	if n := stage.Commands.Len(); n > 0 {
		s.logger.Debug("flushing commands", zap.Int("commands", n), zap.Int64("round", s.rounds))
	}
	stage.Commands.Flush(s.flock)
	return nil
}

// Run executes rounds at the given interval until ctx is done or a round fails.
func (s *Show) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := s.Once(); err != nil {
				return err
			}
		}
	}
}

// Stats returns statistics about act execution.
func (s *Show) Stats() *ShowStats {
	stats := &ShowStats{
		ActCount:    len(s.acts),
		TotalRounds: s.rounds,
		Acts:        make([]ActStats, len(s.acts)),
	}

	for i, ra := range s.acts {
		internal := ra.stats
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Acts[i] = ActStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}
	return stats
}
