// Command mallard composes actors from swappable behaviors and puts them
// through a roll call, printing what each one does.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/mallard/behavior"
	"github.com/plus3/mallard/flock"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type options struct {
	rosterPath string
	verbose    bool
	stats      bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "mallard",
		Short: "Compose actors from swappable behaviors and run a roll call",
		Long: `mallard builds actors ("ducks") from independent flight and vocalization
behaviors and prints, in order, what each one does.

Without flags the reference roster is used: WildDuck, MountainDuck and
RubberDuck. Actors without a flight behavior skip flying.

Roster files are YAML:

  actors:
    - name: WildDuck
      description: flying normal, quacking loud
      flight: normal       # normal | high | none
      vocalization: loud   # loud | rapid | squeak`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		// Errors, including bad flags and arguments, are printed by cobra to stderr.
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(stderr, opts.verbose)
			defer func() { _ = logger.Sync() }()

			return run(opts, stdout, logger)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVar(&opts.rosterPath, "roster", "", "YAML file listing the actors to perform")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVar(&opts.stats, "stats", false, "Print a run report after the roll call")
	return cmd
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}

func run(opts *options, stdout io.Writer, logger *zap.Logger) error {
	runID := uuid.New()
	logger = logger.With(zap.String("run_id", runID.String()))
	start := time.Now()

	roster := defaultRoster()
	if opts.rosterPath != "" {
		var err error
		if roster, err = loadRoster(opts.rosterPath); err != nil {
			return err
		}
		logger.Debug("loaded roster", zap.String("path", opts.rosterPath), zap.Int("actors", len(roster.Actors)))
	}

	catalog := behavior.DefaultCatalog()
	f := flock.New(logger)
	headers := make(map[uint64]string, len(roster.Actors))
	for i, entry := range roster.Actors {
		actor, err := catalog.Build(entry.Flight, entry.Vocalization)
		if err != nil {
			return fmt.Errorf("actor %d (%s): %w", i+1, entry.Name, err)
		}
		id := f.Spawn(entry.Name, actor)
		member, ok := f.Get(id)
		if !ok {
			return fmt.Errorf("actor %d (%s): missing after spawn", i+1, entry.Name)
		}
		headers[member.Seq] = entry.Header()
	}

	show := flock.NewShow(f, stdout, logger)
	show.Register(&flock.RollCall{
		Header: func(m *flock.Member) string { return headers[m.Seq] },
	})
	if err := show.Once(); err != nil {
		return err
	}
	logger.Info("roll call complete", zap.Int("actors", f.Len()))

	if !opts.stats {
		return nil
	}

	report := buildReport(runID, f, show, catalog)
	report.TotalTime = time.Since(start)
	if err := report.Generate(stdout); err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}
	return nil
}

func buildReport(runID uuid.UUID, f *flock.Flock, show *flock.Show, catalog *behavior.Catalog) *Report {
	report := &Report{
		RunID:  runID,
		Actors: f.Len(),
		Show:   show.Stats(),
	}

	for _, archetype := range f.Archetypes() {
		if archetype.Len() == 0 {
			continue
		}
		if archetype.CanFly() {
			report.Flyers += archetype.Len()
		}

		summary := ArchetypeSummary{ID: archetype.ID(), Actors: archetype.Len()}
		for id := range archetype.Iter() {
			member, ok := f.Get(id)
			if !ok {
				continue
			}
			summary.Behavior = catalog.Name(member.Actor.Flight()) + "/" + catalog.Name(member.Actor.Vocalization())
			break
		}
		report.Archetypes = append(report.Archetypes, summary)
	}
	return report
}
