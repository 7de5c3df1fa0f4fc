package flock

import (
	"fmt"

	"go.uber.org/zap"
)

// RollCall is the act in which every actor, in spawn order, shows what it
// can do: a header line when Header is set, its flight if it has that
// capability, its vocalization, then a blank line.
type RollCall struct {
	Actors Query
	Header func(*Member) string
}

func (r *RollCall) Perform(stage *Stage) error {
	for id, member := range r.Actors.Iter() {
		if r.Header != nil {
			if _, err := fmt.Fprintln(stage.Out, r.Header(member)); err != nil {
				return err
			}
		}

		if member.Actor.CanFly() {
			line, err := member.Actor.PerformFlight()
			if err != nil {
				return fmt.Errorf("actor %s: %w", member.Name, err)
			}
			if _, err := fmt.Fprintln(stage.Out, line); err != nil {
				return err
			}
		} else {
			stage.Logger.Debug("skipping flight", zap.String("name", member.Name), zap.Uint64("id", uint64(id)))
		}

		if _, err := fmt.Fprintln(stage.Out, member.Actor.PerformVocalization()); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(stage.Out); err != nil {
			return err
		}
	}
	return nil
}
