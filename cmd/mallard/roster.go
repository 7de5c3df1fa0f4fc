package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Roster lists the actors to put through the roll call, in order.
type Roster struct {
	Actors []RosterEntry `yaml:"actors"`
}

// RosterEntry describes one actor by the names of its behavior variants.
type RosterEntry struct {
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Flight       string `yaml:"flight"`
	Vocalization string `yaml:"vocalization"`
}

// Header is the line printed before the entry's performance.
func (e RosterEntry) Header() string {
	if e.Description == "" {
		return e.Name
	}
	return fmt.Sprintf("%s (%s)", e.Name, e.Description)
}

func defaultRoster() *Roster {
	return &Roster{
		Actors: []RosterEntry{
			{Name: "WildDuck", Description: "flying normal, quacking loud", Flight: "normal", Vocalization: "loud"},
			{Name: "MountainDuck", Description: "flying high, quacking loud", Flight: "high", Vocalization: "loud"},
			{Name: "RubberDuck", Description: "won't fly, squeaks", Flight: "none", Vocalization: "squeak"},
		},
	}
}

func loadRoster(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}

	roster, err := parseRoster(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return roster, nil
}

func parseRoster(r io.Reader) (*Roster, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var roster Roster
	if err := dec.Decode(&roster); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("roster is empty")
		}
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}

	if len(roster.Actors) == 0 {
		return nil, errors.New("roster lists no actors")
	}
	for i, entry := range roster.Actors {
		if entry.Name == "" {
			return nil, fmt.Errorf("actor %d: name is required", i+1)
		}
	}
	return &roster, nil
}
