package main

import (
	"io"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/plus3/mallard/flock"
)

// Report summarizes one run of the roll call.
type Report struct {
	RunID      uuid.UUID
	Actors     int
	Flyers     int
	Archetypes []ArchetypeSummary
	TotalTime  time.Duration
	Show       *flock.ShowStats
}

// ArchetypeSummary describes one behavior set and how many actors share it.
type ArchetypeSummary struct {
	ID       uint32
	Behavior string
	Actors   int
}

const reportTemplate = `
# Roll Call Report

- **Run ID:** {{.RunID}}
- **Actors:** {{.Actors}} ({{.Flyers}} can fly)
- **Total Time:** {{.TotalTime}}

## Behavior Sets
{{- range .Archetypes}}
- {{printf "%08x" .ID}} {{.Behavior}}: {{.Actors}}
{{- end}}

## Acts
{{- range .Show.Acts}}
- **{{.Name}}:** {{.ExecutionCount}} run(s), avg {{.AvgDuration}}, max {{.MaxDuration}}
{{- end}}
`

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, r)
}
