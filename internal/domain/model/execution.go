package model

import "strings"

type ExecutionKind string

const (
	ExecutionSuccess ExecutionKind = "success"
	ExecutionError   ExecutionKind = "error"
)

// ExecutionResult is the outcome of one local run. It is recreated on every
// run and discarded on navigation; user-code faults are data here, never
// errors of the executor itself.
type ExecutionResult struct {
	Kind    ExecutionKind `json:"kind"`
	Lines   []string      `json:"lines"`
	Message string        `json:"message,omitempty"`
}

// Text renders the result the way the output pane shows it: captured lines,
// then the error message (if any) on its own line.
func (r ExecutionResult) Text() string {
	var b strings.Builder
	b.WriteString(strings.Join(r.Lines, "\n"))
	if r.Kind == ExecutionError && r.Message != "" {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString("Error: " + r.Message)
	}
	return b.String()
}
