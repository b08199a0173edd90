package types

import "time"

const (
	StatusClean    = "clean"
	StatusResidual = "residual_missing"
	StatusFailed   = "failed"
)

// RunSummary is the outcome of one cleaning run.
type RunSummary struct {
	RunID            string            `json:"run_id"`
	Input            string            `json:"input"`
	Output           string            `json:"output"`
	Rows             int               `json:"rows"`
	ImputedColumns   map[string]int    `json:"imputed_columns"`
	ImputedValues    map[string]string `json:"imputed_values"`
	RemainingColumns []string          `json:"remaining_columns,omitempty"`
	StartedAt        time.Time         `json:"started_at"`
	Duration         time.Duration     `json:"duration_ns"`
	Status           string            `json:"status"`
}
