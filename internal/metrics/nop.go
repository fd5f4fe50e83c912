package metrics

import "github.com/diegoclair/shift-roster/internal/domain/contract"

// NopMetrics discards every observation. Used by tests and the CLI.
type NopMetrics struct{}

var _ contract.ScheduleMetrics = (*NopMetrics)(nil)

func NewNop() *NopMetrics {
	return &NopMetrics{}
}

func (n *NopMetrics) ObserveGeneration(_ /* seconds */ float64, _ /* days */, _ /* employees */ int) {}

func (n *NopMetrics) RecordShortfall(_ /* kind */ string) {}
