package recorder

import "MomentumScreener/internal/model"

// NoopRecorder is a no-op implementation used when run history is disabled.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *model.SelectionResult) error { return nil }
func (n *NoopRecorder) Close() error                             { return nil }
