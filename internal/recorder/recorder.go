package recorder

import "MomentumScreener/internal/model"

// Recorder persists screening run history for later inspection.
type Recorder interface {
	RecordRun(res *model.SelectionResult) error
	Close() error
}
