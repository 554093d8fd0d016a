package preview

import (
	"context"

	"github.com/poricom/poricom/internal/application/port"
)

// Recorder keeps the applied frames in memory and optionally forwards them.
type Recorder struct {
	next   port.PreviewTarget
	frames []port.PreviewFrame
}

// NewRecorder creates a recorder forwarding to next, which may be nil.
func NewRecorder(next port.PreviewTarget) *Recorder {
	return &Recorder{next: next}
}

// Apply implements port.PreviewTarget.
func (r *Recorder) Apply(ctx context.Context, frame port.PreviewFrame) error {
	r.frames = append(r.frames, frame)
	if r.next == nil {
		return nil
	}
	return r.next.Apply(ctx, frame)
}

// Last returns the most recent frame and whether any frame was applied.
func (r *Recorder) Last() (port.PreviewFrame, bool) {
	if len(r.frames) == 0 {
		return port.PreviewFrame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

// Count returns the number of applied frames.
func (r *Recorder) Count() int { return len(r.frames) }

var _ port.PreviewTarget = (*Recorder)(nil)
