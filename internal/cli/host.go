package cli

import (
	"context"
	"sync"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/poricom/poricom/internal/logging"
)

// Host records what the settings groups push to the running application.
// The CLI has no live capture window, so it only keeps the last state.
type Host struct {
	mu       sync.Mutex
	bindings []entity.ShortcutBinding
	engine   string
}

// NewHost creates an empty Host.
func NewHost() *Host {
	return &Host{}
}

// RegisterShortcuts implements port.HostApplication.
func (h *Host) RegisterShortcuts(ctx context.Context, bindings []entity.ShortcutBinding) error {
	h.mu.Lock()
	h.bindings = append(h.bindings[:0], bindings...)
	h.mu.Unlock()

	log := logging.FromContext(ctx)
	for _, b := range bindings {
		log.Debug().Str("action", b.Action).Str("accelerator", b.Accelerator).Msg("shortcut registered")
	}
	return nil
}

// SetOCREngine implements port.HostApplication.
func (h *Host) SetOCREngine(ctx context.Context, name string) error {
	h.mu.Lock()
	h.engine = name
	h.mu.Unlock()

	logging.FromContext(ctx).Debug().Str("engine", name).Msg("OCR engine selected")
	return nil
}

// Bindings returns the last registered shortcuts.
func (h *Host) Bindings() []entity.ShortcutBinding {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]entity.ShortcutBinding, len(h.bindings))
	copy(out, h.bindings)
	return out
}

// Engine returns the last selected OCR engine, "" for the default.
func (h *Host) Engine() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.engine
}

var _ port.HostApplication = (*Host)(nil)
