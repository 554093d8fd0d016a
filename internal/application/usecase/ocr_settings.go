package usecase

import (
	"context"
	"fmt"

	"github.com/poricom/poricom/internal/application/port"
	"github.com/poricom/poricom/internal/domain/entity"
	"github.com/poricom/poricom/internal/domain/repository"
	"github.com/poricom/poricom/internal/logging"
)

// OCRSettings is the buffered group selecting the OCR engine.
type OCRSettings struct {
	group *SettingsGroup
	host  port.HostApplication
}

// NewOCRSettings creates the OCR group over store. host may be nil.
func NewOCRSettings(store repository.PropertyStore, host port.HostApplication) (*OCRSettings, error) {
	s := &OCRSettings{host: host}

	group, err := NewSettingsGroup(GroupConfig{
		Name:    "OCR",
		Section: entity.SectionOCR,
		Catalog: entity.OCRCatalog,
		Policy:  Buffered,
		Store:   store,
		OnSave: func(ctx context.Context, _ *SettingsGroup) error {
			return s.Apply(ctx)
		},
	})
	if err != nil {
		return nil, err
	}
	s.group = group
	return s, nil
}

// Group returns the underlying settings group.
func (s *OCRSettings) Group() *SettingsGroup { return s.group }

// Engine returns the selected engine name, "" for the dispatcher default.
func (s *OCRSettings) Engine() string {
	idx, _ := s.group.Values()[entity.PropEngine].(entity.EnumIndex)
	return entity.EngineName(idx)
}

// Apply hands the selected engine to the host.
func (s *OCRSettings) Apply(ctx context.Context) error {
	log := logging.FromContext(ctx)
	if s.host == nil {
		log.Debug().Msg("no host application, skipping OCR engine switch")
		return nil
	}

	engine := s.Engine()
	if err := s.host.SetOCREngine(ctx, engine); err != nil {
		return fmt.Errorf("failed to set OCR engine: %w", err)
	}
	log.Info().Str("engine", engine).Msg("OCR engine selected")
	return nil
}
