package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/poricom/poricom/internal/domain/repository"
	"github.com/poricom/poricom/internal/logging"
)

const settingsExt = ".toml"

// FileStore persists each settings section in its own TOML file
// (<dir>/<section>.toml) holding a single [section] table. Every Set rewrites
// the file atomically, so each write is durable on return.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore creates a store rooted at dir, creating it if needed.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("settings directory is empty")
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the settings directory.
func (s *FileStore) Dir() string { return s.dir }

// Path returns the file backing section.
func (s *FileStore) Path(section string) string {
	return filepath.Join(s.dir, section+settingsExt)
}

// Get implements repository.PropertyStore.
func (s *FileStore) Get(ctx context.Context, section, key string) (any, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.readSection(ctx, section)
	if err != nil {
		return nil, false, err
	}
	v, ok := table[key]
	return v, ok, nil
}

// Set implements repository.PropertyStore.
func (s *FileStore) Set(ctx context.Context, section, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.readSection(ctx, section)
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("file", s.Path(section)).Msg("replacing unreadable settings file")
		table = map[string]any{}
	}
	table[key] = value
	return s.writeSection(section, table)
}

// Delete implements repository.PropertyStore.
func (s *FileStore) Delete(ctx context.Context, section, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.readSection(ctx, section)
	if err != nil {
		return err
	}
	if _, ok := table[key]; !ok {
		return nil
	}
	delete(table, key)
	return s.writeSection(section, table)
}

// Keys implements repository.PropertyStore.
func (s *FileStore) Keys(ctx context.Context, section string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	table, err := s.readSection(ctx, section)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// readSection returns the section table; a missing file is an empty table.
func (s *FileStore) readSection(_ context.Context, section string) (map[string]any, error) {
	path := s.Path(section)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	table, ok := doc[section].(map[string]any)
	if !ok {
		return map[string]any{}, nil
	}
	return table, nil
}

func (s *FileStore) writeSection(section string, table map[string]any) error {
	data, err := encodeTOML(map[string]any{section: table})
	if err != nil {
		return fmt.Errorf("failed to encode %s settings: %w", section, err)
	}
	if err := writeFileAtomic(s.Path(section), data); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.Path(section), err)
	}
	return nil
}

var _ repository.PropertyStore = (*FileStore)(nil)

// SectionFromPath returns the section a settings file belongs to, or "" for
// files the store does not own.
func SectionFromPath(path string) string {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || !strings.HasSuffix(base, settingsExt) {
		return ""
	}
	return strings.TrimSuffix(base, settingsExt)
}
