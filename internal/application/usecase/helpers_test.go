package usecase_test

import (
	"context"
	"sort"

	"github.com/poricom/poricom/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// memStore is an in-memory PropertyStore that counts writes.
type memStore struct {
	data   map[string]map[string]any
	writes int
}

func newMemStore() *memStore {
	return &memStore{data: make(map[string]map[string]any)}
}

func (s *memStore) Get(_ context.Context, section, key string) (any, bool, error) {
	v, ok := s.data[section][key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, section, key string, value any) error {
	if s.data[section] == nil {
		s.data[section] = make(map[string]any)
	}
	s.data[section][key] = value
	s.writes++
	return nil
}

func (s *memStore) Delete(_ context.Context, section, key string) error {
	delete(s.data[section], key)
	return nil
}

func (s *memStore) Keys(_ context.Context, section string) ([]string, error) {
	keys := make([]string, 0, len(s.data[section]))
	for k := range s.data[section] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *memStore) put(section, key string, value any) {
	if s.data[section] == nil {
		s.data[section] = make(map[string]any)
	}
	s.data[section][key] = value
}

func (s *memStore) snapshot() map[string]map[string]any {
	out := make(map[string]map[string]any, len(s.data))
	for section, kv := range s.data {
		out[section] = make(map[string]any, len(kv))
		for k, v := range kv {
			out[section][k] = v
		}
	}
	return out
}
