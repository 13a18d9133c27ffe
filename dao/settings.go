package dao

import (
	"sync"

	"LiveSell/models"
)

// SettingsStore 店铺设置内存存储
type SettingsStore struct {
	mu       sync.RWMutex
	settings models.Settings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{settings: DefaultSettings()}
}

func (s *SettingsStore) Settings() models.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *SettingsStore) Replace(settings models.Settings) {
	s.mu.Lock()
	s.settings = settings
	s.mu.Unlock()
}
