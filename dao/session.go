package dao

import (
	"sync"

	"LiveSell/models"
)

// SessionStore 直播场次内存存储，单场次，整体替换式更新
type SessionStore struct {
	mu      sync.RWMutex
	session models.LiveSession
}

func NewSessionStore(seed *SeedData) *SessionStore {
	return &SessionStore{session: *seed.Session.Clone()}
}

// Session 返回当前场次的快照
func (s *SessionStore) Session() *models.LiveSession {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Clone()
}

// UpdateSession 实现 live.SessionUpdater，整体替换
func (s *SessionStore) UpdateSession(sess *models.LiveSession) {
	cp := *sess.Clone()

	s.mu.Lock()
	s.session = cp
	s.mu.Unlock()
}
