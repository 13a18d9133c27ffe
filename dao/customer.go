package dao

import (
	"sync"

	"LiveSell/models"
)

// CustomerStore 客户内存存储，当前只读（种子数据）
type CustomerStore struct {
	mu        sync.RWMutex
	customers []models.Customer
}

func NewCustomerStore(seed *SeedData) *CustomerStore {
	s := &CustomerStore{}
	cp := make([]models.Customer, len(seed.Customers))
	copy(cp, seed.Customers)
	s.customers = cp
	return s
}

// List 返回全部客户的快照
func (s *CustomerStore) List() []*models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Customer, len(s.customers))
	for i := range s.customers {
		c := s.customers[i]
		out[i] = &c
	}
	return out
}

// Get 按ID查询，不存在返回 nil
func (s *CustomerStore) Get(id string) *models.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.customers {
		if s.customers[i].ID == id {
			c := s.customers[i]
			return &c
		}
	}
	return nil
}
