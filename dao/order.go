package dao

import (
	"sync"

	"LiveSell/models"
)

// OrderStore 订单内存存储，新订单插入队首（与最近订单列表一致）
type OrderStore struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrderStore(seed *SeedData) *OrderStore {
	s := &OrderStore{}
	cp := make([]models.Order, len(seed.Orders))
	for i := range seed.Orders {
		cp[i] = *seed.Orders[i].Clone()
	}
	s.orders = cp
	return s
}

// List 返回全部订单的快照
func (s *OrderStore) List() []*models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Order, len(s.orders))
	for i := range s.orders {
		out[i] = s.orders[i].Clone()
	}
	return out
}

// Get 按订单号查询，不存在返回 nil
func (s *OrderStore) Get(id string) *models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.orders {
		if s.orders[i].ID == id {
			return s.orders[i].Clone()
		}
	}
	return nil
}

// Prepend 新订单插到队首
func (s *OrderStore) Prepend(o *models.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]models.Order{*o.Clone()}, s.orders...)
}

// Update 按订单号覆盖，返回是否命中
func (s *OrderStore) Update(o *models.Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			s.orders[i] = *o.Clone()
			return true
		}
	}
	return false
}

// AppendOrder 实现 live.OrderSink，模拟器产生的订单从这里进入订单台账
func (s *OrderStore) AppendOrder(o *models.Order) {
	s.Prepend(o)
}
