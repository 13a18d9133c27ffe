package dao

import (
	"sync"

	"LiveSell/models"
)

// ProductStore 商品内存存储
// 读操作返回深拷贝快照，写操作整体替换，调用方拿到的切片与内部状态互不影响
type ProductStore struct {
	mu       sync.RWMutex
	products []models.Product
}

func NewProductStore(seed *SeedData) *ProductStore {
	s := &ProductStore{}
	s.Replace(seed.Products)
	return s
}

// List 返回全部商品的快照
func (s *ProductStore) List() []*models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.Product, len(s.products))
	for i := range s.products {
		out[i] = s.products[i].Clone()
	}
	return out
}

// Get 按ID查询，不存在返回 nil
func (s *ProductStore) Get(id string) *models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.products {
		if s.products[i].ID == id {
			return s.products[i].Clone()
		}
	}
	return nil
}

// Replace 整体替换商品集合
func (s *ProductStore) Replace(products []models.Product) {
	cp := make([]models.Product, len(products))
	for i := range products {
		cp[i] = *products[i].Clone()
	}

	s.mu.Lock()
	s.products = cp
	s.mu.Unlock()
}

// Append 追加一个商品
func (s *ProductStore) Append(p *models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, *p.Clone())
}

// Update 按ID覆盖，返回是否命中
func (s *ProductStore) Update(p *models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = *p.Clone()
			return true
		}
	}
	return false
}

// Delete 按ID删除，返回是否命中
func (s *ProductStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return true
		}
	}
	return false
}

// Products 实现 live.Catalog
func (s *ProductStore) Products() []*models.Product {
	return s.List()
}

// ReplaceProducts 实现 live.Catalog，模拟器扣库存后整体写回
func (s *ProductStore) ReplaceProducts(products []*models.Product) {
	cp := make([]models.Product, len(products))
	for i := range products {
		cp[i] = *products[i].Clone()
	}

	s.mu.Lock()
	s.products = cp
	s.mu.Unlock()
}
