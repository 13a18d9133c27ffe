package service

import (
	"errors"
	"sort"
	"strings"

	"LiveSell/dao"
	"LiveSell/models"
	"LiveSell/types"
)

type CustomerService struct {
	Customers *dao.CustomerStore
	Orders    *dao.OrderStore
}

var _ ICustomerService = (*CustomerService)(nil)

type ICustomerService interface {
	ListCustomers(search, sortBy string) *types.ListCustomersResponse
	GetCustomer(id string) (*types.CustomerDetailResponse, error)
}

// ListCustomers 按姓名/邮箱模糊匹配；sortBy 支持 name/spent/orders，默认按消费额倒序
func (s *CustomerService) ListCustomers(search, sortBy string) *types.ListCustomersResponse {
	all := s.Customers.List()
	search = strings.ToLower(search)

	lifetime := 0.0
	totalOrders := 0
	out := make([]*models.Customer, 0, len(all))
	for _, c := range all {
		lifetime += c.TotalSpent
		totalOrders += c.TotalOrders

		if search != "" &&
			!strings.Contains(strings.ToLower(c.Name), search) &&
			!strings.Contains(strings.ToLower(c.Email), search) {
			continue
		}
		out = append(out, c)
	}

	switch sortBy {
	case "name":
		sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case "orders":
		sort.Slice(out, func(i, j int) bool { return out[i].TotalOrders > out[j].TotalOrders })
	default:
		sort.Slice(out, func(i, j int) bool { return out[i].TotalSpent > out[j].TotalSpent })
	}

	avg := 0.0
	if totalOrders > 0 {
		avg = lifetime / float64(totalOrders)
	}

	return &types.ListCustomersResponse{
		Customers:     out,
		LifetimeValue: lifetime,
		AvgOrderValue: avg,
	}
}

// GetCustomer 客户详情
// 订单按客户姓名匹配：直播模拟产生的订单没有真实客户ID，这是种子数据的既有口径
func (s *CustomerService) GetCustomer(id string) (*types.CustomerDetailResponse, error) {
	customer := s.Customers.Get(id)
	if customer == nil {
		return nil, errors.New("客户不存在")
	}

	orders := make([]*models.Order, 0)
	for _, o := range s.Orders.List() {
		if o.CustomerName == customer.Name {
			orders = append(orders, o)
		}
	}

	return &types.CustomerDetailResponse{Customer: customer, Orders: orders}, nil
}
