package service

import (
	"testing"

	"LiveSell/dao"
	"LiveSell/models"
)

func newCustomerService() *CustomerService {
	seed := &dao.SeedData{
		Customers: []models.Customer{
			{ID: "c1", Name: "Sarah Johnson", Email: "sarah@gmail.com", TotalOrders: 4, TotalSpent: 200},
			{ID: "c2", Name: "Mike Chen", Email: "mike@outlook.com", TotalOrders: 2, TotalSpent: 80},
			{ID: "c3", Name: "Amanda White", Email: "amanda@yahoo.com", TotalOrders: 6, TotalSpent: 150},
		},
		Orders: []models.Order{
			{ID: "ORD-001", CustomerName: "Sarah Johnson", Total: 50},
			{ID: "ORD-002", CustomerName: "Mike Chen", Total: 30},
			{ID: "ORD-003", CustomerName: "Sarah Johnson", Total: 70},
		},
	}
	return &CustomerService{
		Customers: dao.NewCustomerStore(seed),
		Orders:    dao.NewOrderStore(seed),
	}
}

func TestListCustomersSortAndAggregates(t *testing.T) {
	s := newCustomerService()

	resp := s.ListCustomers("", "")
	if len(resp.Customers) != 3 {
		t.Fatalf("不过滤应返回全部客户")
	}
	// 默认按消费额倒序
	if resp.Customers[0].ID != "c1" {
		t.Errorf("默认排序应按消费额倒序，队首 %s", resp.Customers[0].ID)
	}
	if resp.LifetimeValue != 430 {
		t.Errorf("客户总价值应为 430，实际 %v", resp.LifetimeValue)
	}
	// 430 / 12 笔
	if resp.AvgOrderValue < 35.8 || resp.AvgOrderValue > 35.9 {
		t.Errorf("客单价计算不正确: %v", resp.AvgOrderValue)
	}

	resp = s.ListCustomers("", "name")
	if resp.Customers[0].ID != "c3" {
		t.Errorf("按姓名排序队首应为 Amanda，实际 %s", resp.Customers[0].Name)
	}

	resp = s.ListCustomers("", "orders")
	if resp.Customers[0].ID != "c3" {
		t.Errorf("按单量排序队首应为 c3，实际 %s", resp.Customers[0].ID)
	}
}

func TestListCustomersSearch(t *testing.T) {
	s := newCustomerService()

	resp := s.ListCustomers("mike", "")
	if len(resp.Customers) != 1 || resp.Customers[0].ID != "c2" {
		t.Errorf("按姓名搜索结果不正确")
	}
	// 搜索不影响全局汇总
	if resp.LifetimeValue != 430 {
		t.Errorf("搜索时汇总仍应覆盖全量客户，实际 %v", resp.LifetimeValue)
	}

	resp = s.ListCustomers("yahoo", "")
	if len(resp.Customers) != 1 || resp.Customers[0].ID != "c3" {
		t.Errorf("按邮箱搜索结果不正确")
	}
}

func TestGetCustomerWithOrders(t *testing.T) {
	s := newCustomerService()

	resp, err := s.GetCustomer("c1")
	if err != nil {
		t.Fatal(err)
	}
	if len(resp.Orders) != 2 {
		t.Errorf("Sarah 应关联 2 笔订单，实际 %d", len(resp.Orders))
	}

	if _, err := s.GetCustomer("ghost"); err == nil {
		t.Errorf("未知客户应报错")
	}
}
