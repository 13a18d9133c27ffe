package service

import (
	"sort"

	"LiveSell/dao"
	"LiveSell/models"
	"LiveSell/types"
)

type DashboardService struct {
	Products  *dao.ProductStore
	Orders    *dao.OrderStore
	Customers *dao.CustomerStore
	Sessions  *dao.SessionStore
}

var _ IDashboardService = (*DashboardService)(nil)

type IDashboardService interface {
	Overview() *types.DashboardResponse
}

// Overview 店铺首页聚合：营收、订单分布、库存、最近订单、商品榜单
func (s *DashboardService) Overview() *types.DashboardResponse {
	orders := s.Orders.List()
	products := s.Products.List()
	customers := s.Customers.List()

	resp := &types.DashboardResponse{
		TotalOrders:    len(orders),
		TotalCustomers: len(customers),
		ProductCount:   len(products),
		Session:        s.Sessions.Session(),
	}

	for _, o := range orders {
		if o.Status != models.OrderStatusCancelled {
			resp.TotalRevenue += o.Total
		}
		if o.Source == models.OrderSourceLive {
			resp.LiveSales += o.Total
		}
		switch o.Status {
		case models.OrderStatusPending, models.OrderStatusInvoiced:
			resp.PendingOrders++
		case models.OrderStatusPaid, models.OrderStatusShipped, models.OrderStatusDelivered:
			resp.PaidOrders++
		}
	}

	for _, p := range products {
		resp.TotalInventory += p.TotalStock()
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	if len(orders) > 5 {
		orders = orders[:5]
	}
	resp.RecentOrders = orders

	top := products
	if len(top) > 5 {
		top = top[:5]
	}
	for _, p := range top {
		resp.TopProducts = append(resp.TopProducts, types.TopProduct{
			Product:    p,
			TotalStock: p.TotalStock(),
		})
	}

	return resp
}
