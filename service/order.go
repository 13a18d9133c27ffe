package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"LiveSell/dao"
	"LiveSell/models"
	"LiveSell/types"
)

type OrderService struct {
	Orders *dao.OrderStore
}

var _ IOrderService = (*OrderService)(nil)

type IOrderService interface {
	ListOrders(search, status, source string) *types.ListOrdersResponse
	UpdateStatus(id, status string) (*models.Order, error)
}

// 线性流转表：每个状态只有一个合法的下一步，不允许跳级
var nextOrderStatus = map[string]string{
	models.OrderStatusPending:  models.OrderStatusInvoiced,
	models.OrderStatusInvoiced: models.OrderStatusPaid,
	models.OrderStatusPaid:     models.OrderStatusShipped,
	models.OrderStatusShipped:  models.OrderStatusDelivered,
}

// ListOrders 模糊匹配订单号/客户名/邮箱，状态与来源精确过滤，创建时间倒序
func (s *OrderService) ListOrders(search, status, source string) *types.ListOrdersResponse {
	all := s.Orders.List()
	search = strings.ToLower(search)

	stats := types.OrderStats{}
	out := make([]*models.Order, 0, len(all))
	for _, o := range all {
		if o.Status != models.OrderStatusCancelled {
			stats.TotalRevenue += o.Total
		}
		switch o.Status {
		case models.OrderStatusPending, models.OrderStatusInvoiced:
			stats.Pending++
		case models.OrderStatusShipped, models.OrderStatusDelivered:
			stats.Fulfilled++
		}
		if o.Source == models.OrderSourceLive {
			stats.LiveOrders++
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(o.ID), search) &&
			!strings.Contains(strings.ToLower(o.CustomerName), search) &&
			!strings.Contains(strings.ToLower(o.CustomerEmail), search) {
			continue
		}
		if status != "" && status != "all" && o.Status != status {
			continue
		}
		if source != "" && source != "all" && o.Source != source {
			continue
		}
		out = append(out, o)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	return &types.ListOrdersResponse{Orders: out, Stats: stats}
}

// UpdateStatus 订单状态流转
// pending -> invoiced -> paid -> shipped -> delivered 逐级推进；
// cancelled 可以从任何非终态进入；进入 paid 时打支付时间戳
func (s *OrderService) UpdateStatus(id, status string) (*models.Order, error) {
	order := s.Orders.Get(id)
	if order == nil {
		return nil, errors.New("订单不存在")
	}

	if status == models.OrderStatusCancelled {
		if order.Terminal() {
			return nil, fmt.Errorf("订单 %s 已是终态 %s，不能取消", order.ID, order.Status)
		}
	} else if nextOrderStatus[order.Status] != status {
		return nil, fmt.Errorf("订单状态不能从 %s 变为 %s", order.Status, status)
	}

	order.Status = status
	if status == models.OrderStatusPaid {
		now := time.Now()
		order.PaidAt = &now
	}
	s.Orders.Update(order)
	return order, nil
}
