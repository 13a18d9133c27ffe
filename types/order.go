package types

import "LiveSell/models"

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"` // 目标状态
}

// OrderStats 订单列表页顶部统计
type OrderStats struct {
	TotalRevenue float64 `json:"total_revenue"` // 非取消订单总额
	Pending      int     `json:"pending"`       // pending + invoiced
	Fulfilled    int     `json:"fulfilled"`     // shipped + delivered
	LiveOrders   int     `json:"live_orders"`   // 直播来源订单数
}

type ListOrdersResponse struct {
	Orders []*models.Order `json:"orders"` // 按创建时间倒序
	Stats  OrderStats      `json:"stats"`
}
