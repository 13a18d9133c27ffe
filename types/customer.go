package types

import "LiveSell/models"

// ListCustomersResponse 客户列表
type ListCustomersResponse struct {
	Customers     []*models.Customer `json:"customers"`
	LifetimeValue float64            `json:"lifetime_value"`  // 所有客户历史消费总额
	AvgOrderValue float64            `json:"avg_order_value"` // 历史客单价
}

// CustomerDetailResponse 客户详情，订单按客户姓名匹配（种子数据的既有口径）
type CustomerDetailResponse struct {
	Customer *models.Customer `json:"customer"`
	Orders   []*models.Order  `json:"orders"`
}
