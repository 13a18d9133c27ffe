package types

import "LiveSell/models"

// TopProduct 首页商品榜单条目
type TopProduct struct {
	Product    *models.Product `json:"product"`
	TotalStock int             `json:"total_stock"`
}

// DashboardResponse 店铺首页聚合统计
type DashboardResponse struct {
	TotalRevenue   float64           `json:"total_revenue"`   // 非取消订单总额
	TotalOrders    int               `json:"total_orders"`    // 订单总数
	TotalCustomers int               `json:"total_customers"` // 客户总数
	LiveSales      float64           `json:"live_sales"`      // 直播来源销售额
	PendingOrders  int               `json:"pending_orders"`  // pending + invoiced
	PaidOrders     int               `json:"paid_orders"`     // paid + shipped + delivered
	TotalInventory int               `json:"total_inventory"` // 在库总件数
	ProductCount   int               `json:"product_count"`   // 商品总数
	RecentOrders   []*models.Order   `json:"recent_orders"`   // 最近 5 单
	TopProducts    []TopProduct      `json:"top_products"`    // 前 5 个商品
	Session        *models.LiveSession `json:"session"`       // 当前直播场次
}
