package models

// Customer 客户档案
// TotalOrders/TotalSpent 是种子数据里的静态汇总，不会随订单流水重算
type Customer struct {
	ID          string  `json:"id"`            // 客户ID
	Name        string  `json:"name"`          // 姓名
	Email       string  `json:"email"`         // 邮箱
	Phone       string  `json:"phone"`         // 电话
	Avatar      string  `json:"avatar"`        // 头像 URL
	TotalOrders int     `json:"total_orders"`  // 历史订单数（静态）
	TotalSpent  float64 `json:"total_spent"`   // 历史消费额（静态）
	JoinedAt    string  `json:"joined_at"`     // 注册日期 yyyy-mm-dd
	LastOrderAt string  `json:"last_order_at"` // 最近下单日期 yyyy-mm-dd
}
