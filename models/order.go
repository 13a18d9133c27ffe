package models

import "time"

// 订单状态，线性推进：pending -> invoiced -> paid -> shipped -> delivered
// cancelled 可以从除 delivered/cancelled 以外的任意状态进入
const (
	OrderStatusPending   = "pending"
	OrderStatusInvoiced  = "invoiced"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
)

// 订单来源
const (
	OrderSourceLive    = "live"    // 直播下单
	OrderSourceWebsite = "website" // 网站下单
	OrderSourceManual  = "manual"  // 手工录入
)

// Order 订单主体，ID 形如 ORD-NNN
type Order struct {
	ID            string      `json:"id"`                // 订单号 ORD-NNN
	CustomerID    string      `json:"customer_id"`       // 客户ID
	CustomerName  string      `json:"customer_name"`     // 客户名称
	CustomerEmail string      `json:"customer_email"`    // 客户邮箱
	Items         []OrderItem `json:"items"`             // 订单明细，有序
	Total         float64     `json:"total"`             // 订单总额
	Status        string      `json:"status"`            // 状态
	Source        string      `json:"source"`            // 来源: live/website/manual
	CreatedAt     time.Time   `json:"created_at"`        // 创建时间
	PaidAt        *time.Time  `json:"paid_at,omitempty"` // 支付时间
}

// OrderItem 订单明细，冗余商品名/规格名/成交价，防止商品变更影响历史订单
type OrderItem struct {
	ProductID   string  `json:"product_id"`   // 商品ID
	ProductName string  `json:"product_name"` // 冗余商品名称
	VariantName string  `json:"variant_name"` // 冗余规格名称
	Price       float64 `json:"price"`        // 冗余成交单价
	Quantity    int     `json:"quantity"`     // 购买数量
}

// Clone 深拷贝
func (o *Order) Clone() *Order {
	cp := *o
	cp.Items = make([]OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	if o.PaidAt != nil {
		t := *o.PaidAt
		cp.PaidAt = &t
	}
	return &cp
}

// Terminal 是否终态（不可再流转）
func (o *Order) Terminal() bool {
	return o.Status == OrderStatusDelivered || o.Status == OrderStatusCancelled
}
