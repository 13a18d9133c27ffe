package models

// Settings 店铺设置，整体替换式更新，不持久化
type Settings struct {
	StoreName          string  `json:"store_name"`          // 店铺名称
	StoreEmail         string  `json:"store_email"`         // 店铺邮箱
	Currency           string  `json:"currency"`            // 结算币种
	Timezone           string  `json:"timezone"`            // 时区
	AutoInvoice        bool    `json:"auto_invoice"`        // 下单后自动开票
	InvoiceExpiry      int     `json:"invoice_expiry"`      // 发票有效期（小时）
	AutoComment        bool    `json:"auto_comment"`        // 下单后自动回复评论
	CommentReply       string  `json:"comment_reply"`       // 自动回复模板
	ShippingFlat       float64 `json:"shipping_flat"`       // 固定运费
	FreeShippingMin    float64 `json:"free_shipping_min"`   // 包邮门槛
	TaxRate            float64 `json:"tax_rate"`            // 税率（%）
	NotifyNewOrder     bool    `json:"notify_new_order"`    // 新订单通知
	NotifySoldOut      bool    `json:"notify_sold_out"`     // 售罄通知
	NotifyPayment      bool    `json:"notify_payment"`      // 支付通知
	FacebookConnected  bool    `json:"facebook_connected"`  // 平台绑定状态
	InstagramConnected bool    `json:"instagram_connected"` //
	YoutubeConnected   bool    `json:"youtube_connected"`   //
	TiktokConnected    bool    `json:"tiktok_connected"`    //
}
