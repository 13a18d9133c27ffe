package models

import "time"

// 直播场次状态，单向推进 scheduled -> live -> ended
// ended 之后允许再次显式 Start（重新开播），没有终态锁
const (
	SessionStatusScheduled = "scheduled"
	SessionStatusLive      = "live"
	SessionStatusEnded     = "ended"
)

// LiveSession 直播场次
type LiveSession struct {
	ID              string     `json:"id"`                          // 场次ID
	Title           string     `json:"title"`                       // 场次标题
	Platform        string     `json:"platform"`                    // 直播平台: facebook/instagram/youtube/tiktok
	Status          string     `json:"status"`                      // 状态
	StartedAt       *time.Time `json:"started_at,omitempty"`        // 开播时间
	EndedAt         *time.Time `json:"ended_at,omitempty"`          // 结束时间
	ViewerCount     int        `json:"viewer_count"`                // 在线人数（结束时为定格值）
	TotalSales      float64    `json:"total_sales"`                 // 本场销售额
	TotalOrders     int        `json:"total_orders"`                // 本场订单数
	ProductQueue    []string   `json:"product_queue"`               // 商品讲解队列（商品ID，有序）
	ActiveProductID string     `json:"active_product_id,omitempty"` // 当前主推商品ID
}

// Clone 深拷贝
func (s *LiveSession) Clone() *LiveSession {
	cp := *s
	cp.ProductQueue = make([]string, len(s.ProductQueue))
	copy(cp.ProductQueue, s.ProductQueue)
	if s.StartedAt != nil {
		t := *s.StartedAt
		cp.StartedAt = &t
	}
	if s.EndedAt != nil {
		t := *s.EndedAt
		cp.EndedAt = &t
	}
	return &cp
}

// LiveComment 直播评论，只存在于本场评论流内存中，超出上限后先进先出淘汰
type LiveComment struct {
	ID         string    `json:"id"`                   // 评论ID
	UserName   string    `json:"user_name"`            // 评论人昵称
	UserAvatar string    `json:"user_avatar"`          // 评论人头像，系统消息为空
	Text       string    `json:"text"`                 // 评论内容
	Timestamp  time.Time `json:"timestamp"`            // 评论时间
	IsOrder    bool      `json:"is_order"`             // 是否为下单评论
	ProductID  string    `json:"product_id,omitempty"` // 关联商品ID
}
