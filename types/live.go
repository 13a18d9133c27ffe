package types

import (
	"LiveSell/live"
	"LiveSell/models"
)

type FeatureProductRequest struct {
	ProductID string `json:"product_id" binding:"required"` // 要主推的商品ID
}

type MoveQueueRequest struct {
	ProductID string `json:"product_id" binding:"required"`              // 队列中的商品ID
	Direction string `json:"direction" binding:"required,oneof=up down"` // up/down
}

type AnnounceRequest struct {
	Text string `json:"text" binding:"required"` // 公告内容
}

type SetSpeedRequest struct {
	IntervalMs int `json:"interval_ms" binding:"required"` // 800/1500/3000/5000
}

// SpeedOption 评论速度档位
type SpeedOption struct {
	IntervalMs int    `json:"interval_ms"`
	Label      string `json:"label"`
}

// LiveStateResponse 直播间全量状态，进入直播页时一次拉取
type LiveStateResponse struct {
	Session         *models.LiveSession   `json:"session"`
	Stats           live.Stats            `json:"stats"`
	Comments        []*models.LiveComment `json:"comments"`
	ActiveProductID string                `json:"active_product_id,omitempty"`
	IntervalMs      int                   `json:"interval_ms"`
	Speeds          []SpeedOption         `json:"speeds"`
}
