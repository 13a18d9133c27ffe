package service

import (
	"sort"
	"strings"
	"time"

	"LiveSell/config"
	"LiveSell/dao"
	"LiveSell/live"
	"LiveSell/models"
	"LiveSell/socket"
	"LiveSell/types"
)

// NewLiveEngine 组装模拟引擎，把 dao 存储与推送中枢接到引擎的出入口上
func NewLiveEngine(cfg *config.Config, products *dao.ProductStore, orders *dao.OrderStore, sessions *dao.SessionStore, hub *socket.Hub) *live.Engine {
	return live.NewEngine(live.Deps{
		Catalog:         products,
		Orders:          orders,
		Sessions:        sessions,
		Broadcaster:     hub,
		CommentInterval: cfg.Simulator.CommentInterval(),
		ViewerInterval:  cfg.Simulator.ViewerInterval(),
		FeedCapacity:    cfg.Simulator.FeedCapacity,
	})
}

type LiveService struct {
	Engine   *live.Engine
	Sessions *dao.SessionStore
}

var _ ILiveService = (*LiveService)(nil)

type ILiveService interface {
	State() *types.LiveStateResponse
	Start() *models.LiveSession
	End() (*models.LiveSession, error)
	Feature(productID string) error
	MoveQueue(productID, direction string) *models.LiveSession
	Announce(text string) (*models.LiveComment, error)
	SetSpeed(intervalMs int) error
	Comments() []*models.LiveComment
}

// State 直播间全量状态，进入直播页时一次拉齐
func (s *LiveService) State() *types.LiveStateResponse {
	speeds := make([]types.SpeedOption, 0, len(live.SpeedLabels))
	for d, label := range live.SpeedLabels {
		speeds = append(speeds, types.SpeedOption{
			IntervalMs: int(d / time.Millisecond),
			Label:      label,
		})
	}
	sort.Slice(speeds, func(i, j int) bool { return speeds[i].IntervalMs < speeds[j].IntervalMs })

	return &types.LiveStateResponse{
		Session:         s.Sessions.Session(),
		Stats:           s.Engine.Stats(),
		Comments:        s.Engine.Feed(),
		ActiveProductID: s.Engine.ActiveProductID(),
		IntervalMs:      int(s.Engine.Interval() / time.Millisecond),
		Speeds:          speeds,
	}
}

func (s *LiveService) Start() *models.LiveSession {
	return s.Engine.Start()
}

func (s *LiveService) End() (*models.LiveSession, error) {
	return s.Engine.End()
}

func (s *LiveService) Feature(productID string) error {
	return s.Engine.Feature(productID)
}

func (s *LiveService) MoveQueue(productID, direction string) *models.LiveSession {
	return s.Engine.MoveInQueue(productID, direction)
}

func (s *LiveService) Announce(text string) (*models.LiveComment, error) {
	return s.Engine.Announce(strings.TrimSpace(text))
}

func (s *LiveService) SetSpeed(intervalMs int) error {
	return s.Engine.SetInterval(time.Duration(intervalMs) * time.Millisecond)
}

func (s *LiveService) Comments() []*models.LiveComment {
	return s.Engine.Feed()
}
