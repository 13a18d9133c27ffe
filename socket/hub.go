package socket

import (
	"net/http"
	"sync"

	"LiveSell/live"
	"LiveSell/models"
	"LiveSell/pkg/log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Event 推送帧，type 区分 comment/order/stats/session
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Client 一条已升级的 websocket 连接
// gorilla 不允许并发写，所有写操作都要拿 mu
type Client struct {
	ID   string
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *Client) write(ev *Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(ev)
}

// Hub 直播间推送中枢，把引擎产生的事件广播给所有已连接的后台页面
type Hub struct {
	clients cmap.ConcurrentMap[string, *Client]
}

var _ live.Broadcaster = (*Hub)(nil)

func NewHub() *Hub {
	return &Hub{clients: cmap.New[*Client]()}
}

// ClientCount 当前连接数
func (h *Hub) ClientCount() int {
	return h.clients.Count()
}

// Serve 升级 HTTP 连接并托管读循环，连接断开时自动清理
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	client := &Client{ID: uuid.NewString(), conn: conn}
	h.clients.Set(client.ID, client)
	log.L.Info("websocket 连接建立", zap.String("client_id", client.ID), zap.Int("clients", h.clients.Count()))

	go h.readLoop(client)
	return nil
}

// readLoop 只为感知断连，后台页面不向服务端发消息
func (h *Hub) readLoop(c *Client) {
	defer func() {
		h.clients.Remove(c.ID)
		_ = c.conn.Close()
		log.L.Info("websocket 连接断开", zap.String("client_id", c.ID), zap.Int("clients", h.clients.Count()))
	}()

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Hub) broadcast(ev *Event) {
	for item := range h.clients.IterBuffered() {
		if err := item.Val.write(ev); err != nil {
			log.L.Warn("websocket 推送失败", zap.String("client_id", item.Key), zap.Error(err))
			h.clients.Remove(item.Key)
			_ = item.Val.conn.Close()
		}
	}
}

func (h *Hub) BroadcastComment(c *models.LiveComment) {
	h.broadcast(&Event{Type: "comment", Payload: c})
}

func (h *Hub) BroadcastOrder(o *models.Order) {
	h.broadcast(&Event{Type: "order", Payload: o})
}

func (h *Hub) BroadcastStats(s live.Stats) {
	h.broadcast(&Event{Type: "stats", Payload: s})
}

func (h *Hub) BroadcastSession(s *models.LiveSession) {
	h.broadcast(&Event{Type: "session", Payload: s})
}
