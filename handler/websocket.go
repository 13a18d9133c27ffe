package handler

import (
	"LiveSell/pkg/context"
	"LiveSell/socket"

	"github.com/gin-gonic/gin"
)

type WebSocket struct {
	Hub *socket.Hub
}

func (h *WebSocket) RegisterRouter(r gin.IRouter) {
	r.GET("/ws", context.Wrap(h.Connect))
}

// Connect 升级为 websocket 连接，之后由 Hub 接管
func (h *WebSocket) Connect(c *gin.Context) error {
	return h.Hub.Serve(c.Writer, c.Request)
}
