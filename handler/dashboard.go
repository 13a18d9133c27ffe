package handler

import (
	"LiveSell/pkg/context"
	"LiveSell/pkg/response"
	"LiveSell/service"

	"github.com/gin-gonic/gin"
)

type Dashboard struct {
	DashboardService service.IDashboardService
}

func (h *Dashboard) RegisterRouter(r gin.IRouter) {
	r.GET("/v1/dashboard", context.Wrap(h.Overview))
}

func (h *Dashboard) Overview(c *gin.Context) error {
	response.Success(c, h.DashboardService.Overview())
	return nil
}
