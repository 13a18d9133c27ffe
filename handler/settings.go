package handler

import (
	"LiveSell/pkg/context"
	"LiveSell/pkg/response"
	"LiveSell/service"
	"LiveSell/types"

	"github.com/gin-gonic/gin"
)

type Settings struct {
	SettingsService service.ISettingsService
}

func (h *Settings) RegisterRouter(r gin.IRouter) {
	settings := r.Group("/v1/settings")
	settings.GET("", context.Wrap(h.Get))
	settings.PUT("", context.Wrap(h.Update))
}

func (h *Settings) Get(c *gin.Context) error {
	response.Success(c, h.SettingsService.Get())
	return nil
}

func (h *Settings) Update(c *gin.Context) error {
	var req types.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	settings, err := h.SettingsService.Update(req)
	if err != nil {
		return response.NewError(400, err.Error())
	}
	response.Success(c, settings)
	return nil
}
