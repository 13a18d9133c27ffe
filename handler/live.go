package handler

import (
	"errors"

	"LiveSell/live"
	"LiveSell/pkg/context"
	"LiveSell/pkg/response"
	"LiveSell/service"
	"LiveSell/types"

	"github.com/gin-gonic/gin"
)

type Live struct {
	LiveService service.ILiveService
}

func (h *Live) RegisterRouter(r gin.IRouter) {
	liveGroup := r.Group("/v1/live")
	liveGroup.GET("/state", context.Wrap(h.State))
	liveGroup.GET("/comments", context.Wrap(h.Comments))
	liveGroup.POST("/start", context.Wrap(h.Start))
	liveGroup.POST("/end", context.Wrap(h.End))
	liveGroup.POST("/feature", context.Wrap(h.Feature))
	liveGroup.POST("/queue/move", context.Wrap(h.MoveQueue))
	liveGroup.POST("/announce", context.Wrap(h.Announce))
	liveGroup.POST("/speed", context.Wrap(h.SetSpeed))
}

func (h *Live) State(c *gin.Context) error {
	response.Success(c, h.LiveService.State())
	return nil
}

func (h *Live) Comments(c *gin.Context) error {
	response.Success(c, h.LiveService.Comments())
	return nil
}

func (h *Live) Start(c *gin.Context) error {
	response.Success(c, h.LiveService.Start())
	return nil
}

func (h *Live) End(c *gin.Context) error {
	sess, err := h.LiveService.End()
	if err != nil {
		return response.NewError(400, err.Error())
	}
	response.Success(c, sess)
	return nil
}

func (h *Live) Feature(c *gin.Context) error {
	var req types.FeatureProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	if err := h.LiveService.Feature(req.ProductID); err != nil {
		if errors.Is(err, live.ErrUnknownProduct) {
			return response.NewError(404, err.Error())
		}
		return response.NewError(400, err.Error())
	}
	response.Success(c, nil)
	return nil
}

func (h *Live) MoveQueue(c *gin.Context) error {
	var req types.MoveQueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	sess := h.LiveService.MoveQueue(req.ProductID, req.Direction)
	response.Success(c, sess)
	return nil
}

func (h *Live) Announce(c *gin.Context) error {
	var req types.AnnounceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	comment, err := h.LiveService.Announce(req.Text)
	if err != nil {
		return response.NewError(400, err.Error())
	}
	response.Success(c, comment)
	return nil
}

func (h *Live) SetSpeed(c *gin.Context) error {
	var req types.SetSpeedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	if err := h.LiveService.SetSpeed(req.IntervalMs); err != nil {
		return response.NewError(400, err.Error())
	}
	response.Success(c, nil)
	return nil
}
