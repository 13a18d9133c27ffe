package handler

import (
	"LiveSell/pkg/context"
	"LiveSell/pkg/response"
	"LiveSell/service"
	"LiveSell/types"

	"github.com/gin-gonic/gin"
)

type Order struct {
	OrderService service.IOrderService
}

func (h *Order) RegisterRouter(r gin.IRouter) {
	order := r.Group("/v1/orders")
	order.GET("", context.Wrap(h.List))
	order.PUT("/:id/status", context.Wrap(h.UpdateStatus))
}

func (h *Order) List(c *gin.Context) error {
	resp := h.OrderService.ListOrders(c.Query("search"), c.Query("status"), c.Query("source"))
	response.Success(c, resp)
	return nil
}

func (h *Order) UpdateStatus(c *gin.Context) error {
	var req types.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	order, err := h.OrderService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		return response.NewError(400, err.Error())
	}
	response.Success(c, order)
	return nil
}
