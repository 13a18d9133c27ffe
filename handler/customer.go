package handler

import (
	"LiveSell/pkg/context"
	"LiveSell/pkg/response"
	"LiveSell/service"

	"github.com/gin-gonic/gin"
)

type Customer struct {
	CustomerService service.ICustomerService
}

func (h *Customer) RegisterRouter(r gin.IRouter) {
	customer := r.Group("/v1/customers")
	customer.GET("", context.Wrap(h.List))
	customer.GET("/:id", context.Wrap(h.Get))
}

func (h *Customer) List(c *gin.Context) error {
	resp := h.CustomerService.ListCustomers(c.Query("search"), c.Query("sort_by"))
	response.Success(c, resp)
	return nil
}

func (h *Customer) Get(c *gin.Context) error {
	resp, err := h.CustomerService.GetCustomer(c.Param("id"))
	if err != nil {
		return response.NewError(404, err.Error())
	}
	response.Success(c, resp)
	return nil
}
