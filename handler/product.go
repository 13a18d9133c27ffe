package handler

import (
	"LiveSell/pkg/context"
	"LiveSell/pkg/response"
	"LiveSell/service"
	"LiveSell/types"

	"github.com/gin-gonic/gin"
)

type Product struct {
	ProductService service.IProductService
}

func (h *Product) RegisterRouter(r gin.IRouter) {
	product := r.Group("/v1/products")
	product.GET("", context.Wrap(h.List))
	product.POST("", context.Wrap(h.Create))
	product.PUT("/:id", context.Wrap(h.Update))
	product.DELETE("/:id", context.Wrap(h.Delete))
}

func (h *Product) List(c *gin.Context) error {
	resp := h.ProductService.ListProducts(c.Query("search"), c.Query("category"))
	response.Success(c, resp)
	return nil
}

func (h *Product) Create(c *gin.Context) error {
	var req types.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	product, err := h.ProductService.CreateProduct(&req)
	if err != nil {
		return response.NewError(400, err.Error())
	}
	response.Success(c, product)
	return nil
}

func (h *Product) Update(c *gin.Context) error {
	var req types.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(400, err.Error())
	}

	product, err := h.ProductService.UpdateProduct(c.Param("id"), &req)
	if err != nil {
		return response.NewError(404, err.Error())
	}
	response.Success(c, product)
	return nil
}

func (h *Product) Delete(c *gin.Context) error {
	if err := h.ProductService.DeleteProduct(c.Param("id")); err != nil {
		return response.NewError(404, err.Error())
	}
	response.Success(c, nil)
	return nil
}
