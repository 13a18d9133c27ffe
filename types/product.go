package types

import "LiveSell/models"

type VariantPayload struct {
	ID    string `json:"id"`                         // 留空由服务端生成
	Name  string `json:"name" binding:"required"`    // 规格名称
	Stock int    `json:"stock" binding:"min=0"`      // 库存，不允许为负
	SKU   string `json:"sku"`                        // SKU 编码
}

type CreateProductRequest struct {
	Name           string           `json:"name" binding:"required"`    // 商品名称
	Description    string           `json:"description"`                // 描述
	Price          float64          `json:"price" binding:"min=0"`      // 售卖价
	CompareAtPrice float64          `json:"compare_at_price"`           // 展示原价
	Image          string           `json:"image"`                      // 封面图 URL
	Keyword        string           `json:"keyword" binding:"required"` // 下单口令
	Category       string           `json:"category"`                   // 分类
	Status         string           `json:"status"`                     // active/draft/archived，留空默认 active
	Variants       []VariantPayload `json:"variants"`                   // 规格列表
}

type UpdateProductRequest = CreateProductRequest

// ListProductsResponse 商品列表
type ListProductsResponse struct {
	Products   []*models.Product `json:"products"`    // 商品列表
	TotalUnits int               `json:"total_units"` // 全部商品库存总件数
	Categories []string          `json:"categories"`  // 出现过的分类
}
