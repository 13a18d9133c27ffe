package models

// 商品状态
const (
	ProductStatusActive   = "active"   // 上架
	ProductStatusDraft    = "draft"    // 草稿
	ProductStatusArchived = "archived" // 归档
)

// Product 商品，Keyword 是直播间下单口令
type Product struct {
	ID             string    `json:"id"`                        // 商品ID
	Name           string    `json:"name"`                      // 商品名称
	Description    string    `json:"description"`               // 商品描述
	Price          float64   `json:"price"`                     // 售卖价（美元）
	CompareAtPrice float64   `json:"compare_at_price,omitempty"` // 展示原价，0 表示无
	Image          string    `json:"image"`                     // 封面图 URL
	Keyword        string    `json:"keyword"`                   // 下单口令，观众评论该口令即下单
	Category       string    `json:"category"`                  // 分类
	Status         string    `json:"status"`                    // 状态: active/draft/archived
	CreatedAt      string    `json:"created_at"`                // 创建日期 yyyy-mm-dd
	Variants       []Variant `json:"variants"`                  // 规格列表，有序
}

// Variant 商品规格（尺码/颜色），库存不允许为负
type Variant struct {
	ID    string `json:"id"`    // 规格ID
	Name  string `json:"name"`  // 规格名称
	Stock int    `json:"stock"` // 库存数量，扣减时下限为 0
	SKU   string `json:"sku"`   // SKU 编码
}

// TotalStock 商品所有规格的库存总和
func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.Variants {
		total += v.Stock
	}
	return total
}

// InStockVariants 返回库存大于 0 的规格
func (p *Product) InStockVariants() []Variant {
	out := make([]Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		if v.Stock > 0 {
			out = append(out, v)
		}
	}
	return out
}

// Clone 深拷贝，规格切片独立
func (p *Product) Clone() *Product {
	cp := *p
	cp.Variants = make([]Variant, len(p.Variants))
	copy(cp.Variants, p.Variants)
	return &cp
}
