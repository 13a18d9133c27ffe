package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"LiveSell/dao"
	"LiveSell/models"
	"LiveSell/types"
)

type ProductService struct {
	Products *dao.ProductStore
}

var _ IProductService = (*ProductService)(nil)

type IProductService interface {
	ListProducts(search, category string) *types.ListProductsResponse
	CreateProduct(req *types.CreateProductRequest) (*models.Product, error)
	UpdateProduct(id string, req *types.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(id string) error
}

// ListProducts 按名称/口令模糊匹配，按分类过滤，category 为空或 all 表示不过滤
func (s *ProductService) ListProducts(search, category string) *types.ListProductsResponse {
	all := s.Products.List()
	search = strings.ToLower(search)

	out := make([]*models.Product, 0, len(all))
	totalUnits := 0
	categorySet := make(map[string]struct{})
	for _, p := range all {
		categorySet[p.Category] = struct{}{}
		totalUnits += p.TotalStock()

		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Keyword), search) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}

	categories := make([]string, 0, len(categorySet))
	for c := range categorySet {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	return &types.ListProductsResponse{
		Products:   out,
		TotalUnits: totalUnits,
		Categories: categories,
	}
}

func (s *ProductService) CreateProduct(req *types.CreateProductRequest) (*models.Product, error) {
	product, err := buildProduct(req)
	if err != nil {
		return nil, err
	}
	product.ID = fmt.Sprintf("p%d", time.Now().UnixMilli())
	product.CreatedAt = time.Now().Format("2006-01-02")

	s.Products.Append(product)
	return product, nil
}

func (s *ProductService) UpdateProduct(id string, req *types.UpdateProductRequest) (*models.Product, error) {
	existing := s.Products.Get(id)
	if existing == nil {
		return nil, errors.New("商品不存在")
	}

	product, err := buildProduct(req)
	if err != nil {
		return nil, err
	}
	product.ID = existing.ID
	product.CreatedAt = existing.CreatedAt

	s.Products.Update(product)
	return product, nil
}

func (s *ProductService) DeleteProduct(id string) error {
	if !s.Products.Delete(id) {
		return errors.New("商品不存在")
	}
	return nil
}

func buildProduct(req *types.CreateProductRequest) (*models.Product, error) {
	status := req.Status
	if status == "" {
		status = models.ProductStatusActive
	}
	switch status {
	case models.ProductStatusActive, models.ProductStatusDraft, models.ProductStatusArchived:
	default:
		return nil, errors.New("非法的商品状态: " + status)
	}

	variants := make([]models.Variant, 0, len(req.Variants))
	for i, v := range req.Variants {
		if v.Stock < 0 {
			return nil, errors.New("库存不允许为负")
		}
		id := v.ID
		if id == "" {
			id = fmt.Sprintf("v%d-%d", time.Now().UnixMilli(), i)
		}
		variants = append(variants, models.Variant{
			ID:    id,
			Name:  v.Name,
			Stock: v.Stock,
			SKU:   v.SKU,
		})
	}

	return &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		CompareAtPrice: req.CompareAtPrice,
		Image:          req.Image,
		Keyword:        req.Keyword,
		Category:       req.Category,
		Status:         status,
		Variants:       variants,
	}, nil
}
