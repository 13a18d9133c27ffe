package dao

import (
	"encoding/json"

	_ "embed"

	"LiveSell/models"
)

//go:embed seed.json
var seedRaw []byte

// SeedData 内置的演示数据，对应一个小型精品店
type SeedData struct {
	Products  []models.Product    `json:"products"`
	Customers []models.Customer   `json:"customers"`
	Orders    []models.Order      `json:"orders"`
	Session   *models.LiveSession `json:"session"`
}

// LoadSeed 解析内置种子数据
func LoadSeed() (*SeedData, error) {
	var seed SeedData
	if err := json.Unmarshal(seedRaw, &seed); err != nil {
		return nil, err
	}
	return &seed, nil
}

// MustLoadSeed 启动期使用，种子数据损坏直接 panic
func MustLoadSeed() *SeedData {
	seed, err := LoadSeed()
	if err != nil {
		panic("seed.json 解析失败: " + err.Error())
	}
	return seed
}

// DefaultSettings 店铺设置默认值
func DefaultSettings() models.Settings {
	return models.Settings{
		StoreName:          "My Boutique",
		StoreEmail:         "hello@myboutique.com",
		Currency:           "USD",
		Timezone:           "America/New_York",
		AutoInvoice:        true,
		InvoiceExpiry:      24,
		AutoComment:        true,
		CommentReply:       "Thanks for your order, {name}! Check your inbox for your invoice.",
		ShippingFlat:       5.99,
		FreeShippingMin:    50,
		TaxRate:            8.25,
		NotifyNewOrder:     true,
		NotifySoldOut:      true,
		NotifyPayment:      true,
		FacebookConnected:  true,
		InstagramConnected: false,
		YoutubeConnected:   false,
		TiktokConnected:    false,
	}
}
