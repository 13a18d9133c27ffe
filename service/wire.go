//go:build wireinject

package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(CustomerService), "*"),
	wire.Bind(new(ICustomerService), new(*CustomerService)),

	wire.Struct(new(DashboardService), "*"),
	wire.Bind(new(IDashboardService), new(*DashboardService)),

	wire.Struct(new(LiveService), "*"),
	wire.Bind(new(ILiveService), new(*LiveService)),

	wire.Struct(new(SettingsService), "*"),
	wire.Bind(new(ISettingsService), new(*SettingsService)),

	NewLiveEngine,
)
