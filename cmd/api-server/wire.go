//go:build wireinject
// +build wireinject

package main

import (
	"LiveSell/config"
	"LiveSell/dao"
	"LiveSell/handler"
	"LiveSell/pkg/server"
	"LiveSell/service"
	"LiveSell/socket"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		server.NewGinEngine,
		socket.NewHub,

		wire.Struct(new(handler.Dashboard), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Customer), "*"),
		wire.Struct(new(handler.Live), "*"),
		wire.Struct(new(handler.Settings), "*"),
		wire.Struct(new(handler.WebSocket), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
	)
	return nil
}
