package server

import (
	"LiveSell/handler"
)

type Handlers struct {
	Dashboard *handler.Dashboard
	Product   *handler.Product
	Order     *handler.Order
	Customer  *handler.Customer
	Live      *handler.Live
	Settings  *handler.Settings
	WebSocket *handler.WebSocket
}
