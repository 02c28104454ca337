package api

import "github.com/RoyceAzure/lab/storefront/internal/api/handler"

type Server struct {
	AuthHandler  *handler.AuthHandler
	CartHandler  *handler.CartHandler
	OrderHandler *handler.OrderHandler
	AdminHandler *handler.AdminHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
) *Server {
	return &Server{
		AuthHandler:  authHandler,
		CartHandler:  cartHandler,
		OrderHandler: orderHandler,
		AdminHandler: adminHandler,
	}
}
