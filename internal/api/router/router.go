package router

import (
	"fmt"
	"net/http"

	_ "github.com/RoyceAzure/lab/storefront/docs"
	"github.com/RoyceAzure/lab/storefront/internal/api"
	m "github.com/RoyceAzure/lab/storefront/internal/api/middleware"
	"github.com/RoyceAzure/lab/storefront/internal/service"
	"github.com/RoyceAzure/rj/api/token"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(server *api.Server, tokenMaker token.Maker[uuid.UUID], userService service.IUserService, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件

	r.Use(m.RequestIdMiddleware)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(m.CartSessionMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/", server.AuthHandler.Home)
		r.Post("/register", server.AuthHandler.Register)

		//Auth相關路由
		r.Group(func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				r.Post("/login", server.AuthHandler.Login)
				r.Post("/logout", server.AuthHandler.Logout)
				r.With(m.AuthMiddleware).Get("/me", server.AuthHandler.Me)
			})
		})

		//購物車相關路由
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", server.CartHandler.GetCart)
			r.Post("/items", server.CartHandler.AddItem)
			r.Put("/items/{productID}", server.CartHandler.UpdateItem)
			r.Delete("/items/{productID}", server.CartHandler.RemoveItem)
		})

		//訂單相關路由
		r.Route("/orders", func(r chi.Router) {
			r.Get("/create", server.OrderHandler.OrderCreateForm)
			r.Post("/create", server.OrderHandler.OrderCreate)
			r.With(m.AuthMiddleware).Get("/history", server.OrderHandler.OrderHistory)
			r.Post("/create-checkout-session", server.OrderHandler.CreateCheckoutSession)
			r.Get("/success", server.OrderHandler.PaymentSuccess)
			r.Get("/cancel", server.OrderHandler.PaymentCancel)
		})

		//後台管理路由
		r.Group(func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Use(m.AdminMiddleware(userService))
			r.Route("/admin", func(r chi.Router) {
				r.Get("/products", server.AdminHandler.ListProducts)
				r.Post("/products", server.AdminHandler.CreateProduct)
				r.Get("/categories", server.AdminHandler.ListCategories)
				r.Post("/categories", server.AdminHandler.CreateCategory)
				r.Get("/orders", server.AdminHandler.ListOrders)
			})
		})
	})
	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
