package api

import (
	"github.com/dukamart/storefront/internal/api/middleware"
	v1 "github.com/dukamart/storefront/internal/api/v1"
	"github.com/dukamart/storefront/internal/auth"
	"github.com/dukamart/storefront/internal/config"
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefixV1 = "/api/v1"

func SetupRoutes(app *fiber.App, handler *v1.Handler, tokens *auth.TokenManager, cfg *config.Config) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Provider callbacks authenticate nothing; the correlation ID lookup is
	// the only trust anchor.
	app.Post(prefixV1+"/callbacks/mpesa", handler.MpesaCallback)
	app.Post(prefixV1+"/callbacks/airtel", handler.AirtelCallback)

	app.Post(prefixV1+"/auth/signup", handler.Signup)
	app.Post(prefixV1+"/auth/login", handler.Login)
	app.Post(prefixV1+"/auth/logout", handler.Logout)

	app.Get(prefixV1+"/products", handler.ListProducts)
	app.Get(prefixV1+"/products/search", handler.SearchProducts)
	app.Get(prefixV1+"/products/:id", handler.GetProduct)
	app.Get(prefixV1+"/products/:id/reviews", handler.ListProductReviews)

	authed := app.Group(prefixV1, middleware.RequireAuth(tokens, cfg.JWT.CookieName))

	authed.Get("/auth/me", handler.Me)

	authed.Post("/products", handler.CreateProduct)
	authed.Put("/products/:id", handler.UpdateProduct)
	authed.Delete("/products/:id", handler.DeleteProduct)

	authed.Post("/products/:id/reviews", handler.SubmitReview)

	authed.Get("/cart", handler.GetCart)
	authed.Post("/cart/items", handler.AddCartItem)
	authed.Put("/cart/items", handler.UpdateCartItem)
	authed.Delete("/cart/items/:productId", handler.RemoveCartItem)
	authed.Delete("/cart", handler.ClearCart)

	authed.Post("/orders", handler.CreateOrder)
	authed.Get("/orders", handler.ListOrders)
	authed.Get("/orders/:id", handler.GetOrder)

	authed.Post("/payments/initiate", handler.InitiatePayment)
	authed.Post("/payments/paypal/orders", handler.CreatePaypalOrder)
	authed.Post("/payments/paypal/capture", handler.CapturePaypal)

	authed.Get("/transactions", handler.ListTransactions)
	authed.Get("/transactions/:id", handler.GetTransaction)
}
