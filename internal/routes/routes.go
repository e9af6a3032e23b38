package routes

import (
	"github.com/gin-gonic/gin"

	"priceai_back_end/internal/activity"
	"priceai_back_end/internal/cart"
	"priceai_back_end/internal/config"
	"priceai_back_end/internal/handlers"
	adminhandlers "priceai_back_end/internal/handlers/admin"
	"priceai_back_end/internal/middleware"
	"priceai_back_end/internal/order"
	"priceai_back_end/internal/search"
	"priceai_back_end/internal/store"
)

// RegisterRoutes câble les services sur le store et enregistre l'API
func RegisterRoutes(r *gin.Engine, st store.UserStore) {
	cartSvc := cart.NewService(st)
	orderSvc := order.NewService(st,
		order.SimulatedSettler{Delay: config.SettlementDelay()},
		config.OrderIDUnique())
	activitySvc := activity.NewService(st)
	searchSvc := search.NewService(search.NewClient(config.SearchAPIURL()), st)

	cartHandler := handlers.NewCartHandler(cartSvc)
	orderHandler := handlers.NewOrderHandler(orderSvc, cartSvc)
	searchHandler := handlers.NewSearchHandler(searchSvc)
	adminHandler := adminhandlers.NewHandler(activitySvc)

	api := r.Group("/api", middleware.AuthRequired())
	{
		api.GET("/search/:query", searchHandler.Search)

		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart/add", cartHandler.AddToCart)
		api.POST("/cart/remove", cartHandler.RemoveFromCart)

		api.POST("/checkout", orderHandler.Checkout)
		api.GET("/checkout/upi/qr", orderHandler.UPIQRCode)
		api.GET("/orders", orderHandler.GetMyOrders)
	}

	admin := api.Group("/admin", middleware.RequireAdmin)
	{
		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/users/:id/activity", adminHandler.ViewActivity)
		admin.DELETE("/users/:id", adminHandler.BanUser)
		admin.GET("/searches/top", adminHandler.TopSearches)
	}
}
