package routes

import (
	"sync"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/controllers"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/repository"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/services"
	"github.com/itdepartmentalhussain-a11y/Restaurant-POS/ws"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, hub *ws.Hub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	store := repository.NewGormStore(db)
	menuRepo := repository.NewMenuRepository(store)
	cartRepo := repository.NewCartRepository(store)
	salesRepo := repository.NewSalesRepository(store)

	// One register, one lock: every operation runs to completion before the
	// next starts.
	var mu sync.Mutex

	cartSvc := services.NewCartService(&mu, cartRepo, menuRepo, hub)
	menuSvc := services.NewMenuService(&mu, menuRepo, cartSvc, hub)
	salesSvc := services.NewSalesService(&mu, salesRepo, hub)
	checkoutSvc := services.NewCheckoutService(&mu, cartSvc, salesSvc)

	menuCtl := controllers.NewMenuController(menuSvc)
	cartCtl := controllers.NewCartController(cartSvc)
	checkoutCtl := controllers.NewCheckoutController(checkoutSvc)
	salesCtl := controllers.NewSalesController(salesSvc)

	// Menu catalog
	r.GET("/menu", menuCtl.List)
	r.GET("/menu/:id", menuCtl.Get)
	r.POST("/menu", menuCtl.Upsert)
	r.DELETE("/menu/:id", menuCtl.Remove)

	// Cart
	r.GET("/cart", cartCtl.Get)
	r.POST("/cart/items/:id", cartCtl.Add)
	r.PATCH("/cart/items/:id", cartCtl.Adjust)
	r.DELETE("/cart", cartCtl.Clear)

	// Billing + reports
	r.POST("/checkout", checkoutCtl.Checkout)
	r.GET("/sales", salesCtl.List)
	r.GET("/sales/summary", salesCtl.Summary)

	// Change-event stream for the register UI
	r.GET("/ws", hub.HandleWebSocket)
}
