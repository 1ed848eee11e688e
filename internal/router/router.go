package router

import (
	"net/http"

	"github.com/matthewmachida/yumis-bakery/internal/config"
	"github.com/matthewmachida/yumis-bakery/internal/handler"
	"github.com/matthewmachida/yumis-bakery/internal/live"
	"github.com/matthewmachida/yumis-bakery/internal/middleware"
	"github.com/matthewmachida/yumis-bakery/internal/service"
	"github.com/matthewmachida/yumis-bakery/internal/store/gormstore"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the storage adapter, services and handlers onto a
// Gin engine.
func SetupRouter(cfg *config.Config, db *gorm.DB, feed *live.Hub) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	st := gormstore.New(db)

	accounts := service.NewAccountService(st)
	ledger := service.NewStockLedger(st)
	recorder := service.NewTransactionRecorder(st)
	purchases := service.NewPurchaseService(accounts, ledger, recorder)
	catalog := service.NewCatalogService(st)
	history := service.NewHistoryService(accounts, st)

	catalogHandler := handler.NewCatalogHandler(catalog)
	authHandler := handler.NewAuthHandler(accounts, st, cfg.JWT.Secret, cfg.JWT.ExpireHours)
	purchaseHandler := handler.NewPurchaseHandler(purchases, st, feed)
	historyHandler := handler.NewHistoryHandler(history)
	adminHandler := handler.NewAdminHandler(st, feed)

	// public shop surface (status scheme preserved)
	r.GET("/getDesserts", catalogHandler.GetDesserts)
	r.GET("/search", catalogHandler.Search)
	r.POST("/newuser", authHandler.Signup)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)
	r.POST("/purchase", purchaseHandler.Purchase)
	r.GET("/cart/:username", historyHandler.History)

	// live stock feed
	if feed != nil {
		r.GET("/ws", func(c *gin.Context) {
			feed.Serve(c.Writer, c.Request)
		})
	}

	// authenticated surface
	api := r.Group("/api")
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret, st))
	protected.GET("/me", handler.Me)

	admin := protected.Group("/admin")
	admin.Use(middleware.RequireAdmin(cfg.Admin.Username))
	admin.GET("/stock", adminHandler.ListStock)
	admin.POST("/restock", adminHandler.Restock)
	admin.GET("/report.xlsx", adminHandler.ReportXLSX)

	// static frontend
	if cfg.Server.StaticDir != "" {
		fs := http.FileServer(http.Dir(cfg.Server.StaticDir))
		r.NoRoute(gin.WrapH(fs))
	}

	return r
}
