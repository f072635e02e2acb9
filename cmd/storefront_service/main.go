package main

import (
	"context"

	"github.com/gin-gonic/gin"

	cartAPI "github.com/ridloal/storefront-demo/internal/cart/api"
	cartRepo "github.com/ridloal/storefront-demo/internal/cart/repository"
	cartService "github.com/ridloal/storefront-demo/internal/cart/service"
	catalogAPI "github.com/ridloal/storefront-demo/internal/catalog/api"
	catalogDomain "github.com/ridloal/storefront-demo/internal/catalog/domain"
	catalogRepo "github.com/ridloal/storefront-demo/internal/catalog/repository"
	catalogService "github.com/ridloal/storefront-demo/internal/catalog/service"
	couponAPI "github.com/ridloal/storefront-demo/internal/coupon/api"
	couponDomain "github.com/ridloal/storefront-demo/internal/coupon/domain"
	couponRepo "github.com/ridloal/storefront-demo/internal/coupon/repository"
	couponService "github.com/ridloal/storefront-demo/internal/coupon/service"
	"github.com/ridloal/storefront-demo/internal/platform/config"
	"github.com/ridloal/storefront-demo/internal/platform/database"
	"github.com/ridloal/storefront-demo/internal/platform/logger"
)

func main() {
	serverCfg := config.LoadServerConfig("8080")
	storeCfg := config.LoadStoreConfig()

	logger.Info("Starting Storefront Service...")

	ctx := context.Background()

	// Product & coupon repository: Postgres jika DSN di-set, selain itu file
	// JSON di data dir. Cart snapshot selalu file JSON.
	var productRepository catalogRepo.ProductRepository
	var couponRepository couponRepo.CouponRepository

	if storeCfg.DSN != "" {
		db, err := database.Connect(storeCfg.DSN)
		if err != nil {
			logger.Error("Failed to connect to database for Storefront Service", err)
			return
		}
		defer db.Close()

		productRepository = catalogRepo.NewPostgresProductRepository(db)
		couponRepository = couponRepo.NewPostgresCouponRepository(db)
	} else {
		logger.Info("No DSN configured, using JSON file store in %s", storeCfg.DataDir)
		productRepository = catalogRepo.NewJSONFileProductRepository(storeCfg.DataDir, catalogDomain.DefaultProducts())
		couponRepository = couponRepo.NewJSONFileCouponRepository(storeCfg.DataDir, couponDomain.DefaultCoupons())
	}

	if err := catalogRepo.SeedProducts(ctx, productRepository, catalogDomain.DefaultProducts()); err != nil {
		logger.Error("Failed to seed products", err)
		return
	}
	if err := couponRepo.SeedCoupons(ctx, couponRepository, couponDomain.DefaultCoupons()); err != nil {
		logger.Error("Failed to seed coupons", err)
		return
	}

	cartRepository := cartRepo.NewJSONFileCartRepository(storeCfg.DataDir)

	// Setup Dependencies
	cartSvc := cartService.NewCartService(productRepository, couponRepository, cartRepository, storeCfg.CartFlushSpec)
	defer cartSvc.Stop()

	catalogSvc := catalogService.NewCatalogService(productRepository, cartSvc)
	couponSvc := couponService.NewCouponService(couponRepository, cartSvc)

	productHandler := catalogAPI.NewProductHandler(catalogSvc)
	cartHandler := cartAPI.NewCartHandler(cartSvc)
	couponHandler := couponAPI.NewCouponHandler(couponSvc)

	// Setup Gin Router
	router := gin.Default()
	router.RedirectTrailingSlash = false

	apiV1 := router.Group("/api/v1")
	productHandler.RegisterRoutes(apiV1)
	cartHandler.RegisterRoutes(apiV1)
	couponHandler.RegisterRoutes(apiV1)

	logger.Info("Storefront Service running on port " + serverCfg.Port)
	if err := router.Run(serverCfg.Port); err != nil {
		logger.Error("Failed to run Storefront Service server", err)
	}
}
