package router

import (
	"github.com/dukastore/dukastore-backend/config"
	"github.com/dukastore/dukastore-backend/internal/app/controller"
	"github.com/dukastore/dukastore-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authController     *controller.AuthController
	userController     *controller.UserController
	productController  *controller.ProductController
	catalogController  *controller.CatalogController
	couponController   *controller.CouponController
	cartController     *controller.CartController
	orderController    *controller.OrderController
	wishlistController *controller.WishlistController
	uploadController   *controller.UploadController
	authMiddleware     *middleware.AuthMiddleware
	config             *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	userController *controller.UserController,
	productController *controller.ProductController,
	catalogController *controller.CatalogController,
	couponController *controller.CouponController,
	cartController *controller.CartController,
	orderController *controller.OrderController,
	wishlistController *controller.WishlistController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:     authController,
		userController:     userController,
		productController:  productController,
		catalogController:  catalogController,
		couponController:   couponController,
		cartController:     cartController,
		orderController:    orderController,
		wishlistController: wishlistController,
		uploadController:   uploadController,
		authMiddleware:     authMiddleware,
		config:             cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "Dukastore API is running",
		})
	})

	authed := r.authMiddleware.Authenticate()
	adminOnly := r.authMiddleware.RequireRole("admin")

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", authed, r.authController.Logout)
			auth.POST("/forgot-password", r.authController.ForgotPassword)
			auth.PUT("/reset-password", r.authController.ResetPassword)
			auth.GET("/me", authed, r.authController.GetMe)
			auth.PUT("/me", authed, r.authController.UpdateProfile)
			auth.PUT("/me/address", authed, r.authController.SaveAddress)
		}

		users := v1.Group("/users", authed, adminOnly)
		{
			users.GET("", r.userController.GetAllUsers)
			users.GET("/search", r.userController.SearchUsers)
			users.GET("/count", r.userController.CountUsers)
			users.GET("/:id", r.userController.GetUser)
			users.PUT("/:id", r.userController.UpdateUser)
			users.DELETE("/:id", r.userController.DeleteUser)
			users.PUT("/:id/block", r.userController.BlockUser)
			users.PUT("/:id/unblock", r.userController.UnblockUser)
		}

		products := v1.Group("/products")
		{
			products.GET("", r.productController.GetProducts)
			products.GET("/featured", r.productController.GetFeaturedProducts)
			products.GET("/:id", r.productController.GetProduct)

			products.POST("", authed, adminOnly, r.productController.CreateProduct)
			products.PUT("/:id", authed, adminOnly, r.productController.UpdateProduct)
			products.DELETE("/:id", authed, adminOnly, r.productController.DeleteProduct)

			products.PUT("/:id/rating", authed, r.productController.RateProduct)
			products.PUT("/:id/wishlist", authed, r.wishlistController.ToggleWishlist)
		}

		v1.GET("/wishlist", authed, r.wishlistController.GetWishlist)

		categories := v1.Group("/categories")
		{
			categories.GET("", r.catalogController.GetCategories)
			categories.GET("/:id", r.catalogController.GetCategory)
			categories.POST("", authed, adminOnly, r.catalogController.CreateCategory)
			categories.PUT("/:id", authed, adminOnly, r.catalogController.UpdateCategory)
			categories.DELETE("/:id", authed, adminOnly, r.catalogController.DeleteCategory)
		}

		brands := v1.Group("/brands")
		{
			brands.GET("", r.catalogController.GetBrands)
			brands.GET("/:id", r.catalogController.GetBrand)
			brands.POST("", authed, adminOnly, r.catalogController.CreateBrand)
			brands.PUT("/:id", authed, adminOnly, r.catalogController.UpdateBrand)
			brands.DELETE("/:id", authed, adminOnly, r.catalogController.DeleteBrand)
		}

		colors := v1.Group("/colors")
		{
			colors.GET("", r.catalogController.GetColors)
			colors.GET("/:id", r.catalogController.GetColor)
			colors.POST("", authed, adminOnly, r.catalogController.CreateColor)
			colors.PUT("/:id", authed, adminOnly, r.catalogController.UpdateColor)
			colors.DELETE("/:id", authed, adminOnly, r.catalogController.DeleteColor)
		}

		coupons := v1.Group("/coupons", authed, adminOnly)
		{
			coupons.GET("", r.couponController.GetCoupons)
			coupons.GET("/:id", r.couponController.GetCoupon)
			coupons.POST("", r.couponController.CreateCoupon)
			coupons.PUT("/:id", r.couponController.UpdateCoupon)
			coupons.DELETE("/:id", r.couponController.DeleteCoupon)
		}

		cart := v1.Group("/cart", authed)
		{
			cart.GET("", r.cartController.GetCart)
			cart.POST("", r.cartController.SetCart)
			cart.POST("/coupon", r.cartController.ApplyCoupon)
			cart.DELETE("", r.cartController.EmptyCart)
		}

		orders := v1.Group("/orders", authed)
		{
			orders.POST("", r.orderController.CreateOrder)
			orders.GET("", r.orderController.GetMyOrders)
			orders.GET("/all", adminOnly, r.orderController.GetAllOrders)
			orders.GET("/:id", r.orderController.GetOrder)
			orders.PUT("/:id/status", adminOnly, r.orderController.UpdateOrderStatus)
		}

		upload := v1.Group("/upload", authed, adminOnly)
		{
			upload.POST("/presigned-url", r.uploadController.PresignUpload)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
