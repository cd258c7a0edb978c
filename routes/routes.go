package routes

import (
	"bukukula_go/controllers"
	"bukukula_go/middleware"
	"bukukula_go/utils"
	"bukukula_go/websocket"

	"github.com/gin-gonic/gin"
)

// SetupRoutes 设置路由
func SetupRoutes(r *gin.Engine) {
	// 自定义验证规则必须在处理请求前注册
	utils.RegisterBindingValidations()

	// 应用全局中间件
	r.Use(middleware.CORS())
	r.Use(middleware.Logger())

	authController := controllers.NewAuthController()
	bookController := controllers.NewBookController()
	wishlistController := controllers.NewWishlistController()
	preferenceController := controllers.NewPreferenceController()
	imageController := controllers.NewImageController()

	api := r.Group("/api")
	{
		// ====== 认证路由 ======
		// 未登录时登录表单是唯一可达的界面，其余路由全部在门禁之后
		auth := api.Group("/auth")
		{
			auth.POST("/login", authController.Login)
			auth.POST("/logout", middleware.AuthMiddleware(), authController.Logout)
			auth.GET("/me", middleware.AuthMiddleware(), authController.Me)
		}

		// ====== 书籍路由 ======
		books := api.Group("/books", middleware.AuthMiddleware())
		{
			books.GET("", bookController.GetBooks)
			books.GET("/hot", bookController.GetHotBooks)
			books.GET("/:id", bookController.GetBook)
			books.POST("", middleware.AdminMiddleware(), bookController.CreateBook)
			books.PUT("/:id", middleware.AdminMiddleware(), bookController.UpdateBook)
			books.DELETE("/:id", middleware.AdminMiddleware(), bookController.DeleteBook)
			books.POST("/:id/rate", bookController.RateBook)
		}

		// ====== 心愿单路由 ======
		wishlist := api.Group("/wishlist", middleware.AuthMiddleware())
		{
			wishlist.GET("", wishlistController.GetWishlist)
			wishlist.POST("/toggle", wishlistController.ToggleWishlist)
			wishlist.POST("/open", wishlistController.OpenWishlist)
			wishlist.DELETE("/:id", wishlistController.RemoveFromWishlist)
		}

		// ====== 界面参数路由 ======
		preferences := api.Group("/preferences", middleware.AuthMiddleware())
		{
			preferences.GET("", preferenceController.GetPreferences)
			preferences.PUT("", preferenceController.UpdatePreferences)
		}

		// ====== 临时封面路由 ======
		images := api.Group("/images")
		{
			// 输出封面不加门禁，<img> 标签带不了 Authorization 头
			images.GET("/:id", imageController.ServeCover)
			images.POST("", middleware.AuthMiddleware(), middleware.AdminMiddleware(), imageController.UploadCover)
			images.DELETE("/:id", middleware.AuthMiddleware(), imageController.ReleaseCover)
		}
	}

	// ====== WebSocket路由（页脚时钟）======
	r.GET("/ws/clock", websocket.HandleClock)
}
