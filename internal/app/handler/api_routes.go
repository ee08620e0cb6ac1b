package handler

import (
	"holdco-backend/internal/app/middleware"
	"holdco-backend/internal/app/role"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes регистрация маршрутов REST API
func (h *APIHandler) RegisterRoutes(router *gin.Engine, authMW *middleware.AuthMiddleware) {
	router.GET("/ping", h.Ping)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		// Статьи (прокси CMS с fallback)
		articles := api.Group("/articles")
		{
			articles.GET("", h.GetArticles)
			articles.GET("/:slug", h.GetArticle)
			articles.GET("/category/:category", h.GetArticlesByCategory)
			articles.GET("/search/query", h.SearchArticles)
			articles.POST("/:slug/cover", authMW.WithAuthCheck(role.Manager, role.Admin), h.UploadArticleCover)
		}

		// Контактная форма
		api.POST("/contact", h.SubmitContact)

		// Комментарии: чтение и создание публичные, модерация по ролям
		comments := api.Group("/comments")
		{
			comments.GET("/pending", authMW.WithAuthCheck(role.Manager, role.Admin), h.GetPendingComments)
			comments.GET("/:articleId", h.GetComments)
			comments.POST("", h.CreateComment)
			comments.PUT("/:id/approve", authMW.WithAuthCheck(role.Manager, role.Admin), h.ApproveComment)
			comments.DELETE("/:id", authMW.WithAuthCheck(role.Manager, role.Admin), h.DeleteComment)
		}

		// Калькулятор квот
		api.POST("/quote/calculate", h.CalculateQuote)

		// Оформление компании и оплата
		api.POST("/order-intake", h.SubmitOrderIntake)
		api.POST("/create-checkout-session", h.CreateCheckoutSession)

		// Аутентификация портала
		auth := api.Group("/auth")
		{
			auth.POST("/magic-link", h.AuthHandler.RequestMagicLink)
			auth.POST("/verify", h.AuthHandler.VerifyMagicLink)
			auth.POST("/logout", authMW.WithAuthCheck(), h.AuthHandler.LogoutUser)
			auth.GET("/profile", authMW.WithAuthCheck(), h.AuthHandler.GetUserProfile)
		}

		// Портал клиента
		api.GET("/portal/orders", authMW.WithAuthCheck(), h.GetMyOrders)
	}
}
