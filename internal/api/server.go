package api

import (
	"context"
	"log"

	"holdco-backend/internal/app/cms"
	"holdco-backend/internal/app/config"
	"holdco-backend/internal/app/dsn"
	"holdco-backend/internal/app/handler"
	"holdco-backend/internal/app/mail"
	"holdco-backend/internal/app/middleware"
	"holdco-backend/internal/app/payment"
	"holdco-backend/internal/app/redis"
	"holdco-backend/internal/app/repository"
	"holdco-backend/internal/app/storage"
	"holdco-backend/internal/pkg"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func StartServer() {
	log.Println("Starting server")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("ошибка инициализации конфигурации: %v", err)
	}

	repo, err := repository.New(dsn.FromEnv())
	if err != nil {
		logrus.Fatalf("ошибка инициализации репозитория: %v", err)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logrus.Fatalf("ошибка инициализации redis: %v", err)
	}

	// MinIO не критичен для запуска: без него обложки статей
	// берутся напрямую из CMS
	minioClient, err := storage.NewMinIOClient(cfg.Minio)
	if err != nil {
		logrus.Warnf("minio unavailable, article covers served from CMS only: %v", err)
		minioClient = nil
	}

	cmsClient := cms.NewClient(cfg.CMS)
	paymentClient := payment.NewClient(cfg.Payment)
	mailClient := mail.NewClient(cfg.Mail)

	authHandler := handler.NewAuthHandler(repo, redisClient, mailClient, cfg)
	apiHandler := handler.NewAPIHandler(repo, cmsClient, paymentClient, minioClient, authHandler, cfg)
	authMW := middleware.NewAuthMiddleware(redisClient, cfg)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	application := pkg.NewApp(cfg, r, apiHandler, authMW)
	application.RunApp()

	log.Println("Server down")
}
