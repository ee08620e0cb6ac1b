package pkg

import (
	"fmt"

	"holdco-backend/internal/app/config"
	"holdco-backend/internal/app/handler"
	"holdco-backend/internal/app/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Application struct {
	Config  *config.Config
	Router  *gin.Engine
	Handler *handler.APIHandler
	AuthMW  *middleware.AuthMiddleware
}

func NewApp(c *config.Config, r *gin.Engine, h *handler.APIHandler, authMW *middleware.AuthMiddleware) *Application {
	return &Application{
		Config:  c,
		Router:  r,
		Handler: h,
		AuthMW:  authMW,
	}
}

func (a *Application) RunApp() {
	logrus.Info("Server start up")

	// Регистрируем маршруты
	a.Handler.RegisterRoutes(a.Router, a.AuthMW)

	serverAddress := fmt.Sprintf("%s:%d", a.Config.ServiceHost, a.Config.ServicePort)
	logrus.Infof("Starting server on %s", serverAddress)

	if err := a.Router.Run(serverAddress); err != nil {
		logrus.Fatal(err)
	}

	logrus.Info("Server down")
}
