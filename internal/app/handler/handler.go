package handler

import (
	"fmt"

	"holdco-backend/internal/app/cms"
	"holdco-backend/internal/app/config"
	"holdco-backend/internal/app/dto"
	"holdco-backend/internal/app/payment"
	"holdco-backend/internal/app/repository"
	"holdco-backend/internal/app/role"
	"holdco-backend/internal/app/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler содержит обработчики для REST API
type APIHandler struct {
	Repository    *repository.Repository
	CMSClient     *cms.Client
	PaymentClient *payment.Client
	MinIOClient   *storage.MinIOClient
	AuthHandler   *AuthHandler
	Config        *config.Config
}

func NewAPIHandler(r *repository.Repository, cmsClient *cms.Client, paymentClient *payment.Client,
	minioClient *storage.MinIOClient, authHandler *AuthHandler, cfg *config.Config) *APIHandler {
	return &APIHandler{
		Repository:    r,
		CMSClient:     cmsClient,
		PaymentClient: paymentClient,
		MinIOClient:   minioClient,
		AuthHandler:   authHandler,
		Config:        cfg,
	}
}

// ============ Вспомогательные функции ============

func (h *APIHandler) errorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{
		Status:  "fail",
		Message: message,
	})
}

func (h *APIHandler) successResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	response := dto.SuccessResponse{
		Status:  "success",
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(statusCode, response)
}

// validationFailed — ответ 400 контрактной формы {success:false, errors}
func (h *APIHandler) validationFailed(c *gin.Context, err error) {
	c.JSON(400, dto.ValidationErrorResponse{
		Success: false,
		Errors:  []string{err.Error()},
	})
}

// Получение текущего пользователя из контекста
func (h *APIHandler) getUserFromContext(c *gin.Context) (uint, role.Role, error) {
	userID, exists := c.Get("userID")
	if !exists {
		logrus.Warn("userID not found in context")
		return 0, role.Customer, fmt.Errorf("user not authenticated")
	}

	userRole, _ := c.Get("userRole")
	r, _ := userRole.(role.Role)

	id, ok := userID.(uint)
	if !ok {
		logrus.Errorf("getUserFromContext: invalid userID type: %T", userID)
		return 0, r, fmt.Errorf("invalid user ID")
	}

	return id, r, nil
}

// Ping проверяет работоспособность API
// @Summary Проверка работоспособности
// @Description Возвращает простой ответ для проверки работы сервера
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /ping [get]
func (h *APIHandler) Ping(ctx *gin.Context) {
	ctx.JSON(200, gin.H{"message": "pong"})
}
