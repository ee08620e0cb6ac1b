package handler

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"holdco-backend/internal/app/config"
	"holdco-backend/internal/app/ds"
	"holdco-backend/internal/app/dto"
	"holdco-backend/internal/app/mail"
	"holdco-backend/internal/app/redis"
	"holdco-backend/internal/app/repository"
	"holdco-backend/internal/app/role"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// срок жизни одноразовой ссылки входа
const magicLinkTTL = 15 * time.Minute

type AuthHandler struct {
	Repository  *repository.Repository
	RedisClient *redis.Client
	MailClient  *mail.Client
	Config      *config.Config
}

func NewAuthHandler(r *repository.Repository, redisClient *redis.Client, mailClient *mail.Client, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		Repository:  r,
		RedisClient: redisClient,
		MailClient:  mailClient,
		Config:      cfg,
	}
}

// RequestMagicLink выдает одноразовую ссылку входа
// @Summary Запрос magic-link
// @Description Создает одноразовый токен и отправляет ссылку на почту. Ответ одинаковый для любого email.
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.MagicLinkRequest true "Email для входа"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} map[string]interface{}
// @Router /api/auth/magic-link [post]
func (h *AuthHandler) RequestMagicLink(ctx *gin.Context) {
	var request dto.MagicLinkRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ValidationErrorResponse{
			Success: false,
			Errors:  []string{err.Error()},
		})
		return
	}

	token := uuid.New().String()
	if err := h.RedisClient.StoreMagicLink(ctx.Request.Context(), token, request.Email, magicLinkTTL); err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	link := h.Config.Mail.PortalURL + "?token=" + url.QueryEscape(token)

	// доставка письма не задерживает ответ и не влияет на него
	go func(email, link string) {
		sendCtx, cancel := context.WithTimeout(context.Background(), h.Config.Mail.Timeout)
		defer cancel()
		if err := h.MailClient.SendMagicLink(sendCtx, email, link); err != nil {
			logrus.Warnf("magic link delivery to %s failed: %v", email, err)
		}
	}(request.Email, link)

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "If the address is valid, a sign-in link is on its way",
	})
}

// VerifyMagicLink обменивает токен на JWT сессии
// @Summary Вход по magic-link
// @Description Потребляет одноразовый токен, создает пользователя при первом входе и возвращает JWT
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.VerifyRequest true "Токен из письма"
// @Success 200 {object} dto.VerifyResponse
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /api/auth/verify [post]
func (h *AuthHandler) VerifyMagicLink(ctx *gin.Context) {
	var request dto.VerifyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		h.errorHandler(ctx, http.StatusBadRequest, err)
		return
	}

	email, err := h.RedisClient.ConsumeMagicLink(ctx.Request.Context(), request.Token)
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("link is invalid or expired"))
		return
	}

	user, err := h.Repository.GetOrCreateUserByEmail(email)
	if err != nil {
		logrus.Error("Error resolving portal user: ", err)
		h.errorHandler(ctx, http.StatusInternalServerError, errors.New("failed to sign in"))
		return
	}

	if err := h.Repository.TouchLastLogin(user.ID); err != nil {
		logrus.Warnf("touch last login for %d failed: %v", user.ID, err)
	}

	userRole := role.Role(user.Role)

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, ds.JWTClaims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: now.Add(h.Config.JWT.ExpiresIn).Unix(),
			IssuedAt:  now.Unix(),
			Issuer:    "holdco-portal",
		},
		UserID: user.ID,
		Role:   userRole,
	})

	accessToken, err := token.SignedString([]byte(h.Config.JWT.Token))
	if err != nil {
		h.errorHandler(ctx, http.StatusInternalServerError, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.VerifyResponse{
		Token:     accessToken,
		TokenType: "Bearer",
		ExpiresIn: int(h.Config.JWT.ExpiresIn.Seconds()),
		User: dto.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     userRole.String(),
		},
	})
}

// LogoutUser выход пользователя из системы
// @Summary Выход из портала
// @Description Завершение сеанса с добавлением токена в blacklist
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/auth/logout [post]
func (h *AuthHandler) LogoutUser(ctx *gin.Context) {
	tokenString := ctx.GetHeader("Authorization")
	if tokenString == "" {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("authorization header missing"))
		return
	}

	// Удаление префикса "Bearer "
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	token, err := jwt.ParseWithClaims(tokenString, &ds.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.Config.JWT.Token), nil
	})
	if err != nil {
		h.errorHandler(ctx, http.StatusUnauthorized, err)
		return
	}

	claims, ok := token.Claims.(*ds.JWTClaims)
	if !ok {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("invalid token claims"))
		return
	}

	// Токен живет в blacklist до собственного истечения
	ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
	if ttl > 0 {
		if err := h.RedisClient.WriteJWTToBlacklist(ctx.Request.Context(), tokenString, ttl); err != nil {
			h.errorHandler(ctx, http.StatusInternalServerError, err)
			return
		}
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Signed out",
	})
}

// GetUserProfile получение профиля пользователя
// @Summary Профиль пользователя
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /api/auth/profile [get]
func (h *AuthHandler) GetUserProfile(ctx *gin.Context) {
	userID, exists := ctx.Get("userID")
	if !exists {
		h.errorHandler(ctx, http.StatusUnauthorized, errors.New("not authenticated"))
		return
	}

	user, err := h.Repository.GetUserByID(userID.(uint))
	if err != nil {
		h.errorHandler(ctx, http.StatusNotFound, errors.New("user not found"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"status": "success",
		"user": dto.UserResponse{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
			Role:     role.Role(user.Role).String(),
		},
	})
}

// errorHandler централизованная обработка ошибок
func (h *AuthHandler) errorHandler(ctx *gin.Context, errorStatusCode int, err error) {
	logrus.Error(err.Error())
	ctx.JSON(errorStatusCode, gin.H{
		"status":      "error",
		"description": err.Error(),
	})
}
