package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"time"

	"holdco-backend/internal/app/dto"
	"holdco-backend/internal/app/payment"
	"holdco-backend/internal/app/pricing"
	"holdco-backend/internal/app/wizard"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var orderIDPattern = regexp.MustCompile(`^FC-WY-[0-9a-z]+$`)

// SubmitOrderIntake принимает заказ оформления компании
// @Summary Отправка заказа оформления
// @Description Проверяет форму и инвариант долей, пересчитывает итог и сохраняет заказ с участниками
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body dto.OrderIntakeRequest true "Данные заказа"
// @Success 201 {object} dto.OrderIntakeResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/order-intake [post]
func (h *APIHandler) SubmitOrderIntake(c *gin.Context) {
	var req dto.OrderIntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}

	if !req.FormData.TermsAccepted || !req.FormData.PrivacyAccepted {
		h.validationFailed(c, wizard.ErrConsentRequired)
		return
	}

	members := make([]wizard.MemberInfo, len(req.FormData.Members))
	for i, m := range req.FormData.Members {
		members[i] = wizard.MemberInfo{
			FullName:         m.FullName,
			Email:            m.Email,
			Phone:            m.Phone,
			DateOfBirth:      m.DateOfBirth,
			Country:          m.Country,
			Address:          m.Address,
			OwnershipPercent: m.OwnershipPercent,
		}
	}

	// инвариант проверяется и при чтении формы, не только при мутациях
	if err := wizard.ValidateOwnership(members); err != nil {
		h.validationFailed(c, err)
		return
	}

	form := wizard.OrderForm{
		Package:          pricing.Package(req.Package),
		AddOns:           req.FormData.AddOns,
		BusinessType:     req.FormData.BusinessType,
		BusinessPurpose:  req.FormData.BusinessPurpose,
		Members:          members,
		ManagementType:   req.FormData.ManagementType,
		MailForwarding:   req.FormData.MailForwarding,
		VirtualOffice:    req.FormData.VirtualOffice,
		ComplianceAlerts: req.FormData.ComplianceAlerts,
		TermsAccepted:    req.FormData.TermsAccepted,
		PrivacyAccepted:  req.FormData.PrivacyAccepted,
	}
	copy(form.CompanyNames[:], req.FormData.CompanyNames)

	// итог не доверяем клиенту
	total := pricing.IntakeTotal(form.Package, form.AddOns)
	if req.TotalAmount != total {
		logrus.Warnf("order intake: client total %d differs from computed %d", req.TotalAmount, total)
	}

	now := time.Now()
	orderID := req.OrderID
	if !orderIDPattern.MatchString(orderID) {
		orderID = pricing.GenerateOrderID(now)
	}

	submittedAt := req.SubmittedAt
	if submittedAt.IsZero() {
		submittedAt = now
	}

	sub := wizard.OrderSubmission{
		OrderID:     orderID,
		ProductType: req.ProductType,
		Package:     form.Package,
		Form:        form,
		TotalAmount: total,
		SubmittedAt: submittedAt,
	}

	if err := h.Repository.CreateOrder(c.Request.Context(), sub); err != nil {
		logrus.Error("Error saving intake order: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Failed to save order")
		return
	}

	c.JSON(http.StatusCreated, dto.OrderIntakeResponse{
		Success:     true,
		OrderID:     orderID,
		TotalAmount: total,
		Message:     "Order submitted",
	})
}

// CreateCheckoutSession создает checkout-сессию у платежного сервиса
// @Summary Создание checkout-сессии
// @Description Проксирует платежный сервис и возвращает URL перенаправления на оплату
// @Tags Intake
// @Accept json
// @Produce json
// @Param request body dto.CheckoutSessionRequest true "Данные оплаты"
// @Success 200 {object} dto.CheckoutSessionResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /api/create-checkout-session [post]
func (h *APIHandler) CreateCheckoutSession(c *gin.Context) {
	var req dto.CheckoutSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}

	// сессия только для существующего заказа
	if _, err := h.Repository.GetOrderByOrderID(req.OrderID); err != nil {
		h.errorResponse(c, http.StatusNotFound, "Order not found")
		return
	}

	url, err := h.PaymentClient.CreateCheckoutSession(c.Request.Context(), payment.SessionRequest{
		OrderID:       req.OrderID,
		Package:       req.Package,
		AddOns:        req.AddOns,
		TotalAmount:   req.TotalAmount,
		CustomerEmail: req.CustomerEmail,
		CustomerName:  req.CustomerName,
	})
	if err != nil {
		// различаем недоступность и отказ только в логах,
		// наружу уходит общий ответ
		if errors.Is(err, payment.ErrUnavailable) {
			logrus.Warnf("checkout for %s: payment service unreachable: %v", req.OrderID, err)
		} else {
			logrus.Errorf("checkout for %s: %v", req.OrderID, err)
		}
		h.errorResponse(c, http.StatusBadGateway, "Payment service is temporarily unavailable")
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutSessionResponse{URL: url})
}

// GetMyOrders возвращает заказы текущего пользователя портала
// @Summary Заказы пользователя
// @Description Заказы, в которых email пользователя числится участником
// @Tags Portal
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PortalOrderListResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/portal/orders [get]
func (h *APIHandler) GetMyOrders(c *gin.Context) {
	userID, _, err := h.getUserFromContext(c)
	if err != nil || userID == 0 {
		h.errorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.Repository.GetUserByID(userID)
	if err != nil {
		h.errorResponse(c, http.StatusUnauthorized, "User not found")
		return
	}

	orders, err := h.Repository.GetOrdersByEmail(user.Email)
	if err != nil {
		logrus.Error("Error getting portal orders: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Failed to load orders")
		return
	}

	dtoOrders := make([]dto.PortalOrderResponse, len(orders))
	for i, o := range orders {
		addOns := []string{}
		if o.AddOns != "" {
			addOns = strings.Split(o.AddOns, ",")
		}
		dtoOrders[i] = dto.PortalOrderResponse{
			OrderID:     o.OrderID,
			Package:     o.Package,
			AddOns:      addOns,
			CompanyName: o.CompanyName1,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			SubmittedAt: o.SubmittedAt,
			MemberCount: len(o.Members),
		}
	}

	c.JSON(http.StatusOK, dto.PortalOrderListResponse{
		Orders: dtoOrders,
		Total:  len(dtoOrders),
	})
}
