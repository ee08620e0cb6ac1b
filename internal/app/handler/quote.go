package handler

import (
	"errors"
	"net/http"
	"time"

	"holdco-backend/internal/app/dto"
	"holdco-backend/internal/app/pricing"

	"github.com/gin-gonic/gin"
)

// configFromRequest собирает конфигурацию расчета из запроса.
// Параметры неактивных вариантов игнорируются.
func configFromRequest(req dto.QuoteCalcRequest) (pricing.QuoteConfiguration, error) {
	cfg := pricing.QuoteConfiguration{Service: pricing.ServiceType(req.Service)}

	switch cfg.Service {
	case pricing.ServiceApp:
		if req.App == nil {
			return cfg, errors.New("app parameters are required for service=app")
		}
		platforms := make([]pricing.Platform, len(req.App.Platforms))
		for i, p := range req.App.Platforms {
			platforms[i] = pricing.Platform(p)
		}
		cfg.App = pricing.AppConfig{
			Platforms:  platforms,
			Screens:    req.App.Screens,
			Complexity: pricing.Complexity(req.App.Complexity),
			Features:   req.App.Features,
		}
	case pricing.ServiceWebsite:
		if req.Website == nil {
			return cfg, errors.New("website parameters are required for service=website")
		}
		cfg.Website = pricing.WebsiteConfig{
			Pages:    req.Website.Pages,
			Type:     pricing.SiteType(req.Website.Type),
			Features: req.Website.Features,
		}
	case pricing.ServiceSocial:
		if req.Social == nil {
			return cfg, errors.New("social parameters are required for service=social")
		}
		cfg.Social = pricing.SocialConfig{
			Platforms:     req.Social.Platforms,
			PostsPerMonth: req.Social.PostsPerMonth,
			Design:        req.Social.Design,
			Ads:           req.Social.Ads,
		}
	}
	return cfg, nil
}

// CalculateQuote считает стоимость по конфигурации
// @Summary Расчет квоты
// @Description Детерминированный расчет стоимости; для social итог ежемесячный
// @Tags Quote
// @Accept json
// @Produce json
// @Param request body dto.QuoteCalcRequest true "Конфигурация услуги"
// @Success 200 {object} dto.QuoteCalcResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Router /api/quote/calculate [post]
func (h *APIHandler) CalculateQuote(c *gin.Context) {
	var req dto.QuoteCalcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}

	cfg, err := configFromRequest(req)
	if err != nil {
		h.validationFailed(c, err)
		return
	}

	breakdown := pricing.CalculatePrice(cfg)

	c.JSON(http.StatusOK, dto.QuoteCalcResponse{
		Service:   string(breakdown.Service),
		Base:      breakdown.Base,
		Surcharge: breakdown.Surcharge,
		Total:     breakdown.Total,
		Currency:  "USD",
		Recurring: breakdown.Recurring,
		QuoteID:   pricing.GenerateQuoteID(time.Now()),
	})
}
