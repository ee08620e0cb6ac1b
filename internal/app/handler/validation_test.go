package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"holdco-backend/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// маршруты, у которых проверяется только контрактная форма ответа 400;
// до репозитория такие запросы не доходят
func validationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewAPIHandler(nil, nil, nil, nil, nil, nil)
	r := gin.New()
	r.POST("/api/contact", h.SubmitContact)
	r.POST("/api/comments", h.CreateComment)
	r.POST("/api/order-intake", h.SubmitOrderIntake)
	r.POST("/api/create-checkout-session", h.CreateCheckoutSession)
	return r
}

func requireValidationError(t *testing.T, body []byte) {
	t.Helper()
	var resp struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Errors)
}

func TestSubmitContact_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", `{}`},
		{"short name", `{"name": "J", "email": "j@example.com", "subject": "Help", "message": "Long enough message"}`},
		{"bad email", `{"name": "Jane", "email": "nope", "subject": "Help", "message": "Long enough message"}`},
		{"short message", `{"name": "Jane", "email": "j@example.com", "subject": "Help", "message": "short"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, validationRouter(), "/api/contact", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			requireValidationError(t, w.Body.Bytes())
		})
	}
}

func TestCreateComment_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing article", `{"name": "Jane", "email": "j@example.com", "content": "Nice article"}`},
		{"short content", `{"articleId": "first-post", "name": "Jane", "email": "j@example.com", "content": "ok"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, validationRouter(), "/api/comments", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			requireValidationError(t, w.Body.Bytes())
		})
	}
}

func intakeBody(terms, privacy bool, ownership []int) string {
	members := make([]string, len(ownership))
	for i, p := range ownership {
		members[i] = fmt.Sprintf(`{
			"fullName": "Member %d",
			"email": "m%d@example.com",
			"phone": "+15550100",
			"dateOfBirth": "1990-01-15",
			"country": "US",
			"ownershipPercent": %d
		}`, i+1, i+1, p)
	}
	return fmt.Sprintf(`{
		"productType": "wyoming-llc",
		"package": "basic",
		"totalAmount": 301,
		"formData": {
			"companyNames": ["A LLC", "B LLC", "C LLC"],
			"businessPurpose": "Consulting",
			"members": [%s],
			"termsAccepted": %t,
			"privacyAccepted": %t
		}
	}`, strings.Join(members, ","), terms, privacy)
}

func TestSubmitOrderIntake_ConsentRequired(t *testing.T) {
	w := postJSON(t, validationRouter(), "/api/order-intake", intakeBody(true, false, []int{100}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	requireValidationError(t, w.Body.Bytes())
}

func TestSubmitOrderIntake_OwnershipMustSumTo100(t *testing.T) {
	w := postJSON(t, validationRouter(), "/api/order-intake", intakeBody(true, true, []int{60, 50}))
	require.Equal(t, http.StatusBadRequest, w.Code)
	requireValidationError(t, w.Body.Bytes())
}

func TestSubmitOrderIntake_RejectsBadPackage(t *testing.T) {
	body := `{
		"productType": "wyoming-llc",
		"package": "deluxe",
		"totalAmount": 301,
		"formData": {
			"companyNames": ["A LLC", "B LLC", "C LLC"],
			"businessPurpose": "Consulting",
			"members": [{"fullName": "Jane", "email": "j@example.com", "phone": "1", "dateOfBirth": "1990-01-15", "country": "US", "ownershipPercent": 100}],
			"termsAccepted": true,
			"privacyAccepted": true
		}
	}`
	w := postJSON(t, validationRouter(), "/api/order-intake", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCheckoutSession_Validation(t *testing.T) {
	w := postJSON(t, validationRouter(), "/api/create-checkout-session", `{"orderId": "FC-WY-1"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	requireValidationError(t, w.Body.Bytes())
}
