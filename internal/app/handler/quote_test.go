package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"holdco-backend/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func quoteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handler.NewAPIHandler(nil, nil, nil, nil, nil, nil)
	r := gin.New()
	r.POST("/api/quote/calculate", h.CalculateQuote)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCalculateQuote_App(t *testing.T) {
	w := postJSON(t, quoteRouter(), "/api/quote/calculate", `{
		"service": "app",
		"app": {
			"platforms": ["ios", "android"],
			"screens": 10,
			"complexity": "medium",
			"features": ["auth", "payments"]
		}
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "app", resp["service"])
	require.EqualValues(t, 12500, resp["total"])
	require.Equal(t, "USD", resp["currency"])
	require.Equal(t, false, resp["recurring"])
	require.Regexp(t, `^QT-[0-9a-z]+-[0-9a-z]{4}$`, resp["quoteId"])
}

func TestCalculateQuote_SocialRecurring(t *testing.T) {
	w := postJSON(t, quoteRouter(), "/api/quote/calculate", `{
		"service": "social",
		"social": {"platforms": 3, "postsPerMonth": 20, "design": true, "ads": true}
	}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.EqualValues(t, 2550, resp["total"])
	require.Equal(t, true, resp["recurring"])
}

func TestCalculateQuote_MissingVariantParams(t *testing.T) {
	w := postJSON(t, quoteRouter(), "/api/quote/calculate", `{"service": "website"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool     `json:"success"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.False(t, resp.Success)
	require.NotEmpty(t, resp.Errors)
}

func TestCalculateQuote_BindingViolations(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown service", `{"service": "consulting"}`},
		{"zero screens", `{"service": "app", "app": {"platforms": ["ios"], "screens": 0, "complexity": "simple"}}`},
		{"too many pages", `{"service": "website", "website": {"pages": 500, "type": "landing"}}`},
		{"bad platform", `{"service": "app", "app": {"platforms": ["windows"], "screens": 3, "complexity": "simple"}}`},
		{"malformed json", `{`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, quoteRouter(), "/api/quote/calculate", tt.body)
			require.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
