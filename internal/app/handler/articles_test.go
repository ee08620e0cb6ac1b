package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"holdco-backend/internal/app/cms"
	"holdco-backend/internal/app/config"
	"holdco-backend/internal/app/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func articlesRouter(cmsBaseURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cmsClient := cms.NewClient(config.CMSConfig{
		BaseURL: cmsBaseURL,
		APIKey:  "key",
		Timeout: 2 * time.Second,
	})
	h := handler.NewAPIHandler(nil, cmsClient, nil, nil, nil, nil)
	r := gin.New()
	r.GET("/api/articles", h.GetArticles)
	r.GET("/api/articles/category/:category", h.GetArticlesByCategory)
	r.GET("/api/articles/search/query", h.SearchArticles)
	return r
}

func getJSON(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type articleListBody struct {
	Articles []struct {
		Slug     string `json:"slug"`
		Title    string `json:"title"`
		Category string `json:"category"`
		Body     string `json:"body,omitempty"`
	} `json:"articles"`
	Total int `json:"total"`
}

func TestGetArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [
			{"id": "1", "data": {"slug": "a", "title": "A", "category": "guides", "body": "full text"}},
			{"id": "2", "data": {"slug": "b", "title": "B", "category": "news"}}
		]}`)
	}))
	defer srv.Close()

	w := getJSON(t, articlesRouter(srv.URL), "/api/articles")
	require.Equal(t, http.StatusOK, w.Code)

	var body articleListBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 2, body.Total)
	// тело статьи не включается в списочную выдачу
	require.Empty(t, body.Articles[0].Body)
}

func TestGetArticles_FallbackWhenCMSDown(t *testing.T) {
	w := getJSON(t, articlesRouter("http://127.0.0.1:0"), "/api/articles")
	require.Equal(t, http.StatusOK, w.Code)

	var body articleListBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Greater(t, body.Total, 0)
}

func TestGetArticlesByCategory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [
			{"id": "1", "data": {"slug": "a", "title": "A", "category": "guides"}},
			{"id": "2", "data": {"slug": "b", "title": "B", "category": "news"}}
		]}`)
	}))
	defer srv.Close()

	w := getJSON(t, articlesRouter(srv.URL), "/api/articles/category/news")
	require.Equal(t, http.StatusOK, w.Code)

	var body articleListBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	require.Equal(t, "b", body.Articles[0].Slug)
}

func TestSearchArticles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [
			{"id": "1", "data": {"slug": "a", "title": "Wyoming LLC Guide", "category": "guides"}},
			{"id": "2", "data": {"slug": "b", "title": "Quarterly News", "category": "news"}}
		]}`)
	}))
	defer srv.Close()

	w := getJSON(t, articlesRouter(srv.URL), "/api/articles/search/query?q=wyoming")
	require.Equal(t, http.StatusOK, w.Code)

	var body articleListBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 1, body.Total)
	require.Equal(t, "a", body.Articles[0].Slug)
}
