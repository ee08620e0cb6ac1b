package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"holdco-backend/internal/app/config"

	"github.com/sirupsen/logrus"
)

// Article — статья из внешнего CMS
type Article struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body"`
	CoverImage  string    `json:"cover_image"`
	PublishedAt time.Time `json:"published_at"`
}

// Client — клиент внешнего CMS. При недоступности сервиса все методы
// деградируют до статической выборки, а не до ошибки: витрина не
// должна оставаться пустой.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg config.CMSConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// ответ CMS: массив записей с полями в data
type cmsEnvelope struct {
	Results []struct {
		ID   string  `json:"id"`
		Data Article `json:"data"`
	} `json:"results"`
}

func (c *Client) fetch(ctx context.Context, path string, query url.Values) ([]Article, error) {
	if c.baseURL == "" {
		return nil, fmt.Errorf("cms base url not configured")
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("apiKey", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cms request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cms responded %d", resp.StatusCode)
	}

	var envelope cmsEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("cms decode failed: %w", err)
	}

	articles := make([]Article, 0, len(envelope.Results))
	for _, r := range envelope.Results {
		a := r.Data
		if a.ID == "" {
			a.ID = r.ID
		}
		articles = append(articles, a)
	}
	return articles, nil
}

// ListArticles возвращает все статьи
func (c *Client) ListArticles(ctx context.Context) []Article {
	articles, err := c.fetch(ctx, "/articles", nil)
	if err != nil {
		logrus.Warnf("cms: list failed, serving fallback: %v", err)
		return fallbackArticles()
	}
	return articles
}

// GetArticle возвращает статью по slug, nil если не найдена
func (c *Client) GetArticle(ctx context.Context, slug string) *Article {
	query := url.Values{}
	query.Set("query.data.slug", slug)

	articles, err := c.fetch(ctx, "/articles", query)
	if err != nil {
		logrus.Warnf("cms: get %q failed, serving fallback: %v", slug, err)
		articles = fallbackArticles()
	}
	for i := range articles {
		if articles[i].Slug == slug {
			return &articles[i]
		}
	}
	return nil
}

// ListByCategory возвращает статьи категории
func (c *Client) ListByCategory(ctx context.Context, category string) []Article {
	query := url.Values{}
	query.Set("query.data.category", category)

	articles, err := c.fetch(ctx, "/articles", query)
	if err != nil {
		logrus.Warnf("cms: category %q failed, serving fallback: %v", category, err)
		articles = fallbackArticles()
	}

	out := make([]Article, 0, len(articles))
	for _, a := range articles {
		if strings.EqualFold(a.Category, category) {
			out = append(out, a)
		}
	}
	return out
}

// Search ищет по заголовку и аннотации без учета регистра
func (c *Client) Search(ctx context.Context, q string) []Article {
	articles, err := c.fetch(ctx, "/articles", nil)
	if err != nil {
		logrus.Warnf("cms: search %q failed, serving fallback: %v", q, err)
		articles = fallbackArticles()
	}

	needle := strings.ToLower(q)
	out := make([]Article, 0)
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), needle) ||
			strings.Contains(strings.ToLower(a.Excerpt), needle) {
			out = append(out, a)
		}
	}
	return out
}
