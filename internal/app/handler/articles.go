package handler

import (
	"io"
	"net/http"

	"holdco-backend/internal/app/cms"
	"holdco-backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func toArticleResponse(a cms.Article, withBody bool) dto.ArticleResponse {
	resp := dto.ArticleResponse{
		ID:          a.ID,
		Slug:        a.Slug,
		Title:       a.Title,
		Category:    a.Category,
		Excerpt:     a.Excerpt,
		CoverImage:  a.CoverImage,
		PublishedAt: a.PublishedAt,
	}
	if withBody {
		resp.Body = a.Body
	}
	return resp
}

func (h *APIHandler) articleList(c *gin.Context, articles []cms.Article) {
	dtoArticles := make([]dto.ArticleResponse, len(articles))
	for i, a := range articles {
		dtoArticles[i] = toArticleResponse(a, false)
	}
	c.JSON(http.StatusOK, dto.ArticleListResponse{
		Articles: dtoArticles,
		Total:    len(dtoArticles),
	})
}

// GetArticles получает список статей
// @Summary Список статей
// @Description Проксирует внешний CMS; при его недоступности отдает статическую выборку
// @Tags Articles
// @Produce json
// @Success 200 {object} dto.ArticleListResponse
// @Router /api/articles [get]
func (h *APIHandler) GetArticles(c *gin.Context) {
	h.articleList(c, h.CMSClient.ListArticles(c.Request.Context()))
}

// GetArticle получает статью по slug
// @Summary Статья по slug
// @Description Возвращает статью с телом; обложка из MinIO, если загружена
// @Tags Articles
// @Produce json
// @Param slug path string true "Slug статьи"
// @Success 200 {object} dto.ArticleResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/articles/{slug} [get]
func (h *APIHandler) GetArticle(c *gin.Context) {
	slug := c.Param("slug")

	article := h.CMSClient.GetArticle(c.Request.Context(), slug)
	if article == nil {
		h.errorResponse(c, http.StatusNotFound, "Article not found")
		return
	}

	resp := toArticleResponse(*article, true)

	// загруженная обложка приоритетнее пришедшей из CMS
	if objectName, err := h.Repository.GetArticleImage(slug); err == nil && objectName != "" && h.MinIOClient != nil {
		if url, err := h.MinIOClient.PresignedURL(c.Request.Context(), objectName); err == nil {
			resp.CoverImage = url
		} else {
			logrus.Warnf("presigned url for %s failed: %v", objectName, err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// GetArticlesByCategory получает статьи категории
// @Summary Статьи по категории
// @Tags Articles
// @Produce json
// @Param category path string true "Категория"
// @Success 200 {object} dto.ArticleListResponse
// @Router /api/articles/category/{category} [get]
func (h *APIHandler) GetArticlesByCategory(c *gin.Context) {
	h.articleList(c, h.CMSClient.ListByCategory(c.Request.Context(), c.Param("category")))
}

// SearchArticles ищет статьи
// @Summary Поиск статей
// @Tags Articles
// @Produce json
// @Param q query string true "Поисковый запрос"
// @Success 200 {object} dto.ArticleListResponse
// @Router /api/articles/search/query [get]
func (h *APIHandler) SearchArticles(c *gin.Context) {
	h.articleList(c, h.CMSClient.Search(c.Request.Context(), c.Query("q")))
}

// UploadArticleCover загружает обложку статьи
// @Summary Загрузка обложки статьи
// @Description Загружает изображение в MinIO и привязывает к slug (только для модераторов)
// @Tags Articles
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Slug статьи"
// @Param image formData file true "Файл изображения"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/articles/{slug}/cover [post]
func (h *APIHandler) UploadArticleCover(c *gin.Context) {
	slug := c.Param("slug")
	if h.MinIOClient == nil {
		h.errorResponse(c, http.StatusServiceUnavailable, "Image storage is not configured")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		h.errorResponse(c, http.StatusBadRequest, "Image file missing from request")
		return
	}

	opened, err := file.Open()
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Failed to read file")
		return
	}
	defer opened.Close()

	fileData, err := io.ReadAll(opened)
	if err != nil {
		h.errorResponse(c, http.StatusInternalServerError, "Failed to read file")
		return
	}

	objectName, err := h.MinIOClient.UploadCover(c.Request.Context(), slug, fileData, file.Filename)
	if err != nil {
		logrus.Error("Error uploading cover: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	previous, err := h.Repository.UpsertArticleImage(slug, objectName)
	if err != nil {
		logrus.Error("Error saving cover binding: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Failed to save image")
		return
	}

	// старый объект больше не нужен
	if previous != "" {
		if err := h.MinIOClient.DeleteObject(c.Request.Context(), previous); err != nil {
			logrus.Warnf("Failed to delete previous cover %s: %v", previous, err)
		}
	}

	h.successResponse(c, http.StatusOK, "Cover uploaded", gin.H{
		"object_name": objectName,
	})
}
