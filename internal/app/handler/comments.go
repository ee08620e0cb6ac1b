package handler

import (
	"net/http"
	"strconv"

	"holdco-backend/internal/app/ds"
	"holdco-backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func toCommentResponses(comments []ds.Comment) []dto.CommentResponse {
	out := make([]dto.CommentResponse, len(comments))
	for i, cm := range comments {
		out[i] = dto.CommentResponse{
			ID:        cm.ID,
			ArticleID: cm.ArticleID,
			Name:      cm.Name,
			Content:   cm.Content,
			Approved:  cm.Approved,
			CreatedAt: cm.CreatedAt,
		}
	}
	return out
}

// GetComments получает одобренные комментарии статьи
// @Summary Комментарии статьи
// @Description Возвращает только одобренные комментарии
// @Tags Comments
// @Produce json
// @Param articleId path string true "Slug статьи"
// @Success 200 {object} dto.CommentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/comments/{articleId} [get]
func (h *APIHandler) GetComments(c *gin.Context) {
	comments, err := h.Repository.GetApprovedComments(c.Param("articleId"))
	if err != nil {
		logrus.Error("Error getting comments: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Failed to load comments")
		return
	}

	responses := toCommentResponses(comments)
	c.JSON(http.StatusOK, dto.CommentListResponse{
		Comments: responses,
		Total:    len(responses),
	})
}

// GetPendingComments — очередь модерации
// @Summary Неодобренные комментарии
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.CommentListResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/comments/pending [get]
func (h *APIHandler) GetPendingComments(c *gin.Context) {
	comments, err := h.Repository.GetPendingComments()
	if err != nil {
		logrus.Error("Error getting pending comments: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Failed to load comments")
		return
	}

	responses := toCommentResponses(comments)
	c.JSON(http.StatusOK, dto.CommentListResponse{
		Comments: responses,
		Total:    len(responses),
	})
}

// CreateComment создает комментарий
// @Summary Новый комментарий
// @Description Создает комментарий; до модерации он не виден в публичной выдаче
// @Tags Comments
// @Accept json
// @Produce json
// @Param request body dto.CommentRequest true "Данные комментария"
// @Success 201 {object} dto.CommentResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/comments [post]
func (h *APIHandler) CreateComment(c *gin.Context) {
	var req dto.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}

	comment, err := h.Repository.CreateComment(req.ArticleID, req.Name, req.Email, req.Content)
	if err != nil {
		logrus.Error("Error creating comment: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Failed to save comment")
		return
	}

	c.JSON(http.StatusCreated, dto.CommentResponse{
		ID:        comment.ID,
		ArticleID: comment.ArticleID,
		Name:      comment.Name,
		Content:   comment.Content,
		Approved:  comment.Approved,
		CreatedAt: comment.CreatedAt,
	})
}

// ApproveComment одобряет комментарий
// @Summary Одобрение комментария
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID комментария"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/comments/{id}/approve [put]
func (h *APIHandler) ApproveComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	if err := h.Repository.ApproveComment(uint(id)); err != nil {
		h.errorResponse(c, http.StatusNotFound, "Comment not found")
		return
	}

	h.successResponse(c, http.StatusOK, "Comment approved", nil)
}

// DeleteComment удаляет комментарий
// @Summary Удаление комментария
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param id path int true "ID комментария"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /api/comments/{id} [delete]
func (h *APIHandler) DeleteComment(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		h.errorResponse(c, http.StatusBadRequest, "Invalid comment ID")
		return
	}

	if err := h.Repository.DeleteComment(uint(id)); err != nil {
		h.errorResponse(c, http.StatusNotFound, "Comment not found")
		return
	}

	h.successResponse(c, http.StatusOK, "Comment deleted", nil)
}
