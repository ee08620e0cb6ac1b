package handler

import (
	"net/http"

	"holdco-backend/internal/app/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// SubmitContact принимает контактную форму
// @Summary Отправка контактной формы
// @Description Валидирует и сохраняет обращение (имя от 2 символов, тема от 3, сообщение от 10)
// @Tags Forms
// @Accept json
// @Produce json
// @Param request body dto.ContactRequest true "Данные формы"
// @Success 201 {object} dto.ContactResponse
// @Failure 400 {object} dto.ValidationErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/contact [post]
func (h *APIHandler) SubmitContact(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.validationFailed(c, err)
		return
	}

	var phone *string
	if req.Phone != "" {
		phone = &req.Phone
	}

	submission, err := h.Repository.CreateContactSubmission(req.Name, req.Email, req.Subject, req.Message, phone)
	if err != nil {
		logrus.Error("Error saving contact submission: ", err)
		h.errorResponse(c, http.StatusInternalServerError, "Failed to save submission")
		return
	}

	c.JSON(http.StatusCreated, dto.ContactResponse{
		Success:      true,
		Message:      "Thank you, we will get back to you shortly",
		SubmissionID: submission.SubmissionID,
	})
}
