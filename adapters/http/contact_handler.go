package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	contactUC "github.com/UmerAzizGujjar/portfolio/internal/application/usecase/contact"
	"github.com/UmerAzizGujjar/portfolio/pkg/apperror"
)

type ContactHandler struct {
	submitUC   *contactUC.SubmitContactUseCase
	listUC     *contactUC.ListContactsUseCase
	markReadUC *contactUC.MarkReadUseCase
	deleteUC   *contactUC.DeleteContactUseCase
}

func NewContactHandler(
	submitUC *contactUC.SubmitContactUseCase,
	listUC *contactUC.ListContactsUseCase,
	markReadUC *contactUC.MarkReadUseCase,
	deleteUC *contactUC.DeleteContactUseCase,
) *ContactHandler {
	return &ContactHandler{
		submitUC:   submitUC,
		listUC:     listUC,
		markReadUC: markReadUC,
		deleteUC:   deleteUC,
	}
}

func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req submitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body", err))
		return
	}

	output, err := h.submitUC.Execute(c.Request.Context(), contactUC.SubmitContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Message sent successfully! I will get back to you soon.",
		"contact": output.Contact,
	})
}

func (h *ContactHandler) ListContacts(c *gin.Context) {
	contacts, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

func (h *ContactHandler) MarkAsRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact ID", err))
		return
	}

	updated, err := h.markReadUC.Execute(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read", "contact": updated})
}

func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.Error(apperror.NewInvalidInput("invalid contact ID", err))
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
}
