package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/habitat-caracas/habitat/backend/internal/middleware"
	"github.com/habitat-caracas/habitat/backend/internal/services"
	"github.com/habitat-caracas/habitat/backend/pkg/response"
)

type ContactHandler struct {
	contactService *services.ContactService
	authService    *services.AuthService
}

func NewContactHandler(contactService *services.ContactService, authService *services.AuthService) *ContactHandler {
	return &ContactHandler{contactService: contactService, authService: authService}
}

// Create records a public contact submission
// POST /api/contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, contact)
}

// List returns contacts visible to the caller
// GET /api/contact
func (h *ContactHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	contacts, err := h.contactService.List(offset, limit, middleware.GetUserID(c), middleware.GetRole(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, contacts)
}

// GetByID returns a contact by ID
// GET /api/contact/:id
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid contact id")
		return
	}

	contact, err := h.contactService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, contact)
}

// Update edits a contact, its assignment or read state
// PUT /api/contact/:id
func (h *ContactHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid contact id")
		return
	}

	var req services.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	contact, err := h.contactService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, contact)
}

// Delete deletes a contact
// DELETE /api/contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid contact id")
		return
	}

	if err := h.contactService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ExportPDF streams a contact submission as a PDF attachment
// GET /api/contact/:id/pdf
func (h *ContactHandler) ExportPDF(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid contact id")
		return
	}

	contact, err := h.contactService.Get(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	data, err := services.RenderContactPDF(contact)
	if err != nil {
		response.ServerError(c, "failed to render pdf")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="contact_%d.pdf"`, contact.ID))
	c.Data(200, "application/pdf", data)
}

type sendEmailRequest struct {
	RecipientEmail string `json:"recipient_email"`
}

// SendEmail forwards a contact submission over SMTP
// POST /api/contact/:id/send-email
func (h *ContactHandler) SendEmail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid contact id")
		return
	}

	var req sendEmailRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, err.Error())
			return
		}
	}

	callerEmail := ""
	if caller, err := h.authService.GetUserByID(middleware.GetUserID(c)); err == nil {
		callerEmail = caller.Email
	}

	recipient, err := h.contactService.Forward(uint(id), req.RecipientEmail, callerEmail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"sent_to": recipient})
}
