package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/luminadental/lumina/internal/api/dto/v1/contact"
	"github.com/luminadental/lumina/internal/api/sanitization"
	"github.com/luminadental/lumina/internal/api/validation"
	"github.com/luminadental/lumina/internal/service"
	"github.com/luminadental/lumina/internal/utils"

	"github.com/gin-gonic/gin"
)

// Messages surfaced to the client, one per validation rule.
const (
	msgRequiredFields = "Name, email, and message are required fields."
	msgInvalidEmail   = "Please provide a valid email address."
	msgNameLength     = "Name must be between 2 and 100 characters."
	msgMessageLength  = "Message must be between 10 and 2000 characters."
	msgInvalidPhone   = "Please provide a valid phone number."
	msgSubmitSuccess  = "Thank you! Your message has been sent successfully. We will contact you within 2 hours."
	msgSubmitFailure  = "Sorry, there was an error sending your message. Please try calling us directly."
)

type ContactHandler struct {
	contactService *service.ContactService
	validator      *validation.Validator
}

func NewContactHandler(contactService *service.ContactService, validator *validation.Validator) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validator:      validator,
	}
}

// Submit processes one contact form submission: presence checks, field
// sanitization, per-rule validation, then the dual email dispatch. Each
// failed rule short-circuits with a 400 and its specific message.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// An unparseable body carries no usable fields, which is what
		// an empty submission is.
		utils.HandleAPIError(c, err, http.StatusBadRequest, msgRequiredFields)
		return
	}

	if strings.TrimSpace(req.Name) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Message) == "" {
		utils.HandleAPIError(c, nil, http.StatusBadRequest, msgRequiredFields)
		return
	}

	sub := &service.ContactSubmission{
		Name:    sanitization.SanitizeString(req.Name),
		Email:   sanitization.SanitizeEmail(req.Email),
		Phone:   sanitization.SanitizePhone(req.Phone),
		Message: sanitization.SanitizeString(req.Message),
	}

	if !h.validator.ValidEmail(sub.Email) {
		utils.HandleAPIError(c, nil, http.StatusBadRequest, msgInvalidEmail)
		return
	}

	if !h.validator.ValidNameLength(sub.Name) {
		utils.HandleAPIError(c, nil, http.StatusBadRequest, msgNameLength)
		return
	}

	if !h.validator.ValidMessageLength(sub.Message) {
		utils.HandleAPIError(c, nil, http.StatusBadRequest, msgMessageLength)
		return
	}

	if sub.Phone != "" && !h.validator.ValidPhone(sub.Phone) {
		utils.HandleAPIError(c, nil, http.StatusBadRequest, msgInvalidPhone)
		return
	}

	info := &service.ContactMessageInfo{
		IPAddress:  utils.GetRealIP(c),
		UserAgent:  c.Request.UserAgent(),
		Referrer:   c.Request.Referer(),
		ReceivedAt: time.Now(),
	}

	if err := h.contactService.Deliver(sub, info); err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, msgSubmitFailure)
		return
	}

	utils.HandleData(c, contact.ContactResponse{
		Success: true,
		Message: msgSubmitSuccess,
	})
}
