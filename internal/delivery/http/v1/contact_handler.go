package v1

import (
	"errors"
	"net/http"

	"aleb-backend/internal/delivery/http/response"
	"aleb-backend/internal/domain"
	"aleb-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact form route (public, no auth required)
func NewContactHandler(r *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	r.POST("/send-mail", handler.SubmitContact)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the website contact form. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /send-mail [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.Validation("Missing Fields"))
		return
	}

	if err := h.contactUC.SendContactMessage(c.Request.Context(), &req); err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.Error(apperror.Validation("Missing Fields"))
			return
		}
		c.Error(apperror.Delivery("Email sending failed!", err))
		return
	}

	response.Success(c, http.StatusOK, "Message sent successfully!", nil)
}
