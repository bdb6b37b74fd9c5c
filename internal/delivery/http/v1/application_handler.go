package v1

import (
	"errors"
	"net/http"

	"aleb-backend/internal/delivery/http/response"
	"aleb-backend/internal/domain"
	"aleb-backend/pkg/apperror"
	"aleb-backend/pkg/logger"
	"aleb-backend/pkg/upload"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	applicationUC domain.ApplicationUsecase
	sink          *upload.Sink
}

// NewApplicationHandler registers the career application route
func NewApplicationHandler(r *gin.RouterGroup, applicationUC domain.ApplicationUsecase, sink *upload.Sink) {
	handler := &ApplicationHandler{
		applicationUC: applicationUC,
		sink:          sink,
	}

	r.POST("/career-apply", handler.SubmitApplication)
}

// SubmitApplication godoc
// @Summary      Submit Career Application
// @Description  Submit a job application with a resume attachment. This is a public endpoint.
// @Tags         careers
// @Accept       multipart/form-data
// @Produce      json
// @Param        fullName  formData  string  true   "Full name"
// @Param        email     formData  string  true   "Email address"
// @Param        phone     formData  string  true   "Phone number"
// @Param        position  formData  string  true   "Position applied for"
// @Param        resume    formData  file    true   "Resume file"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Router       /career-apply [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req domain.ApplicationRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Error(apperror.Validation("Required fields missing"))
		return
	}

	// Stage the resume before validation runs; the usecase checks its
	// presence. Exactly one file under the field counts, anything else is
	// treated as absent.
	var resume *domain.Resume
	if form, err := c.MultipartForm(); err == nil {
		if files := form.File["resume"]; len(files) == 1 {
			stored, err := h.sink.Store(files[0])
			if err != nil {
				c.Error(apperror.Delivery("Failed to submit application", err))
				return
			}
			defer func() {
				if err := h.sink.Remove(stored); err != nil {
					logger.Log.Warn("failed to remove staged resume", "path", stored.Path, "error", err)
				}
			}()
			resume = &domain.Resume{Path: stored.Path, OriginalName: stored.OriginalName}
		}
	}

	if err := h.applicationUC.SubmitApplication(c.Request.Context(), &req, resume); err != nil {
		if errors.Is(err, domain.ErrMissingFields) {
			c.Error(apperror.Validation("Required fields missing"))
			return
		}
		c.Error(apperror.Delivery("Failed to submit application", err))
		return
	}

	response.Success(c, http.StatusOK, "Application submitted successfully!", nil)
}
