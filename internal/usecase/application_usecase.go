package usecase

import (
	"context"
	"fmt"
	"strings"

	"aleb-backend/config"
	"aleb-backend/internal/domain"
	"aleb-backend/pkg/mail"

	"github.com/go-playground/validator/v10"
)

type applicationUsecase struct {
	sender   mail.Sender
	cfg      *config.Config
	validate *validator.Validate
}

// NewApplicationUsecase creates a new career application usecase. The sender
// carries the careers account credentials, not the contact ones.
func NewApplicationUsecase(sender mail.Sender, cfg *config.Config, validate *validator.Validate) domain.ApplicationUsecase {
	return &applicationUsecase{
		sender:   sender,
		cfg:      cfg,
		validate: validate,
	}
}

// SubmitApplication validates the application and relays it by email with the
// staged resume attached
func (uc *applicationUsecase) SubmitApplication(ctx context.Context, req *domain.ApplicationRequest, resume *domain.Resume) error {
	if err := uc.validate.Struct(req); err != nil {
		return domain.ErrMissingFields
	}

	fullName := strings.TrimSpace(req.FullName)
	email := strings.TrimSpace(req.Email)
	phone := strings.TrimSpace(req.Phone)
	position := strings.TrimSpace(req.Position)
	if fullName == "" || email == "" || phone == "" || position == "" || resume == nil {
		return domain.ErrMissingFields
	}

	body, err := mail.RenderApplicationEmail(mail.ApplicationEmailData{
		FullName:       fullName,
		Email:          email,
		Phone:          phone,
		Position:       position,
		Experience:     orPlaceholder(req.Experience, "N/A"),
		Qualification:  orPlaceholder(req.Qualification, "N/A"),
		CurrentCompany: orPlaceholder(req.CurrentCompany, "N/A"),
		Portfolio:      orPlaceholder(req.Portfolio, "N/A"),
		Message:        orPlaceholder(req.Message, "No additional message provided."),
	})
	if err != nil {
		return fmt.Errorf("failed to render application email: %w", err)
	}

	msg := &mail.Message{
		FromName:    "ALEB Careers Submission",
		FromAddress: uc.cfg.CareersSender.Username,
		To:          uc.cfg.ReceiverEmail,
		CC:          uc.cfg.CCEmail,
		Subject:     fmt.Sprintf("New Career Application – %s (%s)", fullName, position),
		HTMLBody:    body,
		Attachments: []mail.Attachment{
			{Filename: resume.OriginalName, Path: resume.Path},
		},
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send application email: %w", err)
	}

	return nil
}

func orPlaceholder(val, placeholder string) string {
	if trimmed := strings.TrimSpace(val); trimmed != "" {
		return trimmed
	}
	return placeholder
}
