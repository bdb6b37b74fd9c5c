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

const contactSubject = "New Website Contact Form Submission"

type contactUsecase struct {
	sender   mail.Sender
	cfg      *config.Config
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(sender mail.Sender, cfg *config.Config, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		sender:   sender,
		cfg:      cfg,
		validate: validate,
	}
}

// SendContactMessage validates the contact request and relays it by email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if err := uc.validate.Struct(req); err != nil {
		return domain.ErrMissingFields
	}

	// required passes whitespace-only values, so trim and re-check
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	message := strings.TrimSpace(req.Message)
	if name == "" || email == "" || message == "" {
		return domain.ErrMissingFields
	}

	phone := strings.TrimSpace(req.Number)
	if phone == "" {
		phone = "N/A"
	}

	body, err := mail.RenderContactEmail(mail.ContactEmailData{
		Name:     name,
		LastName: strings.TrimSpace(req.LastName),
		Phone:    phone,
		Email:    email,
		Message:  message,
	})
	if err != nil {
		return fmt.Errorf("failed to render contact email: %w", err)
	}

	msg := &mail.Message{
		FromName:    "ALEB Website Contact",
		FromAddress: uc.cfg.ContactSender.Username,
		To:          uc.cfg.ReceiverEmail,
		CC:          uc.cfg.CCEmail,
		Subject:     contactSubject,
		HTMLBody:    body,
	}

	if err := uc.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}
