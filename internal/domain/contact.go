package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name     string `json:"name" form:"name" validate:"required"`
	LastName string `json:"lastName" form:"lastName"`
	Number   string `json:"number" form:"number"`
	Email    string `json:"email" form:"email" validate:"required"`
	Message  string `json:"message" form:"message" validate:"required"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and relays a contact form message
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
