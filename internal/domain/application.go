package domain

import "context"

// ApplicationRequest represents a career application submitted through the
// careers page, minus the resume file which travels separately as a multipart
// part and is staged on disk before the usecase runs.
type ApplicationRequest struct {
	FullName       string `form:"fullName" validate:"required"`
	Email          string `form:"email" validate:"required"`
	Phone          string `form:"phone" validate:"required"`
	Position       string `form:"position" validate:"required"`
	Experience     string `form:"experience"`
	Qualification  string `form:"qualification"`
	CurrentCompany string `form:"currentCompany"`
	Message        string `form:"message"`
	Portfolio      string `form:"portfolio"`
}

// Resume points at an uploaded resume already persisted to the staging
// directory. Path is the stored location, OriginalName the client filename
// used for the mail attachment.
type Resume struct {
	Path         string
	OriginalName string
}

// ApplicationUsecase defines the interface for career application operations
type ApplicationUsecase interface {
	// SubmitApplication validates the application and relays it by email with
	// the resume attached. resume may be nil when no file was uploaded.
	SubmitApplication(ctx context.Context, req *ApplicationRequest, resume *Resume) error
}
