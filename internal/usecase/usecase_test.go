package usecase_test

import (
	"context"
	"errors"
	"testing"

	"aleb-backend/config"
	"aleb-backend/internal/domain"
	"aleb-backend/internal/usecase"
	"aleb-backend/pkg/mail"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock Sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg *mail.Message) error {
	return m.Called(ctx, msg).Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		ContactSender: config.SMTPAccount{Username: "contact@aleb.example"},
		CareersSender: config.SMTPAccount{Username: "careers@aleb.example"},
		ReceiverEmail: "hr@aleb.example",
		CCEmail:       "cc@aleb.example",
	}
}

func TestContactValidation(t *testing.T) {
	cases := []struct {
		name string
		req  domain.ContactRequest
	}{
		{"missing name", domain.ContactRequest{Email: "a@b.com", Message: "hi"}},
		{"missing email", domain.ContactRequest{Name: "A", Message: "hi"}},
		{"missing message", domain.ContactRequest{Name: "A", Email: "a@b.com"}},
		{"whitespace only", domain.ContactRequest{Name: "  ", Email: "a@b.com", Message: "hi"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := new(MockSender)
			uc := usecase.NewContactUsecase(sender, testConfig(), validator.New())

			err := uc.SendContactMessage(context.Background(), &tc.req)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
			sender.AssertNumberOfCalls(t, "Send", 0)
		})
	}
}

func TestContactSend(t *testing.T) {
	t.Run("Should send exactly one message with the submitted fields", func(t *testing.T) {
		sender := new(MockSender)
		var got *mail.Message
		sender.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			got = args.Get(1).(*mail.Message)
		})

		uc := usecase.NewContactUsecase(sender, testConfig(), validator.New())
		err := uc.SendContactMessage(context.Background(), &domain.ContactRequest{
			Name:     "Jane",
			LastName: "Doe",
			Email:    "jane@x.com",
			Message:  "Hi",
		})

		assert.NoError(t, err)
		sender.AssertNumberOfCalls(t, "Send", 1)
		assert.Equal(t, "hr@aleb.example", got.To)
		assert.Equal(t, "cc@aleb.example", got.CC)
		assert.Equal(t, "contact@aleb.example", got.FromAddress)
		assert.Equal(t, "New Website Contact Form Submission", got.Subject)
		assert.Contains(t, got.HTMLBody, "Jane")
		assert.Contains(t, got.HTMLBody, "Doe")
		assert.Contains(t, got.HTMLBody, "jane@x.com")
		assert.Contains(t, got.HTMLBody, "Hi")
		assert.Empty(t, got.Attachments)
	})

	t.Run("Should render N/A when phone is absent", func(t *testing.T) {
		sender := new(MockSender)
		var got *mail.Message
		sender.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			got = args.Get(1).(*mail.Message)
		})

		uc := usecase.NewContactUsecase(sender, testConfig(), validator.New())
		err := uc.SendContactMessage(context.Background(), &domain.ContactRequest{
			Name:    "Jane",
			Email:   "jane@x.com",
			Message: "Hi",
		})

		assert.NoError(t, err)
		assert.Contains(t, got.HTMLBody, "N/A")
	})

	t.Run("Should surface sender failure", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("relay down"))

		uc := usecase.NewContactUsecase(sender, testConfig(), validator.New())
		err := uc.SendContactMessage(context.Background(), &domain.ContactRequest{
			Name:    "Jane",
			Email:   "jane@x.com",
			Message: "Hi",
		})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrMissingFields)
	})
}

func TestApplicationValidation(t *testing.T) {
	valid := func() domain.ApplicationRequest {
		return domain.ApplicationRequest{
			FullName: "Jane Doe",
			Email:    "jane@x.com",
			Phone:    "12345678",
			Position: "Engineer",
		}
	}
	resume := &domain.Resume{Path: "/tmp/does-not-matter", OriginalName: "resume.pdf"}

	cases := []struct {
		name   string
		mut    func(*domain.ApplicationRequest)
		resume *domain.Resume
	}{
		{"missing fullName", func(r *domain.ApplicationRequest) { r.FullName = "" }, resume},
		{"missing email", func(r *domain.ApplicationRequest) { r.Email = "" }, resume},
		{"missing phone", func(r *domain.ApplicationRequest) { r.Phone = "" }, resume},
		{"missing position", func(r *domain.ApplicationRequest) { r.Position = "" }, resume},
		{"missing resume", func(r *domain.ApplicationRequest) {}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sender := new(MockSender)
			uc := usecase.NewApplicationUsecase(sender, testConfig(), validator.New())

			req := valid()
			tc.mut(&req)
			err := uc.SubmitApplication(context.Background(), &req, tc.resume)
			assert.ErrorIs(t, err, domain.ErrMissingFields)
			sender.AssertNumberOfCalls(t, "Send", 0)
		})
	}
}

func TestApplicationSend(t *testing.T) {
	t.Run("Should attach the resume under its original name", func(t *testing.T) {
		sender := new(MockSender)
		var got *mail.Message
		sender.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			got = args.Get(1).(*mail.Message)
		})

		uc := usecase.NewApplicationUsecase(sender, testConfig(), validator.New())
		err := uc.SubmitApplication(context.Background(), &domain.ApplicationRequest{
			FullName: "Jane Doe",
			Email:    "jane@x.com",
			Phone:    "12345678",
			Position: "Engineer",
		}, &domain.Resume{Path: "/uploads/123-resume.pdf", OriginalName: "resume.pdf"})

		assert.NoError(t, err)
		sender.AssertNumberOfCalls(t, "Send", 1)
		assert.Len(t, got.Attachments, 1)
		assert.Equal(t, "resume.pdf", got.Attachments[0].Filename)
		assert.Equal(t, "/uploads/123-resume.pdf", got.Attachments[0].Path)
		assert.Equal(t, "careers@aleb.example", got.FromAddress)
		assert.Contains(t, got.Subject, "Jane Doe")
		assert.Contains(t, got.Subject, "Engineer")
	})

	t.Run("Should default optional fields in the rendered body", func(t *testing.T) {
		sender := new(MockSender)
		var got *mail.Message
		sender.On("Send", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
			got = args.Get(1).(*mail.Message)
		})

		uc := usecase.NewApplicationUsecase(sender, testConfig(), validator.New())
		err := uc.SubmitApplication(context.Background(), &domain.ApplicationRequest{
			FullName: "Jane Doe",
			Email:    "jane@x.com",
			Phone:    "12345678",
			Position: "Engineer",
		}, &domain.Resume{Path: "/uploads/123-resume.pdf", OriginalName: "resume.pdf"})

		assert.NoError(t, err)
		assert.Contains(t, got.HTMLBody, "N/A")
		assert.Contains(t, got.HTMLBody, "No additional message provided.")
	})

	t.Run("Should surface sender failure", func(t *testing.T) {
		sender := new(MockSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("relay down"))

		uc := usecase.NewApplicationUsecase(sender, testConfig(), validator.New())
		err := uc.SubmitApplication(context.Background(), &domain.ApplicationRequest{
			FullName: "Jane Doe",
			Email:    "jane@x.com",
			Phone:    "12345678",
			Position: "Engineer",
		}, &domain.Resume{Path: "/uploads/123-resume.pdf", OriginalName: "resume.pdf"})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrMissingFields)
	})
}
