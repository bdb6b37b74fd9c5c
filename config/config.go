package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// SMTPAccount holds one set of SMTP credentials. The contact form and the
// careers form send from separate accounts, so two of these live in Config.
type SMTPAccount struct {
	Username string
	Password string
}

type Config struct {
	Port        string
	FrontendURL string
	// SMTP relay shared by both sender accounts
	SMTPHost string
	SMTPPort string
	// Sender accounts
	ContactSender SMTPAccount
	CareersSender SMTPAccount
	// Delivery targets
	ReceiverEmail string
	CCEmail       string // optional, blank disables cc
	// Resume upload staging directory
	UploadDir string
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development, ignored elsewhere
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		SMTPHost:    getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:    getEnv("SMTP_PORT", "587"),
		ContactSender: SMTPAccount{
			Username: getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_PASS", ""),
		},
		CareersSender: SMTPAccount{
			Username: getEnv("EMAIL_USER_CAREERS", ""),
			Password: getEnv("EMAIL_PASS_CAREERS", ""),
		},
		ReceiverEmail: getEnv("RECEIVER_EMAIL", ""),
		CCEmail:       getEnv("CC_EMAIL", ""),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
	}

	if cfg.ContactSender.Username == "" || cfg.ContactSender.Password == "" {
		log.Println("WARNING: EMAIL_USER/EMAIL_PASS missing. Contact form sends will fail.")
	}
	if cfg.CareersSender.Username == "" || cfg.CareersSender.Password == "" {
		log.Println("WARNING: EMAIL_USER_CAREERS/EMAIL_PASS_CAREERS missing. Career form sends will fail.")
	}
	if cfg.ReceiverEmail == "" {
		log.Println("WARNING: RECEIVER_EMAIL is missing. Outbound mail has no recipient.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
