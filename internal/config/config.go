package config

import (
	"fmt"
	"os"
)

// Config carries everything the API reads from the environment. Call
// godotenv.Load() before Load() so a local .env file is picked up.
type Config struct {
	Port string

	Sheets  SheetsConfig
	Rabbit  RabbitConfig
	SMTP    SMTPConfig
	Bedrock BedrockConfig

	// Inbox that receives new-lead alert emails.
	AlertRecipient string
}

// SheetsConfig points at the spreadsheet that backs the lead store.
type SheetsConfig struct {
	SpreadsheetID   string
	SheetName       string
	CredentialsFile string
}

type RabbitConfig struct {
	User string
	Pass string
	Host string
	Port string
}

// Enabled reports whether a broker was configured at all. The notification
// pipeline is optional; the lead store works without it.
func (r RabbitConfig) Enabled() bool {
	return r.Host != ""
}

type SMTPConfig struct {
	Host string
	Port int
	User string
	Pass string
	From string
}

type BedrockConfig struct {
	Region  string
	ModelID string
}

func (b BedrockConfig) Enabled() bool {
	return b.ModelID != ""
}

func Load() (*Config, error) {
	cfg := &Config{
		Port: getenv("PORT", "8080"),
		Sheets: SheetsConfig{
			SpreadsheetID:   os.Getenv("LEADS_SPREADSHEET_ID"),
			SheetName:       getenv("LEADS_SHEET_NAME", "Leads"),
			CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		},
		Rabbit: RabbitConfig{
			User: getenv("RABBITMQ_USER", "guest"),
			Pass: getenv("RABBITMQ_PASS", "guest"),
			Host: os.Getenv("RABBITMQ_HOST"),
			Port: getenv("RABBITMQ_PORT", "5672"),
		},
		SMTP: SMTPConfig{
			Host: os.Getenv("MAIL_HOST"),
			Port: 587,
			User: os.Getenv("MAIL_USER"),
			Pass: os.Getenv("MAIL_PASS"),
			From: getenv("MAIL_FROM", "no-reply@pixelforge.studio"),
		},
		Bedrock: BedrockConfig{
			Region:  getenv("AWS_REGION", "us-east-1"),
			ModelID: os.Getenv("BEDROCK_MODEL_ID"),
		},
		AlertRecipient: os.Getenv("LEAD_ALERT_RECIPIENT"),
	}

	if cfg.Sheets.SpreadsheetID == "" {
		return nil, fmt.Errorf("LEADS_SPREADSHEET_ID is required")
	}
	if cfg.Sheets.CredentialsFile == "" {
		return nil, fmt.Errorf("GOOGLE_CREDENTIALS_FILE is required")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
