package email

import (
	"fmt"
	"net/smtp"
	"os"
)

// SendEmail sends a plain text email using SMTP. The sender account and
// host come from SMTP_SENDER, SMTP_PASSWORD, SMTP_HOST and SMTP_PORT.
func SendEmail(to, subject, body string) error {
	from := os.Getenv("SMTP_SENDER")
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	if from == "" || smtpHost == "" || smtpPort == "" {
		return fmt.Errorf("smtp is not configured")
	}

	auth := smtp.PlainAuth("", from, os.Getenv("SMTP_PASSWORD"), smtpHost)

	msg := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" + body + "\r\n")

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}
