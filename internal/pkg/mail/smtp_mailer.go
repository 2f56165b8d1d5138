package mail

import (
	"fmt"
	"log"
	"net/smtp"

	"github.com/gonuboard/gonuboard/internal/pkg/env"
)

// SendMail delivers a single HTML mail via SMTP
func SendMail(to string, subject string, body string) error {
	host := env.GetEnv("SMTP_HOST", "")
	port := env.GetEnv("SMTP_PORT", "")
	username := env.GetEnv("SMTP_USERNAME", "")
	password := env.GetEnv("SMTP_PASSWORD", "")
	sender := env.GetEnv("SMTP_SENDER", "")

	if sender == "" {
		sender = fmt.Sprintf("no-reply@%s", "localhost")
		log.Printf("SMTP_SENDER not set, using default sender: %s", sender)
	}

	var auth smtp.Auth
	if username != "" && password != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	addr := fmt.Sprintf("%s:%s", host, port)

	msg := []byte(
		fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n", sender, to, subject) +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/html; charset=UTF-8\r\n\r\n" +
			body,
	)

	err := smtp.SendMail(addr, auth, sender, []string{to}, msg)
	if err != nil {
		log.Printf("SMTP send error: %v", err)
	} else {
		log.Printf("Email sent to %s via %s", to, addr)
	}
	return err
}

// NotifyAdminNewMember tells the board admin about a fresh social
// registration. Callers fire this from a goroutine; a lost mail is not worth
// failing the registration over.
func NotifyAdminNewMember(adminEmail, mbID, provider string) {
	if adminEmail == "" {
		return
	}
	subject := fmt.Sprintf("[gonuboard] 신규 소셜 회원가입: %s", mbID)
	body := fmt.Sprintf("<p>새 회원이 가입했습니다.</p><p>아이디: %s<br>소셜 제공자: %s</p>", mbID, provider)
	if err := SendMail(adminEmail, subject, body); err != nil {
		log.Printf("admin notification mail failed for %s: %v", mbID, err)
	}
}
