package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional notifications. Controllers hold the
// interface so tests can run without an outbound mail account.
type Mailer interface {
	SendCertificateIssued(toEmail, toName, courseName, certificateNumber string) error
}

// SendgridMailer sends through the SendGrid v3 API.
type SendgridMailer struct {
	key       string
	fromName  string
	fromEmail string
}

func NewSendgridMailer(key, appName, fromEmail string) *SendgridMailer {
	return &SendgridMailer{key: key, fromName: appName, fromEmail: fromEmail}
}

func (m *SendgridMailer) SendCertificateIssued(toEmail, toName, courseName, certificateNumber string) error {
	from := sgmail.NewEmail(m.fromName, m.fromEmail)
	to := sgmail.NewEmail(toName, toEmail)
	subject := fmt.Sprintf("[%s] Certificate issued for %s", m.fromName, courseName)

	plain := fmt.Sprintf(
		"Hello %s,\n\nThe certificate for the course %q has been issued.\nCertificate number: %s\n\nYou can download it from your partner dashboard.",
		toName, courseName, certificateNumber,
	)
	html := fmt.Sprintf(
		"<p>Hello %s,</p><p>The certificate for the course <strong>%s</strong> has been issued.</p><p>Certificate number: <strong>%s</strong></p><p>You can download it from your partner dashboard.</p>",
		toName, courseName, certificateNumber,
	)

	message := sgmail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(m.key)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending certificate email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 300 {
		log.Printf("Certificate email to %s rejected with status %d", toEmail, resp.StatusCode)
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}
	return nil
}
