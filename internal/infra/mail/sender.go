package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"

	"github.com/pixelforge/studio-api/internal/infra/queue"
)

var alertTemplate = template.Must(template.New("lead_alert").Parse(`
<h2>New inquiry: {{.FullName}}</h2>
<p><strong>Email:</strong> {{.Email}}</p>
{{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
<p><strong>Service:</strong> {{.ServiceInterest}}</p>
<p><strong>Submitted:</strong> {{.SubmittedAt}}</p>
<p>Lead id: {{.LeadID}}</p>
`))

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	To       string
}

func NewEmailSender(host string, port int, user, password, from, to string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
		To:       to,
	}
}

// SendLeadAlert emails the sales inbox about a freshly captured lead.
func (s *EmailSender) SendLeadAlert(payload queue.LeadCapturedPayload) error {
	var body bytes.Buffer
	if err := alertTemplate.Execute(&body, payload); err != nil {
		return fmt.Errorf("rendering lead alert: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", s.To)
	m.SetHeader("Subject", fmt.Sprintf("New lead: %s (%s)", payload.FullName, payload.ServiceInterest))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending lead alert: %w", err)
	}

	return nil
}
