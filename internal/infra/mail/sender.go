package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string

	// CareTeam receives new-lead alerts.
	CareTeam string
}

func NewEmailSender(host string, port int, user, password, careTeam string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		CareTeam: careTeam,
	}
}

type contactAlertData struct {
	Name     string
	Email    string
	Phone    string
	Source   string
	Question string
}

var alertTemplate = template.Must(template.New("alert").Parse(`
<h2>New {{.Source}} lead</h2>
<p><b>Name:</b> {{if .Name}}{{.Name}}{{else}}(not given){{end}}</p>
<p><b>Email:</b> {{.Email}}</p>
<p><b>Phone:</b> {{if .Phone}}{{.Phone}}{{else}}(not given){{end}}</p>
{{if .Question}}<p><b>Question:</b> {{.Question}}</p>{{end}}
<p>Open the dashboard to follow up.</p>
`))

// SendContactAlert emails the care team about a freshly captured lead.
func (s *EmailSender) SendContactAlert(name, email, phone, source, question string) error {
	var body bytes.Buffer
	err := alertTemplate.Execute(&body, contactAlertData{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Source:   source,
		Question: question,
	})
	if err != nil {
		return fmt.Errorf("rendering alert template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", "no-reply@santaan.com")
	m.SetHeader("To", s.CareTeam)
	m.SetHeader("Subject", fmt.Sprintf("New %s lead on santaan.com", source))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending alert email: %w", err)
	}

	return nil
}
