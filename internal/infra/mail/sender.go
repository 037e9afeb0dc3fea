package mail

import (
	"bytes"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"
)

var welcomeTemplate = template.Must(template.New("welcome").Parse(`
<p>Olá{{if .Representative}}, {{.Representative}}{{end}}!</p>
<p>A {{.Name}} agora é cliente. A partir de agora os compromissos do projeto
aparecem na área de clientes do painel.</p>
<p>Qualquer dúvida, é só responder este e-mail.</p>
`))

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

// SendClientWelcome avisa a empresa recém promovida que ela virou cliente.
func (s *EmailSender) SendClientWelcome(to, name, representative string) error {
	data := WelcomeEmailData{
		Name:           name,
		Representative: representative,
	}

	var body bytes.Buffer
	if err := welcomeTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("erro ao processar template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Bem-vindo, %s! Agora vocês são nossos clientes", name))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
