package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

type SMTPProvider struct {
	cfg SMTPConfig
}

func NewSMTPProvider(cfg SMTPConfig) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) SendWelcome(to, name string) error {
	body := fmt.Sprintf(
		"<p>Bonjour %s,</p><p>Bienvenue chez My Jantes ! Votre compte est prêt. "+
			"Vous pouvez dès maintenant demander un devis ou réserver un créneau depuis l'application.</p>"+
			"<p>L'équipe My Jantes</p>",
		name,
	)
	return p.send(to, "Bienvenue chez My Jantes", body)
}

func (p *SMTPProvider) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(p.cfg.FromEmail, p.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(p.cfg.Host, p.cfg.Port, p.cfg.Username, p.cfg.Password)
	return d.DialAndSend(m)
}
