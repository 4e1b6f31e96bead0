package email

import (
	"crypto/tls"
	"fmt"

	"gopkg.in/gomail.v2"

	"contratando_backend/internal/config"
)

// SMTPProvider sends mail through gomail using the configured SMTP server.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)
	if p.cfg.Email.UseTLS {
		d.TLSConfig = &tls.Config{ServerName: p.cfg.Email.SMTPHost}
	}

	return d.DialAndSend(m)
}

func (p *SMTPProvider) SendValidacaoProposta(to, nomeCliente, propostaID string) error {
	link := fmt.Sprintf("%s/proposta/completar/%s", p.cfg.Email.PortalURL, propostaID)
	body := validacaoPropostaBody(nomeCliente, link)
	return p.Send(to, "Complete sua proposta de plano de saúde", body)
}
