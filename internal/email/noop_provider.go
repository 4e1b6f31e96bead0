package email

import "contratando_backend/internal/logger"

// NoopProvider logs instead of sending. Used in tests and when SMTP is
// not configured.
type NoopProvider struct{}

func NewNoopProvider() *NoopProvider {
	return &NoopProvider{}
}

func (p *NoopProvider) Send(to, subject, htmlBody string) error {
	logger.Debug("email suppressed", "to", to, "subject", subject)
	return nil
}

func (p *NoopProvider) SendValidacaoProposta(to, nomeCliente, propostaID string) error {
	logger.Debug("validation email suppressed", "to", to, "proposta_id", propostaID)
	return nil
}
