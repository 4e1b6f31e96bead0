package email

// Provider sends transactional mail. Callers treat failures as
// non-fatal; the proposal flow only records whether the send worked.
type Provider interface {
	Send(to, subject, htmlBody string) error

	// SendValidacaoProposta emails the client the link to finish their
	// proposal.
	SendValidacaoProposta(to, nomeCliente, propostaID string) error
}
