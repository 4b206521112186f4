package email

// Provider sends transactional mail to customers.
type Provider interface {
	// SendWelcome greets a freshly registered account.
	SendWelcome(to, name string) error
}

// NoopProvider is used when no SMTP host is configured (local
// development, tests).
type NoopProvider struct{}

func (NoopProvider) SendWelcome(to, name string) error {
	return nil
}
