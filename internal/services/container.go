package services

import "github.com/riadov001/My-Jantes-Mobile-Vlast/internal/email"

// ServiceContainer holds every service of the application.
type ServiceContainer struct {
	AuthService         AuthService
	QuoteService        QuoteService
	InvoiceService      InvoiceService
	ReservationService  ReservationService
	NotificationService NotificationService
	CatalogService      CatalogService
	ChatService         ChatService
	EmailService        email.Provider
}
