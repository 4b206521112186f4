package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	QuoteHandler        *QuoteHandler
	InvoiceHandler      *InvoiceHandler
	ReservationHandler  *ReservationHandler
	NotificationHandler *NotificationHandler
	ServiceHandler      *ServiceHandler
	ChatHandler         *ChatHandler
}
