package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/helpdesk-kit/request-service/internal/api/http/handlers"
)

// BasePath is the route prefix carried over from the original API surface.
const BasePath = "/requestApi/v1"

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Contacts *handlers.ContactsHandler
	Tickets  *handlers.TicketsHandler
	Requests *handlers.RequestsHandler
	Comms    *handlers.CommsHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	api := app.Group(BasePath)

	api.Post("/contact", cfg.Contacts.CreateContact)
	api.Get("/contact", cfg.Contacts.ListContacts)
	api.Get("/contact/:email", cfg.Contacts.GetContactByEmail)

	api.Post("/ticket", cfg.Tickets.CreateTicket)
	api.Get("/ticket", cfg.Tickets.ListTickets)
	api.Get("/ticket/:ticketId", cfg.Tickets.GetTicket)
	api.Delete("/ticket/:ticketId", cfg.Tickets.DeleteTicket)
	api.Get("/userTickets/:contactId", cfg.Tickets.ListTicketsByContact)

	api.Get("/request", cfg.Requests.ListRequests)
	api.Get("/request/:contactId", cfg.Requests.ListRequestsByContact)

	api.Post("/comms/:ticketId", cfg.Comms.PostMessage)
	api.Get("/comms/:ticketId", cfg.Comms.GetThread)
}
