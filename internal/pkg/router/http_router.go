package router

import (
	"github.com/gofiber/fiber/v2"

	"paydeck/app/controllers"
	"paydeck/internal/pkg/constants"
	"paydeck/internal/pkg/session"
)

type HttpRouter struct {
}

func (h HttpRouter) InstallRouter(app *fiber.App) {
	// init session
	session.NewSessionStore()

	// Initialize payment controller with repository
	controllers.InitializePaymentController()

	h.registerPublicRoutes(app)
	h.registerAdminRoutes(app)
}

func (h HttpRouter) registerPublicRoutes(app *fiber.App) {
	// The admin table is the landing page
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Redirect(constants.PaymentsRoute)
	})
}

func (h HttpRouter) registerAdminRoutes(app *fiber.App) {
	pc := controllers.GetPaymentController()

	adminGroup := app.Group("/admin")
	adminGroup.Get("/payments", pc.HandlePayments)
	adminGroup.Post("/payments/store", pc.HandlePaymentStore)
	adminGroup.Post("/payments/delete/:id", pc.HandlePaymentDelete)
	adminGroup.Post("/payments/undo", pc.HandlePaymentUndo)
	adminGroup.Get("/payments/print", pc.HandlePaymentsPrint)
}

func NewHttpRouter() *HttpRouter {
	return &HttpRouter{}
}
