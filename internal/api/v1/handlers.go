package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to existing controllers to keep behavior consistent
	"paydeck/app/controllers"
)

// Pong is the ping endpoint response body.
type Pong struct {
	Ping string `json:"ping"`
}

// APIServer implements the public v1 API surface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetPayments returns the full payment collection
func (s *APIServer) GetPayments(c *fiber.Ctx) error {
	return controllers.GetAPIPaymentController().HandleGetPayments(c)
}

// PostPayment creates a payment record
func (s *APIServer) PostPayment(c *fiber.Ctx) error {
	return controllers.GetAPIPaymentController().HandleCreatePayment(c)
}

// DeletePayment removes a payment record by id
func (s *APIServer) DeletePayment(c *fiber.Ctx, id string) error {
	// Controller reads the id from route params; wrapper already set it.
	return controllers.GetAPIPaymentController().HandleDeletePayment(c)
}

// RegisterHandlers attaches the v1 routes to the given router group.
func RegisterHandlers(router fiber.Router, s *APIServer) {
	router.Get("/ping", s.GetPing)
	router.Get("/payments", s.GetPayments)
	router.Post("/payments", s.PostPayment)
	router.Delete("/payments/:id", func(c *fiber.Ctx) error {
		return s.DeletePayment(c, c.Params("id"))
	})
}
