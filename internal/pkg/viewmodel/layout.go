package viewmodel

import "github.com/gofiber/fiber/v2"

type Layout struct {
	Page  string
	Title string
	Msg   fiber.Map
}
