package validate

import (
	"spa_manager/model"
	"spa_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func CreateService() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateServiceInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid input", err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), err)
		}

		c.Locals("input", input)
		return c.Next()
	}
}

func UploadServiceImage() fiber.Handler {
	return func(c *fiber.Ctx) error {
		file, err := c.FormFile("image")
		if err != nil || file == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing image file", err)
		}
		c.Locals("imageFile", file)
		return c.Next()
	}
}
