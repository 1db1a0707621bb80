package handler

import (
	"context"
	"fmt"
	"spa_manager/database"
	"spa_manager/helper"
	"spa_manager/model"
	"spa_manager/utils"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"mime/multipart"
)

// GetServices returns the flat service × classification list every view
// builds its menus from. Durations are seconds on the wire.
func GetServices(c *fiber.Ctx) error {
	var services []model.Service
	if err := database.DB.
		Preload("Category").
		Preload("Classifications").
		Order("service_name asc").
		Find(&services).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load services", err)
	}

	result := []model.ServicePayload{}
	for _, s := range services {
		category := "Uncategorized"
		if s.Category != nil {
			category = s.Category.CategoryName
		}
		description := s.Description
		if description == "" {
			description = "No description available"
		}
		for _, classification := range s.Classifications {
			result = append(result, model.ServicePayload{
				Id:                 s.ID,
				ClassificationId:   classification.ID,
				Name:               s.ServiceName,
				ClassificationName: classification.ClassificationName,
				Slug:               s.Slug,
				Price:              classification.Price,
				DurationSeconds:    classification.DurationMinutes * 60,
				Category:           category,
				Description:        description,
				ImageUrl:           s.ImageUrl,
			})
		}
	}

	return c.JSON(result)
}

func GetServiceClassifications(c *fiber.Ctx) error {
	serviceId := c.Locals("inputId").(int)

	var service model.Service
	if err := database.DB.
		Preload("Category").
		Preload("Classifications").
		First(&service, serviceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
	}

	category := "Uncategorized"
	if service.Category != nil {
		category = service.Category.CategoryName
	}

	result := []fiber.Map{}
	for _, classification := range service.Classifications {
		result = append(result, fiber.Map{
			"id":                  classification.ID,
			"classification_name": classification.ClassificationName,
			"price":               classification.Price,
			"duration_seconds":    classification.DurationMinutes * 60,
			"service_name":        service.ServiceName,
			"category":            category,
		})
	}
	return c.JSON(result)
}

func GetCategories(c *fiber.Ctx) error {
	var categories []model.ServiceCategory
	if err := database.DB.
		Preload("Services").
		Order("category_name asc").
		Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load categories", err)
	}

	result := []fiber.Map{}
	for _, category := range categories {
		result = append(result, fiber.Map{
			"id":             category.ID,
			"category_name":  category.CategoryName,
			"services_count": len(category.Services),
		})
	}
	return c.JSON(result)
}

func CreateService(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateServiceInput)

	var service model.Service
	copier.Copy(&service, &input)
	service.Slug = helper.GenerateUniqueServiceSlug(database.DB, input.ServiceName)

	if err := database.DB.Create(&service).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create service", err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, service)
}

func UploadServiceImage(c *fiber.Ctx) error {
	serviceId := c.Locals("inputId").(int)
	file := c.Locals("imageFile").(*multipart.FileHeader)

	var service model.Service
	if err := database.DB.First(&service, serviceId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "Service not found", err)
	}

	src, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot read image file", err)
	}
	defer src.Close()

	cld := helper.InitCloudinary()
	uploadResult, err := cld.Upload.Upload(context.Background(), src, uploader.UploadParams{
		PublicID: fmt.Sprintf("services/%s", service.Slug),
		Folder:   helper.ServiceImageFolder,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	service.ImageUrl = &uploadResult.SecureURL
	if err := database.DB.Model(&service).Update("image_url", uploadResult.SecureURL).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save image url", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"imageUrl": uploadResult.SecureURL})
}
