package helper

import (
	"log"
	"spa_manager/config"
	"sync"

	"github.com/cloudinary/cloudinary-go/v2"
)

// ServiceImageFolder is where service menu photos land in cloudinary.
const ServiceImageFolder = "spa_services"

var (
	cloudinaryOnce   sync.Once
	cloudinaryClient *cloudinary.Cloudinary
)

// InitCloudinary returns the shared client used for service image uploads.
func InitCloudinary() *cloudinary.Cloudinary {
	cloudinaryOnce.Do(func() {
		cld, err := cloudinary.NewFromParams(
			config.Config("CLOUDINARY_CLOUD_NAME"),
			config.Config("CLOUDINARY_API_KEY"),
			config.Config("CLOUDINARY_API_SECRET"),
		)
		if err != nil {
			log.Fatalf("cloudinary init failed: %v", err)
		}
		cloudinaryClient = cld
	})
	return cloudinaryClient
}
