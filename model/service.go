package model

type ServiceCategory struct {
	DTO
	CategoryName string    `gorm:"unique;not null;size:100" validate:"required" json:"categoryName"`
	Services     []Service `gorm:"foreignKey:CategoryId" json:"services,omitempty"`
}

type Service struct {
	DTO
	CategoryId  *uint            `json:"categoryId"`
	Category    *ServiceCategory `gorm:"foreignKey:CategoryId" json:"category,omitempty"`
	ServiceName string           `gorm:"not null;size:100" validate:"required" json:"serviceName"`
	Slug        string           `gorm:"uniqueIndex;size:120" json:"slug"`
	Description string           `gorm:"size:255" json:"description"`
	ImageUrl    *string          `json:"imageUrl"`

	Classifications []ServiceClassification `gorm:"foreignKey:ServiceId;constraint:OnDelete:CASCADE" json:"classifications,omitempty"`
}

// ServiceClassification is a bookable variant of a service (area or
// duration tier) carrying the actual price and duration.
type ServiceClassification struct {
	DTO
	ServiceId          uint    `gorm:"not null;index" json:"serviceId"`
	ClassificationName string  `gorm:"not null;size:100" validate:"required" json:"classificationName"`
	Price              float64 `gorm:"not null" validate:"required,gt=0" json:"price"`
	DurationMinutes    int     `gorm:"not null;default:60" validate:"required,gt=0" json:"durationMinutes"`

	Service Service `gorm:"foreignKey:ServiceId" json:"-"`
}

type ServicePayload struct {
	Id                 uint    `json:"id"`
	ClassificationId   uint    `json:"classification_id"`
	Name               string  `json:"name"`
	ClassificationName string  `json:"classification_name"`
	Slug               string  `json:"slug"`
	Price              float64 `json:"price"`
	DurationSeconds    int     `json:"duration_seconds"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	ImageUrl           *string `json:"image_url,omitempty"`
}

type CreateServiceInput struct {
	CategoryId  *uint  `json:"categoryId"`
	ServiceName string `json:"serviceName" validate:"required"`
	Description string `json:"description" validate:"omitempty,max=255"`
}
