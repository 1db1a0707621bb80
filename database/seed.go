package database

import (
	"log"
	"spa_manager/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type seedClassification struct {
	Name            string
	Price           float64
	DurationMinutes int
}

type seedService struct {
	Name            string
	Description     string
	Category        string
	Classifications []seedClassification
}

func SeedData(db *gorm.DB) {
	bytes, err := bcrypt.GenerateFromPassword([]byte("pass123"), 10)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}
	hashed := string(bytes)

	categories := []string{
		"Signature Massage",
		"Supplementary",
		"Holistic Recovery",
	}
	categoryIds := map[string]uint{}
	for _, name := range categories {
		cat := model.ServiceCategory{CategoryName: name}
		if err := db.Where(model.ServiceCategory{CategoryName: name}).FirstOrCreate(&cat).Error; err != nil {
			log.Println("failed to seed category:", name, "error:", err)
			continue
		}
		categoryIds[name] = cat.ID
	}

	services := []seedService{
		{
			Name:        "Accupressure",
			Description: "Traditional pressure point massage",
			Category:    "Signature Massage",
			Classifications: []seedClassification{
				{Name: "Full Back", Price: 40.0, DurationMinutes: 45},
				{Name: "Full Body", Price: 65.0, DurationMinutes: 60},
			},
		},
		{
			Name:        "Foot Reflexology",
			Description: "Therapeutic foot massage",
			Category:    "Supplementary",
			Classifications: []seedClassification{
				{Name: "30 minutes", Price: 20.0, DurationMinutes: 30},
			},
		},
		{
			Name:        "Hot Stone Massage",
			Description: "Relaxing massage with heated stones",
			Category:    "Holistic Recovery",
			Classifications: []seedClassification{
				{Name: "60 minutes", Price: 55.0, DurationMinutes: 60},
			},
		},
		{
			Name:        "Facial Treatment",
			Description: "Rejuvenating facial therapy",
			Category:    "Holistic Recovery",
			Classifications: []seedClassification{
				{Name: "45 minutes", Price: 35.0, DurationMinutes: 45},
			},
		},
	}

	for _, s := range services {
		categoryId := categoryIds[s.Category]
		service := model.Service{
			CategoryId:  &categoryId,
			ServiceName: s.Name,
			Slug:        slug.Make(s.Name),
			Description: s.Description,
		}
		if err := db.Where(model.Service{ServiceName: s.Name}).FirstOrCreate(&service).Error; err != nil {
			log.Println("failed to seed service:", s.Name, "error:", err)
			continue
		}
		for _, c := range s.Classifications {
			classification := model.ServiceClassification{
				ServiceId:          service.ID,
				ClassificationName: c.Name,
				Price:              c.Price,
				DurationMinutes:    c.DurationMinutes,
			}
			if err := db.Where(model.ServiceClassification{ServiceId: service.ID, ClassificationName: c.Name}).
				FirstOrCreate(&classification).Error; err != nil {
				log.Println("failed to seed classification:", c.Name, "error:", err)
			}
		}
	}

	room101 := "101"
	room102 := "102"
	therapists := []model.Therapist{
		{Username: "thera1", PasswordHash: hashed, Name: "Therapist 1", RoomNumber: &room101},
		{Username: "thera2", PasswordHash: hashed, Name: "Therapist 2", RoomNumber: &room102},
	}
	for _, t := range therapists {
		if err := db.Where(model.Therapist{Username: t.Username}).FirstOrCreate(&t).Error; err != nil {
			log.Println("failed to seed therapist:", t.Username, "error:", err)
		}
	}

	counter1 := "1"
	counter2 := "2"
	cashiers := []model.Cashier{
		{Username: "cash1", PasswordHash: hashed, Name: "Cashier 1", CounterNumber: &counter1},
		{Username: "cash2", PasswordHash: hashed, Name: "Cashier 2", CounterNumber: &counter2},
	}
	for _, c := range cashiers {
		if err := db.Where(model.Cashier{Username: c.Username}).FirstOrCreate(&c).Error; err != nil {
			log.Println("failed to seed cashier:", c.Username, "error:", err)
		}
	}

	for _, number := range []string{"101", "102"} {
		room := model.Room{RoomNumber: number, Status: model.RoomAvailable}
		if err := db.Where(model.Room{RoomNumber: number}).FirstOrCreate(&room).Error; err != nil {
			log.Println("failed to seed room:", number, "error:", err)
		}
	}
}
