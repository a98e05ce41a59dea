// Seeds the database with the starter catalog and an admin account.
// Safe to re-run: it skips seeding when categories already exist.
package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"equiprent/internal/config"
	"equiprent/internal/database"
	"equiprent/internal/domain"
	"equiprent/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	categoryRepo := repository.NewCategoryRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	userRepo := repository.NewUserRepository(db)

	existing, err := categoryRepo.List(ctx)
	if err != nil {
		log.Fatalf("list categories: %v", err)
	}
	if len(existing) > 0 {
		log.Println("database already seeded, nothing to do")
		return
	}

	categoryIDs := map[string]int64{}
	for _, c := range seedCategories() {
		cat := c
		if err := categoryRepo.Create(ctx, &cat); err != nil {
			log.Fatalf("create category %s: %v", cat.Slug, err)
		}
		categoryIDs[cat.Slug] = cat.ID
	}
	log.Printf("seeded %d categories", len(categoryIDs))

	items := seedEquipment(categoryIDs)
	for _, e := range items {
		item := e
		if err := equipmentRepo.Create(ctx, &item); err != nil {
			log.Fatalf("create equipment %s: %v", item.Name, err)
		}
	}
	log.Printf("seeded %d equipment items", len(items))

	adminEmail := envOr("ADMIN_EMAIL", "admin@equiprent.local")
	adminPassword := envOr("ADMIN_PASSWORD", "admin12345")
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash admin password: %v", err)
	}
	admin := &domain.User{
		Name:         "Administrator",
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("create admin: %v", err)
	}
	log.Printf("seeded admin user %s", adminEmail)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func seedCategories() []domain.Category {
	return []domain.Category{
		{Slug: "construction", Name: "Construction", NameRu: "Строительное", NameAz: "Tikinti", Icon: "HardHat"},
		{Slug: "industrial", Name: "Industrial", NameRu: "Промышленное", NameAz: "Sənaye", Icon: "Factory"},
		{Slug: "diy", Name: "DIY Tools", NameRu: "DIY инструменты", NameAz: "DIY alətləri", Icon: "Wrench"},
		{Slug: "power", Name: "Power Tools", NameRu: "Электроинструменты", NameAz: "Elektrik alətləri", Icon: "Zap"},
		{Slug: "lifting", Name: "Lifting Equipment", NameRu: "Подъемное оборудование", NameAz: "Qaldırıcı avadanlıq", Icon: "Crane"},
		{Slug: "electrical", Name: "Electrical", NameRu: "Электрооборудование", NameAz: "Elektrik avadanlığı", Icon: "Lightbulb"},
	}
}

func seedEquipment(categories map[string]int64) []domain.Equipment {
	return []domain.Equipment{
		{
			CategoryID:    categories["construction"],
			Name:          "Mini Excavator CAT 301.7D",
			NameRu:        "Мини-экскаватор CAT 301.7D",
			NameAz:        "Mini ekskavator CAT 301.7D",
			Description:   "Compact excavator perfect for small construction projects and landscaping work.",
			DescriptionRu: "Компактный экскаватор, идеальный для небольших строительных проектов и ландшафтных работ.",
			DescriptionAz: "Kiçik tikinti layihələri və landşaft işləri üçün mükəmməl kompakt ekskavator.",
			Specifications: map[string]string{
				"Operating Weight": "1,700 kg",
				"Engine Power":     "13.5 kW",
				"Bucket Capacity":  "0.025 m³",
				"Max Dig Depth":    "2.4 m",
			},
			PricePerDay:   150,
			PricePerWeek:  900,
			PricePerMonth: 3500,
			Available:     true,
			Location:      "Baku Center",
			Features:      []string{"GPS Tracking", "Fuel Efficient", "Easy Operation"},
		},
		{
			CategoryID:    categories["lifting"],
			Name:          "Tower Crane 80T",
			NameRu:        "Башенный кран 80Т",
			NameAz:        "Qüllə kranı 80T",
			Description:   "Heavy-duty tower crane for large construction projects with excellent lifting capacity.",
			DescriptionRu: "Тяжелый башенный кран для крупных строительных проектов с отличной грузоподъемностью.",
			DescriptionAz: "Böyük tikinti layihələri üçün əla qaldırma qabiliyyəti olan ağır qüllə kranı.",
			Specifications: map[string]string{
				"Max Load":    "8,000 kg",
				"Jib Length":  "60 m",
				"Hook Height": "180 m",
				"Power":       "380V",
			},
			PricePerDay:   800,
			PricePerWeek:  5000,
			PricePerMonth: 18000,
			Available:     true,
			Location:      "Baku Port",
			Features:      []string{"Professional Operator", "Safety Systems", "Remote Control"},
		},
		{
			CategoryID:    categories["industrial"],
			Name:          "Industrial Generator 100kW",
			NameRu:        "Промышленный генератор 100кВт",
			NameAz:        "Sənaye generatoru 100kW",
			Description:   "Reliable industrial generator for continuous power supply during construction or events.",
			DescriptionRu: "Надежный промышленный генератор для непрерывного электроснабжения во время строительства или мероприятий.",
			DescriptionAz: "Tikinti və ya tədbirlər zamanı davamlı enerji təchizatı üçün etibarlı sənaye generatoru.",
			Specifications: map[string]string{
				"Power Output":     "100 kW",
				"Fuel Type":        "Diesel",
				"Fuel Consumption": "22 L/h",
				"Noise Level":      "65 dB",
			},
			PricePerDay:   120,
			PricePerWeek:  700,
			PricePerMonth: 2800,
			Available:     true,
			Location:      "Sumgayit",
			Features:      []string{"Auto Start", "Weather Protection", "24/7 Support"},
		},
		{
			CategoryID:    categories["power"],
			Name:          "Professional Drill Set",
			NameRu:        "Профессиональный набор дрелей",
			NameAz:        "Peşəkar qazma dəsti",
			Description:   "Complete set of professional drills and bits for various construction and DIY projects.",
			DescriptionRu: "Полный набор профессиональных дрелей и сверл для различных строительных и DIY проектов.",
			DescriptionAz: "Müxtəlif tikinti və DIY layihələri üçün peşəkar qazma və ucluqların tam dəsti.",
			Specifications: map[string]string{
				"Battery":    "18V Li-ion",
				"Chuck Size": "13mm",
				"Torque":     "60 Nm",
				"Drill Bits": "50 pieces",
			},
			PricePerDay:   25,
			PricePerWeek:  140,
			PricePerMonth: 500,
			Available:     true,
			Location:      "Baku Center",
			Features:      []string{"Cordless", "LED Light", "Carrying Case"},
		},
		{
			CategoryID:    categories["construction"],
			Name:          "Concrete Mixer 350L",
			NameRu:        "Бетономешалка 350Л",
			NameAz:        "Beton qarışdırıcısı 350L",
			Description:   "Electric concrete mixer perfect for medium-scale construction projects.",
			DescriptionRu: "Электрическая бетономешалка, идеальная для строительных проектов среднего масштаба.",
			DescriptionAz: "Orta miqyaslı tikinti layihələri üçün mükəmməl elektrik beton qarışdırıcısı.",
			Specifications: map[string]string{
				"Capacity":    "350 L",
				"Motor Power": "2.2 kW",
				"Mixing Time": "3-5 min",
				"Weight":      "180 kg",
			},
			PricePerDay:   45,
			PricePerWeek:  250,
			PricePerMonth: 950,
			Available:     false,
			Location:      "Ganja",
			Features:      []string{"Electric Motor", "Easy Transport", "Quick Setup"},
		},
		{
			CategoryID:    categories["electrical"],
			Name:          "Welding Equipment Set",
			NameRu:        "Набор сварочного оборудования",
			NameAz:        "Qaynaq avadanlığı dəsti",
			Description:   "Professional welding equipment with all necessary accessories for metal work.",
			DescriptionRu: "Профессиональное сварочное оборудование со всеми необходимыми принадлежностями для работы с металлом.",
			DescriptionAz: "Metal işləri üçün bütün lazımi aksesuarları olan peşəkar qaynaq avadanlığı.",
			Specifications: map[string]string{
				"Current":    "200A",
				"Voltage":    "220V",
				"Duty Cycle": "60%",
				"Electrode":  "2-4mm",
			},
			PricePerDay:   35,
			PricePerWeek:  200,
			PricePerMonth: 750,
			Available:     true,
			Location:      "Baku Center",
			Features:      []string{"Safety Gear", "Multiple Electrodes", "Portable"},
		},
	}
}
