package repository

import (
	"encoding/json"
	"time"
)

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	Phone        string    `gorm:"column:phone"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role;default:user"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

type categoryModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Slug      string    `gorm:"column:slug;uniqueIndex"`
	Name      string    `gorm:"column:name"`
	NameRu    string    `gorm:"column:name_ru"`
	NameAz    string    `gorm:"column:name_az"`
	Icon      string    `gorm:"column:icon"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (categoryModel) TableName() string { return "categories" }

type equipmentModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	CategoryID     int64     `gorm:"column:category_id;index"`
	Name           string    `gorm:"column:name"`
	NameRu         string    `gorm:"column:name_ru"`
	NameAz         string    `gorm:"column:name_az"`
	Description    string    `gorm:"column:description;type:text"`
	DescriptionRu  string    `gorm:"column:description_ru;type:text"`
	DescriptionAz  string    `gorm:"column:description_az;type:text"`
	Specifications string    `gorm:"column:specifications;type:text"`
	PricePerDay    float64   `gorm:"column:price_per_day"`
	PricePerWeek   float64   `gorm:"column:price_per_week"`
	PricePerMonth  float64   `gorm:"column:price_per_month"`
	MainImage      string    `gorm:"column:main_image"`
	Images         string    `gorm:"column:images;type:text"`
	Available      bool      `gorm:"column:available;default:true"`
	Location       string    `gorm:"column:location"`
	Rating         float64   `gorm:"column:rating;default:0"`
	ReviewCount    int       `gorm:"column:review_count;default:0"`
	Features       string    `gorm:"column:features;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (equipmentModel) TableName() string { return "equipment" }

type bookingModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	Reference       string     `gorm:"column:reference;uniqueIndex"`
	EquipmentID     int64      `gorm:"column:equipment_id;index"`
	UserID          int64      `gorm:"column:user_id;index"`
	StartDate       time.Time  `gorm:"column:start_date"`
	EndDate         time.Time  `gorm:"column:end_date"`
	TotalPrice      float64    `gorm:"column:total_price"`
	Status          string     `gorm:"column:status;default:pending"`
	DeliveryOption  string     `gorm:"column:delivery_option"`
	DeliveryAddress *string    `gorm:"column:delivery_address"`
	Notes           *string    `gorm:"column:notes"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

type reviewModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	EquipmentID int64     `gorm:"column:equipment_id;index"`
	UserID      int64     `gorm:"column:user_id;index"`
	Rating      int       `gorm:"column:rating"`
	Comment     string    `gorm:"column:comment;type:text"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (reviewModel) TableName() string { return "reviews" }

type favoriteModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;uniqueIndex:idx_user_equipment"`
	EquipmentID int64     `gorm:"column:equipment_id;uniqueIndex:idx_user_equipment"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (favoriteModel) TableName() string { return "favorites" }

// JSON text column helpers. Empty input marshals to "" so the column stays
// readable in psql for rows that never had a value.

func marshalJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

func unmarshalStringSlice(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}

func unmarshalStringMap(s string) map[string]string {
	if s == "" {
		return nil
	}
	var out map[string]string
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil
	}
	return out
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
