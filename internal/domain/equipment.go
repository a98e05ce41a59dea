package domain

import "time"

type Equipment struct {
	ID             int64             `json:"id"`
	CategoryID     int64             `json:"category_id"`
	Name           string            `json:"name"`
	NameRu         string            `json:"name_ru,omitempty"`
	NameAz         string            `json:"name_az,omitempty"`
	Description    string            `json:"description"`
	DescriptionRu  string            `json:"description_ru,omitempty"`
	DescriptionAz  string            `json:"description_az,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	PricePerDay    float64           `json:"price_per_day"`
	PricePerWeek   float64           `json:"price_per_week"`
	PricePerMonth  float64           `json:"price_per_month"`
	MainImage      string            `json:"main_image,omitempty"`
	Images         []string          `json:"images,omitempty"`
	Available      bool              `json:"available"`
	Location       string            `json:"location"`
	Rating         float64           `json:"rating"`
	ReviewCount    int               `json:"review_count"`
	Features       []string          `json:"features,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	Category *Category `json:"category,omitempty"`
}

// LocalizedName returns the name for the given language code, falling back
// to English when the translation is missing.
func (e *Equipment) LocalizedName(lang string) string {
	switch lang {
	case "ru":
		if e.NameRu != "" {
			return e.NameRu
		}
	case "az":
		if e.NameAz != "" {
			return e.NameAz
		}
	}
	return e.Name
}

func (e *Equipment) LocalizedDescription(lang string) string {
	switch lang {
	case "ru":
		if e.DescriptionRu != "" {
			return e.DescriptionRu
		}
	case "az":
		if e.DescriptionAz != "" {
			return e.DescriptionAz
		}
	}
	return e.Description
}
