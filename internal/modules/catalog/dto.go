package catalog

import "equiprent/internal/domain"

type ListEquipmentQuery struct {
	CategoryID *int64 `form:"category_id"`
	Available  *bool  `form:"available"`
	Query      string `form:"q"`
	Sort       string `form:"sort" binding:"omitempty,oneof=price_asc price_desc rating newest"`
	Lang       string `form:"lang" binding:"omitempty,oneof=en ru az"`
	Limit      int    `form:"limit"`
	Offset     int    `form:"offset"`
}

type EquipmentRequest struct {
	CategoryID     int64             `json:"category_id" binding:"required"`
	Name           string            `json:"name" binding:"required,min=2,max=200"`
	NameRu         string            `json:"name_ru"`
	NameAz         string            `json:"name_az"`
	Description    string            `json:"description"`
	DescriptionRu  string            `json:"description_ru"`
	DescriptionAz  string            `json:"description_az"`
	Specifications map[string]string `json:"specifications"`
	PricePerDay    float64           `json:"price_per_day"`
	PricePerWeek   float64           `json:"price_per_week"`
	PricePerMonth  float64           `json:"price_per_month"`
	MainImage      string            `json:"main_image"`
	Images         []string          `json:"images"`
	Available      *bool             `json:"available"`
	Location       string            `json:"location"`
	Features       []string          `json:"features"`
}

type CategoryRequest struct {
	Slug   string `json:"slug" binding:"required,min=2,max=100"`
	Name   string `json:"name" binding:"required,min=2,max=100"`
	NameRu string `json:"name_ru"`
	NameAz string `json:"name_az"`
	Icon   string `json:"icon"`
}

type SetAvailabilityRequest struct {
	Available *bool `json:"available" binding:"required"`
}

// EquipmentView is the storefront shape of an equipment item: the
// multilingual columns collapsed to the requested language.
type EquipmentView struct {
	ID             int64             `json:"id"`
	CategoryID     int64             `json:"category_id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
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
}

func viewOf(e *domain.Equipment, lang string) EquipmentView {
	return EquipmentView{
		ID:             e.ID,
		CategoryID:     e.CategoryID,
		Name:           e.LocalizedName(lang),
		Description:    e.LocalizedDescription(lang),
		Specifications: e.Specifications,
		PricePerDay:    e.PricePerDay,
		PricePerWeek:   e.PricePerWeek,
		PricePerMonth:  e.PricePerMonth,
		MainImage:      e.MainImage,
		Images:         e.Images,
		Available:      e.Available,
		Location:       e.Location,
		Rating:         e.Rating,
		ReviewCount:    e.ReviewCount,
		Features:       e.Features,
	}
}

type CategoryView struct {
	ID             int64  `json:"id"`
	Slug           string `json:"slug"`
	Name           string `json:"name"`
	Icon           string `json:"icon,omitempty"`
	EquipmentCount int    `json:"equipment_count"`
}

func categoryViewOf(c domain.CategoryWithCount, lang string) CategoryView {
	return CategoryView{
		ID:             c.ID,
		Slug:           c.Slug,
		Name:           c.LocalizedName(lang),
		Icon:           c.Icon,
		EquipmentCount: c.EquipmentCount,
	}
}
