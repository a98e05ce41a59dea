package domain

import "time"

type Category struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	NameRu    string    `json:"name_ru,omitempty"`
	NameAz    string    `json:"name_az,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) LocalizedName(lang string) string {
	switch lang {
	case "ru":
		if c.NameRu != "" {
			return c.NameRu
		}
	case "az":
		if c.NameAz != "" {
			return c.NameAz
		}
	}
	return c.Name
}

// CategoryWithCount is the catalog listing shape: a category together with
// the number of equipment items currently assigned to it.
type CategoryWithCount struct {
	Category
	EquipmentCount int `json:"equipment_count"`
}
