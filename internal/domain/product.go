package domain

// Category is the closed set of catalog categories.
type Category string

const (
	CategoryTotalStation Category = "total-stations"
	CategoryGNSS         Category = "gnss-receivers"
	CategoryLevel        Category = "levels"
	CategoryTheodolite   Category = "theodolites"
	CategoryDrone        Category = "drones"
	CategoryAccessory    Category = "accessories"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryTotalStation, CategoryGNSS, CategoryLevel,
		CategoryTheodolite, CategoryDrone, CategoryAccessory:
		return true
	}
	return false
}

// Product is an immutable catalog entry. Price is in the base currency
// (USD); display conversion never mutates it.
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	ImageURL    string   `json:"image_url"`
	InStock     bool     `json:"in_stock"`
	Specs       []string `json:"specs,omitempty"`
}
