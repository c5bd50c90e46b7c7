package catalog

import (
	"context"

	"github.com/runocole/geomart/internal/domain"
)

// StaticRepository serves the fixed seed table. Products are immutable
// and have no lifecycle beyond process start.
type StaticRepository struct {
	products []*domain.Product
	byID     map[string]*domain.Product
}

func NewStaticRepository() *StaticRepository {
	r := &StaticRepository{
		products: seedProducts(),
		byID:     make(map[string]*domain.Product),
	}
	for _, p := range r.products {
		r.byID[p.ID] = p
	}
	return r
}

func (r *StaticRepository) GetAllProducts(_ context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *StaticRepository) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func (r *StaticRepository) GetByCategory(_ context.Context, c domain.Category) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, p := range r.products {
		if p.Category == c {
			out = append(out, p)
		}
	}
	return out, nil
}

func seedProducts() []*domain.Product {
	return []*domain.Product{
		{
			ID:          "ts-leica-ts07",
			Name:        "Leica TS07 Total Station",
			Category:    domain.CategoryTotalStation,
			Price:       8450,
			Description: "5\" manual total station with AutoHeight and 30x magnification.",
			ImageURL:    "/images/products/leica-ts07.jpg",
			InStock:     true,
			Specs:       []string{"Angle accuracy 5\"", "Range 3500 m to prism", "IP66"},
		},
		{
			ID:          "ts-sokkia-im52",
			Name:        "Sokkia iM-52 Total Station",
			Category:    domain.CategoryTotalStation,
			Price:       6200,
			Description: "2\" reflectorless total station with RED-tech EDM.",
			ImageURL:    "/images/products/sokkia-im52.jpg",
			InStock:     true,
			Specs:       []string{"Angle accuracy 2\"", "Reflectorless 500 m", "TSshield telematics"},
		},
		{
			ID:          "gnss-hi-target-v200",
			Name:        "Hi-Target V200 GNSS RTK Receiver",
			Category:    domain.CategoryGNSS,
			Price:       4750,
			Description: "Compact 1408-channel GNSS receiver with built-in IMU tilt compensation.",
			ImageURL:    "/images/products/hi-target-v200.jpg",
			InStock:     true,
			Specs:       []string{"1408 channels", "IMU tilt survey", "UHF + 4G datalink"},
		},
		{
			ID:          "gnss-comnav-t300",
			Name:        "ComNav T300 Plus GNSS Receiver",
			Category:    domain.CategoryGNSS,
			Price:       3900,
			Description: "Lightweight RTK rover for boundary and topographic work.",
			ImageURL:    "/images/products/comnav-t300.jpg",
			InStock:     false,
			Specs:       []string{"965 channels", "8 hr battery", "IP67"},
		},
		{
			ID:          "lvl-topcon-atb4a",
			Name:        "Topcon AT-B4A Automatic Level",
			Category:    domain.CategoryLevel,
			Price:       420,
			Description: "24x automatic level for site levelling and profile runs.",
			ImageURL:    "/images/products/topcon-atb4a.jpg",
			InStock:     true,
		},
		{
			ID:          "theo-south-et02",
			Name:        "South ET-02 Electronic Theodolite",
			Category:    domain.CategoryTheodolite,
			Price:       780,
			Description: "2\" electronic theodolite with dual LCD display.",
			ImageURL:    "/images/products/south-et02.jpg",
			InStock:     true,
		},
		{
			ID:          "drn-dji-m350",
			Name:        "DJI Matrice 350 RTK",
			Category:    domain.CategoryDrone,
			Price:       11500,
			Description: "Survey-grade mapping drone with RTK module and 55-minute flight time.",
			ImageURL:    "/images/products/dji-m350.jpg",
			InStock:     true,
			Specs:       []string{"RTK positioning", "55 min flight time", "IP55"},
		},
		{
			ID:          "acc-prism-360",
			Name:        "360° Robotic Prism",
			Category:    domain.CategoryAccessory,
			Price:       350,
			Description: "Full-circle prism for robotic total station tracking.",
			ImageURL:    "/images/products/prism-360.jpg",
			InStock:     true,
		},
		{
			ID:          "acc-tripod-wood",
			Name:        "Heavy-Duty Wooden Tripod",
			Category:    domain.CategoryAccessory,
			Price:       95,
			Description: "Dome-head wooden tripod with quick clamps.",
			ImageURL:    "/images/products/tripod-wood.jpg",
			InStock:     true,
		},
	}
}
