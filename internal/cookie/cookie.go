package cookie

import (
	"encoding/base64"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/runocole/geomart/internal/catalog"
	"github.com/runocole/geomart/internal/domain"
)

// CartPersistence defines the interface for cart durability across
// requests. Persistence is advisory, not transactional: Save failures
// are logged and swallowed, Load never fails.
type CartPersistence interface {
	Save(w http.ResponseWriter, items []domain.CartItem)
	Load(r *http.Request) []domain.CartItem
	Clear(w http.ResponseWriter)
}

const (
	defaultCookieName = "geomart_cart"
	defaultTTL        = 7 * 24 * time.Hour
)

// cartLine is the compact on-cookie encoding of one cart line. Only
// the product id, quantity and add time are stored; the full product
// is rehydrated from the catalog on load, which keeps the cookie well
// under the 4 KB browser limit however many lines the cart holds.
type cartLine struct {
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	AddedAt   time.Time `json:"added_at"`
}

type cookieCart struct {
	Items     []cartLine `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CartCookie mirrors the cart into a single named cookie. Last write
// wins; concurrent tabs are not coordinated.
type CartCookie struct {
	catalog catalog.Repository
	name    string
	ttl     time.Duration
	secure  bool
}

func NewCartCookie(catalogRepo catalog.Repository, secure bool) *CartCookie {
	return &CartCookie{
		catalog: catalogRepo,
		name:    defaultCookieName,
		ttl:     defaultTTL,
		secure:  secure,
	}
}

func (c *CartCookie) Save(w http.ResponseWriter, items []domain.CartItem) {
	lines := make([]cartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, cartLine{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
			AddedAt:   item.AddedAt,
		})
	}

	data, err := json.Marshal(cookieCart{Items: lines, UpdatedAt: time.Now()})
	if err != nil {
		log.Printf("cart cookie marshal error: %v", err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    base64.URLEncoding.EncodeToString(data),
		Path:     "/",
		Expires:  time.Now().Add(c.ttl),
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// Load returns the persisted line items rehydrated from the catalog,
// or an empty list when the cookie is absent, expired or corrupt.
// Lines referencing products the catalog no longer carries are
// dropped; parse failures degrade silently to an empty cart.
func (c *CartCookie) Load(r *http.Request) []domain.CartItem {
	ck, err := r.Cookie(c.name)
	if err != nil {
		return nil
	}

	data, err := base64.URLEncoding.DecodeString(ck.Value)
	if err != nil {
		log.Printf("cart cookie decode error: %v", err)
		return nil
	}

	var cart cookieCart
	if err := json.Unmarshal(data, &cart); err != nil {
		log.Printf("cart cookie unmarshal error: %v", err)
		return nil
	}

	var items []domain.CartItem
	for _, line := range cart.Items {
		if line.Quantity <= 0 {
			continue
		}
		product, err := c.catalog.GetProduct(r.Context(), line.ProductID)
		if err != nil {
			log.Printf("cart cookie references unknown product %s, dropping line", line.ProductID)
			continue
		}
		items = append(items, domain.CartItem{
			Product:  *product,
			Quantity: line.Quantity,
			AddedAt:  line.AddedAt,
		})
	}
	return items
}

func (c *CartCookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}
