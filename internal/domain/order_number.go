package domain

import (
	"fmt"
	"math/rand"
	"time"
)

// NewOrderNumber mints a client-side order reference from the current
// timestamp and a random suffix. Nothing reserves the number anywhere,
// so collisions are possible, just vanishingly unlikely at the volumes
// this storefront handles.
func NewOrderNumber() string {
	return fmt.Sprintf("GEO-%d-%03d", time.Now().UnixMilli(), rand.Intn(1000))
}
