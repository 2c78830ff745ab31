package pricing

import "github.com/go-chi/chi/v5"

// RegisterRoutes mounts the pricing endpoints at the root of r.
func RegisterRoutes(r chi.Router) {
	r.Get("/convert", Conversion)
	r.Get("/tva", Tax)
	r.Get("/remise", Discount)
}
