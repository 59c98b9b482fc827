package cart

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

// NewRouter mounts the cart and catalog API under /api/v1.
func NewRouter(h *Handler, logger *zap.Logger, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(middleware.Recoverer)
	if requestTimeout > 0 {
		r.Use(middleware.Timeout(requestTimeout))
	}

	r.Get("/health", h.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/carts", func(r chi.Router) {
			r.Use(UserID)
			r.Post("/", h.OpenCart)

			r.Route("/{cartID}", func(r chi.Router) {
				r.Get("/", h.GetCart)
				r.Delete("/", h.CloseCart)

				r.Post("/items", h.AddItem)
				r.Post("/items/{productID}/increment", h.IncrementItem)
				r.Post("/items/{productID}/decrement", h.DecrementItem)
				r.Delete("/items/{productID}", h.RemoveItem)

				r.Patch("/checkout", h.UpdateCheckout)
				r.Post("/validate", h.ValidateCart)
				r.Post("/finalize", h.FinalizeCart)
				r.Post("/reset", h.ResetCart)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", h.ListProducts)
			r.Get("/barcode/{code}", h.GetProductByBarcode)
			r.Get("/{productID}", h.GetProduct)
		})
	})

	return otelhttp.NewHandler(r, "grocery-pos",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}
