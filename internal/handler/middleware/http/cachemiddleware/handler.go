package cachemiddleware

import (
	"net/http"

	"github.com/ryndalv/skein/internal/cache"
)

func New(cch cache.Cache) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
			next.ServeHTTP(rw, req.WithContext(cache.WithContext(req.Context(), cch)))
		})
	}
}
