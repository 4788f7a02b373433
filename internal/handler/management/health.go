package management

import (
	"net/http"

	"github.com/goccy/go-json"
)

func health() http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, _ *http.Request) {
		type status struct {
			Status string `json:"status"`
		}

		res, _ := json.Marshal(status{Status: "ok"})

		rw.Header().Set("Content-Type", "application/json")

		_, _ = rw.Write(res)
	})
}
