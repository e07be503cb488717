package handlers

import (
	"encoding/json"
	"net/http"

	"netsize-service/internal/catalog"
)

type healthBody struct {
	Status  string        `json:"status"`
	Catalog catalog.State `json:"catalog"`
	Entries int           `json:"entries"`
}

// Health: сервис жив, даже если каталог ещё грузится или не загрузился.
func Health(holder *catalog.Holder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_ = json.NewEncoder(w).Encode(healthBody{
			Status:  "ok",
			Catalog: holder.State(),
			Entries: holder.Get().Len(),
		})
	}
}
