package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/wwegiel111/Elektro-shop/pkg/domain/model"
)

var (
	errForbidden       = errors.New("forbidden")
	errProductNotFound = errors.New("product not found")
	errEmailRequired   = errors.New("email is required for guest checkout")
	errExportDisabled  = errors.New("export is not configured")
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(b); err != nil {
		log.WithField("err", err).Error("write response status")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// parseCatalogFilter reads search, category, min, max and sort, defaulting each one
// to the store front defaults.
func parseCatalogFilter(r *http.Request) (model.CatalogFilter, error) {
	filter := model.DefaultCatalogFilter()
	q := r.URL.Query()

	filter.Search = q.Get("search")
	if category := q.Get("category"); category != "" {
		filter.Category = category
	}
	if v := q.Get("min"); v != "" {
		lo, err := decimal.NewFromString(v)
		if err != nil {
			return filter, err
		}
		filter.Min = lo
	}
	if v := q.Get("max"); v != "" {
		hi, err := decimal.NewFromString(v)
		if err != nil {
			return filter, err
		}
		filter.Max = hi
	}
	if v := q.Get("sort"); v != "" {
		key, err := model.ParseSortKey(v)
		if err != nil {
			return filter, err
		}
		filter.SortBy = key
	}
	return filter, nil
}
