package httpx

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"
)

// Prices and totals go over the wire as plain JSON numbers, not strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
