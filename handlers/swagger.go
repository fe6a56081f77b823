package handlers

import (
	_ "embed"
	"net/http"
)

//go:embed swagger.json
var swaggerDoc []byte

// SwaggerDoc serves the API description read by the swagger UI.
func SwaggerDoc(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(swaggerDoc)
}
