package server

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/vzaicevs/tdd-bdd-final-project/app/products"
)

const indexHTML = `<!DOCTYPE html>
<html>
<head><title>Product Catalog Administration</title></head>
<body>
<h1>Product Catalog Administration</h1>
<p>REST API for the product catalog, served under /products.</p>
</body>
</html>
`

// New assembles the service mux: the product resource plus the index and
// health endpoints.
func New(repo products.ProductStore, log *zap.Logger) http.Handler {
	mux := http.NewServeMux()

	handler := products.NewProductHandler(repo, log)
	mux.HandleFunc("POST /products", handler.HandleCreate)
	mux.HandleFunc("GET /products", handler.HandleList)
	mux.HandleFunc("GET /products/{id}", handler.HandleGet)
	mux.HandleFunc("PUT /products/{id}", handler.HandleUpdate)
	mux.HandleFunc("DELETE /products/{id}", handler.HandleDelete)

	mux.HandleFunc("GET /health", handleHealth)
	mux.HandleFunc("GET /{$}", handleIndex)

	return mux
}

func handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"message": "OK"}`))
}
