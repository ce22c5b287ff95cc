package server

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func newRouter(h handlers, feed *Feed) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(http.MethodPost+" /api/craft", h.handleCraft)
	mux.HandleFunc(http.MethodGet+" /api/ingredients", h.handleListIngredients)
	mux.HandleFunc(http.MethodPost+" /api/ingredients", h.handleUpsertIngredient)
	mux.HandleFunc(http.MethodGet+" /api/disciplines/{discipline}/recipes", h.handleListRecipes)
	mux.HandleFunc(http.MethodGet+" /ws", feed.HandleFeed)
	mux.HandleFunc(http.MethodGet+" /healthz", h.handleHealthz)
	return otelhttp.NewHandler(mux, "cauldron.http")
}
