package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/sablewood/cauldron/internal/core/craft"
	"github.com/sablewood/cauldron/internal/crafting/domain"
	"github.com/sablewood/cauldron/internal/crafting/service"
	"github.com/sablewood/cauldron/internal/storage"
)

type handlers struct {
	crafting    *service.Service
	ingredients storage.IngredientStore
	recipes     storage.RecipeStore
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// craftStatus maps service failures onto HTTP statuses. Validation refusals
// are the client's to fix; only storage trouble is a server error.
func craftStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrUnknownDiscipline),
		errors.Is(err, service.ErrUnknownMode),
		errors.Is(err, service.ErrIngredientCount),
		errors.Is(err, service.ErrUnknownIngredient):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInsufficientQuantity):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h handlers) handleCraft(w http.ResponseWriter, r *http.Request) {
	var request service.Request
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	outcome, err := h.crafting.Craft(r.Context(), request)
	if err != nil {
		status := craftStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("craft failed: %v", err)
		}
		writeError(w, status, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}

func (h handlers) handleListIngredients(w http.ResponseWriter, r *http.Request) {
	ingredients, err := h.ingredients.ListIngredients(r.Context())
	if err != nil {
		log.Printf("list ingredients: %v", err)
		writeError(w, http.StatusInternalServerError, errors.New("list ingredients failed"))
		return
	}
	if ingredients == nil {
		ingredients = []domain.Ingredient{}
	}
	writeJSON(w, http.StatusOK, ingredients)
}

func (h handlers) handleUpsertIngredient(w http.ResponseWriter, r *http.Request) {
	var ingredient domain.Ingredient
	if err := json.NewDecoder(r.Body).Decode(&ingredient); err != nil {
		writeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.ingredients.PutIngredient(r.Context(), ingredient); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, ingredient)
}

func (h handlers) handleListRecipes(w http.ResponseWriter, r *http.Request) {
	discipline, ok := craft.ParseDiscipline(r.PathValue("discipline"))
	if !ok {
		writeError(w, http.StatusNotFound, service.ErrUnknownDiscipline)
		return
	}

	catalog, err := h.recipes.ListRecipes(r.Context(), discipline)
	if err != nil {
		log.Printf("list recipes: %v", err)
		writeError(w, http.StatusInternalServerError, errors.New("list recipes failed"))
		return
	}
	if catalog == nil {
		catalog = []craft.Recipe{}
	}
	writeJSON(w, http.StatusOK, catalog)
}

func (h handlers) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
