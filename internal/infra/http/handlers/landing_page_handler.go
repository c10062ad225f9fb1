package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/genieops/leadmagnet-api/internal/usecase"
)

type LandingPageHandler struct {
	UseCase *usecase.LandingPageUseCase
}

func NewLandingPageHandler(uc *usecase.LandingPageUseCase) *LandingPageHandler {
	return &LandingPageHandler{UseCase: uc}
}

func (h *LandingPageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLandingPageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	page, err := h.UseCase.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, page)
}

// Generate (POST /landing-pages/{lead_magnet_id}/generate) devolve 409
// se o magnet já tem landing page.
func (h *LandingPageHandler) Generate(w http.ResponseWriter, r *http.Request) {
	leadMagnetID, err := urlParamID(r, "lead_magnet_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	page, err := h.UseCase.Generate(r.Context(), leadMagnetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, page)
}

func (h *LandingPageHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	pages, err := h.UseCase.List(r.Context(), offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pages)
}

func (h *LandingPageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	page, err := h.UseCase.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *LandingPageHandler) GetByLeadMagnet(w http.ResponseWriter, r *http.Request) {
	leadMagnetID, err := urlParamID(r, "lead_magnet_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	page, err := h.UseCase.FindByLeadMagnet(r.Context(), leadMagnetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *LandingPageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var input usecase.CreateLandingPageInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	page, err := h.UseCase.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *LandingPageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := h.UseCase.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
