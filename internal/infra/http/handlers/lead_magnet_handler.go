package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/genieops/leadmagnet-api/internal/usecase"
)

type LeadMagnetHandler struct {
	UseCase *usecase.LeadMagnetUseCase
}

func NewLeadMagnetHandler(uc *usecase.LeadMagnetUseCase) *LeadMagnetHandler {
	return &LeadMagnetHandler{UseCase: uc}
}

// GenerateIdeas (POST /lead-magnets/generate-ideas)
func (h *LeadMagnetHandler) GenerateIdeas(w http.ResponseWriter, r *http.Request) {
	var input usecase.GenerateIdeasInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	ideas := h.UseCase.GenerateIdeas(r.Context(), input)
	writeJSON(w, http.StatusOK, ideas)
}

func (h *LeadMagnetHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateLeadMagnetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	magnet, err := h.UseCase.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, magnet)
}

func (h *LeadMagnetHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	magnets, err := h.UseCase.List(r.Context(), offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, magnets)
}

func (h *LeadMagnetHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	magnet, err := h.UseCase.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, magnet)
}

func (h *LeadMagnetHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var input usecase.CreateLeadMagnetInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	magnet, err := h.UseCase.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, magnet)
}

func (h *LeadMagnetHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// GenerateContent (POST /lead-magnets/{id}/generate-content)
func (h *LeadMagnetHandler) GenerateContent(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var input usecase.GenerateContentInput
	if r.Body != nil {
		// corpo vazio vale: gera sem pain points
		json.NewDecoder(r.Body).Decode(&input)
	}

	magnet, err := h.UseCase.GenerateContent(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, magnet)
}

// Download (GET /lead-magnets/{id}/download) serve o asset renderizado
// como anexo.
func (h *LeadMagnetHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	asset, err := h.UseCase.Download(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", asset.MediaType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", asset.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write(asset.Data)
}
