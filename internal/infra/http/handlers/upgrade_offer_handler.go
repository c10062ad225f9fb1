package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/genieops/leadmagnet-api/internal/usecase"
)

type UpgradeOfferHandler struct {
	UseCase *usecase.UpgradeOfferUseCase
}

func NewUpgradeOfferHandler(uc *usecase.UpgradeOfferUseCase) *UpgradeOfferHandler {
	return &UpgradeOfferHandler{UseCase: uc}
}

func (h *UpgradeOfferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateUpgradeOfferInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	offer, err := h.UseCase.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, offer)
}

func (h *UpgradeOfferHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	offer, err := h.UseCase.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offer)
}

func (h *UpgradeOfferHandler) ListByLeadMagnet(w http.ResponseWriter, r *http.Request) {
	leadMagnetID, err := urlParamID(r, "lead_magnet_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	offers, err := h.UseCase.ListByLeadMagnet(r.Context(), leadMagnetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *UpgradeOfferHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// SendToLead (POST /upgrade-offers/{id}/send-to-lead/{lead_id})
func (h *UpgradeOfferHandler) SendToLead(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	leadID, err := urlParamID(r, "lead_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	output, err := h.UseCase.SendToLead(r.Context(), id, leadID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}
