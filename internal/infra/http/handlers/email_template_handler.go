package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/genieops/leadmagnet-api/internal/usecase"
)

type EmailTemplateHandler struct {
	UseCase *usecase.EmailTemplateUseCase
}

func NewEmailTemplateHandler(uc *usecase.EmailTemplateUseCase) *EmailTemplateHandler {
	return &EmailTemplateHandler{UseCase: uc}
}

func (h *EmailTemplateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateEmailTemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	tpl, err := h.UseCase.Create(r.Context(), input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, tpl)
}

// GenerateSequence (POST /email-templates/{lead_magnet_id}/generate-sequence?num_emails=N)
// devolve 409 se o magnet já tem sequência.
func (h *EmailTemplateHandler) GenerateSequence(w http.ResponseWriter, r *http.Request) {
	leadMagnetID, err := urlParamID(r, "lead_magnet_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	numEmails, _ := strconv.Atoi(r.URL.Query().Get("num_emails"))
	if numEmails <= 0 {
		numEmails = 3
	}

	templates, err := h.UseCase.GenerateSequence(r.Context(), leadMagnetID, numEmails)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, templates)
}

func (h *EmailTemplateHandler) List(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r)
	templates, err := h.UseCase.List(r.Context(), offset, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (h *EmailTemplateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tpl, err := h.UseCase.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

func (h *EmailTemplateHandler) ListByLeadMagnet(w http.ResponseWriter, r *http.Request) {
	leadMagnetID, err := urlParamID(r, "lead_magnet_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	templates, err := h.UseCase.ListByLeadMagnet(r.Context(), leadMagnetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

func (h *EmailTemplateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var input usecase.CreateEmailTemplateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "JSON inválido: " + err.Error()})
		return
	}

	tpl, err := h.UseCase.Update(r.Context(), id, input)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

func (h *EmailTemplateHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// SendToLeads (POST /email-templates/{id}/send-to-leads) enfileira o
// envio em massa e responde 202.
func (h *EmailTemplateHandler) SendToLeads(w http.ResponseWriter, r *http.Request) {
	id, err := urlParamID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	output, err := h.UseCase.SendToLeads(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, output)
}

// SendSequenceToLead (POST /email-templates/send-sequence-to-lead/{lead_id})
func (h *EmailTemplateHandler) SendSequenceToLead(w http.ResponseWriter, r *http.Request) {
	leadID, err := urlParamID(r, "lead_id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	output, err := h.UseCase.SendSequenceToLead(r.Context(), leadID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, output)
}
