package generation

import (
	"encoding/json"
	"log"
	"strings"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

// NormalizeContent transforma a saída crua do modelo no conteúdo
// estruturado do kind pedido. Nunca falha: se nenhuma estratégia de
// extração produzir JSON válido com o shape certo, devolve o conteúdo
// determinístico de fallback.
func NormalizeContent(raw string, kind entity.MagnetKind, title string) *entity.Content {
	for _, candidate := range candidates(raw, shapeObject) {
		if content := parseContent(candidate, kind, title); content != nil {
			return content
		}
	}
	log.Printf("⚠️ Conteúdo %s não parseou, usando fallback para %q", kind, title)
	return FallbackContent(kind, title)
}

func parseContent(candidate string, kind entity.MagnetKind, title string) *entity.Content {
	switch kind {
	case entity.KindChecklist:
		var v entity.ChecklistContent
		if err := json.Unmarshal([]byte(candidate), &v); err != nil || len(v.Steps) == 0 {
			return nil
		}
		if v.Title == "" {
			v.Title = title
		}
		if v.Deliverable == "" {
			v.Deliverable = "PDF Checklist"
		}
		return entity.NewChecklistContent(v)

	case entity.KindTemplate:
		var v entity.TemplateContent
		if err := json.Unmarshal([]byte(candidate), &v); err != nil || strings.TrimSpace(v.Content) == "" {
			return nil
		}
		if v.Title == "" {
			v.Title = title
		}
		if v.Format == "" {
			v.Format = "Editable Template"
		}
		return entity.NewTemplateContent(v)

	case entity.KindCalculator:
		var v entity.CalculatorContent
		if err := json.Unmarshal([]byte(candidate), &v); err != nil || len(v.Inputs) == 0 || v.Formula == "" {
			return nil
		}
		if v.Title == "" {
			v.Title = title
		}
		return entity.NewCalculatorContent(v)

	case entity.KindReport:
		var v entity.ReportContent
		if err := json.Unmarshal([]byte(candidate), &v); err != nil || len(v.Sections) == 0 {
			return nil
		}
		if v.Title == "" {
			v.Title = title
		}
		if v.Deliverable == "" {
			v.Deliverable = "PDF Report"
		}
		return entity.NewReportContent(v)
	}
	return nil
}

// LandingCopy é o copy de landing page normalizado.
type LandingCopy struct {
	Headline     string   `json:"headline"`
	Subheadline  string   `json:"subheadline,omitempty"`
	Benefits     []string `json:"benefits,omitempty"`
	CTA          string   `json:"cta"`
	FormFields   []string `json:"form_fields"`
	ThankYouPage string   `json:"thank_you_page"`
}

// NormalizeLandingCopy parseia o copy e preenche os campos que o
// modelo omitiu com defaults derivados do título.
func NormalizeLandingCopy(raw string, magnet *entity.LeadMagnet) LandingCopy {
	for _, candidate := range candidates(raw, shapeObject) {
		var copy LandingCopy
		if err := json.Unmarshal([]byte(candidate), &copy); err != nil {
			continue
		}
		return backfillLandingCopy(copy, magnet)
	}
	return FallbackLandingCopy(magnet)
}

func backfillLandingCopy(copy LandingCopy, magnet *entity.LeadMagnet) LandingCopy {
	if copy.Headline == "" {
		copy.Headline = "Get Your Free " + magnet.Title
	}
	if copy.CTA == "" {
		copy.CTA = "Download Now"
	}
	if len(copy.FormFields) == 0 {
		copy.FormFields = []string{"name", "email", "company"}
	}
	if copy.ThankYouPage == "" {
		copy.ThankYouPage = "Thank you! Check your email for " + magnet.Title + "."
	}
	return copy
}

// EmailCopy é um email da sequência de nutrição normalizado.
type EmailCopy struct {
	SequenceNumber int    `json:"sequence_number"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
}

// NormalizeEmailSequence trunca para numEmails, renumera 1..N em ordem
// e aplica defaults por posição quando subject/body vierem vazios.
func NormalizeEmailSequence(raw string, numEmails int) []EmailCopy {
	for _, candidate := range candidates(raw, shapeArray) {
		var items []json.RawMessage
		if err := json.Unmarshal([]byte(candidate), &items); err != nil || len(items) == 0 {
			continue
		}
		var emails []EmailCopy
		for _, item := range items {
			var e EmailCopy
			if err := json.Unmarshal(item, &e); err != nil {
				continue // entrada que não é objeto é descartada
			}
			emails = append(emails, e)
		}
		if len(emails) == 0 {
			continue
		}
		if len(emails) > numEmails {
			emails = emails[:numEmails]
		}
		for i := range emails {
			emails[i].SequenceNumber = i + 1
			if emails[i].Subject == "" {
				emails[i].Subject = defaultEmailSubject(i, numEmails)
			}
			if emails[i].Body == "" {
				emails[i].Body = defaultEmailBody(i, numEmails)
			}
		}
		return emails
	}
	return FallbackEmailSequence(numEmails)
}
