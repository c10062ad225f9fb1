package entity

import (
	"context"
	"errors"
	"time"
)

// MagnetKind define o formato do lead magnet. O kind decide qual
// schema de conteúdo é válido e qual asset será gerado no download.
type MagnetKind string

const (
	KindChecklist  MagnetKind = "checklist"
	KindTemplate   MagnetKind = "template"
	KindCalculator MagnetKind = "calculator"
	KindReport     MagnetKind = "report"
)

func (k MagnetKind) IsValid() bool {
	switch k {
	case KindChecklist, KindTemplate, KindCalculator, KindReport:
		return true
	}
	return false
}

type LeadMagnet struct {
	ID              int64      `json:"id"`
	Title           string     `json:"title"`
	Kind            MagnetKind `json:"type"`
	ValuePromise    string     `json:"value_promise,omitempty"`
	ConversionScore int        `json:"conversion_score"`
	Content         *Content   `json:"content"` // nil até o conteúdo ser gerado
	CreatedAt       time.Time  `json:"created_at"`
}

func NewLeadMagnet(title string, kind MagnetKind, valuePromise string, conversionScore int) (*LeadMagnet, error) {
	m := &LeadMagnet{
		Title:           title,
		Kind:            kind,
		ValuePromise:    valuePromise,
		ConversionScore: conversionScore,
		CreatedAt:       time.Now(),
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *LeadMagnet) Validate() error {
	if m.Title == "" {
		return errors.New("title is required")
	}
	if !m.Kind.IsValid() {
		return errors.New("type must be one of: checklist, template, calculator, report")
	}
	if m.ConversionScore < 1 || m.ConversionScore > 10 {
		return errors.New("conversion_score must be between 1 and 10")
	}
	return nil
}

type LeadMagnetRepository interface {
	Create(ctx context.Context, m *LeadMagnet) error
	FindByID(ctx context.Context, id int64) (*LeadMagnet, error)
	List(ctx context.Context, offset, limit int) ([]*LeadMagnet, error)
	Update(ctx context.Context, m *LeadMagnet) error
	UpdateContent(ctx context.Context, id int64, content *Content) error
	Delete(ctx context.Context, id int64) error
}
