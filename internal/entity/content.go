package entity

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Content é a união dos schemas de conteúdo, discriminada pelo campo
// "type" no JSON. Exatamente uma das variantes fica preenchida.
type Content struct {
	Kind       MagnetKind
	Checklist  *ChecklistContent
	Template   *TemplateContent
	Calculator *CalculatorContent
	Report     *ReportContent
}

type ChecklistStep struct {
	Step         int    `json:"step"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	TimeEstimate string `json:"time_estimate,omitempty"`
}

type ChecklistContent struct {
	Title       string          `json:"title"`
	Steps       []ChecklistStep `json:"steps"`
	Deliverable string          `json:"deliverable,omitempty"`
}

type TemplateContent struct {
	Title    string   `json:"title"`
	Sections []string `json:"sections"`
	Content  string   `json:"content"`
	Format   string   `json:"format,omitempty"`
}

type CalculatorInput struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Type        string `json:"type"`
	Placeholder string `json:"placeholder,omitempty"`
}

type CalculatorOutput struct {
	Label string `json:"label"`
	Unit  string `json:"unit,omitempty"`
}

type CalculatorContent struct {
	Title   string            `json:"title"`
	Inputs  []CalculatorInput `json:"inputs"`
	Formula string            `json:"formula"`
	Output  CalculatorOutput  `json:"output"`
	Example string            `json:"example,omitempty"`
}

type ReportSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ReportContent struct {
	Title       string          `json:"title"`
	Sections    []ReportSection `json:"sections"`
	Pages       int             `json:"pages,omitempty"`
	Deliverable string          `json:"deliverable,omitempty"`
}

func NewChecklistContent(c ChecklistContent) *Content {
	return &Content{Kind: KindChecklist, Checklist: &c}
}

func NewTemplateContent(c TemplateContent) *Content {
	return &Content{Kind: KindTemplate, Template: &c}
}

func NewCalculatorContent(c CalculatorContent) *Content {
	return &Content{Kind: KindCalculator, Calculator: &c}
}

func NewReportContent(c ReportContent) *Content {
	return &Content{Kind: KindReport, Report: &c}
}

// MarshalJSON serializa a variante ativa com o discriminador "type",
// no mesmo formato JSON que fica persistido na coluna content.
func (c Content) MarshalJSON() ([]byte, error) {
	var body any
	switch c.Kind {
	case KindChecklist:
		body = c.Checklist
	case KindTemplate:
		body = c.Template
	case KindCalculator:
		body = c.Calculator
	case KindReport:
		body = c.Report
	default:
		return nil, fmt.Errorf("content sem kind válido: %q", c.Kind)
	}
	if body == nil || (c.Checklist == nil && c.Template == nil && c.Calculator == nil && c.Report == nil) {
		return nil, errors.New("content sem variante preenchida")
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, err
	}
	m["type"], _ = json.Marshal(string(c.Kind))
	return json.Marshal(m)
}

func (c *Content) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type MagnetKind `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	switch probe.Type {
	case KindChecklist:
		var v ChecklistContent
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = Content{Kind: KindChecklist, Checklist: &v}
	case KindTemplate:
		var v TemplateContent
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = Content{Kind: KindTemplate, Template: &v}
	case KindCalculator:
		var v CalculatorContent
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = Content{Kind: KindCalculator, Calculator: &v}
	case KindReport:
		var v ReportContent
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*c = Content{Kind: KindReport, Report: &v}
	default:
		return fmt.Errorf("content com type desconhecido: %q", probe.Type)
	}
	return nil
}
