package assets

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

// Asset é o arquivo final entregue ao lead, pronto para anexar no email
// ou servir no endpoint de download.
type Asset struct {
	Filename  string
	MediaType string
	Data      []byte
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render gera o asset conforme o tipo do lead magnet: PDF para
// checklist, template e report; HTML interativo para calculator.
func (r *Renderer) Render(magnet *entity.LeadMagnet) (*Asset, error) {
	if magnet.Content == nil {
		return nil, fmt.Errorf("lead magnet %d sem conteúdo gerado", magnet.ID)
	}

	switch magnet.Kind {
	case entity.KindChecklist:
		data, err := r.renderChecklistPDF(magnet)
		if err != nil {
			return nil, err
		}
		return &Asset{Filename: assetFilename(magnet.Title, "pdf"), MediaType: "application/pdf", Data: data}, nil
	case entity.KindTemplate:
		data, err := r.renderTemplatePDF(magnet)
		if err != nil {
			return nil, err
		}
		return &Asset{Filename: assetFilename(magnet.Title, "pdf"), MediaType: "application/pdf", Data: data}, nil
	case entity.KindReport:
		data, err := r.renderReportPDF(magnet)
		if err != nil {
			return nil, err
		}
		return &Asset{Filename: assetFilename(magnet.Title, "pdf"), MediaType: "application/pdf", Data: data}, nil
	case entity.KindCalculator:
		data, err := r.renderCalculatorHTML(magnet)
		if err != nil {
			return nil, err
		}
		return &Asset{Filename: assetFilename(magnet.Title, "html"), MediaType: "text/html; charset=utf-8", Data: data}, nil
	default:
		return nil, fmt.Errorf("tipo de lead magnet desconhecido: %s", magnet.Kind)
	}
}

// Paleta dos PDFs, a mesma dos emails.
var (
	titleColor   = [3]int{99, 102, 241}  // #6366f1
	headingColor = [3]int{79, 70, 229}   // #4f46e5
	bodyColor    = [3]int{51, 51, 51}    // #333333
	mutedColor   = [3]int{107, 114, 128} // #6b7280
)

func newDoc() *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	return pdf
}

func writeTitle(pdf *fpdf.Fpdf, title string) {
	pdf.SetFont("Helvetica", "B", 24)
	pdf.SetTextColor(titleColor[0], titleColor[1], titleColor[2])
	pdf.MultiCell(0, 12, title, "", "L", false)
	pdf.Ln(6)
}

func writeHeading(pdf *fpdf.Fpdf, heading string) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(headingColor[0], headingColor[1], headingColor[2])
	pdf.MultiCell(0, 8, heading, "", "L", false)
	pdf.Ln(2)
}

func writeBody(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(bodyColor[0], bodyColor[1], bodyColor[2])
	pdf.MultiCell(0, 6, text, "", "L", false)
	pdf.Ln(2)
}

func writeMuted(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "I", 10)
	pdf.SetTextColor(mutedColor[0], mutedColor[1], mutedColor[2])
	pdf.MultiCell(0, 5, text, "", "L", false)
	pdf.Ln(2)
}

func (r *Renderer) renderChecklistPDF(magnet *entity.LeadMagnet) ([]byte, error) {
	pdf := newDoc()
	writeTitle(pdf, magnet.Title)

	if magnet.ValuePromise != "" {
		writeBody(pdf, magnet.ValuePromise)
		pdf.Ln(4)
	}

	checklist := magnet.Content.Checklist
	if checklist != nil {
		for _, step := range checklist.Steps {
			writeHeading(pdf, "[  ]  "+step.Title)
			if step.Description != "" {
				writeBody(pdf, step.Description)
			}
			if step.TimeEstimate != "" {
				writeMuted(pdf, "Estimated time: "+step.TimeEstimate)
			}
			pdf.Ln(4)
		}
	}

	return finishPDF(pdf)
}

func (r *Renderer) renderTemplatePDF(magnet *entity.LeadMagnet) ([]byte, error) {
	pdf := newDoc()
	writeTitle(pdf, magnet.Title)

	tpl := magnet.Content.Template
	if tpl != nil {
		for _, section := range tpl.Sections {
			writeHeading(pdf, section)
		}
		if len(tpl.Sections) > 0 {
			pdf.Ln(2)
		}
		for _, line := range strings.Split(tpl.Content, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			writeBody(pdf, line)
		}
	}

	return finishPDF(pdf)
}

func (r *Renderer) renderReportPDF(magnet *entity.LeadMagnet) ([]byte, error) {
	pdf := newDoc()
	writeTitle(pdf, magnet.Title)
	pdf.Ln(4)

	report := magnet.Content.Report
	if report != nil {
		for _, section := range report.Sections {
			writeHeading(pdf, section.Title)
			writeBody(pdf, section.Content)
			pdf.Ln(4)
		}
	}

	return finishPDF(pdf)
}

func finishPDF(pdf *fpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("erro ao gerar PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// assetFilename troca espaços por underscore para o nome do anexo.
func assetFilename(title, ext string) string {
	name := strings.ReplaceAll(title, " ", "_")
	if name == "" {
		name = "lead_magnet"
	}
	return name + "." + ext
}
