package generation

import (
	"fmt"
	"strings"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

// Fallbacks determinísticos. São a garantia de que a normalização
// nunca devolve nil nem erro: todo caminho termina num conteúdo com o
// schema certo para o kind.

func FallbackContent(kind entity.MagnetKind, title string) *entity.Content {
	switch kind {
	case entity.KindTemplate:
		return entity.NewTemplateContent(entity.TemplateContent{
			Title:    title,
			Sections: []string{"Introduction", "Main Content", "Conclusion"},
			Content: fmt.Sprintf("# %s\n\nFill in your information below.\n\n"+
				"## Introduction\n[Start here...]\n\n## Main Content\n[Add your content...]\n\n## Conclusion\n[Wrap up...]", title),
			Format: "Editable Template",
		})

	case entity.KindCalculator:
		return entity.NewCalculatorContent(entity.CalculatorContent{
			Title: title,
			Inputs: []entity.CalculatorInput{
				{Name: "hours_saved", Label: "Hours Saved per Week", Type: "number", Placeholder: "e.g., 10"},
				{Name: "hourly_rate", Label: "Your Hourly Rate ($)", Type: "number", Placeholder: "e.g., 50"},
			},
			Formula: "hours_saved * hourly_rate",
			Output:  entity.CalculatorOutput{Label: "Potential Savings", Unit: "$"},
			Example: "If you save 10 hours at $50/hour, you save $500",
		})

	case entity.KindReport:
		return entity.NewReportContent(entity.ReportContent{
			Title: title,
			Sections: []entity.ReportSection{
				{Title: "Executive Summary", Content: "Brief overview of the key findings and what they mean for you."},
				{Title: "Key Findings", Content: "The most important insights uncovered, with supporting data."},
				{Title: "Recommendations", Content: "Actionable steps to apply the findings right away."},
			},
			Pages:       10,
			Deliverable: "PDF Report",
		})

	default: // checklist, também o default do sistema
		return entity.NewChecklistContent(entity.ChecklistContent{
			Title: title,
			Steps: []entity.ChecklistStep{
				{Step: 1, Title: "Step 1: Set Clear Goals", Description: "Define what success looks like."},
				{Step: 2, Title: "Step 2: Research Your Audience", Description: "Understand who you're helping."},
				{Step: 3, Title: "Step 3: Create Your Offer", Description: "Develop your solution."},
				{Step: 4, Title: "Step 4: Build Your Resource", Description: "Create the actual content."},
				{Step: 5, Title: "Step 5: Test and Launch", Description: "Share with your audience."},
			},
			Deliverable: "PDF Checklist",
		})
	}
}

func FallbackIdeas(painPoints []string, offerType string) []Idea {
	pain := "problem"
	if len(painPoints) > 0 && strings.TrimSpace(painPoints[0]) != "" {
		pain = painPoints[0]
	}
	if offerType == "" {
		offerType = "business"
	}

	return []Idea{
		{
			Title:                fmt.Sprintf("Ultimate %s Solution Checklist", titleCase(pain)),
			Kind:                 entity.KindChecklist,
			ValuePromise:         fmt.Sprintf("Solve %s with this step-by-step guide", pain),
			ConversionScore:      7,
			FormatRecommendation: "PDF checklist",
		},
		{
			Title:                fmt.Sprintf("%s Success Template", titleCase(offerType)),
			Kind:                 entity.KindTemplate,
			ValuePromise:         fmt.Sprintf("Ready-to-use template for better %s", offerType),
			ConversionScore:      6,
			FormatRecommendation: "Editable template",
		},
	}
}

func FallbackLandingCopy(magnet *entity.LeadMagnet) LandingCopy {
	subheadline := magnet.ValuePromise
	if subheadline == "" {
		subheadline = "Valuable resource to help you succeed"
	}
	return LandingCopy{
		Headline:    "Get Your Free " + magnet.Title,
		Subheadline: subheadline,
		Benefits: []string{
			"Save time with ready-to-use content",
			"Get actionable steps you can implement immediately",
			"Access expert insights and strategies",
		},
		CTA:          "Download Now",
		FormFields:   []string{"name", "email", "company"},
		ThankYouPage: "Thank you! Check your email for " + magnet.Title + ".",
	}
}

func FallbackEmailSequence(numEmails int) []EmailCopy {
	emails := make([]EmailCopy, 0, numEmails)
	for i := 0; i < numEmails; i++ {
		emails = append(emails, EmailCopy{
			SequenceNumber: i + 1,
			Subject:        defaultEmailSubject(i, numEmails),
			Body:           defaultEmailBody(i, numEmails),
		})
	}
	return emails
}

func defaultEmailSubject(index, total int) string {
	switch {
	case index == 0:
		return "Welcome! Here's Your Resource"
	case index == total-1:
		return "Ready for the Next Step?"
	default:
		return fmt.Sprintf("Tip %d for Better Results", index)
	}
}

func defaultEmailBody(index, total int) string {
	switch {
	case index == 0:
		return "Hi {name}, thanks for downloading! Here's your resource..."
	case index == total-1:
		return "Now that you've used the resource, are you ready to..."
	default:
		return "Here's an additional tip to help you..."
	}
}

// titleCase põe a primeira letra de cada palavra em maiúscula.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
