package generation

import (
	"fmt"
	"strings"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

// Orçamento de tokens por tipo de geração. Conteúdos longos (template,
// report, sequência de emails) ganham mais espaço.
const (
	tokensIdeas      = 800
	tokensChecklist  = 800
	tokensTemplate   = 1000
	tokensCalculator = 800
	tokensReport     = 1000
	tokensLanding    = 600
	tokensEmails     = 1200
)

// IdeaContext é o contexto de negócio que alimenta a geração de ideias.
type IdeaContext struct {
	ICPProfile     string   `json:"icp_profile"`
	PainPoints     []string `json:"pain_points"`
	ContentTopics  []string `json:"content_topics"`
	OfferType      string   `json:"offer_type"`
	BrandVoice     string   `json:"brand_voice"`
	ConversionGoal string   `json:"conversion_goal"`
}

func ideasPrompt(ctx IdeaContext) string {
	return fmt.Sprintf(`You are a lead magnet expert. Generate 3 lead magnet ideas.

TARGET AUDIENCE: %s
THEIR PAIN POINTS: %s
CONTEXT: %s
BUSINESS TYPE: %s
BRAND VOICE: %s
GOAL: %s

For each idea, provide:
1. title - Catchy name (4-6 words)
2. type - One of: checklist, template, calculator, report
3. value_promise - Clear benefit (1 sentence)
4. conversion_score - 1-10 based on pain point match
5. format_recommendation - Specific format details

Format as JSON array. Example:
[
  {
    "title": "Client Getter Checklist",
    "type": "checklist",
    "value_promise": "Get 10 high-paying clients in 30 days",
    "conversion_score": 9,
    "format_recommendation": "PDF with 7 actionable steps"
  }
]

Now generate 3 ideas:`,
		ctx.ICPProfile,
		strings.Join(ctx.PainPoints, ", "),
		strings.Join(ctx.ContentTopics, ", "),
		ctx.OfferType,
		ctx.BrandVoice,
		ctx.ConversionGoal,
	)
}

func contentPrompt(kind entity.MagnetKind, title string, painPoints []string) (string, int) {
	switch kind {
	case entity.KindTemplate:
		return templatePrompt(title, painPoints), tokensTemplate
	case entity.KindCalculator:
		return calculatorPrompt(title, painPoints), tokensCalculator
	case entity.KindReport:
		return reportPrompt(title, painPoints), tokensReport
	default:
		return checklistPrompt(title, painPoints), tokensChecklist
	}
}

func checklistPrompt(title string, painPoints []string) string {
	return fmt.Sprintf(`Create a detailed checklist for: %s

Pain points to address: %s

Create 6-11 steps. Each step should have:
- step number
- step title (4-6 words)
- step description (1-2 sentences)
- optional time estimate

Format the checklist as JSON:
{
  "type": "checklist",
  "title": "%s",
  "steps": [
    {
      "step": 1,
      "title": "Define Your Target Audience",
      "description": "Identify who you're helping and what they need.",
      "time_estimate": "30 minutes"
    }
  ],
  "deliverable": "PDF Checklist"
}

Now generate the checklist:`, title, strings.Join(painPoints, ", "), title)
}

func templatePrompt(title string, painPoints []string) string {
	return fmt.Sprintf(`Create a reusable template for: %s

This helps with: %s

Create a template with:
1. Clear sections
2. Placeholders in [brackets] for customization
3. Example content
4. Instructions for use

Format as JSON:
{
  "type": "template",
  "title": "%s",
  "sections": ["Introduction", "Main Content", "Conclusion"],
  "content": "# [Your Name]'s %s\n\n## Introduction\n[Start with...]\n\n## Main Content\n[Add your content...]",
  "format": "Google Docs Template"
}

Now create the template:`, title, strings.Join(firstN(painPoints, 3), ", "), title, title)
}

func calculatorPrompt(title string, painPoints []string) string {
	return fmt.Sprintf(`Create a calculator for: %s

This calculates: %s

Create calculator with:
1. Input fields with labels and types
2. Clear formula or calculation logic
3. Output explanation
4. Example usage

Format as JSON:
{
  "type": "calculator",
  "title": "%s",
  "inputs": [
    {
      "name": "hourly_rate",
      "label": "Your Hourly Rate ($)",
      "type": "number",
      "placeholder": "e.g., 50"
    }
  ],
  "formula": "hours_saved * hourly_rate",
  "output": {
    "label": "Potential Savings",
    "unit": "$"
  },
  "example": "If you save 10 hours at $50/hour, you save $500"
}

Now create the calculator:`, title, strings.Join(firstN(painPoints, 2), ", "), title)
}

func reportPrompt(title string, painPoints []string) string {
	return fmt.Sprintf(`Create a report outline for: %s

This addresses: %s

Create report with:
1. Executive summary
2. 3-5 key findings
3. Data/statistics
4. Actionable recommendations
5. Conclusion

Format as JSON:
{
  "type": "report",
  "title": "%s",
  "sections": [
    {
      "title": "Executive Summary",
      "content": "Brief overview of findings..."
    }
  ],
  "pages": 10,
  "deliverable": "PDF Report"
}

Now create the report:`, title, strings.Join(firstN(painPoints, 3), ", "), title)
}

func landingPagePrompt(magnet *entity.LeadMagnet) string {
	promise := magnet.ValuePromise
	if promise == "" {
		promise = "Valuable resource"
	}
	return fmt.Sprintf(`Create landing page copy for lead magnet:

Title: %s
Type: %s
Value: %s

Generate:
1. Headline (attention-grabbing)
2. Subheadline (supporting text)
3. 3-4 benefit bullet points
4. Call-to-action button text
5. Form fields (beyond name/email)
6. Thank you page message

Format as JSON:
{
  "headline": "Get Your Free [Title]",
  "subheadline": "[Value promise explained]",
  "benefits": [
    "Benefit 1: [specific benefit]",
    "Benefit 2: [specific benefit]"
  ],
  "cta": "Download Now",
  "form_fields": ["name", "email", "company", "role"],
  "thank_you_page": "Thank you! Check your email for [title]."
}

Now create landing page copy:`, magnet.Title, magnet.Kind, promise)
}

func emailSequencePrompt(magnet *entity.LeadMagnet, numEmails int) string {
	promise := magnet.ValuePromise
	if promise == "" {
		promise = "Helps you achieve results"
	}
	return fmt.Sprintf(`Create a %d-email nurture sequence for:

Lead Magnet: %s
Value: %s

Sequence structure:
Email 1: Welcome + deliver lead magnet
Email 2-%d: Provide additional value, tips, insights
Email %d: Soft pitch for related offer

For each email provide:
- sequence_number (1-%d)
- subject (engaging, not spammy)
- body (friendly, helpful, personalized with {name})

Format as JSON array.

Now create the email sequence:`, numEmails, magnet.Title, promise, numEmails-1, numEmails, numEmails)
}

func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
