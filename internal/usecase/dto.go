package usecase

import "github.com/genieops/leadmagnet-api/internal/entity"

type GenerateIdeasInput struct {
	ICPProfile     string   `json:"icp_profile"`
	PainPoints     []string `json:"pain_points"`
	ContentTopics  []string `json:"content_topics"`
	OfferType      string   `json:"offer_type"`
	BrandVoice     string   `json:"brand_voice"`
	ConversionGoal string   `json:"conversion_goal"`
}

type CreateLeadMagnetInput struct {
	Title           string `json:"title"`
	Kind            string `json:"type"`
	ValuePromise    string `json:"value_promise"`
	ConversionScore int    `json:"conversion_score"`
}

type GenerateContentInput struct {
	PainPoints []string `json:"pain_points"`
}

type CreateLeadInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	LeadMagnetID int64  `json:"lead_magnet_id"`
}

type CreateLandingPageInput struct {
	LeadMagnetID int64    `json:"lead_magnet_id"`
	Headline     string   `json:"headline"`
	Value        string   `json:"value"`
	CTA          string   `json:"cta"`
	FormFields   []string `json:"form_fields"`
	ThankYouPage string   `json:"thank_you_page"`
}

type CreateEmailTemplateInput struct {
	LeadMagnetID   int64  `json:"lead_magnet_id"`
	SequenceNumber int    `json:"sequence_number"`
	Subject        string `json:"subject"`
	Body           string `json:"body"`
}

type CreateUpgradeOfferInput struct {
	LeadMagnetID int64  `json:"lead_magnet_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Link         string `json:"link"`
}

// QueuedOutput responde chamadas que só enfileiram a entrega.
type QueuedOutput struct {
	Queued    bool   `json:"queued"`
	MessageID string `json:"message_id,omitempty"`
	Msg       string `json:"msg,omitempty"`
}

// SendOutput responde envios síncronos de email.
type SendOutput struct {
	Sent bool   `json:"sent"`
	Msg  string `json:"msg,omitempty"`
}

// CreateLeadOutput devolve o lead criado junto da flag de boas-vindas.
type CreateLeadOutput struct {
	Lead          *entity.Lead `json:"lead"`
	WelcomeQueued bool         `json:"welcome_queued"`
}
