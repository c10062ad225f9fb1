package usecase

import (
	"context"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/genieops/leadmagnet-api/internal/generation"
	"github.com/genieops/leadmagnet-api/internal/infra/assets"
	"github.com/genieops/leadmagnet-api/internal/infra/mail"
	"github.com/genieops/leadmagnet-api/internal/infra/queue"
)

// ContentGenerator é o contrato com o serviço de geração. A implementação
// real é generation.Service; os testes usam mock.
type ContentGenerator interface {
	GenerateIdeas(ctx context.Context, ideaCtx generation.IdeaContext) []generation.Idea
	GenerateContent(ctx context.Context, magnet *entity.LeadMagnet, painPoints []string) *entity.Content
	GenerateLandingCopy(ctx context.Context, magnet *entity.LeadMagnet) generation.LandingCopy
	GenerateEmailSequence(ctx context.Context, magnet *entity.LeadMagnet, numEmails int) []generation.EmailCopy
}

type AssetRenderer interface {
	Render(magnet *entity.LeadMagnet) (*assets.Asset, error)
}

type EmailService interface {
	SendWelcome(lead *entity.Lead, magnet *entity.LeadMagnet, attachment *mail.Attachment) error
	SendNurture(lead *entity.Lead, tpl *entity.EmailTemplate) error
	SendUpgradeOffer(lead *entity.Lead, offer *entity.UpgradeOffer) error
	SendBulk(leads []*entity.Lead, tpl *entity.EmailTemplate) mail.BulkResult
}

type QueueProducerInterface interface {
	PublishDelivery(ctx context.Context, payload queue.DeliveryPayload) error
}
