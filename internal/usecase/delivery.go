package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/genieops/leadmagnet-api/internal/infra/http/middleware"
	"github.com/genieops/leadmagnet-api/internal/infra/mail"
	"github.com/genieops/leadmagnet-api/internal/infra/queue"
)

// DeliveryUseCase processa os jobs da fila de entrega: é o handler que
// o worker do RabbitMQ invoca para cada mensagem.
type DeliveryUseCase struct {
	LeadRepo     entity.LeadRepository
	MagnetRepo   entity.LeadMagnetRepository
	TemplateRepo entity.EmailTemplateRepository
	Email        EmailService
	Renderer     AssetRenderer
}

func NewDeliveryUseCase(
	leadRepo entity.LeadRepository,
	magnetRepo entity.LeadMagnetRepository,
	templateRepo entity.EmailTemplateRepository,
	email EmailService,
	renderer AssetRenderer,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		LeadRepo:     leadRepo,
		MagnetRepo:   magnetRepo,
		TemplateRepo: templateRepo,
		Email:        email,
		Renderer:     renderer,
	}
}

func (uc *DeliveryUseCase) HandleDelivery(ctx context.Context, payload queue.DeliveryPayload) error {
	switch payload.Kind {
	case queue.DeliveryWelcome:
		return uc.deliverWelcome(ctx, payload.LeadID)
	case queue.DeliveryTemplate:
		return uc.deliverTemplate(ctx, payload.TemplateID)
	case queue.DeliverySequence:
		return uc.deliverSequence(ctx, payload.LeadID)
	default:
		return fmt.Errorf("tipo de entrega desconhecido: %q", payload.Kind)
	}
}

func (uc *DeliveryUseCase) deliverWelcome(ctx context.Context, leadID int64) error {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		return fmt.Errorf("lead %d: %w", leadID, err)
	}

	magnet, err := uc.MagnetRepo.FindByID(ctx, lead.LeadMagnetID)
	if err != nil {
		return fmt.Errorf("lead magnet %d: %w", lead.LeadMagnetID, err)
	}

	attachment := welcomeAttachment(uc.Renderer, magnet)
	if err := uc.Email.SendWelcome(lead, magnet, attachment); err != nil {
		middleware.RecordEmailDelivery("welcome", "failed")
		return err
	}
	middleware.RecordEmailDelivery("welcome", "sent")
	return nil
}

// deliverTemplate manda o template para todos os leads do magnet dele.
// Falhas individuais só entram na contagem, nunca param o lote.
func (uc *DeliveryUseCase) deliverTemplate(ctx context.Context, templateID int64) error {
	tpl, err := uc.TemplateRepo.FindByID(ctx, templateID)
	if err != nil {
		return fmt.Errorf("template %d: %w", templateID, err)
	}

	leads, err := uc.LeadRepo.ListByLeadMagnet(ctx, tpl.LeadMagnetID, 0, 10000)
	if err != nil {
		return fmt.Errorf("leads do magnet %d: %w", tpl.LeadMagnetID, err)
	}

	result := uc.Email.SendBulk(leads, tpl)
	for i := 0; i < result.Success; i++ {
		middleware.RecordEmailDelivery("nurture", "sent")
	}
	for i := 0; i < result.Failed; i++ {
		middleware.RecordEmailDelivery("nurture", "failed")
	}
	log.Printf("📬 Template %d: %d enviados, %d falharam", tpl.ID, result.Success, result.Failed)
	return nil
}

func (uc *DeliveryUseCase) deliverSequence(ctx context.Context, leadID int64) error {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		return fmt.Errorf("lead %d: %w", leadID, err)
	}

	sequence, err := uc.TemplateRepo.ListByLeadMagnet(ctx, lead.LeadMagnetID)
	if err != nil {
		return fmt.Errorf("sequência do magnet %d: %w", lead.LeadMagnetID, err)
	}

	sent, failed := 0, 0
	for _, tpl := range sequence {
		if err := uc.Email.SendNurture(lead, tpl); err != nil {
			log.Printf("❌ Email %d da sequência falhou para %s: %v", tpl.SequenceNumber, lead.Email, err)
			middleware.RecordEmailDelivery("nurture", "failed")
			failed++
			continue
		}
		middleware.RecordEmailDelivery("nurture", "sent")
		sent++
	}
	log.Printf("📬 Sequência para %s: %d enviados, %d falharam", lead.Email, sent, failed)
	return nil
}

// welcomeAttachment renderiza o asset do magnet para anexar no welcome.
// Magnet ainda sem conteúdo gerado manda o email sem anexo.
func welcomeAttachment(renderer AssetRenderer, magnet *entity.LeadMagnet) *mail.Attachment {
	if magnet.Content == nil {
		return nil
	}
	asset, err := renderer.Render(magnet)
	if err != nil {
		log.Printf("⚠️ Falha ao renderizar asset do magnet %d: %v", magnet.ID, err)
		return nil
	}
	return &mail.Attachment{Filename: asset.Filename, Data: asset.Data}
}
