package usecase

import (
	"context"
	"log"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/genieops/leadmagnet-api/internal/infra/queue"
)

type LeadUseCase struct {
	Repo       entity.LeadRepository
	MagnetRepo entity.LeadMagnetRepository
	Queue      QueueProducerInterface
	Email      EmailService
	Renderer   AssetRenderer
}

func NewLeadUseCase(
	repo entity.LeadRepository,
	magnetRepo entity.LeadMagnetRepository,
	producer QueueProducerInterface,
	email EmailService,
	renderer AssetRenderer,
) *LeadUseCase {
	return &LeadUseCase{
		Repo:       repo,
		MagnetRepo: magnetRepo,
		Queue:      producer,
		Email:      email,
		Renderer:   renderer,
	}
}

// Create captura um lead. Email duplicado é conflito; magnet inexistente
// é not-found. Com sendWelcome o email de boas-vindas entra na fila de
// entrega e a resposta não espera o SMTP — falha de envio nunca desfaz
// o cadastro.
func (uc *LeadUseCase) Create(ctx context.Context, input CreateLeadInput, sendWelcome bool) (*CreateLeadOutput, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: validationMessage(errs)}
	}

	if _, err := uc.MagnetRepo.FindByID(ctx, input.LeadMagnetID); err != nil {
		return nil, err
	}

	lead, err := entity.NewLead(input.Name, input.Email, input.LeadMagnetID)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, err
	}

	queued := false
	if sendWelcome {
		payload := queue.DeliveryPayload{
			Kind:         queue.DeliveryWelcome,
			LeadID:       lead.ID,
			LeadMagnetID: lead.LeadMagnetID,
		}
		if err := uc.Queue.PublishDelivery(ctx, payload); err != nil {
			// Lead fica criado mesmo sem conseguir enfileirar o welcome.
			log.Printf("⚠️ Falha ao enfileirar welcome do lead %d: %v", lead.ID, err)
		} else {
			queued = true
		}
	}

	log.Printf("✅ Lead %d capturado para o magnet %d (welcome na fila: %t)", lead.ID, lead.LeadMagnetID, queued)
	return &CreateLeadOutput{Lead: lead, WelcomeQueued: queued}, nil
}

func (uc *LeadUseCase) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	return uc.Repo.FindByID(ctx, id)
}

func (uc *LeadUseCase) List(ctx context.Context, offset, limit int) ([]*entity.Lead, error) {
	return uc.Repo.List(ctx, offset, limit)
}

func (uc *LeadUseCase) ListByLeadMagnet(ctx context.Context, leadMagnetID int64, offset, limit int) ([]*entity.Lead, error) {
	return uc.Repo.ListByLeadMagnet(ctx, leadMagnetID, offset, limit)
}

func (uc *LeadUseCase) Update(ctx context.Context, id int64, input CreateLeadInput) (*entity.Lead, error) {
	if errs := ValidateCreateLeadInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: validationMessage(errs)}
	}

	lead, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	lead.Name = input.Name
	lead.Email = input.Email
	lead.LeadMagnetID = input.LeadMagnetID

	if err := uc.Repo.Update(ctx, lead); err != nil {
		return nil, err
	}
	return lead, nil
}

func (uc *LeadUseCase) Delete(ctx context.Context, id int64) error {
	return uc.Repo.Delete(ctx, id)
}

// SendWelcomeEmail reenvia o email de boas-vindas na hora, com o asset
// renderizado em anexo. Diferente do fluxo de captura, aqui o chamador
// espera o resultado do SMTP.
func (uc *LeadUseCase) SendWelcomeEmail(ctx context.Context, leadID int64) (*SendOutput, error) {
	lead, err := uc.Repo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	magnet, err := uc.MagnetRepo.FindByID(ctx, lead.LeadMagnetID)
	if err != nil {
		return nil, err
	}

	attachment := welcomeAttachment(uc.Renderer, magnet)
	if err := uc.Email.SendWelcome(lead, magnet, attachment); err != nil {
		log.Printf("❌ Falha no welcome síncrono para %s: %v", lead.Email, err)
		return &SendOutput{Sent: false, Msg: "welcome email failed: " + err.Error()}, nil
	}

	return &SendOutput{Sent: true, Msg: "welcome email sent"}, nil
}
