package usecase

import (
	"context"
	"log"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/genieops/leadmagnet-api/internal/infra/http/middleware"
	"github.com/genieops/leadmagnet-api/internal/infra/queue"
)

type EmailTemplateUseCase struct {
	Repo       entity.EmailTemplateRepository
	MagnetRepo entity.LeadMagnetRepository
	LeadRepo   entity.LeadRepository
	Generator  ContentGenerator
	Queue      QueueProducerInterface
}

func NewEmailTemplateUseCase(
	repo entity.EmailTemplateRepository,
	magnetRepo entity.LeadMagnetRepository,
	leadRepo entity.LeadRepository,
	generator ContentGenerator,
	producer QueueProducerInterface,
) *EmailTemplateUseCase {
	return &EmailTemplateUseCase{
		Repo:       repo,
		MagnetRepo: magnetRepo,
		LeadRepo:   leadRepo,
		Generator:  generator,
		Queue:      producer,
	}
}

func (uc *EmailTemplateUseCase) Create(ctx context.Context, input CreateEmailTemplateInput) (*entity.EmailTemplate, error) {
	if errs := ValidateCreateEmailTemplateInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: validationMessage(errs)}
	}

	if _, err := uc.MagnetRepo.FindByID(ctx, input.LeadMagnetID); err != nil {
		return nil, err
	}

	tpl := &entity.EmailTemplate{
		LeadMagnetID:   input.LeadMagnetID,
		SequenceNumber: input.SequenceNumber,
		Subject:        input.Subject,
		Body:           input.Body,
	}
	if err := uc.Repo.Create(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

// GenerateSequence gera a sequência de nutrição inteira de uma vez.
// Magnet que já tem sequência é conflito: regenerar exige apagar antes.
// Se o modelo devolver menos emails válidos que o pedido, persiste o
// que veio, renumerado.
func (uc *EmailTemplateUseCase) GenerateSequence(ctx context.Context, leadMagnetID int64, numEmails int) ([]*entity.EmailTemplate, error) {
	if numEmails < 1 {
		numEmails = 3
	}

	magnet, err := uc.MagnetRepo.FindByID(ctx, leadMagnetID)
	if err != nil {
		return nil, err
	}

	existing, err := uc.Repo.ListByLeadMagnet(ctx, leadMagnetID)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, entity.ErrAlreadyExists
	}

	middleware.RecordGeneration("email_sequence")
	sequence := uc.Generator.GenerateEmailSequence(ctx, magnet, numEmails)

	templates := make([]*entity.EmailTemplate, 0, len(sequence))
	for _, email := range sequence {
		tpl := &entity.EmailTemplate{
			LeadMagnetID:   magnet.ID,
			SequenceNumber: email.SequenceNumber,
			Subject:        email.Subject,
			Body:           email.Body,
		}
		if err := uc.Repo.Create(ctx, tpl); err != nil {
			return nil, err
		}
		templates = append(templates, tpl)
	}

	log.Printf("✅ Sequência de %d emails gerada para o lead magnet %d", len(templates), magnet.ID)
	return templates, nil
}

func (uc *EmailTemplateUseCase) FindByID(ctx context.Context, id int64) (*entity.EmailTemplate, error) {
	return uc.Repo.FindByID(ctx, id)
}

func (uc *EmailTemplateUseCase) List(ctx context.Context, offset, limit int) ([]*entity.EmailTemplate, error) {
	return uc.Repo.List(ctx, offset, limit)
}

func (uc *EmailTemplateUseCase) ListByLeadMagnet(ctx context.Context, leadMagnetID int64) ([]*entity.EmailTemplate, error) {
	return uc.Repo.ListByLeadMagnet(ctx, leadMagnetID)
}

func (uc *EmailTemplateUseCase) Update(ctx context.Context, id int64, input CreateEmailTemplateInput) (*entity.EmailTemplate, error) {
	if errs := ValidateCreateEmailTemplateInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: validationMessage(errs)}
	}

	tpl, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	tpl.SequenceNumber = input.SequenceNumber
	tpl.Subject = input.Subject
	tpl.Body = input.Body

	if err := uc.Repo.Update(ctx, tpl); err != nil {
		return nil, err
	}
	return tpl, nil
}

func (uc *EmailTemplateUseCase) Delete(ctx context.Context, id int64) error {
	return uc.Repo.Delete(ctx, id)
}

// SendToLeads enfileira o envio em massa do template para todos os
// leads do magnet. A resposta volta antes de qualquer SMTP acontecer.
func (uc *EmailTemplateUseCase) SendToLeads(ctx context.Context, templateID int64) (*QueuedOutput, error) {
	tpl, err := uc.Repo.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	payload := queue.DeliveryPayload{
		Kind:         queue.DeliveryTemplate,
		TemplateID:   tpl.ID,
		LeadMagnetID: tpl.LeadMagnetID,
	}
	if err := uc.Queue.PublishDelivery(ctx, payload); err != nil {
		return nil, &TechnicalError{Code: "QUEUE_ERROR", Message: "failed to queue bulk send: " + err.Error()}
	}

	return &QueuedOutput{Queued: true, Msg: "bulk send queued"}, nil
}

// SendSequenceToLead enfileira o envio da sequência completa do magnet
// do lead para o próprio lead.
func (uc *EmailTemplateUseCase) SendSequenceToLead(ctx context.Context, leadID int64) (*QueuedOutput, error) {
	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	payload := queue.DeliveryPayload{
		Kind:         queue.DeliverySequence,
		LeadID:       lead.ID,
		LeadMagnetID: lead.LeadMagnetID,
	}
	if err := uc.Queue.PublishDelivery(ctx, payload); err != nil {
		return nil, &TechnicalError{Code: "QUEUE_ERROR", Message: "failed to queue sequence send: " + err.Error()}
	}

	return &QueuedOutput{Queued: true, Msg: "sequence send queued"}, nil
}
