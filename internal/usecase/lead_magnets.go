package usecase

import (
	"context"
	"log"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/genieops/leadmagnet-api/internal/generation"
	"github.com/genieops/leadmagnet-api/internal/infra/assets"
	"github.com/genieops/leadmagnet-api/internal/infra/http/middleware"
)

type LeadMagnetUseCase struct {
	Repo      entity.LeadMagnetRepository
	Generator ContentGenerator
	Renderer  AssetRenderer
}

func NewLeadMagnetUseCase(
	repo entity.LeadMagnetRepository,
	generator ContentGenerator,
	renderer AssetRenderer,
) *LeadMagnetUseCase {
	return &LeadMagnetUseCase{
		Repo:      repo,
		Generator: generator,
		Renderer:  renderer,
	}
}

// GenerateIdeas devolve até 3 ideias de lead magnet para o contexto de
// negócio informado. Nunca falha por erro do modelo: o serviço de
// geração resolve para o fallback determinístico.
func (uc *LeadMagnetUseCase) GenerateIdeas(ctx context.Context, input GenerateIdeasInput) []generation.Idea {
	middleware.RecordGeneration("ideas")
	return uc.Generator.GenerateIdeas(ctx, generation.IdeaContext{
		ICPProfile:     input.ICPProfile,
		PainPoints:     input.PainPoints,
		ContentTopics:  input.ContentTopics,
		OfferType:      input.OfferType,
		BrandVoice:     input.BrandVoice,
		ConversionGoal: input.ConversionGoal,
	})
}

func (uc *LeadMagnetUseCase) Create(ctx context.Context, input CreateLeadMagnetInput) (*entity.LeadMagnet, error) {
	if errs := ValidateCreateLeadMagnetInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: validationMessage(errs)}
	}

	magnet, err := entity.NewLeadMagnet(input.Title, entity.MagnetKind(input.Kind), input.ValuePromise, input.ConversionScore)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	if err := uc.Repo.Create(ctx, magnet); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist lead magnet: " + err.Error()}
	}
	return magnet, nil
}

func (uc *LeadMagnetUseCase) FindByID(ctx context.Context, id int64) (*entity.LeadMagnet, error) {
	return uc.Repo.FindByID(ctx, id)
}

func (uc *LeadMagnetUseCase) List(ctx context.Context, offset, limit int) ([]*entity.LeadMagnet, error) {
	return uc.Repo.List(ctx, offset, limit)
}

func (uc *LeadMagnetUseCase) Update(ctx context.Context, id int64, input CreateLeadMagnetInput) (*entity.LeadMagnet, error) {
	if errs := ValidateCreateLeadMagnetInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: validationMessage(errs)}
	}

	magnet, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	magnet.Title = input.Title
	magnet.Kind = entity.MagnetKind(input.Kind)
	magnet.ValuePromise = input.ValuePromise
	magnet.ConversionScore = input.ConversionScore

	if err := uc.Repo.Update(ctx, magnet); err != nil {
		return nil, err
	}
	return magnet, nil
}

// Delete remove o lead magnet; leads, landing page, sequência e ofertas
// associadas caem junto pelo cascade do banco.
func (uc *LeadMagnetUseCase) Delete(ctx context.Context, id int64) error {
	return uc.Repo.Delete(ctx, id)
}

// GenerateContent gera (ou regenera) o conteúdo do magnet conforme o
// kind. Regeneração sobrescreve o conteúdo anterior sem conflito.
func (uc *LeadMagnetUseCase) GenerateContent(ctx context.Context, id int64, input GenerateContentInput) (*entity.LeadMagnet, error) {
	magnet, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	middleware.RecordGeneration("content")
	content := uc.Generator.GenerateContent(ctx, magnet, input.PainPoints)

	if err := uc.Repo.UpdateContent(ctx, magnet.ID, content); err != nil {
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: "failed to persist content: " + err.Error()}
	}

	magnet.Content = content
	log.Printf("✅ Conteúdo %s gerado para o lead magnet %d", magnet.Kind, magnet.ID)
	return magnet, nil
}

// Download renderiza o asset final do magnet (PDF ou HTML interativo).
func (uc *LeadMagnetUseCase) Download(ctx context.Context, id int64) (*assets.Asset, error) {
	magnet, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if magnet.Content == nil {
		return nil, &DomainError{Code: "CONTENT_NOT_GENERATED", Message: "lead magnet has no generated content yet"}
	}
	return uc.Renderer.Render(magnet)
}
