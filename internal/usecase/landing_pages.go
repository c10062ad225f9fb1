package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/genieops/leadmagnet-api/internal/infra/http/middleware"
)

type LandingPageUseCase struct {
	Repo       entity.LandingPageRepository
	MagnetRepo entity.LeadMagnetRepository
	Generator  ContentGenerator
}

func NewLandingPageUseCase(
	repo entity.LandingPageRepository,
	magnetRepo entity.LeadMagnetRepository,
	generator ContentGenerator,
) *LandingPageUseCase {
	return &LandingPageUseCase{
		Repo:       repo,
		MagnetRepo: magnetRepo,
		Generator:  generator,
	}
}

func (uc *LandingPageUseCase) Create(ctx context.Context, input CreateLandingPageInput) (*entity.LandingPage, error) {
	if errs := ValidateCreateLandingPageInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: validationMessage(errs)}
	}

	if _, err := uc.MagnetRepo.FindByID(ctx, input.LeadMagnetID); err != nil {
		return nil, err
	}

	page := &entity.LandingPage{
		LeadMagnetID: input.LeadMagnetID,
		Headline:     input.Headline,
		Value:        input.Value,
		CTA:          input.CTA,
		FormFields:   input.FormFields,
		ThankYouPage: input.ThankYouPage,
	}
	if err := uc.Repo.Create(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// Generate cria a landing page com copy gerado pelo modelo. Diferente da
// regeneração de conteúdo, aqui magnet com página existente é conflito.
func (uc *LandingPageUseCase) Generate(ctx context.Context, leadMagnetID int64) (*entity.LandingPage, error) {
	magnet, err := uc.MagnetRepo.FindByID(ctx, leadMagnetID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.Repo.FindByLeadMagnet(ctx, leadMagnetID); err == nil {
		return nil, entity.ErrAlreadyExists
	} else if !errors.Is(err, entity.ErrNotFound) {
		return nil, err
	}

	middleware.RecordGeneration("landing_page")
	generated := uc.Generator.GenerateLandingCopy(ctx, magnet)

	page := &entity.LandingPage{
		LeadMagnetID: magnet.ID,
		Headline:     generated.Headline,
		Value:        generated.Subheadline,
		CTA:          generated.CTA,
		FormFields:   generated.FormFields,
		ThankYouPage: generated.ThankYouPage,
	}
	if err := uc.Repo.Create(ctx, page); err != nil {
		return nil, err
	}

	log.Printf("✅ Landing page gerada para o lead magnet %d", magnet.ID)
	return page, nil
}

func (uc *LandingPageUseCase) FindByID(ctx context.Context, id int64) (*entity.LandingPage, error) {
	return uc.Repo.FindByID(ctx, id)
}

func (uc *LandingPageUseCase) FindByLeadMagnet(ctx context.Context, leadMagnetID int64) (*entity.LandingPage, error) {
	return uc.Repo.FindByLeadMagnet(ctx, leadMagnetID)
}

func (uc *LandingPageUseCase) List(ctx context.Context, offset, limit int) ([]*entity.LandingPage, error) {
	return uc.Repo.List(ctx, offset, limit)
}

func (uc *LandingPageUseCase) Update(ctx context.Context, id int64, input CreateLandingPageInput) (*entity.LandingPage, error) {
	if errs := ValidateCreateLandingPageInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: validationMessage(errs)}
	}

	page, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	page.Headline = input.Headline
	page.Value = input.Value
	page.CTA = input.CTA
	page.FormFields = input.FormFields
	page.ThankYouPage = input.ThankYouPage

	if err := uc.Repo.Update(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

func (uc *LandingPageUseCase) Delete(ctx context.Context, id int64) error {
	return uc.Repo.Delete(ctx, id)
}
