package usecase

import (
	"context"
	"log"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

type UpgradeOfferUseCase struct {
	Repo     entity.UpgradeOfferRepository
	LeadRepo entity.LeadRepository
	Email    EmailService
}

func NewUpgradeOfferUseCase(
	repo entity.UpgradeOfferRepository,
	leadRepo entity.LeadRepository,
	email EmailService,
) *UpgradeOfferUseCase {
	return &UpgradeOfferUseCase{
		Repo:     repo,
		LeadRepo: leadRepo,
		Email:    email,
	}
}

func (uc *UpgradeOfferUseCase) Create(ctx context.Context, input CreateUpgradeOfferInput) (*entity.UpgradeOffer, error) {
	if errs := ValidateCreateUpgradeOfferInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: validationMessage(errs)}
	}

	offer := &entity.UpgradeOffer{
		LeadMagnetID: input.LeadMagnetID,
		Title:        input.Title,
		Description:  input.Description,
		Link:         input.Link,
	}
	if err := uc.Repo.Create(ctx, offer); err != nil {
		return nil, err
	}
	return offer, nil
}

func (uc *UpgradeOfferUseCase) FindByID(ctx context.Context, id int64) (*entity.UpgradeOffer, error) {
	return uc.Repo.FindByID(ctx, id)
}

func (uc *UpgradeOfferUseCase) ListByLeadMagnet(ctx context.Context, leadMagnetID int64) ([]*entity.UpgradeOffer, error) {
	return uc.Repo.ListByLeadMagnet(ctx, leadMagnetID)
}

func (uc *UpgradeOfferUseCase) Delete(ctx context.Context, id int64) error {
	return uc.Repo.Delete(ctx, id)
}

// SendToLead envia a oferta de upgrade por email para um lead, na hora.
func (uc *UpgradeOfferUseCase) SendToLead(ctx context.Context, offerID, leadID int64) (*SendOutput, error) {
	offer, err := uc.Repo.FindByID(ctx, offerID)
	if err != nil {
		return nil, err
	}

	lead, err := uc.LeadRepo.FindByID(ctx, leadID)
	if err != nil {
		return nil, err
	}

	if err := uc.Email.SendUpgradeOffer(lead, offer); err != nil {
		log.Printf("❌ Falha no envio da oferta %d para %s: %v", offer.ID, lead.Email, err)
		return &SendOutput{Sent: false, Msg: "upgrade offer email failed: " + err.Error()}, nil
	}

	return &SendOutput{Sent: true, Msg: "upgrade offer email sent"}, nil
}
