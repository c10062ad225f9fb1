package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/genieops/leadmagnet-api/internal/generation"
	"github.com/genieops/leadmagnet-api/internal/infra/assets"
	"github.com/genieops/leadmagnet-api/internal/infra/mail"
	"github.com/genieops/leadmagnet-api/internal/infra/queue"
)

// MockLeadMagnetRepository
type MockLeadMagnetRepository struct {
	mock.Mock
}

func (m *MockLeadMagnetRepository) Create(ctx context.Context, lm *entity.LeadMagnet) error {
	args := m.Called(ctx, lm)
	return args.Error(0)
}

func (m *MockLeadMagnetRepository) FindByID(ctx context.Context, id int64) (*entity.LeadMagnet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadMagnet), args.Error(1)
}

func (m *MockLeadMagnetRepository) List(ctx context.Context, offset, limit int) ([]*entity.LeadMagnet, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LeadMagnet), args.Error(1)
}

func (m *MockLeadMagnetRepository) Update(ctx context.Context, lm *entity.LeadMagnet) error {
	args := m.Called(ctx, lm)
	return args.Error(0)
}

func (m *MockLeadMagnetRepository) UpdateContent(ctx context.Context, id int64, content *entity.Content) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *MockLeadMagnetRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) List(ctx context.Context, offset, limit int) ([]*entity.Lead, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) ListByLeadMagnet(ctx context.Context, leadMagnetID int64, offset, limit int) ([]*entity.Lead, error) {
	args := m.Called(ctx, leadMagnetID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) Update(ctx context.Context, l *entity.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLandingPageRepository
type MockLandingPageRepository struct {
	mock.Mock
}

func (m *MockLandingPageRepository) Create(ctx context.Context, p *entity.LandingPage) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockLandingPageRepository) FindByID(ctx context.Context, id int64) (*entity.LandingPage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LandingPage), args.Error(1)
}

func (m *MockLandingPageRepository) FindByLeadMagnet(ctx context.Context, leadMagnetID int64) (*entity.LandingPage, error) {
	args := m.Called(ctx, leadMagnetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LandingPage), args.Error(1)
}

func (m *MockLandingPageRepository) List(ctx context.Context, offset, limit int) ([]*entity.LandingPage, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LandingPage), args.Error(1)
}

func (m *MockLandingPageRepository) Update(ctx context.Context, p *entity.LandingPage) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockLandingPageRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEmailTemplateRepository
type MockEmailTemplateRepository struct {
	mock.Mock
}

func (m *MockEmailTemplateRepository) Create(ctx context.Context, t *entity.EmailTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockEmailTemplateRepository) FindByID(ctx context.Context, id int64) (*entity.EmailTemplate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.EmailTemplate), args.Error(1)
}

func (m *MockEmailTemplateRepository) List(ctx context.Context, offset, limit int) ([]*entity.EmailTemplate, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.EmailTemplate), args.Error(1)
}

func (m *MockEmailTemplateRepository) ListByLeadMagnet(ctx context.Context, leadMagnetID int64) ([]*entity.EmailTemplate, error) {
	args := m.Called(ctx, leadMagnetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.EmailTemplate), args.Error(1)
}

func (m *MockEmailTemplateRepository) Update(ctx context.Context, t *entity.EmailTemplate) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockEmailTemplateRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUpgradeOfferRepository
type MockUpgradeOfferRepository struct {
	mock.Mock
}

func (m *MockUpgradeOfferRepository) Create(ctx context.Context, o *entity.UpgradeOffer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockUpgradeOfferRepository) FindByID(ctx context.Context, id int64) (*entity.UpgradeOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UpgradeOffer), args.Error(1)
}

func (m *MockUpgradeOfferRepository) ListByLeadMagnet(ctx context.Context, leadMagnetID int64) ([]*entity.UpgradeOffer, error) {
	args := m.Called(ctx, leadMagnetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.UpgradeOffer), args.Error(1)
}

func (m *MockUpgradeOfferRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockContentGenerator
type MockContentGenerator struct {
	mock.Mock
}

func (m *MockContentGenerator) GenerateIdeas(ctx context.Context, ideaCtx generation.IdeaContext) []generation.Idea {
	args := m.Called(ctx, ideaCtx)
	return args.Get(0).([]generation.Idea)
}

func (m *MockContentGenerator) GenerateContent(ctx context.Context, magnet *entity.LeadMagnet, painPoints []string) *entity.Content {
	args := m.Called(ctx, magnet, painPoints)
	return args.Get(0).(*entity.Content)
}

func (m *MockContentGenerator) GenerateLandingCopy(ctx context.Context, magnet *entity.LeadMagnet) generation.LandingCopy {
	args := m.Called(ctx, magnet)
	return args.Get(0).(generation.LandingCopy)
}

func (m *MockContentGenerator) GenerateEmailSequence(ctx context.Context, magnet *entity.LeadMagnet, numEmails int) []generation.EmailCopy {
	args := m.Called(ctx, magnet, numEmails)
	return args.Get(0).([]generation.EmailCopy)
}

// MockQueueProducer
type MockQueueProducer struct {
	mock.Mock
}

func (m *MockQueueProducer) PublishDelivery(ctx context.Context, payload queue.DeliveryPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendWelcome(lead *entity.Lead, magnet *entity.LeadMagnet, attachment *mail.Attachment) error {
	args := m.Called(lead, magnet, attachment)
	return args.Error(0)
}

func (m *MockEmailService) SendNurture(lead *entity.Lead, tpl *entity.EmailTemplate) error {
	args := m.Called(lead, tpl)
	return args.Error(0)
}

func (m *MockEmailService) SendUpgradeOffer(lead *entity.Lead, offer *entity.UpgradeOffer) error {
	args := m.Called(lead, offer)
	return args.Error(0)
}

func (m *MockEmailService) SendBulk(leads []*entity.Lead, tpl *entity.EmailTemplate) mail.BulkResult {
	args := m.Called(leads, tpl)
	return args.Get(0).(mail.BulkResult)
}

// MockAssetRenderer
type MockAssetRenderer struct {
	mock.Mock
}

func (m *MockAssetRenderer) Render(magnet *entity.LeadMagnet) (*assets.Asset, error) {
	args := m.Called(magnet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assets.Asset), args.Error(1)
}
