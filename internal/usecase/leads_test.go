package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/genieops/leadmagnet-api/internal/infra/queue"
)

func newLeadUseCase() (*LeadUseCase, *MockLeadRepository, *MockLeadMagnetRepository, *MockQueueProducer, *MockEmailService, *MockAssetRenderer) {
	leadRepo := new(MockLeadRepository)
	magnetRepo := new(MockLeadMagnetRepository)
	producer := new(MockQueueProducer)
	email := new(MockEmailService)
	renderer := new(MockAssetRenderer)
	uc := NewLeadUseCase(leadRepo, magnetRepo, producer, email, renderer)
	return uc, leadRepo, magnetRepo, producer, email, renderer
}

func TestLeadCreate_QueuesWelcome(t *testing.T) {
	uc, leadRepo, magnetRepo, producer, _, _ := newLeadUseCase()

	magnetRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.LeadMagnet{ID: 1, Title: "Guide", Kind: entity.KindChecklist}, nil)
	leadRepo.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.Lead) bool {
		return l.Email == "ana@example.com"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Lead).ID = 42
	}).Return(nil)
	producer.On("PublishDelivery", mock.Anything, mock.MatchedBy(func(p queue.DeliveryPayload) bool {
		return p.Kind == queue.DeliveryWelcome && p.LeadID == 42
	})).Return(nil)

	output, err := uc.Create(context.Background(), CreateLeadInput{
		Name: "Ana", Email: "ana@example.com", LeadMagnetID: 1,
	}, true)

	require.NoError(t, err)
	assert.True(t, output.WelcomeQueued)
	assert.Equal(t, int64(42), output.Lead.ID)
	producer.AssertExpectations(t)
}

func TestLeadCreate_SendWelcomeFalseSkipsQueue(t *testing.T) {
	uc, leadRepo, magnetRepo, producer, _, _ := newLeadUseCase()

	magnetRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.LeadMagnet{ID: 1}, nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	output, err := uc.Create(context.Background(), CreateLeadInput{
		Name: "Ana", Email: "ana@example.com", LeadMagnetID: 1,
	}, false)

	require.NoError(t, err)
	assert.False(t, output.WelcomeQueued)
	producer.AssertNotCalled(t, "PublishDelivery", mock.Anything, mock.Anything)
}

func TestLeadCreate_DuplicateEmailConflict(t *testing.T) {
	uc, leadRepo, magnetRepo, _, _, _ := newLeadUseCase()

	magnetRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.LeadMagnet{ID: 1}, nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	_, err := uc.Create(context.Background(), CreateLeadInput{
		Name: "Ana", Email: "ana@example.com", LeadMagnetID: 1,
	}, true)

	assert.ErrorIs(t, err, entity.ErrEmailAlreadyExists)
}

func TestLeadCreate_UnknownMagnet(t *testing.T) {
	uc, _, magnetRepo, _, _, _ := newLeadUseCase()

	magnetRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, entity.ErrNotFound)

	_, err := uc.Create(context.Background(), CreateLeadInput{
		Name: "Ana", Email: "ana@example.com", LeadMagnetID: 99,
	}, true)

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestLeadCreate_ValidationErrors(t *testing.T) {
	uc, _, _, _, _, _ := newLeadUseCase()

	_, err := uc.Create(context.Background(), CreateLeadInput{Email: "bad"}, true)

	assert.True(t, IsDomainError(err))
}

func TestLeadCreate_QueueFailureDoesNotUndoLead(t *testing.T) {
	uc, leadRepo, magnetRepo, producer, _, _ := newLeadUseCase()

	magnetRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.LeadMagnet{ID: 1}, nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	producer.On("PublishDelivery", mock.Anything, mock.Anything).Return(errors.New("amqp down"))

	output, err := uc.Create(context.Background(), CreateLeadInput{
		Name: "Ana", Email: "ana@example.com", LeadMagnetID: 1,
	}, true)

	require.NoError(t, err)
	assert.False(t, output.WelcomeQueued)
	leadRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSendWelcomeEmail_ReportsFailureWithoutError(t *testing.T) {
	uc, leadRepo, magnetRepo, _, email, renderer := newLeadUseCase()

	lead := &entity.Lead{ID: 5, Email: "ana@example.com", LeadMagnetID: 1}
	magnet := &entity.LeadMagnet{ID: 1, Title: "Guide", Kind: entity.KindChecklist}

	leadRepo.On("FindByID", mock.Anything, int64(5)).Return(lead, nil)
	magnetRepo.On("FindByID", mock.Anything, int64(1)).Return(magnet, nil)
	email.On("SendWelcome", lead, magnet, mock.Anything).Return(errors.New("smtp refused"))

	output, err := uc.SendWelcomeEmail(context.Background(), 5)

	require.NoError(t, err)
	assert.False(t, output.Sent)
	renderer.AssertNotCalled(t, "Render", mock.Anything) // magnet sem conteúdo não renderiza
}
