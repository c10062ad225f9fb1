package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/genieops/leadmagnet-api/internal/generation"
	"github.com/genieops/leadmagnet-api/internal/infra/queue"
)

func newEmailTemplateUseCase() (*EmailTemplateUseCase, *MockEmailTemplateRepository, *MockLeadMagnetRepository, *MockLeadRepository, *MockContentGenerator, *MockQueueProducer) {
	repo := new(MockEmailTemplateRepository)
	magnetRepo := new(MockLeadMagnetRepository)
	leadRepo := new(MockLeadRepository)
	generator := new(MockContentGenerator)
	producer := new(MockQueueProducer)
	uc := NewEmailTemplateUseCase(repo, magnetRepo, leadRepo, generator, producer)
	return uc, repo, magnetRepo, leadRepo, generator, producer
}

func TestGenerateSequence_ConflictWhenSequenceExists(t *testing.T) {
	uc, repo, magnetRepo, _, generator, _ := newEmailTemplateUseCase()

	magnetRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.LeadMagnet{ID: 1, Title: "Guide"}, nil)
	repo.On("ListByLeadMagnet", mock.Anything, int64(1)).Return([]*entity.EmailTemplate{
		{ID: 10, LeadMagnetID: 1, SequenceNumber: 1},
	}, nil)

	_, err := uc.GenerateSequence(context.Background(), 1, 3)

	assert.ErrorIs(t, err, entity.ErrAlreadyExists)
	generator.AssertNotCalled(t, "GenerateEmailSequence", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateSequence_PersistsWhatTheModelReturned(t *testing.T) {
	uc, repo, magnetRepo, _, generator, _ := newEmailTemplateUseCase()
	magnet := &entity.LeadMagnet{ID: 1, Title: "Guide"}

	magnetRepo.On("FindByID", mock.Anything, int64(1)).Return(magnet, nil)
	repo.On("ListByLeadMagnet", mock.Anything, int64(1)).Return([]*entity.EmailTemplate{}, nil)
	// pediu 5, modelo só produziu 3 válidos: persiste 3 renumerados
	generator.On("GenerateEmailSequence", mock.Anything, magnet, 5).Return([]generation.EmailCopy{
		{SequenceNumber: 1, Subject: "A", Body: "a"},
		{SequenceNumber: 2, Subject: "B", Body: "b"},
		{SequenceNumber: 3, Subject: "C", Body: "c"},
	})
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	templates, err := uc.GenerateSequence(context.Background(), 1, 5)

	require.NoError(t, err)
	require.Len(t, templates, 3)
	assert.Equal(t, 1, templates[0].SequenceNumber)
	assert.Equal(t, 3, templates[2].SequenceNumber)
	repo.AssertNumberOfCalls(t, "Create", 3)
}

func TestGenerateSequence_UnknownMagnet(t *testing.T) {
	uc, _, magnetRepo, _, _, _ := newEmailTemplateUseCase()

	magnetRepo.On("FindByID", mock.Anything, int64(9)).Return(nil, entity.ErrNotFound)

	_, err := uc.GenerateSequence(context.Background(), 9, 3)

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestSendToLeads_PublishesBulkJob(t *testing.T) {
	uc, repo, _, _, _, producer := newEmailTemplateUseCase()

	repo.On("FindByID", mock.Anything, int64(7)).Return(&entity.EmailTemplate{ID: 7, LeadMagnetID: 2}, nil)
	producer.On("PublishDelivery", mock.Anything, mock.MatchedBy(func(p queue.DeliveryPayload) bool {
		return p.Kind == queue.DeliveryTemplate && p.TemplateID == 7 && p.LeadMagnetID == 2
	})).Return(nil)

	output, err := uc.SendToLeads(context.Background(), 7)

	require.NoError(t, err)
	assert.True(t, output.Queued)
	producer.AssertExpectations(t)
}

func TestSendSequenceToLead_PublishesSequenceJob(t *testing.T) {
	uc, _, _, leadRepo, _, producer := newEmailTemplateUseCase()

	leadRepo.On("FindByID", mock.Anything, int64(4)).Return(&entity.Lead{ID: 4, LeadMagnetID: 2}, nil)
	producer.On("PublishDelivery", mock.Anything, mock.MatchedBy(func(p queue.DeliveryPayload) bool {
		return p.Kind == queue.DeliverySequence && p.LeadID == 4
	})).Return(nil)

	output, err := uc.SendSequenceToLead(context.Background(), 4)

	require.NoError(t, err)
	assert.True(t, output.Queued)
}
