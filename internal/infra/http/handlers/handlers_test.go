package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/genieops/leadmagnet-api/internal/entity"
	"github.com/genieops/leadmagnet-api/internal/generation"
	"github.com/genieops/leadmagnet-api/internal/infra/assets"
	"github.com/genieops/leadmagnet-api/internal/infra/mail"
	"github.com/genieops/leadmagnet-api/internal/infra/queue"
	"github.com/genieops/leadmagnet-api/internal/usecase"
)

// MockLeadMagnetRepo
type MockLeadMagnetRepo struct {
	mock.Mock
}

func (m *MockLeadMagnetRepo) Create(ctx context.Context, lm *entity.LeadMagnet) error {
	args := m.Called(ctx, lm)
	return args.Error(0)
}

func (m *MockLeadMagnetRepo) FindByID(ctx context.Context, id int64) (*entity.LeadMagnet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.LeadMagnet), args.Error(1)
}

func (m *MockLeadMagnetRepo) List(ctx context.Context, offset, limit int) ([]*entity.LeadMagnet, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.LeadMagnet), args.Error(1)
}

func (m *MockLeadMagnetRepo) Update(ctx context.Context, lm *entity.LeadMagnet) error {
	args := m.Called(ctx, lm)
	return args.Error(0)
}

func (m *MockLeadMagnetRepo) UpdateContent(ctx context.Context, id int64, content *entity.Content) error {
	args := m.Called(ctx, id, content)
	return args.Error(0)
}

func (m *MockLeadMagnetRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockLeadRepo
type MockLeadRepo struct {
	mock.Mock
}

func (m *MockLeadRepo) Create(ctx context.Context, l *entity.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepo) FindByID(ctx context.Context, id int64) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepo) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepo) List(ctx context.Context, offset, limit int) ([]*entity.Lead, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepo) ListByLeadMagnet(ctx context.Context, leadMagnetID int64, offset, limit int) ([]*entity.Lead, error) {
	args := m.Called(ctx, leadMagnetID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Lead), args.Error(1)
}

func (m *MockLeadRepo) Update(ctx context.Context, l *entity.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLeadRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockGenerator
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateIdeas(ctx context.Context, ideaCtx generation.IdeaContext) []generation.Idea {
	args := m.Called(ctx, ideaCtx)
	return args.Get(0).([]generation.Idea)
}

func (m *MockGenerator) GenerateContent(ctx context.Context, magnet *entity.LeadMagnet, painPoints []string) *entity.Content {
	args := m.Called(ctx, magnet, painPoints)
	return args.Get(0).(*entity.Content)
}

func (m *MockGenerator) GenerateLandingCopy(ctx context.Context, magnet *entity.LeadMagnet) generation.LandingCopy {
	args := m.Called(ctx, magnet)
	return args.Get(0).(generation.LandingCopy)
}

func (m *MockGenerator) GenerateEmailSequence(ctx context.Context, magnet *entity.LeadMagnet, numEmails int) []generation.EmailCopy {
	args := m.Called(ctx, magnet, numEmails)
	return args.Get(0).([]generation.EmailCopy)
}

// MockRenderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(magnet *entity.LeadMagnet) (*assets.Asset, error) {
	args := m.Called(magnet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assets.Asset), args.Error(1)
}

// MockProducer
type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) PublishDelivery(ctx context.Context, payload queue.DeliveryPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

// MockEmailSvc
type MockEmailSvc struct {
	mock.Mock
}

func (m *MockEmailSvc) SendWelcome(lead *entity.Lead, magnet *entity.LeadMagnet, attachment *mail.Attachment) error {
	args := m.Called(lead, magnet, attachment)
	return args.Error(0)
}

func (m *MockEmailSvc) SendNurture(lead *entity.Lead, tpl *entity.EmailTemplate) error {
	args := m.Called(lead, tpl)
	return args.Error(0)
}

func (m *MockEmailSvc) SendUpgradeOffer(lead *entity.Lead, offer *entity.UpgradeOffer) error {
	args := m.Called(lead, offer)
	return args.Error(0)
}

func (m *MockEmailSvc) SendBulk(leads []*entity.Lead, tpl *entity.EmailTemplate) mail.BulkResult {
	args := m.Called(leads, tpl)
	return args.Get(0).(mail.BulkResult)
}

// ============ TESTES DO LEAD MAGNET HANDLER ============

func leadMagnetRouter(repo *MockLeadMagnetRepo, generator *MockGenerator, renderer *MockRenderer) *chi.Mux {
	h := NewLeadMagnetHandler(usecase.NewLeadMagnetUseCase(repo, generator, renderer))

	r := chi.NewRouter()
	r.Post("/lead-magnets/", h.Create)
	r.Get("/lead-magnets/{id}", h.Get)
	r.Get("/lead-magnets/{id}/download", h.Download)
	return r
}

func TestCreateLeadMagnetHandlerSuccess(t *testing.T) {
	repo := new(MockLeadMagnetRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	router := leadMagnetRouter(repo, new(MockGenerator), new(MockRenderer))

	body, _ := json.Marshal(map[string]any{
		"title":            "SaaS Onboarding Checklist",
		"type":             "checklist",
		"value_promise":    "Cut churn in half",
		"conversion_score": 8,
	})
	req := httptest.NewRequest(http.MethodPost, "/lead-magnets/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.LeadMagnet
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "SaaS Onboarding Checklist", created.Title)
	assert.Equal(t, entity.KindChecklist, created.Kind)
}

func TestCreateLeadMagnetHandlerInvalidKind(t *testing.T) {
	router := leadMagnetRouter(new(MockLeadMagnetRepo), new(MockGenerator), new(MockRenderer))

	body, _ := json.Marshal(map[string]any{
		"title":            "Webinar",
		"type":             "webinar",
		"value_promise":    "x",
		"conversion_score": 5,
	})
	req := httptest.NewRequest(http.MethodPost, "/lead-magnets/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetLeadMagnetHandlerNotFound(t *testing.T) {
	repo := new(MockLeadMagnetRepo)
	repo.On("FindByID", mock.Anything, int64(99)).Return(nil, entity.ErrNotFound)
	router := leadMagnetRouter(repo, new(MockGenerator), new(MockRenderer))

	req := httptest.NewRequest(http.MethodGet, "/lead-magnets/99", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetLeadMagnetHandlerInvalidID(t *testing.T) {
	router := leadMagnetRouter(new(MockLeadMagnetRepo), new(MockGenerator), new(MockRenderer))

	req := httptest.NewRequest(http.MethodGet, "/lead-magnets/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadHandlerServesAttachment(t *testing.T) {
	repo := new(MockLeadMagnetRepo)
	renderer := new(MockRenderer)

	magnet := &entity.LeadMagnet{
		ID: 1, Title: "My Guide", Kind: entity.KindChecklist,
		Content: entity.NewChecklistContent(entity.ChecklistContent{
			Steps: []entity.ChecklistStep{{Step: 1, Title: "S"}},
		}),
	}
	repo.On("FindByID", mock.Anything, int64(1)).Return(magnet, nil)
	renderer.On("Render", magnet).Return(&assets.Asset{
		Filename:  "My_Guide.pdf",
		MediaType: "application/pdf",
		Data:      []byte("%PDF-1.4"),
	}, nil)
	router := leadMagnetRouter(repo, new(MockGenerator), renderer)

	req := httptest.NewRequest(http.MethodGet, "/lead-magnets/1/download", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="My_Guide.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))
}

func TestDownloadHandlerWithoutContent(t *testing.T) {
	repo := new(MockLeadMagnetRepo)
	repo.On("FindByID", mock.Anything, int64(1)).Return(&entity.LeadMagnet{ID: 1, Kind: entity.KindChecklist}, nil)
	router := leadMagnetRouter(repo, new(MockGenerator), new(MockRenderer))

	req := httptest.NewRequest(http.MethodGet, "/lead-magnets/1/download", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ============ TESTES DO LEAD HANDLER ============

func leadRouter(leadRepo *MockLeadRepo, magnetRepo *MockLeadMagnetRepo, producer *MockProducer) *chi.Mux {
	uc := usecase.NewLeadUseCase(leadRepo, magnetRepo, producer, new(MockEmailSvc), new(MockRenderer))
	h := NewLeadHandler(uc)

	r := chi.NewRouter()
	r.Post("/leads/", h.Create)
	return r
}

func TestCreateLeadHandlerSuccess(t *testing.T) {
	leadRepo := new(MockLeadRepo)
	magnetRepo := new(MockLeadMagnetRepo)
	producer := new(MockProducer)

	magnetRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.LeadMagnet{ID: 1, Title: "Guide"}, nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Lead).ID = 42
	}).Return(nil)
	producer.On("PublishDelivery", mock.Anything, mock.Anything).Return(nil)

	router := leadRouter(leadRepo, magnetRepo, producer)

	body, _ := json.Marshal(map[string]any{
		"name":           "Ana",
		"email":          "ana@example.com",
		"lead_magnet_id": 1,
	})
	req := httptest.NewRequest(http.MethodPost, "/leads/", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var output usecase.CreateLeadOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &output))
	assert.True(t, output.WelcomeQueued)
	assert.Equal(t, int64(42), output.Lead.ID)
}

func TestCreateLeadHandlerDuplicateEmail(t *testing.T) {
	leadRepo := new(MockLeadRepo)
	magnetRepo := new(MockLeadMagnetRepo)

	magnetRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.LeadMagnet{ID: 1}, nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	router := leadRouter(leadRepo, magnetRepo, new(MockProducer))

	body, _ := json.Marshal(map[string]any{
		"name":           "Ana",
		"email":          "ana@example.com",
		"lead_magnet_id": 1,
	})
	req := httptest.NewRequest(http.MethodPost, "/leads/?send_welcome=false", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCreateLeadHandlerRateLimit(t *testing.T) {
	leadRepo := new(MockLeadRepo)
	magnetRepo := new(MockLeadMagnetRepo)

	magnetRepo.On("FindByID", mock.Anything, int64(1)).Return(&entity.LeadMagnet{ID: 1}, nil)
	leadRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	router := leadRouter(leadRepo, magnetRepo, new(MockProducer))

	body, _ := json.Marshal(map[string]any{
		"name":           "Ana",
		"email":          "ana@example.com",
		"lead_magnet_id": 1,
	})

	var last int
	for i := 0; i < 11; i++ {
		req := httptest.NewRequest(http.MethodPost, "/leads/?send_welcome=false", bytes.NewReader(body))
		req.Header.Set("X-Forwarded-For", "203.0.113.7")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		last = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, last)
}
