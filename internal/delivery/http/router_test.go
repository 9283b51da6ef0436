package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-cms-backend/internal/delivery/http/handler"
	"clinic-cms-backend/internal/delivery/http/middleware"
	"clinic-cms-backend/internal/domain/entity"
	"clinic-cms-backend/internal/domain/repository"
	"clinic-cms-backend/internal/service"
	"clinic-cms-backend/internal/usecase"
	"clinic-cms-backend/pkg/session"
	"clinic-cms-backend/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	testCookieName = "clinic_session"
	validToken     = "valid-token"
	revokedToken   = "revoked-token"
)

type fakeVerifier struct {
	userID uuid.UUID
}

func (v *fakeVerifier) Verify(token string) (*session.Session, error) {
	switch token {
	case validToken:
		return &session.Session{UserID: v.userID, Email: "admin@clinic.example", TokenID: "jti-valid"}, nil
	case revokedToken:
		return &session.Session{UserID: v.userID, Email: "admin@clinic.example", TokenID: "jti-revoked"}, nil
	default:
		return nil, errors.New("invalid token")
	}
}

type fakeRevocationStore struct{}

func (fakeRevocationStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	return tokenID == "jti-revoked", nil
}

type memFAQRepo struct {
	faqs map[uuid.UUID]entity.FAQ
}

func (r *memFAQRepo) Create(db *gorm.DB, faq *entity.FAQ) error {
	r.faqs[faq.ID] = *faq
	return nil
}

func (r *memFAQRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.FAQ, error) {
	faq, ok := r.faqs[id]
	if !ok {
		return nil, nil
	}
	return &faq, nil
}

func (r *memFAQRepo) FindAll(db *gorm.DB) ([]entity.FAQ, error) {
	out := make([]entity.FAQ, 0, len(r.faqs))
	for _, faq := range r.faqs {
		out = append(out, faq)
	}
	return out, nil
}

func (r *memFAQRepo) Update(db *gorm.DB, faq *entity.FAQ) error {
	r.faqs[faq.ID] = *faq
	return nil
}

func (r *memFAQRepo) Delete(db *gorm.DB, id uuid.UUID) error {
	delete(r.faqs, id)
	return nil
}

func (r *memFAQRepo) Exists(db *gorm.DB, id uuid.UUID) (bool, error) {
	_, ok := r.faqs[id]
	return ok, nil
}

type memAuditRepo struct {
	logs []entity.AuditLog
}

func (r *memAuditRepo) Create(db *gorm.DB, log *entity.AuditLog) error {
	log.ID = int64(len(r.logs) + 1)
	r.logs = append(r.logs, *log)
	return nil
}

func (r *memAuditRepo) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	out := make([]entity.AuditLog, len(r.logs))
	copy(out, r.logs)
	return out, nil
}

var _ repository.FAQRepository = (*memFAQRepo)(nil)
var _ repository.AuditLogRepository = (*memAuditRepo)(nil)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Code    string          `json:"code"`
}

func newTestRouter(t *testing.T) (*httptest.Server, *memFAQRepo, *memAuditRepo) {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	faqRepo := &memFAQRepo{faqs: make(map[uuid.UUID]entity.FAQ)}
	auditRepo := &memAuditRepo{}
	audit := service.NewAuditService(log, auditRepo)
	customValidator := validator.NewValidator()

	faqUsecase := usecase.NewFAQUsecase(nil, log, faqRepo, audit)
	auditLogUsecase := usecase.NewAuditLogUsecase(nil, log, auditRepo)

	faqHandler := handler.NewFAQHandler(faqUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	authMiddleware := middleware.NewAuthMiddleware(&fakeVerifier{userID: uuid.New()}, fakeRevocationStore{}, testCookieName)
	corsMiddleware := middleware.NewCORSMiddleware()

	router := NewRouter(
		&handler.DoctorHandler{},
		&handler.PromoHandler{},
		&handler.FacilityPhotoHandler{},
		&handler.PartnerHandler{},
		faqHandler,
		&handler.TestimonialHandler{},
		&handler.ArticleHandler{},
		&handler.PolyClinicHandler{},
		&handler.ClinicSettingsHandler{},
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)

	server := httptest.NewServer(router.Setup())
	t.Cleanup(server.Close)

	return server, faqRepo, auditRepo
}

func doRequest(t *testing.T, method, url, token string, body interface{}) (*http.Response, apiEnvelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var envelope apiEnvelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return resp, envelope
}

func TestHealthCheck(t *testing.T) {
	server, _, _ := newTestRouter(t)

	resp, err := http.Get(server.URL + "/api/v1/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAdminRoutesRequireSession(t *testing.T) {
	server, _, _ := newTestRouter(t)

	resp, envelope := doRequest(t, http.MethodPost, server.URL+"/api/v1/admin/faqs", "", map[string]string{
		"question": "Q?",
		"answer":   "A.",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, envelope.Success)
	assert.Equal(t, "UNAUTHORIZED", envelope.Code)
}

func TestAdminRoutesRejectRevokedSession(t *testing.T) {
	server, _, _ := newTestRouter(t)

	resp, _ := doRequest(t, http.MethodGet, server.URL+"/api/v1/admin/faqs", revokedToken, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSessionCookieIsAccepted(t *testing.T) {
	server, _, _ := newTestRouter(t)

	req, err := http.NewRequest(http.MethodGet, server.URL+"/api/v1/admin/faqs", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: testCookieName, Value: validToken})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestFAQLifecycleOverHTTP(t *testing.T) {
	server, _, auditRepo := newTestRouter(t)
	base := server.URL + "/api/v1"

	// create
	resp, envelope := doRequest(t, http.MethodPost, base+"/admin/faqs", validToken, map[string]string{
		"question": "Do you accept BPJS?",
		"answer":   "Yes.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.True(t, envelope.Success)

	var created struct {
		ID       uuid.UUID `json:"id"`
		Question string    `json:"question"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &created))
	assert.Equal(t, "Do you accept BPJS?", created.Question)

	// public read without a session
	resp, envelope = doRequest(t, http.MethodGet, base+"/public/faqs", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &list))
	assert.Equal(t, 1, list.Total)

	// update
	resp, _ = doRequest(t, http.MethodPut, base+"/admin/faqs/"+created.ID.String(), validToken, map[string]string{
		"answer": "Yes, for all polyclinics.",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// delete
	resp, envelope = doRequest(t, http.MethodDelete, base+"/admin/faqs/"+created.ID.String(), validToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "FAQ deleted successfully", envelope.Message)

	// gone
	missing := uuid.New()
	resp, envelope = doRequest(t, http.MethodGet, base+"/admin/faqs/"+missing.String(), validToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
	assert.Equal(t, "FAQ with id "+missing.String()+" not found", envelope.Error)

	// mutations were audited
	logs, err := auditRepo.FindAll(nil)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, entity.AuditActionFAQCreate, logs[0].Action)
	assert.NotNil(t, logs[0].ActorID)
}

func TestPublicByIDRouteReturnsEnvelope(t *testing.T) {
	server, faqRepo, _ := newTestRouter(t)
	base := server.URL + "/api/v1"

	faq, err := entity.NewFAQ(uuid.New(), "Do you accept BPJS?", "Yes.")
	require.NoError(t, err)
	require.NoError(t, faqRepo.Create(nil, faq))

	resp, envelope := doRequest(t, http.MethodGet, base+"/public/faqs/"+faq.ID.String(), "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, envelope.Success)

	var got struct {
		Question string `json:"question"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &got))
	assert.Equal(t, "Do you accept BPJS?", got.Question)

	// unknown ids still go through the handler, not the router's bare 404
	missing := uuid.New()
	resp, envelope = doRequest(t, http.MethodGet, base+"/public/faqs/"+missing.String(), "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.False(t, envelope.Success)
	assert.Equal(t, "NOT_FOUND", envelope.Code)
}

func TestValidationFailureReturnsBadRequest(t *testing.T) {
	server, _, _ := newTestRouter(t)

	resp, envelope := doRequest(t, http.MethodPost, server.URL+"/api/v1/admin/faqs", validToken, map[string]string{
		"question": "Q?",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
	assert.Contains(t, envelope.Error, "answer is required")
}

func TestInvalidIDReturnsBadRequest(t *testing.T) {
	server, _, _ := newTestRouter(t)

	resp, envelope := doRequest(t, http.MethodGet, server.URL+"/api/v1/admin/faqs/not-a-uuid", validToken, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Code)
}

func TestAuditLogEndpoint(t *testing.T) {
	server, _, _ := newTestRouter(t)
	base := server.URL + "/api/v1"

	_, _ = doRequest(t, http.MethodPost, base+"/admin/faqs", validToken, map[string]string{
		"question": "Q?",
		"answer":   "A.",
	})

	resp, envelope := doRequest(t, http.MethodGet, base+"/admin/audit-logs", validToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(envelope.Data, &list))
	assert.Equal(t, 1, list.Total)
}
