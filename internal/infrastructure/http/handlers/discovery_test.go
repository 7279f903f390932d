package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alchemorsel/discovery/internal/domain/discovery"
	"github.com/alchemorsel/discovery/internal/ports/inbound"
	apperrors "github.com/alchemorsel/discovery/pkg/errors"
)

// fakeService is a scripted DiscoveryService for handler tests.
type fakeService struct {
	view        *inbound.DiscoveryView
	updateErr   error
	generateErr error
	lastUpdate  inbound.CriteriaUpdate
}

func (f *fakeService) UpdateCriteria(ctx context.Context, update inbound.CriteriaUpdate) (*inbound.DiscoveryView, error) {
	f.lastUpdate = update
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.view, nil
}

func (f *fakeService) CurrentResults(ctx context.Context) *inbound.DiscoveryView {
	return f.view
}

func (f *fakeService) Criteria() discovery.FilterCriteria {
	return f.view.Criteria
}

func (f *fakeService) IsGenerating(lane inbound.Lane) bool { return false }

func (f *fakeService) GenerateStandard(ctx context.Context) error {
	return f.generateErr
}

func emptyView() *inbound.DiscoveryView {
	return &inbound.DiscoveryView{
		Results: discovery.SourcedResults{},
	}
}

func TestGetDiscovery(t *testing.T) {
	h := NewDiscoveryHandlers(&fakeService{view: emptyView()}, zap.NewNop())

	rec := httptest.NewRecorder()
	h.GetDiscovery(rec, httptest.NewRequest(http.MethodGet, "/api/v1/discovery", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
}

func TestUpdateCriteria(t *testing.T) {
	t.Run("valid payload reaches the service", func(t *testing.T) {
		svc := &fakeService{view: emptyView()}
		h := NewDiscoveryHandlers(svc, zap.NewNop())

		body := strings.NewReader(`{"cuisine":"italian","max_total_time":20}`)
		rec := httptest.NewRecorder()
		h.UpdateCriteria(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/discovery/criteria", body))

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.lastUpdate.Cuisine)
		assert.Equal(t, "italian", string(*svc.lastUpdate.Cuisine))
		require.NotNil(t, svc.lastUpdate.MaxTotalTime)
		assert.Equal(t, 20, *svc.lastUpdate.MaxTotalTime)
	})

	t.Run("malformed JSON is a bad request", func(t *testing.T) {
		h := NewDiscoveryHandlers(&fakeService{view: emptyView()}, zap.NewNop())

		rec := httptest.NewRecorder()
		h.UpdateCriteria(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/discovery/criteria", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Equal(t, string(apperrors.CodeBadRequest), resp.Error)
	})
}

func TestGenerateStandard(t *testing.T) {
	t.Run("accepted when idle", func(t *testing.T) {
		h := NewDiscoveryHandlers(&fakeService{view: emptyView()}, zap.NewNop())

		rec := httptest.NewRecorder()
		h.GenerateStandard(rec, httptest.NewRequest(http.MethodPost, "/api/v1/discovery/generate", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
	})

	t.Run("conflict while a request is in flight", func(t *testing.T) {
		svc := &fakeService{
			view:        emptyView(),
			generateErr: apperrors.NewGenerationInProgressError("standard"),
		}
		h := NewDiscoveryHandlers(svc, zap.NewNop())

		rec := httptest.NewRecorder()
		h.GenerateStandard(rec, httptest.NewRequest(http.MethodPost, "/api/v1/discovery/generate", nil))

		assert.Equal(t, http.StatusConflict, rec.Code)

		var resp APIResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, string(apperrors.CodeGenerationInProgress), resp.Error)
	})
}
