package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/gla-tools/internal/domain"
	"github.com/osse101/gla-tools/internal/leveling"
	"github.com/osse101/gla-tools/mocks"
)

func TestHandleExperienceBetween(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setupMock      func(*mocks.MockLevelingService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name:  "Success",
			query: "?start=1&end=70",
			setupMock: func(m *mocks.MockLevelingService) {
				m.On("ExperienceBetween", mock.Anything, 1, 70).Return(int64(5243374), nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				var resp ExperienceResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, int64(5243374), resp.Experience)
				assert.Equal(t, 70, resp.EndLevel)
			},
		},
		{
			name:           "Missing end",
			query:          "?start=1",
			setupMock:      func(m *mocks.MockLevelingService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Missing end query parameter")
			},
		},
		{
			name:           "Non-numeric start",
			query:          "?start=um&end=70",
			setupMock:      func(m *mocks.MockLevelingService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, "Invalid start query parameter")
			},
		},
		{
			name:  "Range rejected",
			query: "?start=70&end=1",
			setupMock: func(m *mocks.MockLevelingService) {
				m.On("ExperienceBetween", mock.Anything, 70, 1).
					Return(int64(0), fmt.Errorf("%w: 70 -> 1", domain.ErrInvalidRange))
			},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidRangeError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockLevelingService(t)
			tt.setupMock(mockSvc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/xp/between"+tt.query, nil)
			rec := httptest.NewRecorder()

			HandleExperienceBetween(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
		})
	}
}

func TestHandlePlanPotions(t *testing.T) {
	plan := &domain.PotionPlan{
		StartLevel: 1,
		EndLevel:   70,
		Tier:       domain.PotionTierDiamante,
		Experience: 5243374,
		Potions: []domain.PotionCount{
			{Label: "grande", UnitValue: 50000, Count: 104},
			{Label: "média", UnitValue: 5000, Count: 8},
			{Label: "pequena", UnitValue: 500, Count: 6},
		},
		Covered: 5243000,
	}

	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockLevelingService)
		expectedStatus int
		verifyBody     func(*testing.T, string)
	}{
		{
			name: "Success with lowercase tier",
			body: `{"start_level":1,"end_level":70,"tier":"diamante"}`,
			setupMock: func(m *mocks.MockLevelingService) {
				m.On("PlanPotions", mock.Anything, 1, 70, domain.PotionTierDiamante).Return(plan, nil)
			},
			expectedStatus: http.StatusOK,
			verifyBody: func(t *testing.T, body string) {
				var got domain.PotionPlan
				require.NoError(t, json.Unmarshal([]byte(body), &got))
				assert.Equal(t, *plan, got)
			},
		},
		{
			name:           "Unknown tier fails validation",
			body:           `{"start_level":1,"end_level":70,"tier":"Platina"}`,
			setupMock:      func(m *mocks.MockLevelingService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				var resp ValidationErrorResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, ErrMsgUnknownTierError, resp.Fields["tier"])
			},
		},
		{
			name: "Zero start level is an invalid range",
			body: `{"start_level":0,"end_level":70,"tier":"Ouro"}`,
			setupMock: func(m *mocks.MockLevelingService) {
				m.On("PlanPotions", mock.Anything, 0, 70, domain.PotionTierOuro).
					Return(nil, fmt.Errorf("%w: 0 -> 70", domain.ErrInvalidRange))
			},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal([]byte(body), &resp))
				assert.Equal(t, ErrMsgInvalidRangeError, resp.Error)
			},
		},
		{
			name: "Missing levels are an invalid range",
			body: `{"tier":"Ouro"}`,
			setupMock: func(m *mocks.MockLevelingService) {
				m.On("PlanPotions", mock.Anything, 0, 0, domain.PotionTierOuro).
					Return(nil, fmt.Errorf("%w: 0 -> 0", domain.ErrInvalidRange))
			},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidRangeError)
			},
		},
		{
			name:           "Malformed JSON",
			body:           `{"start_level":`,
			setupMock:      func(m *mocks.MockLevelingService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgInvalidRequest)
			},
		},
		{
			name:           "Unknown field",
			body:           `{"start_level":1,"end_level":2,"tier":"Ouro","potions":3}`,
			setupMock:      func(m *mocks.MockLevelingService) {},
			expectedStatus: http.StatusBadRequest,
			verifyBody:     func(t *testing.T, body string) {},
		},
		{
			name: "Service error",
			body: `{"start_level":1,"end_level":70,"tier":"Ouro"}`,
			setupMock: func(m *mocks.MockLevelingService) {
				m.On("PlanPotions", mock.Anything, 1, 70, domain.PotionTierOuro).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			verifyBody: func(t *testing.T, body string) {
				assert.Contains(t, body, ErrMsgGenericServerError)
				assert.NotContains(t, body, "boom")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockLevelingService(t)
			tt.setupMock(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/xp/plan", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			HandlePlanPotions(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.verifyBody(t, rec.Body.String())
		})
	}
}

func TestHandleGetTiers(t *testing.T) {
	mockSvc := mocks.NewMockLevelingService(t)
	mockSvc.On("Tiers", mock.Anything).Return([]leveling.TierInfo{
		{Tier: domain.PotionTierBronze, Denominations: []leveling.Denomination{{Label: "grande", UnitValue: 300000}}},
	})

	rec := httptest.NewRecorder()
	HandleGetTiers(mockSvc)(rec, httptest.NewRequest(http.MethodGet, "/api/v1/xp/tiers", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `"tier":"Bronze"`)
}
