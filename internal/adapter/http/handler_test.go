package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/http/response"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/usecase"
)

// mockPlanner is a mock implementation of ItineraryPlanner for testing.
type mockPlanner struct {
	planFunc func(ctx context.Context, tables *domain.Tables, opts usecase.PlanOptions) (*domain.PlanResult, error)
	calls    int
}

func (m *mockPlanner) Plan(ctx context.Context, tables *domain.Tables, opts usecase.PlanOptions) (*domain.PlanResult, error) {
	m.calls++
	if m.planFunc != nil {
		return m.planFunc(ctx, tables, opts)
	}
	return samplePlan(), nil
}

// samplePlan is the result of the Vienna, Rome, Paris fixture.
func samplePlan() *domain.PlanResult {
	set := domain.NewTripSet(2)
	set.Put(7, domain.Trip{Price: 340, Deviation: 0, Legs: []domain.Day{1, 4, 7}})
	set.Put(9, domain.Trip{Price: 430, Deviation: 2, Legs: []domain.Day{1, 5, 9}})

	return &domain.PlanResult{
		Origin:      "Vienna",
		Best:        domain.Trip{Price: 340, Deviation: 0, Legs: []domain.Day{1, 4, 7}},
		Itineraries: set,
		Metadata: domain.PlanMetadata{
			OneOpt:     25,
			Departures: 2,
			Stages: []domain.StageSummary{
				{Destination: "Rome", ArrivalDays: 3, Survivors: 3},
				{Destination: "Paris", ArrivalDays: 2, Survivors: 2},
			},
			TotalItineraries: 2,
			SearchTimeMs:     3,
		},
	}
}

const validBody = `{
	"origin": "Vienna",
	"destinations": [
		{"name": "Vienna", "cost_per_night": 0, "departures": {"0": {"cost": 100}, "1": {"cost": 80}}},
		{"name": "Rome", "cost_per_night": 20, "departures": {"3": {"cost": 50}, "4": {"cost": 40}, "5": {"cost": 60}}},
		{"name": "Paris", "cost_per_night": 30, "departures": {"7": {"cost": 70}, "9": {"cost": 90}}}
	],
	"days": [
		{"name": "Vienna", "minimum": 0, "optimum": 0, "maximum": 0},
		{"name": "Rome", "minimum": 2, "optimum": 3, "maximum": 4},
		{"name": "Paris", "minimum": 2, "optimum": 3, "maximum": 4}
	]
}`

// setupTestHandler creates a test Echo instance with all routes registered.
func setupTestHandler(p usecase.ItineraryPlanner, source domain.TableSource) *echo.Echo {
	e := echo.New()
	RegisterRoutes(e, NewItineraryHandler(p, source, time.Second))
	return e
}

// makeRequest is a helper to make test requests.
func makeRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorDetail {
	t.Helper()
	var detail response.ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

// =====================================================
// POST /api/v1/itineraries/search
// =====================================================

func TestPlanItinerary_Success(t *testing.T) {
	var gotTables *domain.Tables
	var gotOpts usecase.PlanOptions
	planner := &mockPlanner{
		planFunc: func(ctx context.Context, tables *domain.Tables, opts usecase.PlanOptions) (*domain.PlanResult, error) {
			gotTables = tables
			gotOpts = opts
			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline, "search should run under the handler timeout")
			return samplePlan(), nil
		},
	}
	e := setupTestHandler(planner, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/search", validBody)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"origin": "Vienna",
		"best": {"arrival": "7", "price": 340, "deviation": 0, "legs": ["1", "4", "7"]},
		"itineraries": [
			{"arrival": "7", "price": 340, "deviation": 0, "legs": ["1", "4", "7"]},
			{"arrival": "9", "price": 430, "deviation": 2, "legs": ["1", "5", "9"]}
		],
		"metadata": {
			"source": "request",
			"one_opt": 25,
			"departures": 2,
			"stages": [
				{"destination": "Rome", "arrival_days": 3, "survivors": 3},
				{"destination": "Paris", "arrival_days": 2, "survivors": 2}
			],
			"total_itineraries": 2,
			"search_time_ms": 3
		}
	}`, rec.Body.String())

	require.NotNil(t, gotTables)
	require.Len(t, gotTables.Destinations, 3)
	assert.Equal(t, "Rome", gotTables.Destinations[1].Name)
	assert.Equal(t, 3, gotTables.Destinations[1].Departures.Len())
	require.Len(t, gotTables.Stays, 3)
	assert.Equal(t, usecase.PlanOptions{Origin: "Vienna"}, gotOpts)
}

func TestPlanItinerary_PassesOverrides(t *testing.T) {
	var gotOpts usecase.PlanOptions
	planner := &mockPlanner{
		planFunc: func(ctx context.Context, tables *domain.Tables, opts usecase.PlanOptions) (*domain.PlanResult, error) {
			gotOpts = opts
			return samplePlan(), nil
		},
	}
	e := setupTestHandler(planner, nil)

	body := strings.Replace(validBody, `"origin": "Vienna",`, `"origin": " Rome ", "oneOpt": 40,`, 1)
	rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/search", body)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, usecase.PlanOptions{Origin: "Rome", OneOpt: 40}, gotOpts)
}

func TestPlanItinerary_InvalidJSON(t *testing.T) {
	planner := &mockPlanner{}
	e := setupTestHandler(planner, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/search", `{"destinations": [`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeErrorBody(t, rec)
	assert.Equal(t, response.CodeInvalidRequest, detail.Code)
	assert.Equal(t, response.MsgInvalidRequestBody, detail.Message)
	assert.Zero(t, planner.calls)
}

func TestPlanItinerary_BadDayMarkers(t *testing.T) {
	tests := []struct {
		name       string
		departures string
		wantMsg    string
	}{
		{"non-integer marker", `{"tuesday": {"cost": 1}}`, `invalid day marker "tuesday"`},
		{"fractional marker", `{"3.5": {"cost": 1}}`, `invalid day marker "3.5"`},
		{"duplicate marker", `{"3": {"cost": 1}, "3": {"cost": 2}}`, "duplicate day"},
		{"padded marker", `{"03": {"cost": 1}}`, `invalid day marker "03": write it as "3"`},
		{"fare without cost", `{"3": {}}`, "day 3: cost is required"},
		{"misspelled cost", `{"3": {"price": 50}}`, "day 3: cost is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &mockPlanner{}
			e := setupTestHandler(planner, nil)

			body := fmt.Sprintf(`{"destinations":[{"name":"Rome","cost_per_night":1,"departures":%s}],"days":[{"name":"Rome","minimum":0,"optimum":0,"maximum":0}]}`, tt.departures)
			rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/search", body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			detail := decodeErrorBody(t, rec)
			assert.Equal(t, response.CodeValidationError, detail.Code)
			assert.Contains(t, detail.Message, tt.wantMsg)
			assert.NotContains(t, detail.Message, "code=400")
			assert.Zero(t, planner.calls)
		})
	}
}

func TestPlanItinerary_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantField string
	}{
		{
			name:      "empty body",
			body:      `{}`,
			wantField: "destinations",
		},
		{
			name:      "missing days",
			body:      `{"destinations":[{"name":"Vienna","cost_per_night":0,"departures":{"0":{"cost":1}}}]}`,
			wantField: "days",
		},
		{
			name:      "non-positive oneOpt",
			body:      strings.Replace(validBody, `"origin": "Vienna",`, `"oneOpt": 0,`, 1),
			wantField: "oneOpt",
		},
		{
			name:      "negative nightly cost",
			body:      strings.Replace(validBody, `"cost_per_night": 20`, `"cost_per_night": -20`, 1),
			wantField: "destinations[1].cost_per_night",
		},
		{
			name:      "inverted stay limits",
			body:      strings.Replace(validBody, `"minimum": 2, "optimum": 3, "maximum": 4}`, `"minimum": 4, "optimum": 3, "maximum": 2}`, 1),
			wantField: "days[1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &mockPlanner{}
			e := setupTestHandler(planner, nil)

			rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/search", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			detail := decodeErrorBody(t, rec)
			assert.Equal(t, response.CodeValidationError, detail.Code)
			assert.Equal(t, response.MsgValidationFailed, detail.Message)
			assert.Contains(t, detail.Details, tt.wantField)
			assert.Zero(t, planner.calls)
		})
	}
}

func TestPlanItinerary_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "country lookup failure",
			err:        fmt.Errorf("build catalog: %w", domain.NewLookupError("Prague")),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   response.CodeCountryNotFound,
		},
		{
			name:       "origin missing",
			err:        fmt.Errorf("build catalog: %w: %q", domain.ErrOriginNotFound, "Berlin"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   response.CodeOriginNotFound,
		},
		{
			name:       "no feasible itinerary",
			err:        domain.NewStageError(2, "Paris"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   response.CodeNoFeasibleItinerary,
		},
		{
			name:       "invalid data",
			err:        domain.WrapInvalidData("country %q: cost_per_night -1 is negative", "Rome"),
			wantStatus: http.StatusBadRequest,
			wantCode:   response.CodeValidationError,
		},
		{
			name:       "deadline exceeded",
			err:        fmt.Errorf("sweep %q: %w", "Rome", context.DeadlineExceeded),
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "cancelled",
			err:        context.Canceled,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   response.CodeTimeout,
		},
		{
			name:       "unexpected error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   response.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			planner := &mockPlanner{
				planFunc: func(ctx context.Context, tables *domain.Tables, opts usecase.PlanOptions) (*domain.PlanResult, error) {
					return nil, tt.err
				},
			}
			e := setupTestHandler(planner, nil)

			rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/search", validBody)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, decodeErrorBody(t, rec).Code)
		})
	}
}

func TestPlanItinerary_MessagesNameTheCountry(t *testing.T) {
	planner := &mockPlanner{
		planFunc: func(ctx context.Context, tables *domain.Tables, opts usecase.PlanOptions) (*domain.PlanResult, error) {
			return nil, domain.NewLookupError("Prague")
		},
	}
	e := setupTestHandler(planner, nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/search", validBody)

	assert.Contains(t, decodeErrorBody(t, rec).Message, `"Prague"`)
}

func TestPlanItinerary_Timeout(t *testing.T) {
	planner := &mockPlanner{
		planFunc: func(ctx context.Context, tables *domain.Tables, opts usecase.PlanOptions) (*domain.PlanResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	e := echo.New()
	RegisterRoutes(e, NewItineraryHandler(planner, nil, 10*time.Millisecond))

	rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/search", validBody)

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
	assert.Equal(t, response.MsgTimeout, decodeErrorBody(t, rec).Message)
}

func TestPlanItinerary_WithRealPlanner(t *testing.T) {
	e := setupTestHandler(usecase.NewItineraryPlanner(nil), nil)

	rec := makeRequest(e, http.MethodPost, "/api/v1/itineraries/search", validBody)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp PlanResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ItineraryDTO{Arrival: "7", Price: 340, Deviation: 0, Legs: []string{"1", "4", "7"}}, resp.Best)
	assert.Len(t, resp.Itineraries, 2)
}

// =====================================================
// GET /api/v1/itineraries
// =====================================================

func TestPlanConfigured_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	tables := &domain.Tables{Destinations: []domain.DestinationRecord{{Name: "Vienna"}}}

	source := domain.NewMockTableSource(ctrl)
	source.EXPECT().Name().Return("file").AnyTimes()
	source.EXPECT().Load(gomock.Any()).Return(tables, nil).Times(1)

	var gotTables *domain.Tables
	var gotOpts usecase.PlanOptions
	planner := &mockPlanner{
		planFunc: func(ctx context.Context, tb *domain.Tables, opts usecase.PlanOptions) (*domain.PlanResult, error) {
			gotTables = tb
			gotOpts = opts
			return samplePlan(), nil
		},
	}
	e := setupTestHandler(planner, source)

	rec := makeRequest(e, http.MethodGet, "/api/v1/itineraries?origin=Rome&oneOpt=12.5", "")

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Same(t, tables, gotTables)
	assert.Equal(t, usecase.PlanOptions{Origin: "Rome", OneOpt: 12.5}, gotOpts)

	var resp PlanResponseDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "file", resp.Metadata.Source)
}

func TestPlanConfigured_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric oneOpt", "?oneOpt=cheap"},
		{"negative oneOpt", "?oneOpt=-3"},
		{"infinite oneOpt", "?oneOpt=Inf"},
		{"NaN oneOpt", "?oneOpt=NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			source := domain.NewMockTableSource(ctrl)
			planner := &mockPlanner{}
			e := setupTestHandler(planner, source)

			rec := makeRequest(e, http.MethodGet, "/api/v1/itineraries"+tt.query, "")

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			detail := decodeErrorBody(t, rec)
			assert.Equal(t, response.CodeValidationError, detail.Code)
			assert.Contains(t, detail.Details, "oneOpt")
			assert.Zero(t, planner.calls)
		})
	}
}

func TestPlanConfigured_SourceFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := domain.NewMockTableSource(ctrl)
	source.EXPECT().Name().Return("postgres").AnyTimes()
	source.EXPECT().Load(gomock.Any()).Return(nil, errors.New("connection refused"))

	planner := &mockPlanner{}
	e := setupTestHandler(planner, source)

	rec := makeRequest(e, http.MethodGet, "/api/v1/itineraries", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, response.CodeServiceUnavailable, decodeErrorBody(t, rec).Code)
	assert.Zero(t, planner.calls)
}

func TestPlanConfigured_SourceTimeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := domain.NewMockTableSource(ctrl)
	source.EXPECT().Name().Return("postgres").AnyTimes()
	source.EXPECT().Load(gomock.Any()).DoAndReturn(func(ctx context.Context) (*domain.Tables, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	e := echo.New()
	RegisterRoutes(e, NewItineraryHandler(&mockPlanner{}, source, 10*time.Millisecond))

	rec := makeRequest(e, http.MethodGet, "/api/v1/itineraries", "")

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestPlanConfigured_NoSource(t *testing.T) {
	e := setupTestHandler(&mockPlanner{}, nil)

	rec := makeRequest(e, http.MethodGet, "/api/v1/itineraries", "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPlanConfigured_PlannerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := domain.NewMockTableSource(ctrl)
	source.EXPECT().Name().Return("file").AnyTimes()
	source.EXPECT().Load(gomock.Any()).Return(&domain.Tables{}, nil)

	planner := &mockPlanner{
		planFunc: func(ctx context.Context, tables *domain.Tables, opts usecase.PlanOptions) (*domain.PlanResult, error) {
			return nil, domain.NewStageError(0, "Vienna")
		},
	}
	e := setupTestHandler(planner, source)

	rec := makeRequest(e, http.MethodGet, "/api/v1/itineraries", "")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, response.CodeNoFeasibleItinerary, decodeErrorBody(t, rec).Code)
}

// =====================================================
// Health and routing
// =====================================================

func TestHealth_Success(t *testing.T) {
	e := setupTestHandler(&mockPlanner{}, nil)

	rec := makeRequest(e, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRegisterRoutes(t *testing.T) {
	e := setupTestHandler(&mockPlanner{}, nil)

	routes := make(map[string]bool)
	for _, r := range e.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	assert.True(t, routes["GET /health"])
	assert.True(t, routes["GET /api/v1/itineraries"])
	assert.True(t, routes["POST /api/v1/itineraries/search"])
}
