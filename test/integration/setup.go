// Package integration provides helpers and integration tests for the itinerary planner.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, the planner, and table sources.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	httpAdapter "github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/http"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/http/middleware"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/infrastructure/logger"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/usecase"
)

// DefaultTimeout bounds each search made through a TestServer.
const DefaultTimeout = 2 * time.Second

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.ItineraryHandler
}

// NewTestServer creates a new test server with the full middleware chain.
// source may be nil when only the POST endpoint is exercised.
func NewTestServer(planner usecase.ItineraryPlanner, source domain.TableSource, timeout time.Duration) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.Nop(), middleware.RecoveryConfig{DisablePrintStack: true})

	handler := httpAdapter.NewItineraryHandler(planner, source, timeout)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	RawBody     string
	ContentType string
	Headers     map[string]string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch {
	case req.RawBody != "":
		bodyReader = bytes.NewReader([]byte(req.RawBody))
	case req.Body != nil:
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	default:
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil || req.RawBody != "" {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts an itinerary search body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/itineraries/search",
		Body:   body,
	})
}

// ConfiguredRequest plans over the server's table source. query may be empty.
func (ts *TestServer) ConfiguredRequest(query string) Response {
	path := "/api/v1/itineraries"
	if query != "" {
		path += "?" + query
	}
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   path,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParsePlanResponse parses the response body as a PlanResponseDTO.
func (r *Response) ParsePlanResponse() (*httpAdapter.PlanResponseDTO, error) {
	var resp httpAdapter.PlanResponseDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// PlanRequestBody is a helper struct for building search request bodies.
type PlanRequestBody struct {
	Origin       string                     `json:"origin,omitempty"`
	OneOpt       *float64                   `json:"oneOpt,omitempty"`
	Destinations []domain.DestinationRecord `json:"destinations"`
	Days         []domain.StayRecord        `json:"days"`
}

// RequestFromTables builds a search body carrying the given tables.
func RequestFromTables(tables *domain.Tables) PlanRequestBody {
	return PlanRequestBody{
		Destinations: tables.Destinations,
		Days:         tables.Stays,
	}
}

// CreatePlanner creates a planner with default configuration.
func CreatePlanner() usecase.ItineraryPlanner {
	return usecase.NewItineraryPlanner(nil)
}

// CreatePlannerWithConfig creates a planner with custom configuration.
func CreatePlannerWithConfig(config *usecase.Config) usecase.ItineraryPlanner {
	return usecase.NewItineraryPlanner(config)
}
