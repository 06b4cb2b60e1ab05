// Package http provides the HTTP handler layer for the itinerary planner API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/http/middleware"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/adapter/http/response"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/domain"
	"github.com/trip-planner/multi-leg-itinerary-planner/internal/usecase"
)

// RequestSource is reported as the table source of searches over request bodies.
const RequestSource = "request"

// ItineraryHandler handles HTTP requests for itinerary endpoints.
type ItineraryHandler struct {
	planner usecase.ItineraryPlanner
	source  domain.TableSource
	timeout time.Duration
}

// NewItineraryHandler creates a new ItineraryHandler.
// source backs GET /api/v1/itineraries and may be nil; timeout bounds each
// search, zero means no limit beyond the request context.
func NewItineraryHandler(planner usecase.ItineraryPlanner, source domain.TableSource, timeout time.Duration) *ItineraryHandler {
	return &ItineraryHandler{
		planner: planner,
		source:  source,
		timeout: timeout,
	}
}

// PlanItinerary handles POST /api/v1/itineraries/search
//
// @Summary Plan an itinerary over supplied tables
// @Description Runs the stage sweep over the destinations and stay-length tables in the request body
// @Tags itineraries
// @Accept json
// @Produce json
// @Param request body SwaggerPlanRequest true "Destinations and stay-length tables"
// @Success 200 {object} PlanResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "Tables cannot be planned"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries/search [post]
func (h *ItineraryHandler) PlanItinerary(c echo.Context) error {
	var req PlanItineraryRequest

	if err := c.Bind(&req); err != nil {
		// Bad day markers and duplicate days surface while decoding the body
		if domain.IsInvalidData(err) {
			return response.ValidationErrorWithMessage(c, bindMessage(err))
		}
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx, cancel := h.searchContext(c)
	defer cancel()

	result, err := h.planner.Plan(ctx, ToDomainTables(&req), ToPlanOptions(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Plan(c, ToPlanResponseDTO(result, RequestSource))
}

// PlanConfigured handles GET /api/v1/itineraries
//
// @Summary Plan an itinerary over the configured tables
// @Description Loads the tables from the configured source (file or postgres) and runs the stage sweep
// @Tags itineraries
// @Produce json
// @Param origin query string false "Starting city"
// @Param oneOpt query number false "Price amount worth one deviation day"
// @Success 200 {object} PlanResponseDTO
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 422 {object} response.ErrorDetail "Tables cannot be planned"
// @Failure 503 {object} response.ErrorDetail "Table source unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/itineraries [get]
func (h *ItineraryHandler) PlanConfigured(c echo.Context) error {
	q, err := ParsePlanQuery(c.QueryParam("origin"), c.QueryParam("oneOpt"))
	if err != nil {
		return h.handleValidationError(c, err)
	}

	if h.source == nil {
		return response.ServiceUnavailable(c)
	}

	ctx, cancel := h.searchContext(c)
	defer cancel()

	tables, err := h.source.Load(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return h.handleError(c, err)
		}
		middleware.LoggerFrom(c).Error().
			Err(err).
			Str("source", h.source.Name()).
			Msg("Failed to load tables")
		return response.ServiceUnavailable(c)
	}

	result, err := h.planner.Plan(ctx, tables, QueryToPlanOptions(q))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.Plan(c, ToPlanResponseDTO(result, h.source.Name()))
}

// searchContext derives the per-search context from the request context.
func (h *ItineraryHandler) searchContext(c echo.Context) (context.Context, context.CancelFunc) {
	ctx := c.Request().Context()
	if h.timeout > 0 {
		return context.WithTimeout(ctx, h.timeout)
	}
	return context.WithCancel(ctx)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *ItineraryHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *ItineraryHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case domain.IsCountryNotFound(err):
		return response.UnprocessableEntity(c, response.CodeCountryNotFound, err.Error())
	case domain.IsOriginNotFound(err):
		return response.UnprocessableEntity(c, response.CodeOriginNotFound, err.Error())
	case domain.IsNoFeasibleItinerary(err):
		return response.UnprocessableEntity(c, response.CodeNoFeasibleItinerary, err.Error())
	case domain.IsInvalidData(err):
		return response.ValidationErrorWithMessage(c, err.Error())
	}

	middleware.LoggerFrom(c).Error().Err(err).Msg("Itinerary search failed")
	return response.InternalServerError(c)
}

// bindMessage returns the decoding error without echo's "code=400" prefix.
func bindMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) && he.Internal != nil {
		return he.Internal.Error()
	}
	return err.Error()
}

// Health handles GET /health
//
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Router /health [get]
func (h *ItineraryHandler) Health(c echo.Context) error {
	return response.Health(c)
}
