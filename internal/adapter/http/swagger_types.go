package http

// Swagger type definitions for API documentation. The flight tables use a
// custom JSON codec, so swag cannot derive their shape from the domain types.

// SwaggerPlanRequest represents the itinerary search request body.
// @Description Destinations and stay-length tables plus optional overrides
type SwaggerPlanRequest struct {
	// Origin is the starting city; empty uses the server default
	Origin string `json:"origin,omitempty" example:"Vienna"`

	// OneOpt is the price amount worth one deviation day
	OneOpt float64 `json:"oneOpt,omitempty" example:"25"`

	// Destinations is the destinations table, in visiting order
	Destinations []SwaggerDestination `json:"destinations"`

	// Days is the stay-length table
	Days []SwaggerStay `json:"days"`
}

// SwaggerDestination is one row of the destinations table.
// @Description A country with its nightly cost and incoming flights keyed by day marker
type SwaggerDestination struct {
	// Name is the country name
	Name string `json:"name" example:"Rome"`

	// CostPerNight is the nightly housing cost
	CostPerNight float64 `json:"cost_per_night" example:"20"`

	// Departures maps integer day markers ("3") to flight fares, in file order
	Departures map[string]SwaggerFare `json:"departures"`
}

// SwaggerFare is the cost of a flight on one day.
// @Description Flight fare
type SwaggerFare struct {
	Cost float64 `json:"cost" example:"50"`
}

// SwaggerStay is one row of the stay-length table.
// @Description Allowed and ideal stay in a country, in days
type SwaggerStay struct {
	Name    string `json:"name" example:"Rome"`
	Minimum int    `json:"minimum" example:"2"`
	Optimum int    `json:"optimum" example:"3"`
	Maximum int    `json:"maximum" example:"4"`
}
