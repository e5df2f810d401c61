package domain

// LegSource records where a leg's distance and duration came from.
type LegSource string

const (
	// Authoritative data returned by the external routing provider.
	LegSourceProvider LegSource = "provider"
	// Great-circle distance with an average-speed duration estimate.
	LegSourceHeuristic LegSource = "heuristic"
)

// Leg is one point-to-point travel segment of a trip, with its estimated
// road distance and driving duration. Produced by the leg estimator and
// consumed once by the segment planner.
type Leg struct {
	Origin        Point
	Destination   Point
	DistanceMiles float64
	DurationHours float64
	Geometry      string
	Source        LegSource
}
