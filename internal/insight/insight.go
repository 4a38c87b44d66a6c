// Package insight wraps the generative text service that produces route
// summaries and fleet analyses. The rest of the system treats it as an
// opaque collaborator: it gets a prompt, it returns text, and every failure
// collapses to a fixed fallback string instead of an error.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

// Fallback strings returned when the external service is unreachable.
const (
	FallbackRoute    = "Error fetching route details. Please check your network."
	FallbackOptimize = "Falha ao otimizar a rota. Tente novamente em instantes."
	FallbackFleet    = "Insights unavailable at the moment."
)

// GroundingRef is one source the service grounded its answer on.
type GroundingRef struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// Result is a free-text summary plus its grounding references. The text is
// displayed verbatim; nothing parses it.
type Result struct {
	Text      string         `json:"text"`
	Grounding []GroundingRef `json:"grounding"`
}

// Client produces route and fleet summaries.
type Client interface {
	// RouteInsights summarizes a trip from origin to destination, optionally
	// grounded near the given location.
	RouteInsights(ctx context.Context, origin, destination string, loc *models.Location) Result
	// OptimizeRoute suggests an efficient ordering of stops.
	OptimizeRoute(ctx context.Context, origin, destination string, waypoints []string) Result
	// FleetAnalysis produces management insights from a fleet snapshot.
	FleetAnalysis(ctx context.Context, snapshot interface{}) string
}

// Static is a Client with canned answers; it keeps the service and its
// tests off the network when no API key is configured.
type Static struct{}

func (Static) RouteInsights(_ context.Context, origin, destination string, _ *models.Location) Result {
	return Result{Text: fmt.Sprintf("Route from %s to %s. Drive safely.", origin, destination)}
}

func (Static) OptimizeRoute(_ context.Context, origin, destination string, waypoints []string) Result {
	stops := destination
	if len(waypoints) > 0 {
		stops = strings.Join(waypoints, ", ") + ", " + destination
	}
	return Result{Text: fmt.Sprintf("Suggested order from %s: %s.", origin, stops)}
}

func (Static) FleetAnalysis(_ context.Context, snapshot interface{}) string {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return FallbackFleet
	}
	return fmt.Sprintf("Fleet snapshot received (%d bytes). No remote analysis configured.", len(data))
}
