package insight

import (
	"context"
	"encoding/json"
	"fmt"

	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"

	"github.com/projetoszexit-cpu/FleetFlowPro/internal/models"
)

const (
	routeModel = "gemini-2.5-flash"
	fleetModel = "gemini-2.5-flash"
)

// Gemini is the production Client, backed by Google's Gemini API with
// search grounding for route questions.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini insight client.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Gemini{client: client}, nil
}

func (g *Gemini) generate(ctx context.Context, model, prompt string, grounded bool) (*genai.GenerateContentResponse, error) {
	var config *genai.GenerateContentConfig
	if grounded {
		config = &genai.GenerateContentConfig{
			Tools: []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}},
		}
	}
	return g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), config)
}

// groundingRefs pulls web sources out of a response, tolerating the many
// optional fields in the grounding metadata.
func groundingRefs(resp *genai.GenerateContentResponse) []GroundingRef {
	var refs []GroundingRef
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return refs
	}
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk == nil || chunk.Web == nil {
			continue
		}
		refs = append(refs, GroundingRef{Title: chunk.Web.Title, URI: chunk.Web.URI})
	}
	return refs
}

// RouteInsights summarizes a trip for professional drivers.
func (g *Gemini) RouteInsights(ctx context.Context, origin, destination string, loc *models.Location) Result {
	prompt := fmt.Sprintf("Provide a detailed route summary for a trip from %s to %s. Mention estimated traffic patterns and any points of interest for professional drivers.", origin, destination)
	if loc != nil {
		prompt += fmt.Sprintf(" The driver is currently near latitude %.5f, longitude %.5f.", loc.Lat, loc.Lon)
	}

	resp, err := g.generate(ctx, routeModel, prompt, true)
	if err != nil {
		log.WithError(err).Error("Failed to fetch route insights")
		return Result{Text: FallbackRoute}
	}
	return Result{Text: resp.Text(), Grounding: groundingRefs(resp)}
}

// OptimizeRoute asks for an efficient sequence of stops.
func (g *Gemini) OptimizeRoute(ctx context.Context, origin, destination string, waypoints []string) Result {
	via := ""
	if len(waypoints) > 0 {
		via = " passing through "
		for i, w := range waypoints {
			if i > 0 {
				via += ", "
			}
			via += w
		}
	}
	prompt := fmt.Sprintf("As a logistics expert, optimize the route from %s to %s%s. Analyze current traffic conditions and distance to suggest the most efficient sequence of stops or alternative paths. Focus on fuel saving and time efficiency. Mention specific roads if possible.", origin, destination, via)

	resp, err := g.generate(ctx, routeModel, prompt, true)
	if err != nil {
		log.WithError(err).Error("Failed to optimize route")
		return Result{Text: FallbackOptimize}
	}
	return Result{Text: resp.Text(), Grounding: groundingRefs(resp)}
}

// FleetAnalysis asks for management insights over a fleet snapshot.
func (g *Gemini) FleetAnalysis(ctx context.Context, snapshot interface{}) string {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return FallbackFleet
	}
	prompt := fmt.Sprintf("Analyze this fleet data and provide 3 key management insights: %s", data)

	resp, err := g.generate(ctx, fleetModel, prompt, false)
	if err != nil {
		log.WithError(err).Error("Failed to fetch fleet analysis")
		return FallbackFleet
	}
	return resp.Text()
}
