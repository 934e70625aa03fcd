package assistant

import (
	"context"
	"log"

	"github.com/Karnakarj/areahunt/internal/config"
	"github.com/Karnakarj/areahunt/internal/shared/model"

	"google.golang.org/genai"
)

const systemPrompt = "You are a helpful assistant for the 'AreaHunt' app. " +
	"The user is physically exploring a new neighborhood. Help them identify " +
	"amenities, safety, or interesting facts about their CURRENT location " +
	"using Google Maps. Be concise."

const (
	msgDisabled     = "AI features are disabled. Set GEMINI_API_KEY to enable them."
	msgNeedLocation = "I need your location to answer that. Please wait for the GPS signal (Green dot)."
	msgNoAnswer     = "I couldn't find information about that location."
	msgUnavailable  = "Sorry, I encountered an error connecting to the AI. Please check your internet connection."
)

type Citation struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

type Answer struct {
	Text      string     `json:"text"`
	Citations []Citation `json:"citations,omitempty"`
}

type generateFunc func(ctx context.Context, query string, loc model.Coordinate) (*genai.GenerateContentResponse, error)

// Service answers free-text questions about the user's surroundings
// through Gemini with Google Maps grounding anchored at the current
// coordinate.
type Service struct {
	model    string
	client   *genai.Client
	generate generateFunc
}

func NewService(ctx context.Context, cfg config.Config) *Service {
	s := &Service{model: cfg.GeminiModel}
	if s.model == "" {
		s.model = "gemini-2.5-flash"
	}
	if cfg.GeminiAPIKey == "" {
		return s
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Printf("assistant: client init failed, AI disabled: %v", err)
		return s
	}
	s.client = client
	s.generate = s.callModel
	return s
}

// Ask never returns an error: a missing key, a missing location, and any
// upstream failure all degrade to a fixed local message. Without a
// location no external call is made at all.
func (s *Service) Ask(ctx context.Context, query string, loc *model.Coordinate) Answer {
	if s.generate == nil {
		return Answer{Text: msgDisabled}
	}
	if loc == nil {
		return Answer{Text: msgNeedLocation}
	}

	resp, err := s.generate(ctx, query, *loc)
	if err != nil {
		log.Printf("assistant: generate: %v", err)
		return Answer{Text: msgUnavailable}
	}

	answer := Answer{Text: resp.Text()}
	if answer.Text == "" {
		answer.Text = msgNoAnswer
	}
	answer.Citations = citations(resp)
	return answer
}

func (s *Service) callModel(ctx context.Context, query string, loc model.Coordinate) (*genai.GenerateContentResponse, error) {
	return s.client.Models.GenerateContent(ctx, s.model, genai.Text(query), &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: systemPrompt}}},
		Tools:             []*genai.Tool{{GoogleMaps: &genai.GoogleMaps{}}},
		ToolConfig: &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{Latitude: &loc.Lat, Longitude: &loc.Lng},
			},
		},
	})
}

func citations(resp *genai.GenerateContentResponse) []Citation {
	if len(resp.Candidates) == 0 || resp.Candidates[0].GroundingMetadata == nil {
		return nil
	}
	var out []Citation
	for _, chunk := range resp.Candidates[0].GroundingMetadata.GroundingChunks {
		switch {
		case chunk.Web != nil:
			out = append(out, Citation{URI: chunk.Web.URI, Title: chunk.Web.Title})
		case chunk.Maps != nil:
			title := chunk.Maps.Title
			if title == "" {
				title = "Google Maps"
			}
			out = append(out, Citation{URI: chunk.Maps.URI, Title: title})
		}
	}
	return out
}
