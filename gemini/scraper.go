package gemini

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"scrapesage"
)

// DefaultModel is the backend model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// NoSourcesSentence is the exact reply the system instruction requires when
// no qualifying source exists.
const NoSourcesSentence = "No qualifying sources were found for this query."

// systemInstruction directs the backend to answer only from grounded search
// results. The failure sentence must stay in sync with NoSourcesSentence.
const systemInstruction = `You are a research assistant that answers questions using live Google Search results.
Answer only from information found in the grounded search results; never answer from memory.
Prefer sources published within the last 48 hours.
Cite the source title and URL for every fact you state.
If no qualifying source exists, reply with exactly: "` + NoSourcesSentence + `"`

// Ensure Scraper implements scrapesage.Scraper at compile time.
var _ scrapesage.Scraper = (*Scraper)(nil)

// Scraper implements scrapesage.Scraper using Google Gemini with Google
// Search grounding.
type Scraper struct {
	client  *genai.Client
	model   string
	limiter *rate.Limiter
	delays  []time.Duration
	logger  LogFunc
}

// NewScraper creates a new Scraper. An empty model selects DefaultModel.
func NewScraper(client *genai.Client, model string) *Scraper {
	return NewScraperWithDelays(client, model, DefaultRetryDelays())
}

// NewScraperWithDelays is like NewScraper but allows configurable retry
// delays. This is useful for testing without waiting for real delays.
func NewScraperWithDelays(client *genai.Client, model string, delays []time.Duration) *Scraper {
	if model == "" {
		model = DefaultModel
	}
	return &Scraper{
		client: client,
		model:  model,
		// One request per second, no bursting. The interpreter is
		// sequential, so this only spaces out rapid consecutive commands.
		limiter: rate.NewLimiter(rate.Limit(1), 1),
		delays:  delays,
	}
}

// SetLogger sets the function used to log retry attempts.
func (s *Scraper) SetLogger(logger LogFunc) {
	s.logger = logger
}

// Scrape answers a natural language question from search results restricted
// to the request's site filters.
func (s *Scraper) Scrape(ctx context.Context, req scrapesage.ScrapeRequest) (*scrapesage.ScrapeResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	scoped := scrapesage.BuildScopedQuery(req.Query, req.IncludeSites, req.ExcludeSites)

	return ScrapeWithRetryDelays(ctx, func(ctx context.Context) (*scrapesage.ScrapeResult, error) {
		return s.attempt(ctx, scoped)
	}, s.logger, s.delays)
}

// attempt performs a single backend call.
func (s *Scraper) attempt(ctx context.Context, scoped string) (*scrapesage.ScrapeResult, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	result, err := s.client.Models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: scoped}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, ClassifyError(err)
	}
	if result == nil {
		return nil, scrapesage.Errorf(scrapesage.EINTERNAL, "gemini returned nil result")
	}

	return &scrapesage.ScrapeResult{
		Text:    result.Text(),
		Sources: scrapesage.DedupeCitations(ExtractCitations(result)),
	}, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls with
// Google Search grounding enabled.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: systemInstruction}},
		},
		Temperature: &temp,
		Tools: []*genai.Tool{
			{GoogleSearch: &genai.GoogleSearch{}},
		},
	}
}

// ExtractCitations pulls the grounding citation list from a response.
// Entries without a web URI are dropped; deduplication is the caller's job.
func ExtractCitations(result *genai.GenerateContentResponse) []scrapesage.Citation {
	if len(result.Candidates) == 0 || result.Candidates[0].GroundingMetadata == nil {
		return nil
	}

	var citations []scrapesage.Citation
	for _, chunk := range result.Candidates[0].GroundingMetadata.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		citations = append(citations, scrapesage.Citation{
			URI:   chunk.Web.URI,
			Title: chunk.Web.Title,
		})
	}
	return citations
}

// ClassifyError maps a backend failure onto the application error taxonomy:
// EOVERLOADED for transient capacity failures, EAUTH for rejected
// credentials, EUPSTREAM for everything else.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusServiceUnavailable || apiErr.Status == "UNAVAILABLE":
			return scrapesage.Errorf(scrapesage.EOVERLOADED, "model is overloaded: %s", apiErr.Message)
		case apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden:
			return scrapesage.Errorf(scrapesage.EAUTH, "invalid API key: %s", apiErr.Message)
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "overloaded"):
		return scrapesage.Errorf(scrapesage.EOVERLOADED, "model is overloaded: %v", err)
	case strings.Contains(msg, "API key not valid") || strings.Contains(msg, "API_KEY_INVALID"):
		return scrapesage.Errorf(scrapesage.EAUTH, "invalid API key: %v", err)
	default:
		return scrapesage.Errorf(scrapesage.EUPSTREAM, "backend request failed: %v", err)
	}
}
