package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"skylift/internal/types"
)

// GeminiProvider implements CompletionProvider using Google's Gemini models.
type GeminiProvider struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiProvider initializes a new Gemini client.
// apiKey should be provided from environment variables.
func NewGeminiProvider(ctx context.Context, apiKey string) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	// Gemini 2.0 Flash for low latency and cost efficiency.
	model := client.GenerativeModel("gemini-2.0-flash")

	// Force JSON response for structured parsing.
	model.ResponseMIMEType = "application/json"
	model.SetTemperature(0.4)

	return &GeminiProvider{
		client: client,
		model:  model,
	}, nil
}

// Close cleans up the Gemini client resources.
func (p *GeminiProvider) Close() {
	p.client.Close()
}

// ExtractFlightDetails runs one extraction pass over the full transcript.
func (p *GeminiProvider) ExtractFlightDetails(ctx context.Context, transcript []Turn) (*ExtractionResult, error) {
	prompt := buildExtractionPrompt(transcript)

	text, err := p.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	var result ExtractionResult
	if err := json.Unmarshal([]byte(cleanJSONString(text)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w. Raw: %s", err, text)
	}
	return &result, nil
}

// SummarizeOffers asks the model to describe the supplied offers and nothing else.
func (p *GeminiProvider) SummarizeOffers(ctx context.Context, transcript []Turn, offers []types.FlightOffer) (string, error) {
	serialized, err := json.Marshal(offers)
	if err != nil {
		return "", fmt.Errorf("failed to serialize offers: %w", err)
	}

	prompt := buildSummaryPrompt(transcript, string(serialized))

	text, err := p.generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	// The summary pass reuses the extraction schema so the front end can
	// render both replies identically.
	var result ExtractionResult
	if err := json.Unmarshal([]byte(cleanJSONString(text)), &result); err != nil {
		// A plain-text reply still satisfies the caller.
		return strings.TrimSpace(text), nil
	}
	return result.Reply, nil
}

func (p *GeminiProvider) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := p.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generation error: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("no response candidates from Gemini")
	}

	var responseText strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			responseText.WriteString(string(txt))
		}
	}
	return responseText.String(), nil
}

// renderTranscript flattens the conversation into alternating "role: text" lines.
func renderTranscript(transcript []Turn) string {
	var b strings.Builder
	for _, turn := range transcript {
		b.WriteString(turn.Role)
		b.WriteString(": ")
		b.WriteString(turn.Text)
		b.WriteString("\n")
	}
	return b.String()
}

// buildExtractionPrompt constructs the slot-filling instructions for the AI.
func buildExtractionPrompt(transcript []Turn) string {
	return fmt.Sprintf(`Role: You are "Skylift", a friendly flight-search assistant.
Your job is to collect FOUR details from the conversation: origin city, destination city, travel dates, and passenger count.

Conversation so far:
%s
RULES:
1. Re-read the ENTIRE conversation on every turn. Details mentioned in ANY earlier turn stay known; NEVER reset a known field to empty just because the latest message does not repeat it.
2. Keep dates exactly as the user phrased them (e.g. "sep25 to oct2"). Do NOT reformat or invent dates.
3. Set "isFlightDetailsComplete": true ONLY when origin, destination, dates AND passengers are all known. If anything is missing, ask for it naturally in "reply" and set it to false.
4. NEVER invent flight prices, airlines, or availability. You have no flight data at this stage.
5. "reply" is shown to the user verbatim: short, warm, conversational English. No markdown, no ALL-CAPS system tokens.

Output JSON Schema:
{
  "reply": "string (user facing response)",
  "isFlightDetailsComplete": boolean,
  "flightDetails": {
    "origin": "string or omitted",
    "destination": "string or omitted",
    "dates": "string or omitted (verbatim user phrasing)",
    "passengers": integer or omitted
  }
}
`, renderTranscript(transcript))
}

// buildSummaryPrompt constructs the offer-summary instructions for the AI.
func buildSummaryPrompt(transcript []Turn, offersJSON string) string {
	return fmt.Sprintf(`Role: You are "Skylift", a friendly flight-search assistant.
Real flight offers have been retrieved for the user's search.

Conversation so far:
%s
Flight offers (JSON):
%s

RULES:
1. Summarize ONLY the offers listed above. Do NOT fabricate prices, airlines, times, or any offer that is not in the list.
2. Cover exactly three categories: "Best" (blend of price and duration), "Cheapest" (lowest price), "Fastest" (shortest duration). Name the airline and GBP price for each.
3. If the list is empty, say no flights were found for these dates and suggest adjusting the search.
4. "reply" is shown to the user verbatim: short, warm, conversational English.

Output JSON Schema:
{
  "reply": "string (user facing response)",
  "isFlightDetailsComplete": true
}
`, renderTranscript(transcript), offersJSON)
}

// cleanJSONString removes markdown code blocks if present (e.g. ```json ... ```)
func cleanJSONString(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
