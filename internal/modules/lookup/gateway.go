// README: Flight lookup gateway; shells out to the external scraper process.
package lookup

import (
	"bytes"
	"context"
	"encoding/json"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"skylift/internal/config"
	"skylift/internal/types"
)

// Gateway is the capability boundary to the external flight-data source.
// Implementations always resolve to a well-formed SearchResult: callers
// never special-case "no flights" against "malformed response".
type Gateway interface {
	Search(ctx context.Context, req types.SearchRequest) (*types.SearchResult, error)
}

// ProcessGateway invokes the lookup as a child process: the request goes in
// as one JSON payload on stdin, the full stdout is parsed after exit.
type ProcessGateway struct {
	command string
	args    []string
	logger  *zap.Logger
}

func NewProcessGateway(cfg config.LookupConfig, logger *zap.Logger) *ProcessGateway {
	return &ProcessGateway{command: cfg.Command, args: cfg.Args, logger: logger}
}

// Search runs one lookup. A non-zero exit propagates as *ProcessError with
// the captured stderr; every other failure mode degrades into a structured
// result (demo placeholder or zero-offer annotation) with a nil error.
func (g *ProcessGateway) Search(ctx context.Context, req types.SearchRequest) (*types.SearchResult, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, g.command, g.args...)
	cmd.Stdin = bytes.NewReader(payload)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		// The managed runtime for the lookup is unavailable. Resolve to an
		// explicit zero-offer result instead of surfacing a start failure.
		g.logger.Warn("lookup process unavailable", zap.String("command", g.command), zap.Error(err))
		return &types.SearchResult{
			Flights:      []types.FlightOffer{},
			TotalResults: 0,
			SearchParams: types.ParamsFor(req),
			Error:        "flight lookup service unavailable: " + err.Error(),
		}, nil
	}

	if err := cmd.Wait(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		diag := strings.TrimSpace(stderr.String())
		g.logger.Error("lookup process failed",
			zap.Int("exit_code", exitCode),
			zap.String("stderr", diag))
		return nil, &ProcessError{ExitCode: exitCode, Diagnostics: diag}
	}

	return normalizeOutput(stdout.Bytes(), req, g.logger), nil
}

// normalizeOutput coerces whatever the process printed into the guaranteed
// result shape. Unparseable output falls back to the demo offer set; a bare
// array is treated as the offers; a missing flights field means zero offers.
func normalizeOutput(raw []byte, req types.SearchRequest, logger *zap.Logger) *types.SearchResult {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		logger.Warn("lookup process produced no output, using demo results")
		return demoResult(req, "Results are placeholder data: the lookup returned no output.")
	}

	// Bare array: the process printed just the offer list.
	if trimmed[0] == '[' {
		var offers []types.FlightOffer
		if err := json.Unmarshal(trimmed, &offers); err != nil {
			logger.Warn("lookup output is an unparseable array, using demo results", zap.Error(err))
			return demoResult(req, "Results are placeholder data: the lookup response could not be parsed.")
		}
		return finalize(offers, req, "")
	}

	var parsed struct {
		Flights      json.RawMessage    `json:"flights"`
		TotalResults int                `json:"total_results"`
		SearchParams types.SearchParams `json:"search_params"`
		Provider     string             `json:"provider"`
		Error        string             `json:"error"`
		Note         string             `json:"note"`
	}
	if err := json.Unmarshal(trimmed, &parsed); err != nil {
		logger.Warn("lookup output is not valid JSON, using demo results", zap.Error(err))
		return demoResult(req, "Results are placeholder data: the lookup response could not be parsed.")
	}

	var offers []types.FlightOffer
	if len(parsed.Flights) > 0 {
		if err := json.Unmarshal(parsed.Flights, &offers); err != nil {
			// The flights field exists but is not list-shaped; treat as empty.
			logger.Warn("lookup flights field is not a list, treating as zero offers", zap.Error(err))
			offers = nil
		}
	}

	result := finalize(offers, req, parsed.Provider)
	result.Error = parsed.Error
	result.Note = parsed.Note
	return result
}

// finalize re-wraps offers into the guaranteed shape with durations coerced
// to the "<H>h <MM>m" pattern.
func finalize(offers []types.FlightOffer, req types.SearchRequest, provider string) *types.SearchResult {
	if offers == nil {
		offers = []types.FlightOffer{}
	}
	for i := range offers {
		offers[i].Duration = NormalizeDuration(offers[i].Duration)
	}
	return &types.SearchResult{
		Flights:      offers,
		TotalResults: len(offers),
		SearchParams: types.ParamsFor(req),
		Provider:     provider,
	}
}
