package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/tradepath/internal/parsing"
	"github.com/jonathan/tradepath/internal/random"
	"github.com/jonathan/tradepath/internal/schemas"
	"github.com/jonathan/tradepath/internal/skills"
	"github.com/jonathan/tradepath/internal/transcript"
	"github.com/jonathan/tradepath/internal/types"
)

// Schema paths, relative to the repository root.
const (
	analysisRequestSchema     = "schemas/analysis_request.schema.json"
	compatibilityResultSchema = "schemas/compatibility_result.schema.json"
	learningJourneySchema     = "schemas/learning_journey.schema.json"
	videoResponseSchema       = "schemas/video_response.schema.json"
)

// newSource returns the configured random source.
func newSource() random.Source {
	if appConfig.Seed != 0 {
		return random.NewSeeded(appConfig.Seed)
	}
	return random.New()
}

// loadCatalog returns the configured catalog or the built-in one.
func loadCatalog() (*skills.Catalog, error) {
	if appConfig.Catalog == "" {
		return skills.Default(), nil
	}
	return skills.LoadCatalog(appConfig.Catalog)
}

// loadTranscript resolves a transcript from a file path or a built-in video id.
// A path wins over an id; with neither, the configured transcript or defaultID is used.
func loadTranscript(path, videoID, defaultID string) (*types.Transcript, error) {
	if path == "" && videoID == "" {
		path = appConfig.Transcript
	}
	if path != "" {
		return transcript.Load(path)
	}
	if videoID == "" {
		videoID = defaultID
	}
	store := transcript.DefaultStore()
	t, ok := store.Get(videoID)
	if !ok {
		return nil, fmt.Errorf("unknown video %q (known: %v)", videoID, store.IDs())
	}
	return t, nil
}

// readRequest reads an AnalysisRequest JSON file, warning when it does not match the schema.
func readRequest(path string) (*types.AnalysisRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(analysisRequestSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			warnValidation(err)
		}
	}

	var req types.AnalysisRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal request JSON: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("invalid request: %w", err)
	}
	return &req, nil
}

// requestSkills merges the request's skills with a comma, semicolon or
// newline separated list from the command line, trimmed and de-duplicated.
func requestSkills(req *types.AnalysisRequest, extra string) []string {
	merged := append([]string(nil), req.Skills...)
	merged = append(merged, parsing.SplitSkillList(extra)...)
	return parsing.NormalizeSkillList(merged)
}

// writeOutput writes v as indented JSON to path, or to stdout when path is empty.
// When schemaRel resolves, the value is checked against it; mismatches only warn.
func writeOutput(path string, v any, schemaRel string) error {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if schemaRel != "" {
		if schemaPath := schemas.ResolveSchemaPath(schemaRel); schemaPath != "" {
			if err := schemas.ValidateValue(schemaPath, v); err != nil {
				warnValidation(err)
			}
		}
	}

	if path == "" || path == "-" {
		_, err := fmt.Fprintln(os.Stdout, string(jsonBytes))
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// warnValidation reports a schema problem without failing the command.
func warnValidation(err error) {
	var validationErr *schemas.ValidationError
	var schemaLoadErr *schemas.SchemaLoadError
	switch {
	case errors.As(err, &validationErr):
		_, _ = fmt.Fprintf(os.Stderr, "Warning: JSON does not match schema: %v\n", err)
	case errors.As(err, &schemaLoadErr):
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate against schema (schema loading failed): %v\n", err)
	default:
		_, _ = fmt.Fprintf(os.Stderr, "Warning: Could not validate against schema: %v\n", err)
	}
}
