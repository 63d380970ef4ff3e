package transcript

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/tradepath/internal/schemas"
	"github.com/jonathan/tradepath/internal/types"
)

// SchemaPath is the repo-relative path of the transcript JSON Schema.
const SchemaPath = "schemas/transcript.schema.json"

// Load reads a transcript JSON file. The file is checked against the
// transcript schema when it can be located, then against the struct
// validation tags. Segment start times must be unique.
func Load(path string) (*types.Transcript, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Message: "failed to read file", Cause: err}
	}

	if schemaPath := schemas.ResolveSchemaPath(SchemaPath); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, path); err != nil {
			return nil, &LoadError{Path: path, Message: "schema validation failed", Cause: err}
		}
	}

	var t types.Transcript
	if err := json.Unmarshal(content, &t); err != nil {
		return nil, &LoadError{Path: path, Message: "failed to unmarshal JSON", Cause: err}
	}

	if err := t.Validate(); err != nil {
		return nil, &LoadError{Path: path, Message: "invalid transcript", Cause: err}
	}

	seen := make(map[float64]bool, len(t.Segments))
	for _, seg := range t.Segments {
		if seen[seg.StartTime] {
			return nil, &LoadError{Path: path, Message: fmt.Sprintf("duplicate segment start time %s", FormatTime(seg.StartTime))}
		}
		seen[seg.StartTime] = true
		if seg.EndTime < seg.StartTime {
			return nil, &LoadError{Path: path, Message: fmt.Sprintf("segment at %s ends before it starts", FormatTime(seg.StartTime))}
		}
	}

	return &t, nil
}
