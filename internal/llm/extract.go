package llm

import (
	"encoding/json"
	"strings"

	"cartly-be/internal/apperrors"
)

// ExtractJSON parses a model reply into dest. Models are instructed to answer
// with strict JSON but still wrap it in prose or markdown fences, so on a
// failed direct parse the substring from the first '{' to the last '}' is
// tried once. Anything less well-formed is an UpstreamFormatError; fields are
// never fabricated from a partial reply.
func ExtractJSON(raw string, dest interface{}) error {
	trimmed := strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(trimmed), dest); err == nil {
		return nil
	}

	start := strings.Index(trimmed, "{")
	end := strings.LastIndex(trimmed, "}")
	if start == -1 || end == -1 || end < start {
		return apperrors.UpstreamFormat("model reply contains no JSON object")
	}

	if err := json.Unmarshal([]byte(trimmed[start:end+1]), dest); err != nil {
		return apperrors.UpstreamFormat("model reply is not valid JSON")
	}

	return nil
}
