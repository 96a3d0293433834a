package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrMalformedResponse = errors.New("malformed llm response")

// Object is a decoded top-level JSON object whose values are left raw for the caller.
type Object map[string]json.RawMessage

func cleanJSONResponse(content string) string {
	content = strings.TrimSpace(content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	// Some model responses include extra prose around JSON.
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		content = content[start : end+1]
	}
	return content
}

func parseObject(content string) (Object, error) {
	cleaned := cleanJSONResponse(content)
	if cleaned == "" {
		return nil, fmt.Errorf("%w: empty content", ErrMalformedResponse)
	}

	var obj Object
	if err := json.Unmarshal([]byte(cleaned), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v, content: %s", ErrMalformedResponse, err, cleaned)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: not a JSON object, content: %s", ErrMalformedResponse, cleaned)
	}
	return obj, nil
}
