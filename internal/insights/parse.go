package insights

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var errNoJSON = errors.New("response contains no JSON object")

// parseObject decodes an LLM response into a JSON object. Markdown fences and
// surrounding prose are tolerated. A bare top-level array is wrapped under
// arrayKey when one is given.
func parseObject(response, arrayKey string) (map[string]interface{}, error) {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")
	response = strings.TrimSpace(response)

	if arrayKey != "" && strings.HasPrefix(response, "[") {
		var items []interface{}
		if err := json.Unmarshal([]byte(response), &items); err != nil {
			return nil, fmt.Errorf("failed to parse response array: %w", err)
		}
		return map[string]interface{}{arrayKey: items}, nil
	}

	var obj map[string]interface{}
	if err := json.Unmarshal([]byte(response), &obj); err == nil && obj != nil {
		return obj, nil
	}

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start < 0 || end <= start {
		return nil, errNoJSON
	}
	if err := json.Unmarshal([]byte(response[start:end+1]), &obj); err != nil {
		return nil, fmt.Errorf("failed to parse response as JSON: %w", err)
	}
	if obj == nil {
		return nil, errNoJSON
	}
	return obj, nil
}
