package prompt

import (
	"fmt"
	"strings"
)

// Parameter is one decoded "--key value" flag.
type Parameter struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

var parameterTemplates = map[string]string{
	"--ar":    "Aspect ratio: %s (controls image shape)",
	"--s":     "Stylize: %s (controls artistic interpretation, 0-1000)",
	"--v":     "Version: %s (Midjourney model version)",
	"--q":     "Quality: %s (rendering quality and speed)",
	"--no":    "Negative prompt: %s (elements to avoid)",
	"--chaos": "Chaos: %s (variation in results, 0-100)",
	"--seed":  "Seed: %s (for reproducible results)",
	"--style": "Style: %s (style modifier)",
}

// ParseParameter splits a flag token on whitespace. Only the first field
// after the key is kept as the value; a bare key yields an empty value.
func ParseParameter(token string) Parameter {
	fields := strings.Fields(token)
	var p Parameter
	if len(fields) > 0 {
		p.Key = fields[0]
	}
	if len(fields) > 1 {
		p.Value = fields[1]
	}
	p.Description = DescribeParameter(p.Key, p.Value)
	return p
}

// DescribeParameter renders the human readable description of a flag.
func DescribeParameter(key, value string) string {
	if tmpl, ok := parameterTemplates[key]; ok {
		return fmt.Sprintf(tmpl, value)
	}
	return fmt.Sprintf("%s: %s", key, value)
}
