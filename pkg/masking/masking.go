// Package masking scrubs credential material from text before it leaves the
// system through audit details or outbound notifications. Agent outputs can
// echo tokens from the environments they touch; the audit log and Slack are
// long-lived and widely readable, so values matching known secret shapes are
// replaced before persisting or sending.
package masking

import (
	"log/slog"
	"regexp"
)

// CompiledPattern holds a pre-compiled regex with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
}

// builtinPatterns covers the common secret shapes. Order matters: broader
// patterns run after the specific ones so the specific replacement wins.
var builtinPatterns = []struct {
	name        string
	pattern     string
	replacement string
}{
	{
		name:        "certificate",
		pattern:     `-----BEGIN [A-Z ]*PRIVATE KEY-----[\s\S]*?-----END [A-Z ]*PRIVATE KEY-----`,
		replacement: "***MASKED_PRIVATE_KEY***",
	},
	{
		name:        "bearer_token",
		pattern:     `(?i)bearer\s+[A-Za-z0-9\-._~+/]{16,}=*`,
		replacement: "***MASKED_BEARER_TOKEN***",
	},
	{
		name:        "api_key",
		pattern:     `(?i)(api[_-]?key|token|secret)["':\s=]+[A-Za-z0-9\-._]{16,}`,
		replacement: "***MASKED_API_KEY***",
	},
	{
		name:        "password_assignment",
		pattern:     `(?i)(password|passwd)["':\s=]+\S+`,
		replacement: "***MASKED_PASSWORD***",
	},
	{
		name:        "basic_auth_url",
		pattern:     `(?i)([a-z][a-z0-9+.-]*://)[^/\s:@]+:[^/\s:@]+@`,
		replacement: "${1}***MASKED_CREDENTIALS***@",
	},
}

// Service applies the masking patterns.
type Service struct {
	patterns []*CompiledPattern
}

// NewService compiles the built-in patterns. Patterns that fail to compile
// are logged and skipped rather than failing startup.
func NewService(logger *slog.Logger) *Service {
	s := &Service{}
	for _, p := range builtinPatterns {
		compiled, err := regexp.Compile(p.pattern)
		if err != nil {
			logger.Error("Failed to compile masking pattern, skipping",
				"pattern", p.name, "error", err)
			continue
		}
		s.patterns = append(s.patterns, &CompiledPattern{
			Name:        p.name,
			Regex:       compiled,
			Replacement: p.replacement,
		})
	}
	return s
}

// MaskString replaces every secret-shaped substring.
func (s *Service) MaskString(text string) string {
	for _, p := range s.patterns {
		text = p.Regex.ReplaceAllString(text, p.Replacement)
	}
	return text
}

// MaskMap returns a copy of details with string values masked. Nested maps
// and string slices are descended into; other value types pass through.
func (s *Service) MaskMap(details map[string]any) map[string]any {
	if details == nil {
		return nil
	}
	out := make(map[string]any, len(details))
	for k, v := range details {
		out[k] = s.maskValue(v)
	}
	return out
}

func (s *Service) maskValue(v any) any {
	switch val := v.(type) {
	case string:
		return s.MaskString(val)
	case map[string]any:
		return s.MaskMap(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = s.maskValue(item)
		}
		return out
	case []string:
		out := make([]string, len(val))
		for i, item := range val {
			out[i] = s.MaskString(item)
		}
		return out
	default:
		return v
	}
}
