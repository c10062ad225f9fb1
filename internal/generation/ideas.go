package generation

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/genieops/leadmagnet-api/internal/entity"
)

const maxIdeas = 3

// Idea é uma sugestão de lead magnet já validada.
type Idea struct {
	Title                string            `json:"title"`
	Kind                 entity.MagnetKind `json:"type"`
	ValuePromise         string            `json:"value_promise"`
	ConversionScore      int               `json:"conversion_score"`
	FormatRecommendation string            `json:"format_recommendation"`
}

// NormalizeIdeas extrai e valida as ideias da resposta do modelo.
// O modelo às vezes devolve o array embrulhado num objeto ("ideas" ou
// "lead_magnets"), um objeto único, ou texto solto linha a linha.
func NormalizeIdeas(raw string, painPoints []string, offerType string) []Idea {
	for _, candidate := range candidates(raw, shapeArray) {
		if ideas, ok := parseIdeaCandidates(candidate); ok {
			var valid []Idea
			for i, item := range ideas {
				if i >= maxIdeas {
					break
				}
				if idea, ok := validateIdea(item, len(valid)); ok {
					valid = append(valid, idea)
				}
			}
			if len(valid) > 0 {
				return valid
			}
		}
	}

	// JSON não parseou em nenhuma estratégia: tenta o parser de texto.
	if ideas := parseTextIdeas(raw); len(ideas) > 0 {
		return ideas
	}
	return FallbackIdeas(painPoints, offerType)
}

func parseIdeaCandidates(candidate string) ([]map[string]any, bool) {
	var data any
	if err := json.Unmarshal([]byte(candidate), &data); err != nil {
		return nil, false
	}

	switch v := data.(type) {
	case []any:
		return toMaps(v), true
	case map[string]any:
		if inner, ok := v["ideas"].([]any); ok {
			return toMaps(inner), true
		}
		if inner, ok := v["lead_magnets"].([]any); ok {
			return toMaps(inner), true
		}
		return []map[string]any{v}, true
	}
	return nil, false
}

func toMaps(items []any) []map[string]any {
	var out []map[string]any
	for _, item := range items {
		if m, ok := item.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// validateIdea força a ideia para dentro do schema: título default,
// kind restrito aos quatro válidos, score inteiro em [1,10].
func validateIdea(item map[string]any, index int) (Idea, bool) {
	if item == nil {
		return Idea{}, false
	}

	title := stringField(item, "title")
	if title == "" {
		title = stringField(item, "name")
	}
	if title == "" {
		title = fmt.Sprintf("Lead Magnet %d", index+1)
	}

	kind := entity.MagnetKind(strings.ToLower(stringField(item, "type")))
	if !kind.IsValid() {
		kind = entity.KindChecklist
	}

	promise := stringField(item, "value_promise")
	if promise == "" {
		promise = stringField(item, "description")
	}
	if promise == "" {
		promise = fmt.Sprintf("Solve your problems with this %s", kind)
	}

	format := stringField(item, "format_recommendation")
	if format == "" {
		format = stringField(item, "format")
	}
	if format == "" {
		format = fmt.Sprintf("Downloadable %s", kind)
	}

	return Idea{
		Title:                title,
		Kind:                 kind,
		ValuePromise:         promise,
		ConversionScore:      coerceScore(item["conversion_score"]),
		FormatRecommendation: format,
	}, true
}

// coerceScore devolve sempre um inteiro em [1,10]: numérico fora da
// faixa é clampado, não-numérico ou ausente vira 7.
func coerceScore(v any) int {
	var score int
	switch n := v.(type) {
	case float64:
		score = int(n)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(n))
		if err != nil {
			return 7
		}
		score = parsed
	default:
		return 7
	}

	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}

func stringField(item map[string]any, key string) string {
	s, _ := item[key].(string)
	return strings.TrimSpace(s)
}

// parseTextIdeas é o parser de última instância, linha a linha, para
// quando o modelo ignora o pedido de JSON. Cada linha "Title:"/"Name:"
// abre uma ideia nova e descarrega a anterior pela mesma validação.
func parseTextIdeas(raw string) []Idea {
	var ideas []Idea
	current := map[string]any{}

	flush := func() {
		if len(current) == 0 {
			return
		}
		if idea, ok := validateIdea(current, len(ideas)); ok {
			ideas = append(ideas, idea)
		}
		current = map[string]any{}
	}

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		lower := strings.ToLower(line)

		switch {
		case strings.HasPrefix(lower, "title:") || strings.HasPrefix(lower, "name:"):
			flush()
			current["title"] = valueAfterColon(line)
		case strings.HasPrefix(lower, "type:"):
			current["type"] = strings.ToLower(valueAfterColon(line))
		case strings.HasPrefix(lower, "value:") || strings.HasPrefix(lower, "promise:"):
			current["value_promise"] = valueAfterColon(line)
		case strings.HasPrefix(lower, "score:") || strings.HasPrefix(lower, "conversion:"):
			current["conversion_score"] = digitsOf(valueAfterColon(line))
		}
	}
	flush()

	return ideas
}

func valueAfterColon(line string) string {
	_, after, _ := strings.Cut(line, ":")
	return strings.TrimSpace(after)
}

// digitsOf extrai a primeira sequência de dígitos ("Score: 9/10" → "9").
// Devolve any porque alimenta o mesmo caminho de coerção do JSON.
func digitsOf(s string) any {
	var digits strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
			if digits.Len() == 2 {
				break
			}
		} else if digits.Len() > 0 {
			break
		}
	}
	if digits.Len() == 0 {
		return s
	}
	return digits.String()
}
