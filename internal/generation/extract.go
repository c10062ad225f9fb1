package generation

import "strings"

// jsonShape indica se o kind espera um objeto ou um array no topo.
type jsonShape int

const (
	shapeObject jsonShape = iota
	shapeArray
)

// extractStrategy devolve um candidato a JSON extraído do texto cru.
// As estratégias são tentadas em ordem até uma delas produzir algo que
// parseia (ver normalize.go).
type extractStrategy func(raw string, shape jsonShape) (string, bool)

// extractStrategies na ordem do pipeline: fence ```json → qualquer
// fence → varredura de chaves/colchetes → texto cru.
var extractStrategies = []extractStrategy{
	extractJSONFence,
	extractAnyFence,
	extractDelimited,
	extractRaw,
}

// candidates devolve todos os candidatos na ordem das estratégias.
func candidates(raw string, shape jsonShape) []string {
	var out []string
	for _, strat := range extractStrategies {
		if c, ok := strat(raw, shape); ok {
			out = append(out, c)
		}
	}
	return out
}

func extractJSONFence(raw string, _ jsonShape) (string, bool) {
	return extractFence(raw, "```json")
}

func extractAnyFence(raw string, _ jsonShape) (string, bool) {
	return extractFence(raw, "```")
}

func extractFence(raw, open string) (string, bool) {
	start := strings.Index(raw, open)
	if start < 0 {
		return "", false
	}
	inner := raw[start+len(open):]
	end := strings.Index(inner, "```")
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(inner[:end]), true
}

// extractDelimited pega o trecho entre o primeiro { e o último } (ou
// [ e ] para kinds em array). O modelo costuma cercar o JSON de prosa.
func extractDelimited(raw string, shape jsonShape) (string, bool) {
	open, close := "{", "}"
	if shape == shapeArray {
		open, close = "[", "]"
	}
	start := strings.Index(raw, open)
	end := strings.LastIndex(raw, close)
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

func extractRaw(raw string, _ jsonShape) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", false
	}
	return trimmed, true
}
