package service

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"techtospeak/internal/domain"
)

var explanationSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"explicacion_clara", "acciones_sugeridas", "nivel_urgencia"},
	"properties": map[string]interface{}{
		"explicacion_clara":  map[string]interface{}{"type": "string", "minLength": 1},
		"acciones_sugeridas": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
		"nivel_urgencia":     map[string]interface{}{"type": "string", "enum": []interface{}{"baja", "media", "alta"}},
	},
}

var extractionSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"texto_extraido", "explicacion_clara", "acciones_sugeridas", "nivel_urgencia"},
	"properties": map[string]interface{}{
		"texto_extraido":     map[string]interface{}{"type": "string"},
		"explicacion_clara":  map[string]interface{}{"type": "string", "minLength": 1},
		"acciones_sugeridas": map[string]interface{}{"type": "array", "items": map[string]interface{}{"type": "string"}},
		"nivel_urgencia":     map[string]interface{}{"type": "string", "enum": []interface{}{"baja", "media", "alta"}},
	},
}

// schemaViolations lists how data deviates from the expected record shape.
// A non-conforming reply is still turned into a record; the result is only reported.
func schemaViolations(schema, data map[string]interface{}) ([]string, error) {
	result, err := gojsonschema.Validate(gojsonschema.NewGoLoader(schema), gojsonschema.NewGoLoader(data))
	if err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}
	if result.Valid() {
		return nil, nil
	}
	errs := make([]string, len(result.Errors()))
	for i, desc := range result.Errors() {
		errs[i] = desc.String()
	}
	return errs, nil
}

// explanationFromMapping builds a fully populated record from a parsed reply.
// Missing fields take the same defaults the HTTP responses always used, and a
// missing explanation is replaced by the raw reply so it is never empty.
func explanationFromMapping(m map[string]any, raw string) domain.ExplanationRecord {
	rec := domain.ExplanationRecord{
		ExplicacionClara:  raw,
		AccionesSugeridas: []string{},
		NivelUrgencia:     string(domain.UrgencyMedium),
	}

	if s, ok := m["explicacion_clara"].(string); ok && strings.TrimSpace(s) != "" {
		rec.ExplicacionClara = s
	}

	switch v := m["acciones_sugeridas"].(type) {
	case []any:
		for _, item := range v {
			if item == nil {
				continue
			}
			if s, ok := item.(string); ok {
				rec.AccionesSugeridas = append(rec.AccionesSugeridas, s)
				continue
			}
			rec.AccionesSugeridas = append(rec.AccionesSugeridas, fmt.Sprint(item))
		}
	case string:
		if strings.TrimSpace(v) != "" {
			rec.AccionesSugeridas = append(rec.AccionesSugeridas, v)
		}
	}

	if s, ok := m["nivel_urgencia"].(string); ok && strings.TrimSpace(s) != "" {
		rec.NivelUrgencia = s
	}

	return rec
}

// extractionFromMapping is the document-flow counterpart of explanationFromMapping.
func extractionFromMapping(m map[string]any, raw string) domain.ExtractionRecord {
	rec := domain.ExtractionRecord{
		TextoExtraido:     raw,
		ExplanationRecord: explanationFromMapping(m, raw),
	}
	if s, ok := m["texto_extraido"].(string); ok {
		rec.TextoExtraido = s
	}
	return rec
}
