package domain

// ExplanationRecord is the plain-language rendering of a piece of technical text.
type ExplanationRecord struct {
	ExplicacionClara  string   `json:"explicacion_clara"`
	AccionesSugeridas []string `json:"acciones_sugeridas"`
	NivelUrgencia     string   `json:"nivel_urgencia"`
}

// ExtractionRecord is an ExplanationRecord plus the text that was read out of
// a document or image.
type ExtractionRecord struct {
	TextoExtraido string `json:"texto_extraido"`
	ExplanationRecord
}

// FallbackExplanation is the record returned when the model reply cannot be
// normalized: the raw reply becomes the explanation.
func FallbackExplanation(raw string) ExplanationRecord {
	return ExplanationRecord{
		ExplicacionClara:  raw,
		AccionesSugeridas: []string{},
		NivelUrgencia:     string(UrgencyMedium),
	}
}

// FallbackExtraction is the document-flow counterpart of FallbackExplanation.
func FallbackExtraction(raw string) ExtractionRecord {
	return ExtractionRecord{
		TextoExtraido:     raw,
		ExplanationRecord: FallbackExplanation(raw),
	}
}
