package prompt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"techtospeak/internal/prompt"
)

func TestBuildExplainPrompt(t *testing.T) {
	p := prompt.BuildExplainPrompt("La bomba de refrigerante está cavitando", "mecanica")

	assert.Contains(t, p, `"""La bomba de refrigerante está cavitando"""`)
	assert.Contains(t, p, "ÁREA DEL OFICIO: mecanica")
	assert.Contains(t, p, `"explicacion_clara"`)
	assert.Contains(t, p, `"acciones_sugeridas"`)
	assert.Contains(t, p, `"nivel_urgencia"`)
	assert.NotContains(t, p, "texto_extraido")
}

func TestBuildDocumentPrompt(t *testing.T) {
	p := prompt.BuildDocumentPrompt("TI")

	assert.Contains(t, p, `"texto_extraido"`)
	assert.Contains(t, p, `"explicacion_clara"`)
	assert.Contains(t, p, "ÁREA DEL OFICIO: TI")
}

func TestImageTextExtraction_MentionsSentinel(t *testing.T) {
	assert.Contains(t, prompt.ImageTextExtraction, "No hay texto visible")
}
