package prompt

import "fmt"

// Transcription is the fixed instruction sent with an audio payload.
const Transcription = "Transcribe el siguiente audio EXACTAMENTE al español. " +
	"No agregues explicaciones, ni resúmenes, ni comentarios. " +
	"Devuelve SOLO el texto transcrito."

// ImageTextExtraction asks for the visible text of an image and nothing else.
const ImageTextExtraction = "Extrae TODO el texto visible en esta imagen, respetando el orden de lectura. " +
	"No agregues explicaciones, ni interpretaciones, ni comentarios. " +
	"Si la imagen no contiene texto, responde exactamente: No hay texto visible"

// BuildExplainPrompt returns the structured-output prompt that turns technical
// text into an explanation, suggested actions and an urgency level.
func BuildExplainPrompt(text, area string) string {
	return fmt.Sprintf(`
Eres un traductor profesional de lenguaje técnico a lenguaje común.
Tu tarea es convertir explicaciones complejas en un mensaje sencillo,
amable y profesional, listo para que yo se lo lea o envíe a un usuario promedio.

Instrucciones IMPORTANTES:
1. Responde SIEMPRE en español.
2. Mantén un tono tranquilo, empático y profesional.
3. Devuelve SOLO un JSON válido, sin texto extra, sin bloques `+"```json"+`.
4. El JSON debe tener exactamente estas claves:
   - "explicacion_clara": string
   - "acciones_sugeridas": lista de strings (entre 2 y 5 elementos)
   - "nivel_urgencia": string ("baja", "media" o "alta")

La clave "explicacion_clara" debe ser un texto que yo pueda leerle directamente al usuario,
explicándole qué está pasando de forma simple.

La clave "acciones_sugeridas" debe contener cosas concretas que el usuario puede hacer o preguntar.

TEXTO TÉCNICO ORIGINAL:
"""%s"""

ÁREA DEL OFICIO: %s
`, text, area)
}

// BuildDocumentPrompt returns the combined extract-and-explain prompt used with
// a staged document.
func BuildDocumentPrompt(area string) string {
	return fmt.Sprintf(`
Eres un traductor profesional de lenguaje técnico a lenguaje común.
Se adjunta un documento. Primero extrae su contenido textual y luego explícalo
de forma sencilla, amable y profesional para un usuario promedio.

Instrucciones IMPORTANTES:
1. Responde SIEMPRE en español.
2. Mantén un tono tranquilo, empático y profesional.
3. Devuelve SOLO un JSON válido, sin texto extra, sin bloques `+"```json"+`.
4. El JSON debe tener exactamente estas claves:
   - "texto_extraido": string (el contenido del documento, fiel al original)
   - "explicacion_clara": string
   - "acciones_sugeridas": lista de strings (entre 2 y 5 elementos)
   - "nivel_urgencia": string ("baja", "media" o "alta")

La clave "explicacion_clara" debe explicar de forma simple qué dice el documento
y qué implica para el usuario.

La clave "acciones_sugeridas" debe contener cosas concretas que el usuario puede hacer o preguntar.

ÁREA DEL OFICIO: %s
`, area)
}
