package handler

// Request and response bodies. These types are also used by swag to generate
// the OpenAPI documentation.

// --- Request Types ---

// JargonRequest represents the text translation request body.
type JargonRequest struct {
	Texto      string `json:"texto" binding:"required" example:"La bomba de refrigerante está cavitando"`
	AreaOficio string `json:"area_oficio" example:"mecanica"`
}

// --- Response Types ---

// RootResponse is returned by GET /.
type RootResponse struct {
	Mensaje string `json:"mensaje" example:"Tech To Speak API operativa"`
}

// HealthResponse represents a health check response.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// TranscriptionResponse is returned by the speech-to-text endpoint.
type TranscriptionResponse struct {
	NombreArchivo               string  `json:"nombre_archivo" example:"nota.webm"`
	MIMEType                    string  `json:"mime_type" example:"audio/webm"`
	Texto                       string  `json:"texto" example:"La bomba de refrigerante está cavitando"`
	TiempoProcesamientoSegundos float64 `json:"tiempo_procesamiento_segundos" example:"1.254"`
}

// AudioExplainResponse is returned by the audio explanation endpoint.
type AudioExplainResponse struct {
	NombreArchivo     string   `json:"nombre_archivo" example:"nota.webm"`
	MIMEType          string   `json:"mime_type" example:"audio/webm"`
	TextoTranscrito   string   `json:"texto_transcrito" example:"La bomba de refrigerante está cavitando"`
	ExplicacionClara  string   `json:"explicacion_clara" example:"La bomba está formando burbujas y puede dañarse."`
	AccionesSugeridas []string `json:"acciones_sugeridas" example:"Apagar el equipo,Llamar al técnico"`
	NivelUrgencia     string   `json:"nivel_urgencia" example:"alta"`
}

// JargonResponse is returned by the text translation endpoint.
type JargonResponse struct {
	TextoOriginal     string   `json:"texto_original" example:"La bomba de refrigerante está cavitando"`
	ExplicacionClara  string   `json:"explicacion_clara" example:"La bomba está formando burbujas y puede dañarse."`
	AccionesSugeridas []string `json:"acciones_sugeridas" example:"Apagar el equipo,Llamar al técnico"`
	NivelUrgencia     string   `json:"nivel_urgencia" example:"alta"`
}

// FileExplainResponse is returned by the document translation endpoint.
type FileExplainResponse struct {
	NombreArchivo     string   `json:"nombre_archivo" example:"informe.pdf"`
	MIMEType          string   `json:"mime_type" example:"application/pdf"`
	TextoExtraido     string   `json:"texto_extraido" example:"Se detectó corrosión en la línea principal."`
	ExplicacionClara  string   `json:"explicacion_clara" example:"La tubería principal está oxidada."`
	AccionesSugeridas []string `json:"acciones_sugeridas" example:"Programar revisión,Pedir presupuesto"`
	NivelUrgencia     string   `json:"nivel_urgencia" example:"media"`
}

// ImageExplainResponse is returned by the image translation endpoint.
type ImageExplainResponse struct {
	TextoExtraido     string   `json:"texto_extraido" example:"ERROR 0x80070005"`
	ExplicacionClara  string   `json:"explicacion_clara" example:"El equipo no tiene permisos para esa acción."`
	AccionesSugeridas []string `json:"acciones_sugeridas" example:"Pedir acceso al administrador"`
	NivelUrgencia     string   `json:"nivel_urgencia" example:"baja"`
}

// ErrorResponseBody represents an error response.
type ErrorResponseBody struct {
	Detail string `json:"detail" example:"El archivo está vacío"`
	Code   string `json:"code" example:"EMPTY_FILE"`
}
