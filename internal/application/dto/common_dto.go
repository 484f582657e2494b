package dto

// ErrorResponse respuesta de error estándar de la API.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MensajeResponse respuesta informativa (búsquedas sin resultados).
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}
