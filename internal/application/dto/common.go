package dto

// ErrorResponse cuerpo de error HTTP para fallos fuera de la taxonomía de dominio
// (token ausente, rol insuficiente, cuerpo ilegible).
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
