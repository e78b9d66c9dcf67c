package dto

// ErrorResponse cuerpo de error HTTP. Code distingue el tipo de falla
// (NOT_FOUND, CONFLICT, VALIDATION, INTERNAL); Rule detalla la regla de
// negocio violada cuando aplica.
type ErrorResponse struct {
	Code    string `json:"code"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}
