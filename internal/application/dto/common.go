package dto

// ErrorBody detalle de un error HTTP.
type ErrorBody struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// ErrorResponse sobre JSON único para todos los errores de la API:
// {"error":{"message":"...","status":404}}
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// NewError construye el sobre de error para un status y mensaje dados.
func NewError(status int, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorBody{Message: message, Status: status}}
}

// StatusResponse respuesta de los DELETE: {"status":"deleted"}.
type StatusResponse struct {
	Status string `json:"status"`
}
