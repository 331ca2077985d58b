package response

// SuccessResponse is returned by commands that only report success.
type SuccessResponse struct {
	Message string `json:"mensagem" example:"Fila atualizada com sucesso"`
}

// EnqueueResponse is returned when a customer joins the line.
type EnqueueResponse struct {
	Message  string `json:"mensagem" example:"Cliente adicionado com sucesso"`
	Position int    `json:"posicao" example:"3"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	// Machine-readable error code
	// example: NOT_FOUND
	Code string `json:"code"`

	// Human-readable message
	// example: Cliente não encontrado na posição especificada
	Message string `json:"message"`

	// Optional details, such as the validation error
	Details string `json:"details,omitempty"`
}

// Error codes returned by the API.
const (
	CodeNotFound        = "NOT_FOUND"
	CodeValidation      = "VALIDATION_ERROR"
	CodeInvalidPosition = "INVALID_POSITION"
)
