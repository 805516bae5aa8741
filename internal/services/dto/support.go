package dto

type CreateTicketRequest struct {
	Name    string `json:"name" validate:"required,notblank,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,notblank,max=5000"`
}
