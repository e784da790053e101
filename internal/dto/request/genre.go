package request

type GenreRequest struct {
	AdminCredentials
	Name string `json:"name" validate:"required,min=1,max=100"`
}
