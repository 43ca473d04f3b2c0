package rest

type ResponseError struct {
	Message string `json:"error"`
}
