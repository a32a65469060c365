package request

type ClientRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Document   string `json:"document" binding:"required"`
	Street     string `json:"street" binding:"required"`
	Number     string `json:"number" binding:"required"`
	Complement string `json:"complement"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	ZipCode    string `json:"zipCode" binding:"required"`
}
