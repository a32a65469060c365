package entities

import "time"

// Client is a client-directory record.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The checkout flow embeds a copy of these fields into the order aggregate;
// the copy is taken at order time and is immune to later directory updates.
type Client struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Document  string    `json:"document"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
