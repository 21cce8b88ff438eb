package entity

import "time"

// Client empresa cliente para la que se realizan misiones.
type Client struct {
	ID                int64
	CompanyName       string
	Email             string
	ContactName       string
	PhoneNumber       string
	Address           string
	Status            string
	ProfilePictureURL string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
