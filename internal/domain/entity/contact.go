package entity

import "time"

// MessageStatus estado de lectura de un mensaje de contacto.
type MessageStatus string

const (
	MessageNouveau MessageStatus = "Nouveau"
	MessageLu      MessageStatus = "Lu"
)

// ContactMessage mensaje recibido por el formulario público.
type ContactMessage struct {
	ID        int64
	Name      string
	Email     string
	Message   string
	Status    MessageStatus
	CreatedAt time.Time
}
