package http

import (
	"fmt"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cargopilot-api/internal/application/ports"
)

const uploadField = "file"

// readUpload lee el archivo multipart del campo "file".
func readUpload(c *fiber.Ctx) (ports.FileUpload, error) {
	fh, err := c.FormFile(uploadField)
	if err != nil {
		return ports.FileUpload{}, &ValidationError{Details: map[string]string{uploadField: "archivo requerido"}}
	}
	f, err := fh.Open()
	if err != nil {
		return ports.FileUpload{}, fmt.Errorf("abrir archivo subido: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return ports.FileUpload{}, fmt.Errorf("leer archivo subido: %w", err)
	}
	return ports.FileUpload{Name: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Data: data}, nil
}
