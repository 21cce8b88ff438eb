package http

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const hhmmTag = "hhmm"

var hhmmRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidationError errores por campo; se serializa en ErrorResponse.Details.
type ValidationError struct {
	Details map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Details))
	for f, m := range e.Details {
		parts = append(parts, f+": "+m)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Validator validator/v10 con mensajes en inglés y nombres de campo del JSON.
type Validator struct {
	v     *validator.Validate
	trans ut.Translator
}

// NewValidator registra traducciones, nombres de campo y las reglas propias (hhmm).
func NewValidator() *Validator {
	v := validator.New()

	_en := en.New()
	uni := ut.New(_en, _en)
	trans, _ := uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v, trans)

	// json, form o query: el nombre que ve el cliente
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "form", "query"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation(hhmmTag, func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		return ok && hhmmRe.MatchString(s)
	})
	_ = v.RegisterTranslation(hhmmTag, trans,
		func(ut.Translator) error { return nil },
		func(_ ut.Translator, fe validator.FieldError) string {
			return fe.Field() + " must be a time in HH:MM format"
		})

	return &Validator{v: v, trans: trans}
}

// Struct valida s; devuelve *ValidationError con un mensaje por campo.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = fe.Translate(val.trans)
	}
	return &ValidationError{Details: details}
}

// ── Helpers de parseo ─────────────────────────────────────────────────────────

func bodyError(err error) *ValidationError {
	return &ValidationError{Details: map[string]string{"body": "cuerpo inválido: " + err.Error()}}
}

// bindJSON decodifica el cuerpo y lo valida.
func bindJSON(c *fiber.Ctx, val *Validator, out any) error {
	if err := c.BodyParser(out); err != nil {
		return bodyError(err)
	}
	return val.Struct(out)
}

// bindQuery decodifica la query string y la valida.
func bindQuery(c *fiber.Ctx, val *Validator, out any) error {
	if err := c.QueryParser(out); err != nil {
		return &ValidationError{Details: map[string]string{"query": err.Error()}}
	}
	return val.Struct(out)
}

// paramID lee un id numérico positivo de la ruta.
func paramID(c *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, &ValidationError{Details: map[string]string{name: "debe ser un entero positivo"}}
	}
	return id, nil
}

// paramUUID lee un id de cuenta (uuid) de la ruta.
func paramUUID(c *fiber.Ctx, name string) (string, error) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return "", &ValidationError{Details: map[string]string{name: "debe ser un uuid"}}
	}
	return id.String(), nil
}
