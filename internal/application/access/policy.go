// Package access define el principal autenticado y los predicados de autorización
// que se evalúan antes de cada handler.
package access

import (
	"strings"

	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
)

// Principal usuario autenticado resuelto a partir del token.
type Principal struct {
	UserID      string
	Email       string
	FullName    string
	UserType    entity.UserType
	Status      entity.Status
	ChauffeurID *int64 // nil si la cuenta no tiene perfil de conductor
}

// Decision resultado de un predicado: permitido o denegado con motivo.
type Decision struct {
	Allowed bool
	Reason  string
}

// Allow decisión positiva.
func Allow() Decision { return Decision{Allowed: true} }

// Deny decisión negativa con motivo.
func Deny(reason string) Decision { return Decision{Reason: reason} }

// Predicate evalúa si el principal puede actuar sobre el recurso indicado
// (resourceID vacío cuando la ruta no apunta a un recurso concreto).
type Predicate func(p *Principal, resourceID string) Decision

// Authenticated exige un principal activo.
func Authenticated() Predicate {
	return func(p *Principal, _ string) Decision {
		if p == nil || p.UserID == "" {
			return Deny("autenticación requerida")
		}
		if p.Status != entity.StatusActif {
			return Deny("cuenta inactiva")
		}
		return Allow()
	}
}

// HasRole exige que el tipo de usuario esté en la lista.
func HasRole(roles ...entity.UserType) Predicate {
	return func(p *Principal, _ string) Decision {
		if p == nil {
			return Deny("autenticación requerida")
		}
		for _, r := range roles {
			if p.UserType == r {
				return Allow()
			}
		}
		names := make([]string, 0, len(roles))
		for _, r := range roles {
			names = append(names, string(r))
		}
		return Deny("rol requerido: " + strings.Join(names, ", "))
	}
}

// IsChauffeur exige un perfil de conductor vinculado a la cuenta.
func IsChauffeur() Predicate {
	return func(p *Principal, _ string) Decision {
		if p == nil || p.ChauffeurID == nil {
			return Deny("la cuenta no tiene perfil de conductor")
		}
		return Allow()
	}
}

// SelfOnly exige que el recurso sea la propia cuenta del principal.
func SelfOnly() Predicate {
	return func(p *Principal, resourceID string) Decision {
		if p == nil || resourceID == "" || p.UserID != resourceID {
			return Deny("solo se permite sobre la propia cuenta")
		}
		return Allow()
	}
}

// All se cumple si todos los predicados se cumplen; devuelve el primer rechazo.
func All(preds ...Predicate) Predicate {
	return func(p *Principal, resourceID string) Decision {
		for _, pred := range preds {
			if d := pred(p, resourceID); !d.Allowed {
				return d
			}
		}
		return Allow()
	}
}

// Any se cumple si alguno se cumple; si ninguno, devuelve el último rechazo.
func Any(preds ...Predicate) Predicate {
	return func(p *Principal, resourceID string) Decision {
		last := Deny("ningún predicado satisfecho")
		for _, pred := range preds {
			d := pred(p, resourceID)
			if d.Allowed {
				return d
			}
			last = d
		}
		return last
	}
}

// Predicados de las superficies de la API.
var (
	AdminOnly  = All(Authenticated(), HasRole(entity.UserTypeSousAdmin))
	DriverOnly = All(Authenticated(), HasRole(entity.UserTypeChauffeur))
)
