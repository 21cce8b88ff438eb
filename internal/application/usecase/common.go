package usecase

import (
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/application/dto"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

func listParams(q *dto.PageQuery) repository.ListParams {
	q.Normalize()
	return repository.ListParams{Search: q.Search, Limit: q.Limit, Offset: q.Offset()}
}

// objectPath ruta del objeto en el bucket: <folder>/<timestamp>-<nombre>.
func objectPath(folder string, now time.Time, name string) string {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.Map(func(r rune) rune {
		if r == ' ' || r == '/' || r == '?' || r == '#' {
			return '_'
		}
		return r
	}, base)
	if base == "." || base == "" {
		base = "file"
	}
	return fmt.Sprintf("%s/%d-%s", folder, now.UnixMilli(), base)
}

func parseOptionalDay(field, s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	d, err := dto.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, field)
	}
	return &d.Time, nil
}
