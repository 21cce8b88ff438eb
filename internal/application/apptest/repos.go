package apptest

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

var (
	_ repository.UserRepository      = (*UserRepo)(nil)
	_ repository.ChauffeurRepository = (*ChauffeurRepo)(nil)
	_ repository.MissionRepository   = (*MissionRepo)(nil)
	_ repository.ClientRepository    = (*ClientRepo)(nil)
	_ repository.VehiculeRepository  = (*VehiculeRepo)(nil)
	_ repository.IncidentRepository  = (*IncidentRepo)(nil)
	_ repository.ContactRepository   = (*ContactRepo)(nil)
	_ repository.CarteRepository     = (*CarteRepo)(nil)
)

func page[T any](all []T, p repository.ListParams) []T {
	if p.Offset >= len(all) {
		return []T{}
	}
	end := len(all)
	if p.Limit > 0 && p.Offset+p.Limit < end {
		end = p.Offset + p.Limit
	}
	return all[p.Offset:end]
}

func contains(search string, fields ...string) bool {
	if search == "" {
		return true
	}
	s := strings.ToLower(search)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), s) {
			return true
		}
	}
	return false
}

// ─── Utilisateurs ────────────────────────────────────────────────────────────

// UserRepo repositorio de cuentas en memoria.
type UserRepo struct {
	mu        sync.Mutex
	Users     map[string]*entity.Utilisateur
	CreateErr error
}

// NewUserRepo construye el repositorio vacío.
func NewUserRepo() *UserRepo {
	return &UserRepo{Users: map[string]*entity.Utilisateur{}}
}

// Put inserta o reemplaza una cuenta (preparación de tests).
func (r *UserRepo) Put(u *entity.Utilisateur) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.Users[u.ID] = &cp
}

func (r *UserRepo) Create(_ context.Context, u *entity.Utilisateur) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, e := range r.Users {
		if e.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	cp := *u
	r.Users[u.ID] = &cp
	return nil
}

func (r *UserRepo) Upsert(_ context.Context, u *entity.Utilisateur) error {
	r.Put(u)
	return nil
}

func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.Utilisateur, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.Users[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.Utilisateur, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.Users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) List(_ context.Context, p repository.ListParams) ([]*entity.Utilisateur, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Utilisateur
	for _, u := range r.Users {
		if contains(p.Search, u.FullName, u.Email) {
			cp := *u
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].FullName < all[j].FullName })
	return page(all, p), len(all), nil
}

func (r *UserRepo) UpdateFullName(_ context.Context, id, fullName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.FullName = fullName
	return nil
}

func (r *UserRepo) UpdateStatus(_ context.Context, id string, status entity.Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.Users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.Status = status
	return nil
}

func (r *UserRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Users, id)
	return nil
}

// ─── Chauffeurs ──────────────────────────────────────────────────────────────

// ChauffeurRepo conductores, documentos y formaciones en memoria.
type ChauffeurRepo struct {
	mu         sync.Mutex
	seq        int64
	Chauffeurs map[int64]*entity.Chauffeur
	Documents  map[int64]*entity.DocumentChauffeur
	Formations []*entity.Formation
	CreateErr  error
}

// NewChauffeurRepo construye el repositorio vacío.
func NewChauffeurRepo() *ChauffeurRepo {
	return &ChauffeurRepo{
		Chauffeurs: map[int64]*entity.Chauffeur{},
		Documents:  map[int64]*entity.DocumentChauffeur{},
	}
}

func (r *ChauffeurRepo) next() int64 {
	r.seq++
	return r.seq
}

func (r *ChauffeurRepo) Create(_ context.Context, c *entity.Chauffeur) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.CreateErr != nil {
		return r.CreateErr
	}
	for _, e := range r.Chauffeurs {
		if e.ChauffeurCode == c.ChauffeurCode {
			return domain.ErrDuplicate
		}
	}
	if c.ID == 0 {
		c.ID = r.next()
	} else if c.ID > r.seq {
		r.seq = c.ID
	}
	cp := *c
	r.Chauffeurs[c.ID] = &cp
	return nil
}

func (r *ChauffeurRepo) GetByID(_ context.Context, id int64) (*entity.Chauffeur, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.Chauffeurs[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *ChauffeurRepo) GetByUserID(_ context.Context, userID string) (*entity.Chauffeur, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Chauffeurs {
		if c.UtilisateurID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ChauffeurRepo) List(_ context.Context, p repository.ListParams) ([]*entity.Chauffeur, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Chauffeur
	for _, c := range r.Chauffeurs {
		if contains(p.Search, c.ChauffeurCode, c.FullName, c.Email) {
			cp := *c
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, p), len(all), nil
}

func (r *ChauffeurRepo) UpdateProfilePicture(_ context.Context, id int64, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.Chauffeurs[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.ProfilePictureURL = url
	return nil
}

func (r *ChauffeurRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.Chauffeurs, id)
	return nil
}

func (r *ChauffeurRepo) AddDocument(_ context.Context, d *entity.DocumentChauffeur) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d.ID == 0 {
		d.ID = r.next()
	}
	cp := *d
	r.Documents[d.ID] = &cp
	return nil
}

func (r *ChauffeurRepo) GetDocument(_ context.Context, id int64) (*entity.DocumentChauffeur, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if d, ok := r.Documents[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, nil
}

func (r *ChauffeurRepo) ListDocuments(_ context.Context, chauffeurID int64) ([]*entity.DocumentChauffeur, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.DocumentChauffeur
	for _, d := range r.Documents {
		if d.ChauffeurID == chauffeurID {
			cp := *d
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// ListExpiringDocuments compara instantes en [from, to], igual que la consulta SQL contra timestamptz.
func (r *ChauffeurRepo) ListExpiringDocuments(_ context.Context, from, to time.Time) ([]*entity.ExpiringDocument, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.ExpiringDocument
	for _, d := range r.Documents {
		if d.ExpirationDate == nil || d.ExpirationDate.Before(from) || d.ExpirationDate.After(to) {
			continue
		}
		name := ""
		if c, ok := r.Chauffeurs[d.ChauffeurID]; ok {
			name = c.FullName
		}
		out = append(out, &entity.ExpiringDocument{DocumentChauffeur: *d, ChauffeurName: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpirationDate.Before(*out[j].ExpirationDate) })
	return out, nil
}

func (r *ChauffeurRepo) AddFormation(_ context.Context, f *entity.Formation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	f.ID = r.next()
	cp := *f
	r.Formations = append(r.Formations, &cp)
	return nil
}

func (r *ChauffeurRepo) ListFormations(_ context.Context, chauffeurID int64) ([]*entity.Formation, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Formation
	for _, f := range r.Formations {
		if f.ChauffeurID == chauffeurID {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ─── Missions ────────────────────────────────────────────────────────────────

// MissionRepo misiones en memoria; cuenta las escrituras de estado.
type MissionRepo struct {
	mu           sync.Mutex
	seq          int64
	Missions     map[int64]*entity.Mission
	StatusWrites int
}

// NewMissionRepo construye el repositorio vacío.
func NewMissionRepo() *MissionRepo {
	return &MissionRepo{Missions: map[int64]*entity.Mission{}}
}

func (r *MissionRepo) Create(_ context.Context, m *entity.Mission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.Missions {
		if e.MissionCode == m.MissionCode {
			return domain.ErrDuplicate
		}
	}
	if m.ID == 0 {
		r.seq++
		m.ID = r.seq
	} else if m.ID > r.seq {
		r.seq = m.ID
	}
	cp := *m
	r.Missions[m.ID] = &cp
	return nil
}

func (r *MissionRepo) GetByID(_ context.Context, id int64) (*entity.Mission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.Missions[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (r *MissionRepo) GetDetail(ctx context.Context, id int64) (*entity.MissionDetail, error) {
	m, err := r.GetByID(ctx, id)
	if m == nil || err != nil {
		return nil, err
	}
	return &entity.MissionDetail{Mission: *m}, nil
}

func (r *MissionRepo) List(_ context.Context, f repository.MissionFilter) ([]*entity.MissionDetail, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.MissionDetail
	for _, m := range r.Missions {
		if f.Status != nil && m.Status != *f.Status {
			continue
		}
		if f.ClientID != nil && m.ClientID != *f.ClientID {
			continue
		}
		if f.ChauffeurID != nil && m.ChauffeurDepartID != *f.ChauffeurID &&
			(m.ChauffeurArriveeID == nil || *m.ChauffeurArriveeID != *f.ChauffeurID) {
			continue
		}
		if !contains(f.Search, m.MissionCode) {
			continue
		}
		all = append(all, &entity.MissionDetail{Mission: *m})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	return page(all, f.ListParams), len(all), nil
}

func (r *MissionRepo) ListActiveByChauffeur(_ context.Context, chauffeurID int64) ([]*entity.MissionDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.MissionDetail
	for _, m := range r.Missions {
		if m.ChauffeurDepartID == chauffeurID &&
			(m.Status == entity.MissionEnCours || m.Status == entity.MissionProgramme) {
			out = append(out, &entity.MissionDetail{Mission: *m})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *MissionRepo) ListRecentByChauffeur(_ context.Context, chauffeurID int64, limit int) ([]*entity.MissionDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.MissionDetail
	for _, m := range r.Missions {
		if m.ChauffeurDepartID == chauffeurID {
			out = append(out, &entity.MissionDetail{Mission: *m})
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MissionRepo) UpdateStatus(_ context.Context, id int64, status entity.MissionStatus, arrivee *time.Time, updatedAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.Missions[id]
	if !ok {
		return domain.ErrNotFound
	}
	r.StatusWrites++
	m.Status = status
	m.DateArriveeReelle = arrivee
	m.UpdatedAt = updatedAt
	return nil
}
