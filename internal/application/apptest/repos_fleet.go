package apptest

import (
	"context"
	"sort"
	"sync"

	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/entity"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

// ─── Clients ─────────────────────────────────────────────────────────────────

// ClientRepo clientes en memoria.
type ClientRepo struct {
	mu      sync.Mutex
	seq     int64
	Clients map[int64]*entity.Client
}

// NewClientRepo construye el repositorio vacío.
func NewClientRepo() *ClientRepo {
	return &ClientRepo{Clients: map[int64]*entity.Client{}}
}

func (r *ClientRepo) Create(_ context.Context, c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.Clients {
		if e.Email == c.Email {
			return domain.ErrDuplicate
		}
	}
	if c.ID == 0 {
		r.seq++
		c.ID = r.seq
	} else if c.ID > r.seq {
		r.seq = c.ID
	}
	cp := *c
	r.Clients[c.ID] = &cp
	return nil
}

func (r *ClientRepo) GetByID(_ context.Context, id int64) (*entity.Client, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.Clients[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *ClientRepo) List(_ context.Context, p repository.ListParams) ([]*entity.Client, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Client
	for _, c := range r.Clients {
		if contains(p.Search, c.CompanyName, c.Email, c.ContactName) {
			cp := *c
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, p), len(all), nil
}

func (r *ClientRepo) Update(_ context.Context, c *entity.Client) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Clients[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.Clients[c.ID] = &cp
	return nil
}

func (r *ClientRepo) UpdateProfilePicture(_ context.Context, id int64, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.Clients[id]
	if !ok {
		return domain.ErrNotFound
	}
	c.ProfilePictureURL = url
	return nil
}

func (r *ClientRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Clients[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.Clients, id)
	return nil
}

// ─── Véhicules ───────────────────────────────────────────────────────────────

// VehiculeRepo vehículos y entretiens en memoria.
type VehiculeRepo struct {
	mu         sync.Mutex
	seq        int64
	Vehicules  map[int64]*entity.Vehicule
	Entretiens map[int64]*entity.Entretien
}

// NewVehiculeRepo construye el repositorio vacío.
func NewVehiculeRepo() *VehiculeRepo {
	return &VehiculeRepo{
		Vehicules:  map[int64]*entity.Vehicule{},
		Entretiens: map[int64]*entity.Entretien{},
	}
}

func (r *VehiculeRepo) Create(_ context.Context, v *entity.Vehicule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.Vehicules {
		if e.Immatriculation == v.Immatriculation {
			return domain.ErrDuplicate
		}
	}
	if v.ID == 0 {
		r.seq++
		v.ID = r.seq
	} else if v.ID > r.seq {
		r.seq = v.ID
	}
	cp := *v
	r.Vehicules[v.ID] = &cp
	return nil
}

func (r *VehiculeRepo) GetByID(_ context.Context, id int64) (*entity.Vehicule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.Vehicules[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, nil
}

func (r *VehiculeRepo) GetByChauffeur(_ context.Context, chauffeurID int64) (*entity.Vehicule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.Vehicules {
		if v.ChauffeurActuelID != nil && *v.ChauffeurActuelID == chauffeurID {
			cp := *v
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *VehiculeRepo) List(_ context.Context, p repository.ListParams) ([]*entity.Vehicule, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Vehicule
	for _, v := range r.Vehicules {
		if contains(p.Search, v.Immatriculation, v.Marque) {
			cp := *v
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, p), len(all), nil
}

func (r *VehiculeRepo) Update(_ context.Context, v *entity.Vehicule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Vehicules[v.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *v
	r.Vehicules[v.ID] = &cp
	return nil
}

func (r *VehiculeRepo) UpdatePhoto(_ context.Context, id int64, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.Vehicules[id]
	if !ok {
		return domain.ErrNotFound
	}
	v.PhotoURL = url
	return nil
}

func (r *VehiculeRepo) AddEntretien(_ context.Context, e *entity.Entretien) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	e.ID = r.seq
	cp := *e
	r.Entretiens[e.ID] = &cp
	return nil
}

func (r *VehiculeRepo) GetEntretien(_ context.Context, id int64) (*entity.Entretien, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.Entretiens[id]; ok {
		cp := *e
		return &cp, nil
	}
	return nil, nil
}

func (r *VehiculeRepo) UpdateEntretien(_ context.Context, e *entity.Entretien) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Entretiens[e.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *e
	r.Entretiens[e.ID] = &cp
	return nil
}

func (r *VehiculeRepo) DeleteEntretien(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Entretiens[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.Entretiens, id)
	return nil
}

func (r *VehiculeRepo) ListEntretiens(_ context.Context, vehiculeID int64) ([]*entity.Entretien, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Entretien
	for _, e := range r.Entretiens {
		if e.VehiculeID == vehiculeID {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateEntretien.After(out[j].DateEntretien) })
	return out, nil
}

// ─── Incidents ───────────────────────────────────────────────────────────────

// IncidentRepo incidentes en memoria.
type IncidentRepo struct {
	mu        sync.Mutex
	Incidents []*entity.Incident
}

func (r *IncidentRepo) Create(_ context.Context, i *entity.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i.ID = int64(len(r.Incidents) + 1)
	cp := *i
	r.Incidents = append(r.Incidents, &cp)
	return nil
}

func (r *IncidentRepo) ListByChauffeur(_ context.Context, chauffeurID int64) ([]*entity.Incident, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Incident
	for _, i := range r.Incidents {
		if i.ChauffeurID == chauffeurID {
			cp := *i
			out = append(out, &cp)
		}
	}
	return out, nil
}

// ─── Contact ─────────────────────────────────────────────────────────────────

// ContactRepo mensajes de contacto en memoria.
type ContactRepo struct {
	mu       sync.Mutex
	seq      int64
	Messages map[int64]*entity.ContactMessage
}

// NewContactRepo construye el repositorio vacío.
func NewContactRepo() *ContactRepo {
	return &ContactRepo{Messages: map[int64]*entity.ContactMessage{}}
}

func (r *ContactRepo) Create(_ context.Context, m *entity.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	m.ID = r.seq
	cp := *m
	r.Messages[m.ID] = &cp
	return nil
}

func (r *ContactRepo) GetByID(_ context.Context, id int64) (*entity.ContactMessage, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.Messages[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (r *ContactRepo) List(_ context.Context, p repository.ListParams) ([]*entity.ContactMessage, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.ContactMessage
	for _, m := range r.Messages {
		if contains(p.Search, m.Name, m.Email) {
			cp := *m
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })
	return page(all, p), len(all), nil
}

func (r *ContactRepo) UpdateStatus(_ context.Context, id int64, status entity.MessageStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.Messages[id]
	if !ok {
		return domain.ErrNotFound
	}
	m.Status = status
	return nil
}

func (r *ContactRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Messages[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.Messages, id)
	return nil
}

// ─── Cartes ──────────────────────────────────────────────────────────────────

// CarteRepo tarjetas en memoria.
type CarteRepo struct {
	mu     sync.Mutex
	seq    int64
	Cartes map[int64]*entity.Carte
}

// NewCarteRepo construye el repositorio vacío.
func NewCarteRepo() *CarteRepo {
	return &CarteRepo{Cartes: map[int64]*entity.Carte{}}
}

func (r *CarteRepo) Create(_ context.Context, c *entity.Carte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.Cartes {
		if e.CardNumber == c.CardNumber {
			return domain.ErrDuplicate
		}
	}
	r.seq++
	c.ID = r.seq
	cp := *c
	r.Cartes[c.ID] = &cp
	return nil
}

func (r *CarteRepo) GetByID(_ context.Context, id int64) (*entity.Carte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.Cartes[id]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (r *CarteRepo) List(_ context.Context, p repository.ListParams) ([]*entity.Carte, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var all []*entity.Carte
	for _, c := range r.Cartes {
		if contains(p.Search, c.CardNumber) {
			cp := *c
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return page(all, p), len(all), nil
}

func (r *CarteRepo) Update(_ context.Context, c *entity.Carte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Cartes[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.Cartes[c.ID] = &cp
	return nil
}

func (r *CarteRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.Cartes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.Cartes, id)
	return nil
}
