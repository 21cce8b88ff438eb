package apptest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/cargopilot-api/internal/application/ports"
	"github.com/jhoicas/cargopilot-api/internal/domain"
	"github.com/jhoicas/cargopilot-api/internal/domain/repository"
)

// SentEvent evento registrado por Notifier.
type SentEvent struct {
	Room    string
	Event   string
	Payload any
}

// Notifier registra cada SendToRoom.
type Notifier struct {
	mu     sync.Mutex
	Events []SentEvent
}

// SendToRoom implementa ports.Notifier.
func (n *Notifier) SendToRoom(room, event string, payload any) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Events = append(n.Events, SentEvent{Room: room, Event: event, Payload: payload})
}

// Count número de eventos con ese nombre.
func (n *Notifier) Count(event string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, e := range n.Events {
		if e.Event == event {
			c++
		}
	}
	return c
}

// Identity proveedor de identidad en memoria con inyección de fallos.
type Identity struct {
	mu        sync.Mutex
	Users     map[string]*ports.IdentityUser
	Banned    map[string]bool
	Passwords map[string]string // email → password

	CreateErr error
	DeleteErr error
	BanErr    error
	Deleted   []string
}

// NewIdentity construye el doble vacío.
func NewIdentity() *Identity {
	return &Identity{
		Users:     map[string]*ports.IdentityUser{},
		Banned:    map[string]bool{},
		Passwords: map[string]string{},
	}
}

func (f *Identity) CreateUser(_ context.Context, in ports.CreateIdentityInput) (*ports.IdentityUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	for _, u := range f.Users {
		if u.Email == in.Email {
			return nil, domain.ErrEmailAlreadyExists
		}
	}
	u := &ports.IdentityUser{ID: uuid.NewString(), Email: in.Email, FullName: in.FullName}
	f.Users[u.ID] = u
	f.Banned[u.ID] = in.Banned
	f.Passwords[in.Email] = in.Password
	return u, nil
}

func (f *Identity) ListUsers(context.Context) ([]ports.IdentityUser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]ports.IdentityUser, 0, len(f.Users))
	for _, u := range f.Users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *Identity) UpdateFullName(_ context.Context, id, fullName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.Users[id]
	if !ok {
		return fmt.Errorf("%w: identidad %s", domain.ErrNotFound, id)
	}
	u.FullName = fullName
	return nil
}

func (f *Identity) SetBanned(_ context.Context, id string, banned bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.BanErr != nil {
		return f.BanErr
	}
	f.Banned[id] = banned
	return nil
}

func (f *Identity) UpdatePassword(_ context.Context, id, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.Users[id]
	if !ok {
		return fmt.Errorf("%w: identidad %s", domain.ErrNotFound, id)
	}
	f.Passwords[u.Email] = password
	return nil
}

func (f *Identity) DeleteUser(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	delete(f.Users, id)
	f.Deleted = append(f.Deleted, id)
	return nil
}

func (f *Identity) SignInWithPassword(_ context.Context, email, password string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.Passwords[email]; ok && p == password {
		return nil
	}
	return domain.ErrInvalidCredentials
}

// Mailer registra los envíos; Err simula un fallo SMTP.
type Mailer struct {
	mu   sync.Mutex
	Sent []string
	Err  error
}

func (m *Mailer) SendCredentials(_ context.Context, to, _, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, to)
	return nil
}

// BlobStore almacenamiento en memoria.
type BlobStore struct {
	mu      sync.Mutex
	Objects map[string][]byte // bucket/path → contenido
	Err     error
}

// NewBlobStore construye el doble vacío.
func NewBlobStore() *BlobStore {
	return &BlobStore{Objects: map[string][]byte{}}
}

func (b *BlobStore) Upload(_ context.Context, bucket, path string, data []byte, _ string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.Err != nil {
		return b.Err
	}
	b.Objects[bucket+"/"+path] = data
	return nil
}

func (b *BlobStore) PublicURL(bucket, path string) string {
	return "https://blob.test/public/" + bucket + "/" + path
}

func (b *BlobStore) SignedURL(_ context.Context, bucket, path string, expiresIn time.Duration) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.Objects[bucket+"/"+path]; !ok {
		return "", errors.New("objeto no encontrado")
	}
	return fmt.Sprintf("https://blob.test/sign/%s/%s?expires=%d", bucket, path, int(expiresIn.Seconds())), nil
}

// PDF generador que devuelve una cabecera PDF mínima.
type PDF struct {
	Last ports.MissionSheet
}

func (p *PDF) Generate(sheet ports.MissionSheet) ([]byte, error) {
	p.Last = sheet
	return []byte("%PDF-1.4\n"), nil
}

// TxRunner ejecuta fn directamente sobre los repositorios en memoria (sin rollback).
type TxRunner struct {
	Users      *UserRepo
	Chauffeurs *ChauffeurRepo
}

func (r *TxRunner) RunAccounts(_ context.Context, fn func(repository.UserRepository, repository.ChauffeurRepository) error) error {
	return fn(r.Users, r.Chauffeurs)
}
