package service

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/trinextgen/site-api/internal/infra/blob"
	"github.com/trinextgen/site-api/internal/modules/model"
	"gorm.io/gorm"
)

// ledgerStore is an in-memory stand-in for the clients, client_projects and
// payments tables. fakeTx restores a snapshot when the unit of work fails.
type ledgerStore struct {
	clients  map[uuid.UUID]model.Client
	projects map[uuid.UUID]model.ClientProject
	payments map[uuid.UUID]model.Payment

	failAdjustPaid error
}

func newLedgerStore() *ledgerStore {
	return &ledgerStore{
		clients:  map[uuid.UUID]model.Client{},
		projects: map[uuid.UUID]model.ClientProject{},
		payments: map[uuid.UUID]model.Payment{},
	}
}

type fakeTx struct{ s *ledgerStore }

func (t fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	clients, projects, payments := maps.Clone(t.s.clients), maps.Clone(t.s.projects), maps.Clone(t.s.payments)
	if err := fn(ctx); err != nil {
		t.s.clients, t.s.projects, t.s.payments = clients, projects, payments
		return err
	}
	return nil
}

type fakeClients struct{ s *ledgerStore }

func (f fakeClients) Create(_ context.Context, c *model.Client) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.CreatedAt = time.Now()
	f.s.clients[c.ID] = *c
	return nil
}

func (f fakeClients) Get(_ context.Context, id uuid.UUID) (*model.Client, error) {
	c, ok := f.s.clients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &c, nil
}

func (f fakeClients) List(context.Context) ([]model.Client, error) {
	out := make([]model.Client, 0, len(f.s.clients))
	for _, c := range f.s.clients {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f fakeClients) Save(_ context.Context, c *model.Client) error {
	old, ok := f.s.clients[c.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	next := *c
	next.TotalEarnings = old.TotalEarnings
	f.s.clients[c.ID] = next
	return nil
}

func (f fakeClients) Delete(_ context.Context, id uuid.UUID) error {
	for pid, p := range f.s.payments {
		if p.ClientID == id {
			delete(f.s.payments, pid)
		}
	}
	for pid, p := range f.s.projects {
		if p.ClientID == id {
			delete(f.s.projects, pid)
		}
	}
	if _, ok := f.s.clients[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.s.clients, id)
	return nil
}

func (f fakeClients) AdjustEarnings(_ context.Context, id uuid.UUID, delta float64) error {
	c, ok := f.s.clients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.TotalEarnings += delta
	f.s.clients[id] = c
	return nil
}

type fakeProjects struct{ s *ledgerStore }

func (f fakeProjects) Create(_ context.Context, p *model.ClientProject) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.CreatedAt = time.Now()
	stored := *p
	stored.Client = nil
	f.s.projects[p.ID] = stored
	return nil
}

func (f fakeProjects) Get(_ context.Context, id uuid.UUID) (*model.ClientProject, error) {
	p, ok := f.s.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	if c, ok := f.s.clients[p.ClientID]; ok {
		p.Client = &c
	}
	return &p, nil
}

func (f fakeProjects) List(context.Context) ([]model.ClientProject, error) {
	out := make([]model.ClientProject, 0, len(f.s.projects))
	for _, p := range f.s.projects {
		out = append(out, p)
	}
	return out, nil
}

func (f fakeProjects) ListByClient(_ context.Context, clientID uuid.UUID) ([]model.ClientProject, error) {
	return f.ListByClientIDs(context.Background(), []uuid.UUID{clientID})
}

func (f fakeProjects) ListByClientIDs(_ context.Context, ids []uuid.UUID) ([]model.ClientProject, error) {
	out := []model.ClientProject{}
	for _, p := range f.s.projects {
		for _, id := range ids {
			if p.ClientID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func (f fakeProjects) ListByIDs(_ context.Context, ids []uuid.UUID) ([]model.ClientProject, error) {
	out := []model.ClientProject{}
	for _, id := range ids {
		if p, ok := f.s.projects[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakeProjects) Save(_ context.Context, p *model.ClientProject) error {
	if _, ok := f.s.projects[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *p
	stored.Client = nil
	f.s.projects[p.ID] = stored
	return nil
}

func (f fakeProjects) UpdateStatus(_ context.Context, id uuid.UUID, status string) error {
	p, ok := f.s.projects[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.Status = status
	f.s.projects[id] = p
	return nil
}

func (f fakeProjects) Delete(_ context.Context, id uuid.UUID) error {
	for pid, p := range f.s.payments {
		if p.ProjectID != nil && *p.ProjectID == id {
			delete(f.s.payments, pid)
		}
	}
	if _, ok := f.s.projects[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.s.projects, id)
	return nil
}

func (f fakeProjects) AdjustPaid(_ context.Context, id uuid.UUID, delta float64) error {
	if f.s.failAdjustPaid != nil {
		return f.s.failAdjustPaid
	}
	p, ok := f.s.projects[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.AdvancePaid += delta
	p.RemainingAmount -= delta
	f.s.projects[id] = p
	return nil
}

type fakePayments struct{ s *ledgerStore }

func (f fakePayments) Create(_ context.Context, p *model.Payment) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	f.s.payments[p.ID] = *p
	return nil
}

func (f fakePayments) Get(_ context.Context, id uuid.UUID) (*model.Payment, error) {
	p, ok := f.s.payments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (f fakePayments) ListByClient(_ context.Context, clientID uuid.UUID) ([]model.Payment, error) {
	out := []model.Payment{}
	for _, p := range f.s.payments {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakePayments) ListByProject(_ context.Context, projectID uuid.UUID) ([]model.Payment, error) {
	out := []model.Payment{}
	for _, p := range f.s.payments {
		if p.ProjectID != nil && *p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f fakePayments) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.s.payments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.s.payments, id)
	return nil
}

// memBlob keeps uploaded objects in memory.
type memBlob struct {
	mu      sync.Mutex
	objects map[string][]byte
	putErr  error
}

var _ blob.Store = (*memBlob)(nil)

func newMemBlob() *memBlob { return &memBlob{objects: map[string][]byte{}} }

func (m *memBlob) Put(_ context.Context, key, contentType string, body []byte, _ map[string]string) (*blob.UploadedMeta, error) {
	if m.putErr != nil {
		return nil, m.putErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = body
	return &blob.UploadedMeta{Bucket: "test-bucket", Key: key, MIME: contentType, SizeB: int64(len(body))}, nil
}

func (m *memBlob) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	return "https://blob.test/" + key + "?sig=abc", nil
}

func (m *memBlob) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// ledgerFixture wires the three ledger services over one in-memory store.
type ledgerFixture struct {
	store    *ledgerStore
	blobs    *memBlob
	clients  ClientService
	projects ClientProjectService
	payments PaymentService
}
