package services

import (
	"context"
	"path/filepath"
	"sync"

	"nexzen-backend/media"
	"nexzen-backend/models"
	"nexzen-backend/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryStore keeps products in memory and casts writes with the same schema
// the Mongo store uses. Stored products go through a BSON round trip so they
// compare the way decoded documents do.
type memoryStore struct {
	mu       sync.Mutex
	products map[string]models.Product
	created  []models.Document
	patches  []models.Document

	createErr error
	updateErr error
	findErr   error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{products: map[string]models.Product{}}
}

func (m *memoryStore) Create(ctx context.Context, doc models.Document) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.created = append(m.created, doc)
	if m.createErr != nil {
		return nil, m.createErr
	}
	p, err := store.BuildProduct(doc)
	if err != nil {
		return nil, err
	}
	p.ID = primitive.NewObjectID()
	if p, err = applySet(p, nil); err != nil {
		return nil, err
	}
	m.products[p.ID.Hex()] = p
	return &p, nil
}

func (m *memoryStore) FindAll(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findErr != nil {
		return nil, m.findErr
	}
	out := []models.Product{}
	for _, p := range m.products {
		out = append(out, p)
	}
	return out, nil
}

func (m *memoryStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.findErr != nil {
		return nil, m.findErr
	}
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *memoryStore) UpdateByID(ctx context.Context, id string, patch models.Document) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.patches = append(m.patches, patch)
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	set, err := store.BuildUpdate(patch)
	if err != nil {
		return nil, err
	}
	if p, err = applySet(p, set); err != nil {
		return nil, err
	}
	m.products[id] = p
	return &p, nil
}

func (m *memoryStore) DeleteByID(ctx context.Context, id string) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.products[id]
	if !ok {
		return nil, nil
	}
	delete(m.products, id)
	return &p, nil
}

func (m *memoryStore) Stats(ctx context.Context) (models.Stats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := models.Stats{TotalProducts: int64(len(m.products))}
	for _, p := range m.products {
		if p.Bestseller {
			stats.Bestsellers++
		}
	}
	return stats, nil
}

func (m *memoryStore) lastPatch() models.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.patches[len(m.patches)-1]
}

func (m *memoryStore) lastCreated() models.Document {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.created[len(m.created)-1]
}

func applySet(p models.Product, set bson.M) (models.Product, error) {
	raw, err := bson.Marshal(p)
	if err != nil {
		return p, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return p, err
	}
	for k, v := range set {
		doc[k] = v
	}
	if raw, err = bson.Marshal(doc); err != nil {
		return p, err
	}
	var out models.Product
	err = bson.UnmarshalWithRegistry(store.Registry, raw, &out)
	return out, err
}

// fakeUploader answers with a secure URL built from the file name unless a
// result or error is configured for that name.
type fakeUploader struct {
	mu      sync.Mutex
	calls   []string
	results map[string]media.Result
	errs    map[string]error
}

func (f *fakeUploader) Upload(ctx context.Context, localPath string) (media.Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, localPath)
	f.mu.Unlock()

	name := filepath.Base(localPath)
	if err := f.errs[name]; err != nil {
		return nil, err
	}
	if r, ok := f.results[name]; ok {
		return r, nil
	}
	return media.Structured{SecureURL: "https://res.cloudinary.com/demo/" + name}, nil
}

func (f *fakeUploader) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
