// Package services holds the product write pipeline and read pass-throughs.
package services

import (
	"context"
	"fmt"
	"time"

	"nexzen-backend/media"
	"nexzen-backend/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ProductStore persists product documents. Lookups by id return nil, nil
// when nothing matches.
type ProductStore interface {
	Create(ctx context.Context, doc models.Document) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	UpdateByID(ctx context.Context, id string, patch models.Document) (*models.Product, error)
	DeleteByID(ctx context.Context, id string) (*models.Product, error)
	Stats(ctx context.Context) (models.Stats, error)
}

type ProductService struct {
	store    ProductStore
	uploader media.Uploader
	now      func() time.Time
}

func NewProductService(store ProductStore, uploader media.Uploader) *ProductService {
	return &ProductService{store: store, uploader: uploader, now: time.Now}
}

var textFields = []string{"name", "description", "price", "category", "subCategory"}

// Create normalizes fields, uploads the provided slot files and stores a new
// product. Slots without a file are stored as empty strings.
func (s *ProductService) Create(ctx context.Context, fields models.Document, uploads models.Uploads) (*models.Product, error) {
	doc := models.Document{
		"sizes":      sizesOrEmpty(fields["sizes"]),
		"sizeChart":  sizeChartOrEmpty(fields["sizeChart"]),
		"bestseller": fields["bestseller"] == "true",
	}
	for _, key := range textFields {
		if v, ok := fields[key]; ok {
			doc[key] = v
		}
	}

	images, err := s.uploadImages(ctx, "AddProduct", uploads)
	if err != nil {
		return nil, err
	}
	for i, slot := range models.ImageSlots {
		doc[slot] = images[i]
	}
	doc["date"] = s.now().UnixMilli()

	product, err := s.store.Create(ctx, doc)
	if err != nil {
		logOrphans(ctx, "AddProduct", images)
		return nil, fmt.Errorf("create product: %w", err)
	}
	return product, nil
}

// Update patches only the supplied fields. Slots are replaced only when a new
// file was uploaded for them in this request. The creation date never changes.
func (s *ProductService) Update(ctx context.Context, id string, fields models.Document, uploads models.Uploads) (*models.Product, error) {
	patch := make(models.Document, len(fields)+len(models.ImageSlots))
	for k, v := range fields {
		patch[k] = v
	}
	delete(patch, "date")

	// Unlike Create, text that fails to decode stays in the patch as is.
	for _, key := range []string{"sizes", "sizeChart"} {
		text, ok := patch[key].(string)
		if !ok || text == "" {
			continue
		}
		if parsed := ParseOrDefault[any](text, nil); parsed.OK() {
			patch[key] = parsed.Value
		}
	}

	images, err := s.uploadImages(ctx, "UpdateProduct", uploads)
	if err != nil {
		return nil, err
	}
	for i, slot := range models.ImageSlots {
		if images[i] != "" {
			patch[slot] = images[i]
		}
	}

	product, err := s.store.UpdateByID(ctx, id, patch)
	if err != nil {
		logOrphans(ctx, "UpdateProduct", images)
		return nil, fmt.Errorf("update product %s: %w", id, err)
	}
	return product, nil
}

func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.store.FindAll(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.store.FindByID(ctx, id)
}

func (s *ProductService) Remove(ctx context.Context, id string) (*models.Product, error) {
	return s.store.DeleteByID(ctx, id)
}

func (s *ProductService) Stats(ctx context.Context) (models.Stats, error) {
	return s.store.Stats(ctx)
}

// uploadImages uploads every provided slot concurrently and waits for all of
// them. The first failure is returned; references already obtained are kept
// in the result so they can be reported.
func (s *ProductService) uploadImages(ctx context.Context, component string, uploads models.Uploads) ([4]string, error) {
	var refs [4]string

	g, gctx := errgroup.WithContext(ctx)
	for i, slot := range models.ImageSlots {
		path := uploads[slot]
		if path == "" {
			continue
		}
		i, slot := i, slot
		g.Go(func() error {
			res, err := s.uploader.Upload(gctx, path)
			if err != nil {
				return fmt.Errorf("upload %s: %w", slot, err)
			}
			refs[i] = media.Reference(res)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logOrphans(ctx, component, refs)
		return refs, err
	}
	return refs, nil
}

// logOrphans records uploaded references that no stored product points to.
// Nothing is deleted from the media host.
func logOrphans(ctx context.Context, component string, refs [4]string) {
	var orphaned []string
	for _, ref := range refs {
		if ref != "" {
			orphaned = append(orphaned, ref)
		}
	}
	if len(orphaned) == 0 {
		return
	}
	log.Ctx(ctx).Warn().Str("component", component).Strs("references", orphaned).Msg("uploaded images are not referenced by any product")
}

func sizesOrEmpty(v any) []string {
	switch sizes := v.(type) {
	case []string:
		return sizes
	case []any:
		out := make([]string, 0, len(sizes))
		for _, size := range sizes {
			out = append(out, fmt.Sprint(size))
		}
		return out
	case string:
		// Decoded as []any so numeric sizes such as [38,40] are kept.
		if parsed := ParseOrDefault[[]any](sizes, nil); parsed.OK() && parsed.Value != nil {
			return sizesOrEmpty(parsed.Value)
		}
	}
	return []string{}
}

func sizeChartOrEmpty(v any) []any {
	switch chart := v.(type) {
	case []any:
		return chart
	case []string:
		out := make([]any, len(chart))
		for i, entry := range chart {
			out[i] = entry
		}
		return out
	case string:
		if parsed := ParseOrDefault(chart, []any{}); parsed.Value != nil {
			return parsed.Value
		}
	}
	return []any{}
}
