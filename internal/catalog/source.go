package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sagarmatha/storefront/pkg/logger"
)

// Source supplies the ordered product collection the engine operates on.
// The engine does not care where the records come from; the collection is
// read once at startup and treated as read-only afterwards.
type Source interface {
	Products(ctx context.Context) ([]Product, error)
}

// StaticSource serves the built-in fixture catalog.
type StaticSource struct{}

// NewStaticSource returns the fixture-backed source.
func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// Products returns a copy of the fixture collection.
func (s *StaticSource) Products(_ context.Context) ([]Product, error) {
	out := make([]Product, len(fixtureProducts))
	copy(out, fixtureProducts)
	return out, nil
}

// FileSource reads the catalog from a JSON array on disk.
type FileSource struct {
	path string
}

// NewFileSource returns a source reading from the given path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Products reads and decodes the catalog file.
func (s *FileSource) Products(_ context.Context) ([]Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", s.path, err)
	}
	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog %q: %w", s.path, err)
	}
	return products, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Load pulls the collection from the source and runs data-quality checks.
// Violations are logged as warnings, never returned as errors: a product
// with a sloppy record still belongs in the catalog, matching how the shop
// treats its static data.
func Load(ctx context.Context, source Source, logg *logger.Logger) ([]Product, error) {
	products, err := source.Products(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[int]struct{}, len(products))
	for _, product := range products {
		pctx := logg.WithProductID(ctx, product.ID)

		if err := validate.Struct(product); err != nil {
			if errs, ok := err.(validator.ValidationErrors); ok {
				for _, fieldErr := range errs {
					logg.Warn(logg.WithField(pctx, "field", fieldErr.Field()), "product record failed validation")
				}
			} else {
				logg.Error(pctx, "product validation", err)
			}
		}

		if product.Price.Cmp(product.OriginalPrice) > 0 {
			logg.Warn(pctx, "product price exceeds original price")
		}
		if _, dup := seen[product.ID]; dup {
			logg.Warn(pctx, "duplicate product id in catalog")
		}
		seen[product.ID] = struct{}{}
	}

	return products, nil
}
