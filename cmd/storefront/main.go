package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/sagarmatha/storefront/internal/catalog"
	"github.com/sagarmatha/storefront/internal/wishlist"
	"github.com/sagarmatha/storefront/pkg/config"
	"github.com/sagarmatha/storefront/pkg/enums"
	"github.com/sagarmatha/storefront/pkg/kvslot"
	"github.com/sagarmatha/storefront/pkg/logger"
	"github.com/sagarmatha/storefront/pkg/metrics"
	"github.com/sagarmatha/storefront/pkg/redis"
)

func main() {
	ctx := context.Background()
	// bootstrap logger early (then re-init after config load)
	logg := logger.New(logger.Options{ServiceName: "storefront"})

	_ = godotenv.Load()

	// Flags
	cmd := flag.String("cmd", "query", "command: query|facets|product|wish|wishlist|clear")

	// Query flags
	category := flag.String("category", "all", "category filter: all|tools|electrical|lighting")
	sortBy := flag.String("sort", "", "sort key: featured|price-low-high|price-high-low|rating|newest")
	search := flag.String("search", "", "substring match against name, brand and category")
	brands := flag.String("brands", "", "comma separated brand filter")
	powers := flag.String("powers", "", "comma separated power rating filter")
	minPrice := flag.String("min-price", "", "lower price bound, inclusive")
	maxPrice := flag.String("max-price", "", "upper price bound, inclusive")
	minRating := flag.Float64("min-rating", 0, "minimum rating, inclusive")

	// Command-specific flags
	id := flag.Int("id", 0, "product id (for product and wish)")

	flag.Parse()

	cfg, err := config.Load()
	requireResource(ctx, logg, "config", err)

	logg = logger.New(logger.Options{
		ServiceName: "storefront",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx = logg.WithFields(ctx, map[string]any{
		"env": cfg.App.Env,
		"cmd": *cmd,
	})

	registry := prometheus.NewRegistry()

	var source catalog.Source
	if cfg.Catalog.SourcePath != "" {
		source = catalog.NewFileSource(cfg.Catalog.SourcePath)
	} else {
		source = catalog.NewStaticSource()
	}

	svc, err := catalog.NewService(ctx, catalog.ServiceParams{
		Source:  source,
		Logger:  logg,
		Metrics: metrics.NewCatalogMetrics(registry),
	})
	requireResource(ctx, logg, "catalog service", err)

	slot, err := openSlot(ctx, cfg)
	requireResource(ctx, logg, "wishlist slot", err)

	store, err := wishlist.NewStore(ctx, wishlist.StoreParams{
		Slot:    slot,
		Key:     cfg.Wishlist.Key,
		Logger:  logg,
		Metrics: metrics.NewWishlistMetrics(registry),
	})
	requireResource(ctx, logg, "wishlist store", err)
	defer func() {
		if err := store.Close(ctx); err != nil {
			logg.Error(ctx, "failed to close wishlist store", err)
		}
	}()

	switch *cmd {
	case "query":
		spec := catalog.DefaultFilterSpec()
		spec.Category = *category
		spec.Search = *search
		spec.Rating = *minRating
		spec.Brands = splitList(*brands)
		spec.Power = splitList(*powers)
		spec.PriceMin = catalog.ParsePriceBound(*minPrice, catalog.DefaultPriceMin)
		spec.PriceMax = catalog.ParsePriceBound(*maxPrice, catalog.DefaultPriceMax)

		key := enums.SortKey(*sortBy)
		products, err := svc.Query(ctx, spec, key)
		requireResource(ctx, logg, "catalog query", err)
		printJSON(ctx, logg, products)

	case "facets":
		printJSON(ctx, logg, svc.Facets(ctx))

	case "product":
		product, err := svc.FindByID(*id)
		requireResource(ctx, logg, "product lookup", err)
		printJSON(ctx, logg, product)

	case "wish":
		product, err := svc.FindByID(*id)
		requireResource(ctx, logg, "product lookup", err)
		added := store.Toggle(ctx, product)
		printJSON(ctx, logg, map[string]any{
			"id":    product.ID,
			"added": added,
			"count": store.Count(),
		})

	case "wishlist":
		printJSON(ctx, logg, map[string]any{
			"count": store.Count(),
			"items": store.Items(),
		})

	case "clear":
		store.Clear(ctx)
		printJSON(ctx, logg, map[string]any{"count": store.Count()})

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", *cmd)
		os.Exit(2)
	}
}

// openSlot picks the durable backend from config. The store takes
// ownership and releases the connection on Close.
func openSlot(ctx context.Context, cfg *config.Config) (kvslot.Slot, error) {
	switch cfg.Wishlist.NormalizedBackend() {
	case config.WishlistBackendMemory:
		return kvslot.NewMemorySlot(), nil
	case config.WishlistBackendFile:
		return kvslot.NewFileSlot(cfg.Wishlist.DataDir)
	case config.WishlistBackendRedis:
		return redis.New(ctx, cfg.Redis)
	default:
		return nil, fmt.Errorf("unknown wishlist backend %q", cfg.Wishlist.Backend)
	}
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func printJSON(ctx context.Context, logg *logger.Logger, payload any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(payload); err != nil {
		logg.Error(ctx, "failed to encode output", err)
		os.Exit(1)
	}
}

func requireResource(ctx context.Context, logg *logger.Logger, resource string, err error) {
	if err == nil {
		return
	}
	logg.Error(ctx, fmt.Sprintf("resource not working: %s", resource), err)
	os.Exit(1)
}
