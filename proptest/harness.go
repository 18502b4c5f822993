package proptest

import (
	"earthly/internal/browse"
	"earthly/internal/catalog"
	"earthly/internal/logging"
	"os"
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

const (
	minRecords        = 0
	maxRecords        = 20
	typicalMinRecords = 1
	typicalMaxRecords = 10
	maxID             = 50
)

type RecordGenOpt func(*recordGenConfig)

type recordGenConfig struct {
	category *catalog.Category
	price    *float64
}

func WithCategory(c catalog.Category) RecordGenOpt {
	return func(cfg *recordGenConfig) {
		cfg.category = &c
	}
}

func WithPrice(p float64) RecordGenOpt {
	return func(cfg *recordGenConfig) {
		cfg.price = &p
	}
}

func GenDestination(t *rapid.T, id int, opts ...RecordGenOpt) catalog.Destination {
	cfg := &recordGenConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := catalog.Destination{
		ID:          id,
		Name:        nameGen.Draw(t, "name"),
		Location:    nameGen.Draw(t, "location"),
		Rating:      ratingGen().Draw(t, "rating"),
		Category:    recordCategoryGen().Draw(t, "category"),
		Description: nameGen.Draw(t, "description"),
		Price:       priceGen().Draw(t, "price"),
	}
	if cfg.category != nil {
		d.Category = *cfg.category
	}
	if cfg.price != nil {
		d.Price = *cfg.price
	}
	return d
}

type Harness struct {
	T   *rapid.T
	Dir string
}

func (h *Harness) GenDestination(id int, opts ...RecordGenOpt) catalog.Destination {
	return GenDestination(h.T, id, opts...)
}

// GenDestinations draws between minCount and maxCount records with unique ids.
func (h *Harness) GenDestinations(minCount, maxCount int) []catalog.Destination {
	ids := uniqueIDsGen(minCount, maxCount).Draw(h.T, "ids")
	records := make([]catalog.Destination, len(ids))
	for i, id := range ids {
		records[i] = h.GenDestination(id)
	}
	return records
}

type PageHarness struct {
	Harness
	Records []catalog.Destination
	Page    *browse.Page[catalog.Destination]
}

func RunWithPage(t *testing.T, fn func(h *PageHarness)) {
	rapid.Check(t, func(rt *rapid.T) {
		harness := &PageHarness{Harness: Harness{T: rt}}
		harness.Records = harness.GenDestinations(typicalMinRecords, typicalMaxRecords)

		store, err := catalog.NewStore(harness.Records)
		if err != nil {
			rt.Fatalf("failed to build store: %v", err)
		}
		harness.Page = browse.NewPage(browse.KindDestinations, store, logging.Discard())

		fn(harness)
	})
}

func RunBasic(t *testing.T, fn func(h *Harness)) {
	tempDir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		iterDir := filepath.Join(tempDir, iterDirGen.Draw(rt, "iterDir"))
		if err := os.MkdirAll(iterDir, 0o755); err != nil {
			rt.Fatalf("failed to create iter dir: %v", err)
		}

		harness := &Harness{
			T:   rt,
			Dir: iterDir,
		}

		fn(harness)
	})
}
