package logic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Ramakant55/Trendora-Boutique/catalog/data"
	"github.com/Ramakant55/Trendora-Boutique/common"
)

// Catalog file names inside a data directory.
const (
	ProductsFile     = "products.json"
	CollectionsFile  = "collections.json"
	TestimonialsFile = "testimonials.json"
)

// LoadDefault loads the embedded catalog.
func LoadDefault() (*Store, error) {
	return Load(data.FS)
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*Store, error) {
	return Load(os.DirFS(dir))
}

// Load reads the catalog files from fsys. Testimonials are optional.
func Load(fsys fs.FS) (*Store, error) {
	var products []Product
	if err := readJSON(fsys, ProductsFile, &products); err != nil {
		return nil, err
	}
	var collections []Collection
	if err := readJSON(fsys, CollectionsFile, &collections); err != nil {
		return nil, err
	}
	var testimonials []Testimonial
	if err := readJSON(fsys, TestimonialsFile, &testimonials); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return NewStore(products, collections, testimonials)
}

func readJSON(fsys fs.FS, name string, v any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// NewStore validates the records and builds a Store.
func NewStore(products []Product, collections []Collection, testimonials []Testimonial) (*Store, error) {
	index := make(map[int]int, len(products))
	for i, p := range products {
		if err := validateProduct(p); err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		if _, dup := index[p.ID]; dup {
			return nil, fmt.Errorf("product %d: duplicate id", p.ID)
		}
		index[p.ID] = i
	}
	for _, c := range collections {
		if err := validateCollection(c); err != nil {
			return nil, fmt.Errorf("collection %d: %w", c.ID, err)
		}
	}
	for _, t := range testimonials {
		if err := common.RequireInRange(t.Rating, 0, MaxRating, ErrMsgRatingRange); err != nil {
			return nil, fmt.Errorf("testimonial %d: %w", t.ID, err)
		}
	}

	return &Store{
		products:     products,
		collections:  collections,
		testimonials: testimonials,
		productIndex: index,
	}, nil
}

func validateProduct(p Product) error {
	if err := common.RequirePositive(p.ID, ErrMsgIDPositive); err != nil {
		return err
	}
	if err := common.RequireNotEmpty(p.Name, ErrMsgNameRequired); err != nil {
		return err
	}
	if err := common.RequireNotEmpty(p.Category, ErrMsgCategoryRequired); err != nil {
		return err
	}
	if err := common.RequireNonNegative(p.Price, ErrMsgPriceNegative); err != nil {
		return err
	}
	if err := common.RequireInRange(p.Rating, 0, MaxRating, ErrMsgRatingRange); err != nil {
		return err
	}
	return nil
}

func validateCollection(c Collection) error {
	if err := common.RequireNotEmpty(c.Name, ErrMsgNameRequired); err != nil {
		return err
	}
	if err := common.RequireNotEmpty(c.Category, ErrMsgCategoryRequired); err != nil {
		return err
	}
	return nil
}
