// Package source provides the data sources that answer brand sentiment lookups.
package source

import (
	"context"
	"errors"

	"github.com/f3rmion/brandwatch/internal/brand"
)

// ErrNotFound is returned when a source has no data for the brand.
var ErrNotFound = errors.New("brand not found")

// Fetcher looks up sentiment counts for a brand.
type Fetcher interface {
	Fetch(ctx context.Context, brandName string) (brand.Result, error)
}

// Demo answers every lookup with a fixed record relabeled with the
// requested brand name.
type Demo struct {
	record brand.Result
}

// NewDemo creates a demo source backed by the built-in demo record.
func NewDemo() *Demo {
	return &Demo{record: brand.Demo()}
}

// NewDemoWith creates a demo source backed by record.
func NewDemoWith(record brand.Result) *Demo {
	return &Demo{record: record}
}

// Fetch returns a copy of the demo record with its brand set to brandName.
func (d *Demo) Fetch(ctx context.Context, brandName string) (brand.Result, error) {
	return d.record.WithBrand(brandName), nil
}
