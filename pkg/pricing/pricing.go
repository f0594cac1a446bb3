// Package pricing estimates the cost of a shopping basket from a static
// table of price-range categories. The table is data, not code: it is
// loaded once at startup and read-only afterwards, so concurrent
// estimates never contend.
package pricing

import (
	"fmt"
	"strings"

	"github.com/platewise/platewise/pkg/models"
)

// DefaultKey is the catch-all category used when no other key matches
const DefaultKey = "default"

// Category is a single price-range entry keyed by a lexical pattern
type Category struct {
	Key         string  `json:"key" mapstructure:"key"`
	Min         float64 `json:"min" mapstructure:"min"`
	Max         float64 `json:"max" mapstructure:"max"`
	Unit        string  `json:"unit" mapstructure:"unit"`
	AvgQuantity float64 `json:"avg_quantity" mapstructure:"avg_quantity"`
}

// Table is an ordered list of categories. Order encodes priority: the
// first entry whose key is a substring of an item name wins.
type Table []Category

// Validate checks that the table is usable: non-empty keys, sane price
// bounds, and a catch-all default entry
func (t Table) Validate() error {
	hasDefault := false
	for i, c := range t {
		if c.Key == "" {
			return fmt.Errorf("category %d has an empty key", i)
		}
		if c.Min < 0 || c.Max < c.Min {
			return fmt.Errorf("category %q has invalid price range [%v, %v]", c.Key, c.Min, c.Max)
		}
		if c.AvgQuantity <= 0 {
			return fmt.Errorf("category %q has non-positive avg_quantity", c.Key)
		}
		if c.Key == DefaultKey {
			hasDefault = true
		}
	}
	if !hasDefault {
		return fmt.Errorf("table has no %q entry", DefaultKey)
	}
	return nil
}

// categoryFor resolves the category for an item name: first entry whose
// key is a substring of the lower-cased name, else the default entry
func (t Table) categoryFor(name string) Category {
	name = strings.ToLower(name)

	var fallback Category
	for _, c := range t {
		if c.Key == DefaultKey {
			fallback = c
			continue
		}
		if strings.Contains(name, c.Key) {
			return c
		}
	}

	return fallback
}

// Estimator produces cost estimates against a fixed category table
type Estimator struct {
	table Table
}

// NewEstimator creates an estimator over the given table
func NewEstimator(table Table) (*Estimator, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("invalid price table: %w", err)
	}
	return &Estimator{table: table}, nil
}

// Estimate computes a cost estimate for every basket item and the
// aggregated totals. An empty basket yields zero totals, not an error.
// An item with no name is rejected as malformed.
func (e *Estimator) Estimate(items []models.BasketItem) (models.BasketEstimate, error) {
	estimate := models.BasketEstimate{
		Items: make([]models.CostEstimate, 0, len(items)),
	}

	for i, item := range items {
		if strings.TrimSpace(item.Name) == "" {
			return models.BasketEstimate{}, fmt.Errorf("basket item %d has no name", i)
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		category := e.table.categoryFor(item.Name)
		actualQuantity := category.AvgQuantity * quantity

		minCost := category.Min * actualQuantity
		maxCost := category.Max * actualQuantity

		estimate.Items = append(estimate.Items, models.CostEstimate{
			ItemName:      item.Name,
			Quantity:      quantity,
			EstimatedCost: (minCost + maxCost) / 2,
			MinCost:       minCost,
			MaxCost:       maxCost,
			Unit:          category.Unit,
		})

		estimate.MinTotal += minCost
		estimate.MaxTotal += maxCost
	}

	estimate.EstimatedTotal = (estimate.MinTotal + estimate.MaxTotal) / 2
	return estimate, nil
}
