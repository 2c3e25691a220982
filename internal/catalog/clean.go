package catalog

import (
	"math"
	"strconv"
	"strings"

	"github.com/hyperjump/shohin/internal/models"
	"github.com/hyperjump/shohin/pkg/utils"
)

// PricePolicy decides what price a record gets when its own is missing or invalid.
type PricePolicy string

const (
	// PriceMedian imputes the median of the valid prices in the catalog.
	PriceMedian PricePolicy = "median"
	// PriceZero imputes 0.
	PriceZero PricePolicy = "zero"
)

// RawRecord is one source row after column mapping, before cleaning.
type RawRecord struct {
	Name  string
	Brand string
	Price string
	Image string
}

// Stats describes what cleaning did to the source rows.
type Stats struct {
	RowsRead      int     `json:"rows_read"`
	EmptyNames    int     `json:"empty_names"`
	Duplicates    int     `json:"duplicates"`
	PricesImputed int     `json:"prices_imputed"`
	ImputedPrice  float64 `json:"imputed_price"`
	Products      int     `json:"products"`
}

// Clean turns raw rows into products: names are trimmed and rows without one are
// dropped, missing brands become "unknown", missing or invalid prices are imputed
// per policy, and duplicate names keep their first occurrence.
func Clean(records []RawRecord, policy PricePolicy) ([]models.Product, Stats) {
	stats := Stats{RowsRead: len(records)}

	// Exact duplicate rows do not weigh twice in the median.
	seenRows := make(map[RawRecord]struct{}, len(records))
	var valid []float64
	for _, r := range records {
		if _, dup := seenRows[r]; dup {
			continue
		}
		seenRows[r] = struct{}{}
		if v, ok := parsePrice(r.Price); ok {
			valid = append(valid, v)
		}
	}

	fill := 0.0
	if policy != PriceZero {
		fill = utils.Median(valid)
	}
	stats.ImputedPrice = fill

	seenNames := make(map[string]struct{}, len(records))
	products := make([]models.Product, 0, len(records))
	for _, r := range records {
		name := cleanField(r.Name)
		if name == "" {
			stats.EmptyNames++
			continue
		}
		if _, dup := seenNames[name]; dup {
			stats.Duplicates++
			continue
		}
		seenNames[name] = struct{}{}

		brand := cleanField(r.Brand)
		if brand == "" {
			brand = models.UnknownBrand
		}
		price, ok := parsePrice(r.Price)
		if !ok {
			price = fill
			stats.PricesImputed++
		}
		products = append(products, models.NewProduct(name, brand, price, strings.TrimSpace(r.Image)))
	}
	stats.Products = len(products)
	return products, stats
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, ""))
}

// parsePrice accepts plain and grouped amounts with an optional rupee sign.
func parsePrice(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "₹")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, false
	}
	return v, true
}
