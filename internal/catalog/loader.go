package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"

	"github.com/hyperjump/shohin/internal/storage"
	"github.com/hyperjump/shohin/pkg/utils"
)

var (
	// ErrNoNameColumn is returned when the header has no product name column.
	ErrNoNameColumn = errors.New("catalog has no product_name column")
	// ErrUnsupportedFormat is returned for file extensions the loader cannot read.
	ErrUnsupportedFormat = errors.New("unsupported catalog format")
)

// LoadOptions configures Load.
type LoadOptions struct {
	// Encoding of CSV files: "utf-8" (default), "latin-1", or "windows-1252".
	Encoding    string
	PricePolicy PricePolicy
	Logger      *zap.Logger
}

// Load reads and cleans the catalog at path. The format is chosen by extension:
// .csv, .xlsx, or .db/.sqlite for a catalog previously imported into SQLite.
func Load(path string, opts LoadOptions) (*Catalog, error) {
	logger := utils.OrNop(opts.Logger)
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}

	var rows [][]string
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		rows, err = readCSV(path, opts.Encoding)
	case ".xlsx":
		rows, err = readXLSX(path)
	case ".db", ".sqlite", ".sqlite3":
		return loadSQLite(path, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	records, err := mapColumns(rows)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	products, stats := Clean(records, opts.PricePolicy)
	logger.Info("catalog loaded",
		zap.String("path", path),
		zap.Int("rows", stats.RowsRead),
		zap.Int("products", stats.Products),
		zap.Int("duplicates", stats.Duplicates),
		zap.Int("empty_names", stats.EmptyNames),
		zap.Int("prices_imputed", stats.PricesImputed),
	)
	return New(path, products, stats), nil
}

func decoderFor(encoding string) (func(io.Reader) io.Reader, error) {
	switch strings.ToLower(strings.ReplaceAll(encoding, "_", "-")) {
	case "", "utf-8", "utf8":
		return func(r io.Reader) io.Reader { return r }, nil
	case "latin-1", "latin1", "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder().Reader, nil
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder().Reader, nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", encoding)
	}
}

func readCSV(path, encoding string) ([][]string, error) {
	decode, err := decoderFor(encoding)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(decode(f))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	return r.ReadAll()
}

func readXLSX(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open Excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("get rows for sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

func loadSQLite(path string, logger *zap.Logger) (*Catalog, error) {
	store, err := storage.NewSQLiteStorage(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	products, err := store.ListProducts(context.Background())
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	logger.Info("catalog loaded from database",
		zap.String("path", path),
		zap.Int("products", len(products)),
	)
	stats := Stats{RowsRead: len(products), Products: len(products)}
	return New(path, products, stats), nil
}

// mapColumns picks the name, brand, price, and image columns from the header row.
func mapColumns(rows [][]string) ([]RawRecord, error) {
	if len(rows) == 0 {
		return nil, ErrNoNameColumn
	}
	idx := map[string]int{}
	for i, h := range rows[0] {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}
	col := func(names ...string) int {
		for _, n := range names {
			if i, ok := idx[n]; ok {
				return i
			}
		}
		return -1
	}
	nameCol := col("product_name", "name")
	if nameCol < 0 {
		return nil, ErrNoNameColumn
	}
	brandCol := col("brand")
	priceCol := col("retail_price", "price")
	imageCol := col("image")

	records := make([]RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, RawRecord{
			Name:  cell(row, nameCol),
			Brand: cell(row, brandCol),
			Price: cell(row, priceCol),
			Image: cell(row, imageCol),
		})
	}
	return records, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return row[i]
}
