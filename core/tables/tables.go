// Package tables loads and memoizes carrier-specific reference
// tables (serviceable pincodes with region, distance, and embargo
// attributes), keyed by table name.
//
// The repository is injected into the resolver and engine so tests
// can substitute fixture tables.
package tables

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"freight-rate/internal/logging"
)

// Well-known columns of carrier region tables.
const (
	ColRegion  = "REGION"
	ColCity    = "CITY"
	ColState   = "STATE"
	ColEmbargo = "Embargo"
	ColEDL     = "Extended Delivery Location"
	ColEDLDist = "EDL Distance"
)

// Row is one table row, keyed by trimmed column name.
type Row map[string]string

// Table indexes rows by pincode.
type Table map[int]Row

// Repository loads a reference table by name.
type Repository interface {
	// Load returns the table for a name. Missing or unparsable
	// tables load empty so dependent strategies degrade to "not
	// serviceable" instead of failing the pricing call.
	Load(name string) Table
}

// CSVRepository reads tables from CSV files in a data directory and
// memoizes them per filename. Reloading is idempotent, so a
// concurrent first access at worst parses the same file twice.
type CSVRepository struct {
	dir string

	mu    sync.Mutex
	cache map[string]Table
}

// NewCSVRepository creates a repository over a data directory.
func NewCSVRepository(dir string) *CSVRepository {
	return &CSVRepository{
		dir:   dir,
		cache: make(map[string]Table),
	}
}

// Load implements Repository.
func (r *CSVRepository) Load(name string) Table {
	r.mu.Lock()
	defer r.mu.Unlock()

	if table, ok := r.cache[name]; ok {
		return table
	}

	table := r.loadFile(name)
	r.cache[name] = table
	return table
}

func (r *CSVRepository) loadFile(name string) Table {
	path := filepath.Join(r.dir, name)
	f, err := os.Open(path)
	if err != nil {
		logging.Error("region table not found",
			zap.String("path", path), zap.Error(err))
		return Table{}
	}
	defer f.Close()

	table, err := Parse(f)
	if err != nil {
		logging.Error("region table unreadable",
			zap.String("path", path), zap.Error(err))
		return Table{}
	}

	logging.Info("region table loaded",
		zap.String("table", name), zap.Int("pincodes", len(table)))
	return table
}

// Parse reads a CSV region table. Column names and string cells are
// whitespace-trimmed. Rows are indexed by the "PINCODE" or "Pincode"
// column, falling back to the first column; rows whose key is not an
// integer are dropped.
func Parse(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	keyCol := 0
	for i, name := range header {
		if name == "PINCODE" || name == "Pincode" {
			keyCol = i
			break
		}
	}

	table := Table{}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if keyCol >= len(record) {
			continue
		}
		pin, err := strconv.Atoi(strings.TrimSpace(record[keyCol]))
		if err != nil {
			continue
		}
		row := Row{}
		for i, cell := range record {
			if i == keyCol || i >= len(header) {
				continue
			}
			row[header[i]] = strings.TrimSpace(cell)
		}
		table[pin] = row
	}
	return table, nil
}

// Fixture is an in-memory Repository for tests and embedded data.
type Fixture map[string]Table

// Load implements Repository; unknown names load empty.
func (f Fixture) Load(name string) Table {
	if table, ok := f[name]; ok {
		return table
	}
	return Table{}
}
