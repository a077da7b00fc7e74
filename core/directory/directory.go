// Package directory maps 6-digit pincodes to normalized location
// records. The directory is built once from a reference table and is
// read-only thereafter.
package directory

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"freight-rate/core/normalize"
	"freight-rate/core/types"
	"freight-rate/internal/errors"
	"freight-rate/internal/logging"
)

// Row is one entry of the pincode reference table.
type Row struct {
	// Pincode is the 6-digit postal code
	Pincode int

	// Office is the post office / city name
	Office string

	// State is the state name
	State string

	// District is the district name
	District string
}

// Directory is the immutable pincode lookup.
type Directory struct {
	records map[int]types.LocationRecord
}

// New builds a Directory from reference rows. Duplicate pincodes keep
// the first occurrence. Names are normalized through the Normalizer;
// the raw office and state values are preserved on the record.
func New(rows []Row, norm *normalize.Normalizer) *Directory {
	records := make(map[int]types.LocationRecord, len(rows))
	for _, row := range rows {
		if _, exists := records[row.Pincode]; exists {
			continue
		}
		records[row.Pincode] = types.LocationRecord{
			City:     norm.Normalize(row.Office, normalize.KindCity),
			State:    norm.Normalize(row.State, normalize.KindState),
			District: norm.Normalize(row.District, normalize.KindCity),

			OriginalCity:  normalize.Clean(row.Office),
			OriginalState: normalize.Clean(row.State),
		}
	}
	return &Directory{records: records}
}

// Load builds a Directory from a CSV reference table with at least
// the columns pincode, office, state, district (any order, any case).
func Load(path string, norm *normalize.Normalizer) (*Directory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeConfig, err, "open pincode table %s", path)
	}
	defer f.Close()

	rows, err := parseRows(f)
	if err != nil {
		return nil, err
	}

	logging.Info("pincode directory loaded",
		zap.String("path", path),
		zap.Int("rows", len(rows)))
	return New(rows, norm), nil
}

func parseRows(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Parsing("read pincode table header", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"pincode", "office", "state", "district"} {
		if _, ok := cols[required]; !ok {
			return nil, errors.Newf(errors.TypeParsing, "pincode table missing column %q", required)
		}
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Parsing("read pincode table row", err)
		}
		pin, err := strconv.Atoi(strings.TrimSpace(record[cols["pincode"]]))
		if err != nil {
			continue // malformed pincode rows are skipped, not fatal
		}
		rows = append(rows, Row{
			Pincode:  pin,
			Office:   record[cols["office"]],
			State:    record[cols["state"]],
			District: record[cols["district"]],
		})
	}
	return rows, nil
}

// Lookup returns the location record for a pincode. The second return
// is false when the pincode is unknown; callers surface that as
// "Invalid Pincode", never as a silent default.
func (d *Directory) Lookup(pincode int) (types.LocationRecord, bool) {
	rec, ok := d.records[pincode]
	return rec, ok
}

// Len returns the number of indexed pincodes.
func (d *Directory) Len() int {
	return len(d.records)
}
