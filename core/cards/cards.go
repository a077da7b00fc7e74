// Package cards loads carrier configuration records. Two formats are
// supported: the legacy JSON master card (field presence selects the
// routing strategy) and HCL carrier files with an explicit strategy
// discriminant.
package cards

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"freight-rate/core/types"
	"freight-rate/internal/errors"
	"freight-rate/internal/logging"
)

// Load reads carrier configurations from a file, dispatching on the
// extension (.json for the legacy master card, .hcl for carrier
// definition files).
func Load(path string) ([]*types.CarrierConfig, error) {
	var (
		configs []*types.CarrierConfig
		err     error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		configs, err = LoadMasterCard(path)
	case ".hcl":
		configs, err = LoadHCL(path)
	default:
		return nil, errors.Newf(errors.TypeConfig, "unsupported carrier file format: %s", path)
	}
	if err != nil {
		return nil, err
	}

	logging.Info("carrier cards loaded",
		zap.String("path", path), zap.Int("carriers", len(configs)))
	return configs, nil
}

// Find returns the carrier with the given name, case-insensitively.
func Find(configs []*types.CarrierConfig, name string) (*types.CarrierConfig, bool) {
	for _, cfg := range configs {
		if strings.EqualFold(cfg.CarrierName, name) {
			return cfg, true
		}
	}
	return nil, false
}
