// Package cmd - shared command bootstrap
package cmd

import (
	"fmt"

	"freight-rate/core/cards"
	"freight-rate/core/cost"
	"freight-rate/core/directory"
	"freight-rate/core/normalize"
	"freight-rate/core/tables"
	"freight-rate/core/types"
	"freight-rate/core/zone"
	"freight-rate/internal/config"
)

// app holds the wired pricing components for one CLI invocation.
type app struct {
	engine   *cost.Engine
	resolver *zone.Resolver
	carriers []*types.CarrierConfig
}

// newApp loads reference data and carrier cards per the effective
// configuration and wires the resolver and engine.
func newApp() (*app, error) {
	cfg := config.Get()

	aliases, err := normalize.LoadAliasTable(cfg.Data.AliasFile)
	if err != nil {
		return nil, fmt.Errorf("load aliases: %w", err)
	}
	metros, err := normalize.LoadList(cfg.Data.MetroFile)
	if err != nil {
		return nil, fmt.Errorf("load metro list: %w", err)
	}
	norm := normalize.New(aliases, metros)

	dir, err := directory.Load(cfg.Data.PincodeFile, norm)
	if err != nil {
		return nil, fmt.Errorf("load pincode directory: %w", err)
	}

	special, err := normalize.LoadList(cfg.Data.SpecialStatesFile)
	if err != nil {
		return nil, fmt.Errorf("load special states: %w", err)
	}
	for i, state := range special {
		special[i] = norm.Normalize(state, normalize.KindState)
	}

	carriers, err := cards.Load(cfg.Data.CarrierFile)
	if err != nil {
		return nil, fmt.Errorf("load carrier cards: %w", err)
	}

	repo := tables.NewCSVRepository(cfg.Data.Dir)
	resolver := zone.NewResolver(dir, norm, repo, special)
	engine := cost.NewEngine(resolver, repo, cost.Settings{
		EscalationRate:     cfg.Pricing.EscalationRate,
		GSTRate:            cfg.Pricing.GSTRate,
		CurrentDieselPrice: cfg.Pricing.CurrentDieselPrice,
	})

	return &app{engine: engine, resolver: resolver, carriers: carriers}, nil
}
