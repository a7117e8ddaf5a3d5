// Package preset assembles the process-wide immutable tables of systems
// and named search configurations, and resolves a CLI invocation's system
// and configuration names against them.
//
// It is the one place system constructors from internal/systems are
// called and wired into internal/catalog's configuration types; keeping
// the table-building code here instead of in catalog itself avoids a
// catalog -> systems -> catalog import cycle, since a system constructor
// returns a catalog.System value.
package preset

import (
	"fmt"

	"github.com/cwbudde/stabregion/internal/catalog"
	"github.com/cwbudde/stabregion/internal/systems"
)

// Systems returns the full system table keyed by name.
func Systems() map[string]catalog.System {
	all := []catalog.System{
		systems.Retarded1(),
		systems.QuadraticRHP(),
		systems.Retarded2(),
		systems.DistributedDelay1(),
		systems.DOPID1(),
		systems.DOPID2(),
		systems.DOPID3(),
		systems.FiniteRod(),
	}
	table := make(map[string]catalog.System, len(all))
	for _, s := range all {
		table[s.Name] = s
	}
	return table
}

// LookupSystem resolves a system by name, returning a wrapped
// ErrUnknownSystem if it isn't in the table.
func LookupSystem(name string) (catalog.System, error) {
	sys, ok := Systems()[name]
	if !ok {
		return catalog.System{}, fmt.Errorf("%w: %q", catalog.ErrUnknownSystem, name)
	}
	return sys, nil
}

// LineConfigs returns the named line-algorithm configurations, keyed by
// "<system>/<config name>".
func LineConfigs() map[string]catalog.LineConfiguration {
	retarded1 := Systems()["retarded1"]
	quadraticRHP := Systems()["quadratic_rhp"]
	finiteRod := Systems()["finite_rod"]

	configs := []catalog.LineConfiguration{
		{
			Name:    "retarded1/default",
			System:  retarded1,
			Limits:  catalog.Limits{P1Min: 0.0, P1Max: 2.6, P2Min: 0.0, P2Max: 3.3},
			Origins: []catalog.Par{{P1: 1e-2, P2: 1e-2}},

			Contour:   catalog.ContourConfiguration{WMin: 1e-3, WMax: 1e5, Steps: 10_000},
			Delta:     catalog.AbsDelta(1e-3),
			Safeguard: 0.95,

			RayCount:      8,
			WStepsLinear:  2_000,
			LogSpaceMinW:  1e-3,
			LogSpaceMaxW:  1e5,
			LogSpaceSteps: 10_000,
		},
		{
			Name:    "quadratic_rhp/default",
			System:  quadraticRHP,
			Limits:  catalog.Limits{P1Min: -2.0, P1Max: 2.0, P2Min: -2.0, P2Max: 2.0},
			Origins: []catalog.Par{{P1: 0.5, P2: 0.5}},

			Contour:   catalog.ContourConfiguration{WMin: 1e-3, WMax: 1e4, Steps: 5_000},
			Delta:     catalog.AbsDelta(1e-3),
			Safeguard: 0.95,

			RayCount:      16,
			WStepsLinear:  2_000,
			LogSpaceMinW:  1e-3,
			LogSpaceMaxW:  1e4,
			LogSpaceSteps: 5_000,
		},
		{
			Name:    "finite_rod/default",
			System:  finiteRod,
			Limits:  catalog.Limits{P1Min: 0.0, P1Max: 1.0, P2Min: 0.0, P2Max: 1.0},
			Origins: []catalog.Par{{P1: 0.1, P2: 0.1}},

			Contour:   catalog.ContourConfiguration{WMin: 1e-2, WMax: 1e4, Steps: 5_000},
			Delta:     catalog.AbsDelta(1e-3),
			Safeguard: 0.95,

			RayCount:      8,
			WStepsLinear:  2_000,
			LogSpaceMinW:  1e-2,
			LogSpaceMaxW:  1e4,
			LogSpaceSteps: 5_000,
		},
	}

	table := make(map[string]catalog.LineConfiguration, len(configs))
	for _, c := range configs {
		table[c.Name] = c
	}
	return table
}

// LookupLineConfig resolves a line configuration by name, failing with a
// wrapped ErrOriginOutOfLimits if any of its origins lies outside its own
// search rectangle (§7: checked once, here, rather than by every caller).
func LookupLineConfig(name string) (catalog.LineConfiguration, error) {
	cfg, ok := LineConfigs()[name]
	if !ok {
		return catalog.LineConfiguration{}, fmt.Errorf("%w: %q", catalog.ErrUnknownLineConfig, name)
	}
	if err := requireOriginsWithinLimits(cfg.Origins, cfg.Limits); err != nil {
		return catalog.LineConfiguration{}, fmt.Errorf("line configuration %q: %w", name, err)
	}
	return cfg, nil
}

// RegionConfigs returns the named region-algorithm configurations, keyed
// by "<system>/<config name>".
func RegionConfigs() map[string]catalog.RegionConfiguration {
	retarded1 := Systems()["retarded1"]
	quadraticRHP := Systems()["quadratic_rhp"]
	finiteRod := Systems()["finite_rod"]

	configs := []catalog.RegionConfiguration{
		{
			Name:   "retarded1/default",
			System: retarded1,
			Limits: catalog.Limits{P1Min: 0.0, P1Max: 2.6, P2Min: 0.0, P2Max: 3.3},
			Origins: []catalog.Par{
				{P1: 1.75, P2: 1.20},
				{P1: 0.25, P2: 1.00},
				{P1: 0.50, P2: 0.50},
				{P1: 1.00, P2: 2.50},
				{P1: 2.00, P2: 0.25},
			},

			Contour:   catalog.ContourConfiguration{WMin: 1e-3, WMax: 1e5, Steps: 10_000},
			Delta:     catalog.AbsDelta(1e-3),
			Safeguard: 0.95,

			SpawnCount:      16,
			EnforceLimits:   true,
			MaxIter:         0,
			CheckObsoletion: true,

			WStepsLinear:  2_000,
			LogSpaceMinW:  1e-3,
			LogSpaceMaxW:  1e5,
			LogSpaceSteps: 10_000,
		},
		{
			Name:    "quadratic_rhp/default",
			System:  quadraticRHP,
			Limits:  catalog.Limits{P1Min: -2.0, P1Max: 2.0, P2Min: -2.0, P2Max: 2.0},
			Origins: []catalog.Par{{P1: 0.5, P2: 0.5}, {P1: -1.0, P2: 1.0}},

			Contour:   catalog.ContourConfiguration{WMin: 1e-3, WMax: 1e4, Steps: 5_000},
			Delta:     catalog.AbsDelta(1e-3),
			Safeguard: 0.95,

			SpawnCount:      16,
			EnforceLimits:   true,
			MaxIter:         0,
			CheckObsoletion: true,

			WStepsLinear:  2_000,
			LogSpaceMinW:  1e-3,
			LogSpaceMaxW:  1e4,
			LogSpaceSteps: 5_000,
		},
		{
			Name:    "finite_rod/default",
			System:  finiteRod,
			Limits:  catalog.Limits{P1Min: 0.0, P1Max: 1.0, P2Min: 0.0, P2Max: 1.0},
			Origins: []catalog.Par{{P1: 0.1, P2: 0.1}},

			Contour:   catalog.ContourConfiguration{WMin: 1e-2, WMax: 1e4, Steps: 5_000},
			Delta:     catalog.AbsDelta(1e-3),
			Safeguard: 0.95,

			SpawnCount:      16,
			EnforceLimits:   true,
			MaxIter:         0,
			CheckObsoletion: true,

			WStepsLinear:  2_000,
			LogSpaceMinW:  1e-2,
			LogSpaceMaxW:  1e4,
			LogSpaceSteps: 5_000,
		},
	}

	table := make(map[string]catalog.RegionConfiguration, len(configs))
	for _, c := range configs {
		table[c.Name] = c
	}
	return table
}

// LookupRegionConfig resolves a region configuration by name, failing with
// a wrapped ErrOriginOutOfLimits if any of its origins lies outside its own
// search rectangle (§7: checked once, here, rather than by every caller).
func LookupRegionConfig(name string) (catalog.RegionConfiguration, error) {
	cfg, ok := RegionConfigs()[name]
	if !ok {
		return catalog.RegionConfiguration{}, fmt.Errorf("%w: %q", catalog.ErrUnknownRegionConfig, name)
	}
	if err := requireOriginsWithinLimits(cfg.Origins, cfg.Limits); err != nil {
		return catalog.RegionConfiguration{}, fmt.Errorf("region configuration %q: %w", name, err)
	}
	return cfg, nil
}

// requireOriginsWithinLimits asserts every origin lies inside limits,
// returning a wrapped catalog.ErrOriginOutOfLimits for the first offender.
func requireOriginsWithinLimits(origins []catalog.Par, limits catalog.Limits) error {
	for _, origin := range origins {
		if !limits.Contains(origin) {
			return fmt.Errorf("%w: origin %+v outside %+v", catalog.ErrOriginOutOfLimits, origin, limits)
		}
	}
	return nil
}
