package graph

import "log/slog"

// Analysis details one reduction of the road network.
type Analysis struct {
	// Threshold is the highest degree in the network.
	Threshold int
	// Core holds every shop whose degree reaches Threshold, in insertion order.
	Core []*Shop
	// Impacts maps a core shop's index to its external impact.
	Impacts map[uint32]int
	// RequiredImpact is the highest external impact among Core.
	RequiredImpact int
	// Winners holds the core shops reaching RequiredImpact.
	Winners []*Shop
	// Result is len(Winners) when at least two shops tie, otherwise 0.
	Result int
}

// InCore reports whether the shop belongs to the core set.
func (a Analysis) InCore(s *Shop) bool {
	_, ok := a.Impacts[s.Index]
	return ok
}

// Impact returns the external impact of a core shop.
func (a Analysis) Impact(s *Shop) (int, bool) {
	v, ok := a.Impacts[s.Index]
	return v, ok
}

// IsWinner reports whether the shop is tied for the required impact.
func (a Analysis) IsWinner(s *Shop) bool {
	v, ok := a.Impacts[s.Index]
	return ok && len(a.Winners) > 0 && v >= a.RequiredImpact
}

// Reduce returns the number of maximally exposed hubs, or 0 when there is
// no contested tie.
func Reduce(s Store) int {
	return Analyze(s, nil).Result
}

// Analyze runs the reduction and keeps its intermediate sets.
// The store is not modified; a nil logger discards diagnostics.
func Analyze(s Store, logger *slog.Logger) Analysis {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	shops := s.Shops()
	report := Analysis{
		Impacts: make(map[uint32]int),
	}
	if len(shops) == 0 {
		return report
	}

	// 1. Hub threshold.
	for _, shop := range shops {
		if d := shop.Degree(); d > report.Threshold {
			report.Threshold = d
		}
	}
	logger.Debug("reducing with threshold", "threshold", report.Threshold)

	// 2. Core set, ties retained.
	core := make(map[uint32]bool)
	for _, shop := range shops {
		if shop.Degree() >= report.Threshold {
			report.Core = append(report.Core, shop)
			core[shop.Index] = true
		}
	}

	// 3. External impact. Core neighbors, the shop itself included, add nothing.
	for _, shop := range report.Core {
		impact := 0
		for _, idx := range shop.Links {
			if core[idx] {
				continue
			}
			impact += s.Shop(idx).Degree()
		}
		report.Impacts[shop.Index] = impact
		logger.Debug("external impact", "shop", shop.ID, "impact", impact)

		// 4. Impact threshold.
		if impact > report.RequiredImpact {
			report.RequiredImpact = impact
		}
	}

	// 5. Winners, ties retained.
	for _, shop := range report.Core {
		if report.Impacts[shop.Index] >= report.RequiredImpact {
			report.Winners = append(report.Winners, shop)
		}
	}

	// 6. A single winner is no reduction.
	if len(report.Winners) >= 2 {
		report.Result = len(report.Winners)
	}
	logger.Debug("reduction complete",
		"core", len(report.Core),
		"required_impact", report.RequiredImpact,
		"winners", len(report.Winners),
		"result", report.Result,
	)

	return report
}
