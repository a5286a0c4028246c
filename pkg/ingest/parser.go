// Package ingest reads the road network text format into a graph store.
//
// The format is a header line "num_shops num_roads" followed by num_roads
// lines "shop_id road_to", all unsigned decimal integers.
package ingest

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DrSkyle/shopnet/pkg/config"
	"github.com/DrSkyle/shopnet/pkg/graph"
)

// MaxLineSize bounds a single input line, header included.
const MaxLineSize = 1 << 20

// Header is the declared network size.
type Header struct {
	Shops uint64
	Roads uint64
}

// Summary describes one ingest pass.
type Summary struct {
	Declared Header
	Accepted int // Roads added to the store
	Skipped  int // Roads dropped by the range check
	Lines    int // Road lines read
}

// Parser feeds road lines into a store.
type Parser struct {
	limits config.Limits
	strict bool
	logger *slog.Logger
}

// NewParser returns a parser honoring the limits of cfg.
// A nil logger discards warnings.
func NewParser(cfg config.Config, logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{
		limits: cfg.Limits,
		strict: cfg.StrictTargets,
		logger: logger,
	}
}

// Load opens path and parses it into store.
func (p *Parser) Load(ctx context.Context, path string, store graph.Store) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %v", ErrOpen, err)
	}
	defer f.Close()

	return p.Parse(ctx, f, store)
}

// Parse reads the header and up to the declared number of road lines.
// Out-of-range shop IDs are skipped with a warning; anything unparsable is fatal.
func (p *Parser) Parse(ctx context.Context, r io.Reader, store graph.Store) (Summary, error) {
	var sum Summary
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return sum, scanError(1, ErrHeader, err)
		}
		return sum, &LineError{Line: 1, Err: ErrHeader}
	}

	first, second, ok := parsePair(sc.Text())
	if !ok {
		return sum, &LineError{Line: 1, Text: sc.Text(), Err: ErrHeader}
	}
	sum.Declared = Header{Shops: first, Roads: second}
	if err := p.checkHeader(sum.Declared); err != nil {
		return sum, err
	}

	for i := uint64(0); i < sum.Declared.Roads; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		if !sc.Scan() {
			break
		}
		sum.Lines++
		line := int(i) + 2

		shopID, roadTo, ok := parsePair(sc.Text())
		if !ok {
			return sum, &LineError{Line: line, Text: sc.Text(), Err: ErrRoadLine}
		}

		if !p.limits.ShopIDInRange(shopID) {
			p.warnRange(line, "shop", shopID)
			sum.Skipped++
			continue
		}
		if p.strict && !p.limits.ShopIDInRange(roadTo) {
			p.warnRange(line, "destination shop", roadTo)
			sum.Skipped++
			continue
		}

		store.AddRoad(shopID, roadTo)
		sum.Accepted++
	}
	if err := sc.Err(); err != nil {
		return sum, scanError(sum.Lines+2, ErrRoadLine, err)
	}

	if uint64(sum.Lines) < sum.Declared.Roads {
		p.logger.Warn("input ended early", "declared_roads", sum.Declared.Roads, "read", sum.Lines)
	}
	if uint64(store.ShopCount()) != sum.Declared.Shops {
		p.logger.Debug("shop count differs from header", "declared", sum.Declared.Shops, "found", store.ShopCount())
	}

	return sum, nil
}

func (p *Parser) checkHeader(h Header) error {
	l := p.limits
	if h.Shops < l.MinShops || h.Shops > l.MaxShops {
		return fmt.Errorf("%w: number of shops should be in between %d to %d inclusive, got %d",
			ErrHeaderBounds, l.MinShops, l.MaxShops, h.Shops)
	}
	if h.Roads < l.MinRoads || h.Roads > l.MaxRoads {
		return fmt.Errorf("%w: number of roads should be in between %d to %d inclusive, got %d",
			ErrHeaderBounds, l.MinRoads, l.MaxRoads, h.Roads)
	}
	return nil
}

func (p *Parser) warnRange(line int, what string, id uint64) {
	p.logger.Warn(fmt.Sprintf("identifier for %s is not in range %d to %d inclusive", what, p.limits.MinShopID, p.limits.MaxShopID),
		"line", line,
		"id", id,
	)
}

// scanError maps a failed read at line. An oversized line is a parse
// failure of that line; anything else is an I/O failure.
func scanError(line int, sentinel, err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return &LineError{Line: line, Text: fmt.Sprintf("longer than %d bytes", MaxLineSize), Err: sentinel}
	}
	return fmt.Errorf("%w: %v", ErrOpen, err)
}

// parsePair splits a line into exactly two unsigned decimal integers.
func parsePair(s string) (uint64, uint64, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, false
	}
	a, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	b, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	return a, b, true
}
