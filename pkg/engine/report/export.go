package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/DrSkyle/shopnet/pkg/engine"
	"github.com/DrSkyle/shopnet/pkg/engine/policy"
	"github.com/DrSkyle/shopnet/pkg/graph"
	"github.com/DrSkyle/shopnet/pkg/version"
)

// Row matches the per-shop JSON/YAML/CSV structure.
type Row struct {
	ShopID uint64 `json:"shop_id" yaml:"shop_id"`
	Degree int    `json:"degree" yaml:"degree"`
	Impact int    `json:"impact" yaml:"impact"`
	Core   bool   `json:"core" yaml:"core"`
	Winner bool   `json:"winner" yaml:"winner"`
}

// Facts converts the row for filter evaluation.
func (r Row) Facts() policy.ShopFacts {
	return policy.ShopFacts{
		ID:     r.ShopID,
		Degree: r.Degree,
		Impact: r.Impact,
		Core:   r.Core,
		Winner: r.Winner,
	}
}

// Report is the exported view of one analysed network.
type Report struct {
	Source         string   `json:"source" yaml:"source"`
	Version        string   `json:"version" yaml:"version"`
	DeclaredShops  uint64   `json:"declared_shops" yaml:"declared_shops"`
	DeclaredRoads  uint64   `json:"declared_roads" yaml:"declared_roads"`
	Accepted       int      `json:"accepted_roads" yaml:"accepted_roads"`
	Skipped        int      `json:"skipped_roads" yaml:"skipped_roads"`
	Shops          int      `json:"shops" yaml:"shops"`
	Links          int      `json:"links" yaml:"links"`
	Components     int      `json:"components" yaml:"components"`
	Threshold      int      `json:"threshold" yaml:"threshold"`
	Core           []uint64 `json:"core" yaml:"core"`
	RequiredImpact int      `json:"required_impact" yaml:"required_impact"`
	Winners        []uint64 `json:"winners" yaml:"winners"`
	Result         int      `json:"result" yaml:"result"`
	Rows           []Row    `json:"rows" yaml:"rows"`
}

// Build flattens an engine result. Rows are sorted by degree descending,
// then by shop ID.
func Build(res *engine.Result) Report {
	a := res.Analysis
	rep := Report{
		Source:         res.Source,
		Version:        version.Current,
		DeclaredShops:  res.Summary.Declared.Shops,
		DeclaredRoads:  res.Summary.Declared.Roads,
		Accepted:       res.Summary.Accepted,
		Skipped:        res.Summary.Skipped,
		Shops:          res.Store.ShopCount(),
		Links:          res.Store.LinkCount(),
		Components:     graph.Components(res.Store),
		Threshold:      a.Threshold,
		Core:           shopIDs(a.Core),
		RequiredImpact: a.RequiredImpact,
		Winners:        shopIDs(a.Winners),
		Result:         a.Result,
	}

	for _, s := range res.Store.Shops() {
		impact, core := a.Impact(s)
		rep.Rows = append(rep.Rows, Row{
			ShopID: s.ID,
			Degree: s.Degree(),
			Impact: impact,
			Core:   core,
			Winner: a.IsWinner(s),
		})
	}
	sort.Slice(rep.Rows, func(i, j int) bool {
		if rep.Rows[i].Degree != rep.Rows[j].Degree {
			return rep.Rows[i].Degree > rep.Rows[j].Degree
		}
		return rep.Rows[i].ShopID < rep.Rows[j].ShopID
	})

	return rep
}

// Filter returns the rows matching f.
func (r Report) Filter(f *policy.ShopFilter) ([]Row, error) {
	var out []Row
	for _, row := range r.Rows {
		ok, err := f.Match(row.Facts())
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, row)
		}
	}
	return out, nil
}

// Encode writes the report in the given format: json, yaml or csv.
func Encode(w io.Writer, format string, rep Report) error {
	switch format {
	case "json":
		return WriteJSON(w, rep)
	case "yaml":
		return WriteYAML(w, rep)
	case "csv":
		return WriteCSV(w, rep)
	default:
		return fmt.Errorf("unsupported report format %q", format)
	}
}

// Marshal encodes the report into a byte slice.
func Marshal(format string, rep Report) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, format, rep); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WriteJSON(w io.Writer, rep Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func WriteYAML(w io.Writer, rep Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return enc.Close()
}

// WriteCSV writes one line per shop.
func WriteCSV(w io.Writer, rep Report) error {
	cw := csv.NewWriter(w)

	header := []string{"shop_id", "degree", "impact", "core", "winner"}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, row := range rep.Rows {
		record := []string{
			strconv.FormatUint(row.ShopID, 10),
			strconv.Itoa(row.Degree),
			strconv.Itoa(row.Impact),
			strconv.FormatBool(row.Core),
			strconv.FormatBool(row.Winner),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func shopIDs(shops []*graph.Shop) []uint64 {
	ids := make([]uint64, 0, len(shops))
	for _, s := range shops {
		ids = append(ids, s.ID)
	}
	return ids
}
