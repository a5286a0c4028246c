package report

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrSkyle/shopnet/pkg/engine"
	"github.com/DrSkyle/shopnet/pkg/engine/policy"
	"github.com/DrSkyle/shopnet/pkg/storage"
)

const tiedNetwork = "6 5\n1 2\n1 3\n1 4\n2 5\n2 6\n"

func buildReport(t *testing.T, name, input string) Report {
	t.Helper()
	eng, err := engine.New()
	require.NoError(t, err)

	res, err := eng.RunReader(context.Background(), name, strings.NewReader(input))
	require.NoError(t, err)
	return Build(res)
}

func TestBuild(t *testing.T) {
	rep := buildReport(t, "tied.txt", tiedNetwork)

	assert.Equal(t, 2, rep.Result)
	assert.Equal(t, []uint64{1, 2}, rep.Core)
	assert.Equal(t, []uint64{1, 2}, rep.Winners)
	assert.Equal(t, 1, rep.Components)
	require.Len(t, rep.Rows, 6)
	assert.Equal(t, Row{ShopID: 1, Degree: 3, Impact: 2, Core: true, Winner: true}, rep.Rows[0])
	assert.Equal(t, Row{ShopID: 6, Degree: 1}, rep.Rows[5])
}

func TestEncodeGolden(t *testing.T) {
	rep := buildReport(t, "tied.txt", tiedNetwork)
	g := goldie.New(t, goldie.WithFixtureDir("testdata"))

	for _, format := range []string{"json", "csv"} {
		t.Run(format, func(t *testing.T) {
			data, err := Marshal(format, rep)
			require.NoError(t, err)
			g.Assert(t, "tied_"+format, data)
		})
	}
}

func TestWriteYAML(t *testing.T) {
	rep := buildReport(t, "tied.txt", tiedNetwork)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, rep))

	out := buf.String()
	assert.Contains(t, out, "result: 2\n")
	assert.Contains(t, out, "required_impact: 2\n")
	assert.Contains(t, out, "  - shop_id: 1\n")
}

func TestEncodeUnknownFormat(t *testing.T) {
	_, err := Marshal("xml", Report{})
	assert.Error(t, err)
}

func TestFilter(t *testing.T) {
	rep := buildReport(t, "tied.txt", tiedNetwork)

	f, err := policy.NewShopFilter("winner")
	require.NoError(t, err)
	rows, err := rep.Filter(f)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint64(1), rows[0].ShopID)
	assert.Equal(t, uint64(2), rows[1].ShopID)

	all, err := policy.NewShopFilter("")
	require.NoError(t, err)
	rows, err = rep.Filter(all)
	require.NoError(t, err)
	assert.Len(t, rows, 6)
}

func TestRenderTable(t *testing.T) {
	rep := buildReport(t, "hub.txt", "4 4\n1 2\n1 3\n1 4\n2 3\n")

	var buf bytes.Buffer
	require.NoError(t, RenderTable(&buf, rep, rep.Rows))

	out := buf.String()
	assert.Contains(t, out, "NETWORK hub.txt")
	assert.Contains(t, out, "RESULT 0")
	assert.Contains(t, out, "winner")
	assert.Contains(t, out, "threshold 3")
}

func TestSave(t *testing.T) {
	ctx := context.Background()
	rep := buildReport(t, "/data/networks/tied.txt", tiedNetwork)
	blob := storage.NewLocalStore(t.TempDir())

	key, err := Save(ctx, blob, "nightly", "csv", rep)
	require.NoError(t, err)
	assert.Equal(t, "nightly/tied.csv", key)

	data, err := blob.Get(ctx, key)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "shop_id,degree,impact,core,winner\n"))
}

func TestExists(t *testing.T) {
	ctx := context.Background()
	rep := buildReport(t, "tied.txt", tiedNetwork)
	blob := storage.NewLocalStore(t.TempDir())

	key, found, err := Exists(ctx, blob, "nightly", "json", rep)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "nightly/tied.json", key)

	_, err = Save(ctx, blob, "nightly", "json", rep)
	require.NoError(t, err)

	_, found, err = Exists(ctx, blob, "nightly", "json", rep)
	require.NoError(t, err)
	assert.True(t, found)

	_, found, err = Exists(ctx, blob, "nightly", "csv", rep)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRole(t *testing.T) {
	assert.Equal(t, "winner", Role(Row{Core: true, Winner: true}))
	assert.Equal(t, "core", Role(Row{Core: true}))
	assert.Empty(t, Role(Row{}))
}
