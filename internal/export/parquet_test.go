package export

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessnote/internal/engine"
	"github.com/lgbarn/chessnote/internal/testutil"
)

const scholarsMate = `[Event "Casual"]
[White "Attacker"]
[Black "Victim"]

1. e4 e5 2. Bc4 Nc6 3. Qh5 Nf6 4. Qxf7# 1-0`

func TestRecords(t *testing.T) {
	g := testutil.MustLoad(t, scholarsMate)
	g.First()

	records := Records(g, 3)
	require.Len(t, records, 7)

	first := records[0]
	assert.Equal(t, MoveRecord{
		GameIndex:  3,
		Event:      "Casual",
		White:      "Attacker",
		Black:      "Victim",
		Result:     "1-0",
		Ply:        1,
		MoveNumber: 1,
		Colour:     "White",
		SAN:        "e4",
		Long:       "{wp - e2 - e4}",
		FENBefore:  engine.InitialFEN,
		FENAfter:   "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
	}, first)

	last := records[6]
	assert.Equal(t, int32(7), last.Ply)
	assert.Equal(t, int32(4), last.MoveNumber)
	assert.Equal(t, "Qxf7#", last.SAN)
	assert.Equal(t, "{wq - h5 - f7 - bp - #}", last.Long)
	assert.True(t, last.Capture)

	for i := 1; i < len(records); i++ {
		assert.Equal(t, records[i-1].FENAfter, records[i].FENBefore, "ply %d", i+1)
	}
}

func TestRecordsEmptyGame(t *testing.T) {
	assert.Empty(t, Records(testutil.MustGame(t, ""), 0))
}

func TestParquetRoundTrip(t *testing.T) {
	var records []MoveRecord
	records = append(records, Records(testutil.MustLoad(t, scholarsMate), 0)...)
	records = append(records, Records(testutil.MustGame(t, "", "d4", "d5", "c4", "dxc4"), 1)...)

	path := filepath.Join(t.TempDir(), "moves.parquet")
	require.NoError(t, WriteParquet(path, records, 2))

	got, err := ReadParquet(path, 2)
	require.NoError(t, err)
	if diff := cmp.Diff(records, got); diff != "" {
		t.Errorf("records changed on round trip (-want +got):\n%s", diff)
	}
}

func TestWriteParquetBadPath(t *testing.T) {
	err := WriteParquet(filepath.Join(t.TempDir(), "missing", "moves.parquet"), nil, 1)
	assert.Error(t, err)
}

func TestWriteParquetOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moves.parquet")
	first := Records(testutil.MustLoad(t, scholarsMate), 0)
	second := Records(testutil.MustGame(t, "", "e4", "c5"), 1)

	for _, records := range [][]MoveRecord{first, second} {
		if err := WriteParquet(path, records, 1); err != nil {
			t.Fatalf("WriteParquet() error = %v", err)
		}
	}

	got, err := ReadParquet(path, 1)
	if err != nil {
		t.Fatalf("ReadParquet() error = %v", err)
	}
	testutil.AssertEqual(t, got, second)
}
