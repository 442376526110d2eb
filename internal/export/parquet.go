// Package export writes games as a per-ply Parquet dataset.
package export

import (
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/engine"
	"github.com/lgbarn/chessnote/internal/game"
	"github.com/lgbarn/chessnote/internal/notation"
)

// MoveRecord is one ply of one game.
type MoveRecord struct {
	GameIndex  int32  `parquet:"name=game_index, type=INT32"`
	Event      string `parquet:"name=event, type=BYTE_ARRAY, convertedtype=UTF8"`
	White      string `parquet:"name=white, type=BYTE_ARRAY, convertedtype=UTF8"`
	Black      string `parquet:"name=black, type=BYTE_ARRAY, convertedtype=UTF8"`
	Result     string `parquet:"name=result, type=BYTE_ARRAY, convertedtype=UTF8"`
	Ply        int32  `parquet:"name=ply, type=INT32"`
	MoveNumber int32  `parquet:"name=move_number, type=INT32"`
	Colour     string `parquet:"name=colour, type=BYTE_ARRAY, convertedtype=UTF8"`
	SAN        string `parquet:"name=san, type=BYTE_ARRAY, convertedtype=UTF8"`
	Long       string `parquet:"name=long, type=BYTE_ARRAY, convertedtype=UTF8"`
	Capture    bool   `parquet:"name=capture, type=BOOLEAN"`
	FENBefore  string `parquet:"name=fen_before, type=BYTE_ARRAY, convertedtype=UTF8"`
	FENAfter   string `parquet:"name=fen_after, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// Records lists one row per ply of the game's full history, regardless of
// the navigation cursor.
func Records(g *game.Game, gameIndex int) []MoveRecord {
	headers := g.Headers()
	history := g.History()
	records := make([]MoveRecord, 0, len(history))

	for i, m := range history {
		before, _ := g.PositionAt(i)
		after, _ := g.PositionAt(i + 1)
		records = append(records, MoveRecord{
			GameIndex:  int32(gameIndex),
			Event:      headers.Get(chess.EventTag),
			White:      headers.Get(chess.WhiteTag),
			Black:      headers.Get(chess.BlackTag),
			Result:     g.Result(),
			Ply:        int32(i + 1),
			MoveNumber: int32(before.MoveNumber),
			Colour:     before.ToMove.String(),
			SAN:        m.SAN,
			Long:       notation.FormatLong(m),
			Capture:    m.IsCapture(),
			FENBefore:  engine.ToFEN(before),
			FENAfter:   engine.ToFEN(after),
		})
	}
	return records
}

// WriteParquet writes records to a Snappy-compressed Parquet file at path.
// The file is closed exactly once; a failed close is reported when nothing
// failed before it.
func WriteParquet(path string, records []MoveRecord, parallel int64) (err error) {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fileWriter.Close(); err == nil {
			err = cerr
		}
	}()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(MoveRecord), parallel)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for _, record := range records {
		if err := parquetWriter.Write(record); err != nil {
			return err
		}
	}
	return parquetWriter.WriteStop()
}

// ReadParquet reads back every record of a file written by WriteParquet.
func ReadParquet(path string, parallel int64) ([]MoveRecord, error) {
	fileReader, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer fileReader.Close()

	parquetReader, err := reader.NewParquetReader(fileReader, new(MoveRecord), parallel)
	if err != nil {
		return nil, err
	}
	defer parquetReader.ReadStop()

	records := make([]MoveRecord, parquetReader.GetNumRows())
	if err := parquetReader.Read(&records); err != nil {
		return nil, err
	}
	return records, nil
}
