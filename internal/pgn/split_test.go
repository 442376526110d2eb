package pgn

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessnote/internal/chess"
	"github.com/lgbarn/chessnote/internal/config"
	chesserrors "github.com/lgbarn/chessnote/internal/errors"
)

const twoGames = `[Event "First"]
[Result "1-0"]

1. e4 e5 2. Qh5 Ke7 3. Qxe5# 1-0

[Event "Second"]

1. d4 {a comment
[that looks like a tag]} d5 *
`

func TestSplitGames(t *testing.T) {
	games, err := SplitGames(strings.NewReader(twoGames))
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.True(t, strings.HasPrefix(games[0], `[Event "First"]`))
	assert.True(t, strings.HasPrefix(games[1], `[Event "Second"]`))
	assert.Contains(t, games[1], "[that looks like a tag]")
}

func TestSplitGamesWithoutTags(t *testing.T) {
	games, err := SplitGames(strings.NewReader("\n\n1. e4 e5 *\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"\n\n1. e4 e5 *\n"}, games)

	games, err = SplitGames(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, games)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, io.ErrUnexpectedEOF }

func TestSplitGamesReadError(t *testing.T) {
	_, err := SplitGames(failingReader{})
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestNewDecodingReader(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		encoding string
		want     string
	}{
		{"utf-8", []byte("[White \"Müller\"]"), config.EncodingUTF8, "[White \"Müller\"]"},
		{"utf-8 with BOM", append([]byte{0xEF, 0xBB, 0xBF}, "1. e4"...), config.EncodingUTF8, "1. e4"},
		{"default", []byte("1. e4"), "", "1. e4"},
		{"latin1", []byte("[White \"M\xfcller\"]"), config.EncodingLatin1, "[White \"Müller\"]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewDecodingReader(bytes.NewReader(tt.input), tt.encoding)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestNewDecodingReaderUnknown(t *testing.T) {
	_, err := NewDecodingReader(strings.NewReader(""), "ebcdic")
	assert.ErrorIs(t, err, chesserrors.ErrInvalidConfig)
}

func TestLoadLatin1Game(t *testing.T) {
	r, err := NewDecodingReader(strings.NewReader("[White \"L\xe9vy\"]\n\n1. e4 *\n"), config.EncodingLatin1)
	require.NoError(t, err)
	games, err := SplitGames(r)
	require.NoError(t, err)
	require.Len(t, games, 1)

	g, err := Load(games[0])
	require.NoError(t, err)
	assert.Equal(t, "Lévy", g.Headers().Get(chess.WhiteTag))
}

func TestLoadAll(t *testing.T) {
	texts := []string{
		"1. e4 e5 *",
		"1. e4 e5 2. Ke3 *",
		"1. d4 d5 2. c4 *",
		"1. f3 e5 2. g4 Qh4# 0-1",
	}

	results := LoadAll(context.Background(), texts, 2)
	require.Len(t, results, len(texts))

	for i, r := range results {
		assert.Equal(t, i, r.Seq)
		assert.Equal(t, texts[i], r.Text)
	}
	require.NoError(t, results[0].Err)
	assert.Equal(t, 2, results[0].Game.Len())

	assert.Nil(t, results[1].Game)
	assert.True(t, errors.Is(results[1].Err, chesserrors.ErrNoMatchingMove))

	require.NoError(t, results[2].Err)
	assert.Equal(t, 3, results[2].Game.Len())

	require.NoError(t, results[3].Err)
	assert.Equal(t, "0-1", results[3].Game.Result())
}

func TestLoadAllExpiredContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	results := LoadAll(ctx, []string{"1. e4 *", "1. d4 *", "1. c4 *"}, 1)
	require.Len(t, results, 3)
	for _, r := range results {
		assert.Nil(t, r.Game)
		assert.Equal(t, chesserrors.KindTimeout, chesserrors.KindOf(r.Err), "game %d: %v", r.Seq, r.Err)
	}
}
