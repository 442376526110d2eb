package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lgbarn/chessnote/internal/config"
	"github.com/lgbarn/chessnote/internal/export"
	"github.com/lgbarn/chessnote/internal/testutil"
)

const annotatedGames = `[Event "Club"]
[White "A"]
[Black "B"]

1. e4 {best by test} e5 (1... c5 2. Nf3) 2. Qh5 $2 Ke7?? 3. Qxe5# 1-0

[Event "Open"]

1. d4 d5 2. c4 *
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// runCLI runs the program and returns its exit code, stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunNormalisesGames(t *testing.T) {
	path := writeFile(t, "games.pgn", annotatedGames)

	code, stdout, stderr := runCLI(t, "", path)
	require.Equal(t, exitOK, code, stderr)

	want := `[Event "Club"]
[White "A"]
[Black "B"]

1. e4 e5 2. Qh5 Ke7 3. Qxe5# 1-0

[Event "Open"]

1. d4 d5 2. c4

`
	testutil.AssertEqual(t, stdout, want)
	assert.Contains(t, stderr, "2 game(s) accepted, 0 rejected out of 2.")
}

func TestRunStdin(t *testing.T) {
	code, stdout, _ := runCLI(t, "1. e4 e5 *", "-s", "-notags")
	require.Equal(t, exitOK, code)
	assert.Equal(t, "1. e4 e5\n\n", stdout)
}

func TestRunRejectsBadGames(t *testing.T) {
	path := writeFile(t, "bad.pgn", "1. e4 e5 *\n\n[Event \"Bad\"]\n\n1. e4 e5 2. Ke3 *\n")

	code, stdout, stderr := runCLI(t, "", path)
	assert.Equal(t, exitRejected, code)
	assert.Equal(t, "1. e4 e5\n\n", stdout)
	assert.Contains(t, stderr, "game rejected")
	assert.Contains(t, stderr, "game 2, ply 3")
	assert.Contains(t, stderr, "illegal")
	assert.Contains(t, stderr, "1 game(s) accepted, 1 rejected out of 2.")
}

func TestRunQuietStillReportsErrors(t *testing.T) {
	code, _, stderr := runCLI(t, "1. e4 Zz9 *", "-s")
	assert.Equal(t, exitRejected, code)
	assert.Contains(t, stderr, "structural")
	assert.NotContains(t, stderr, "accepted")
}

func TestRunDuplicates(t *testing.T) {
	text := `[Event "a"]

1. Nf3 Nc6 2. Nc3 Nf6 *

[Event "b"]

1. Nc3 Nf6 2. Nf3 Nc6 *

[Event "c"]

1. Nf3 Nc6 2. Ng1 Nb8 3. Nf3 Nc6 4. Nc3 Nf6 *
`
	first := "1. Nf3 Nc6 2. Nc3 Nf6\n\n"
	longer := "1. Nf3 Nc6 2. Ng1 Nb8 3. Nf3 Nc6 4. Nc3 Nf6\n\n"

	t.Run("transpositions", func(t *testing.T) {
		dups := filepath.Join(t.TempDir(), "dups.pgn")
		code, stdout, stderr := runCLI(t, text, "-D", "-transpositions", "-d", dups, "-notags")
		require.Equal(t, exitOK, code, stderr)
		assert.Equal(t, first, stdout)
		assert.Contains(t, stderr, "1 game(s) accepted, 2 duplicate(s), 0 rejected out of 3.")

		written, err := os.ReadFile(dups)
		require.NoError(t, err)
		assert.Equal(t, "1. Nc3 Nf6 2. Nf3 Nc6\n\n"+longer, string(written))
	})

	t.Run("exact", func(t *testing.T) {
		code, stdout, stderr := runCLI(t, text, "-D", "-notags")
		require.Equal(t, exitOK, code, stderr)
		assert.Equal(t, first+longer, stdout)
		assert.Contains(t, stderr, "2 game(s) accepted, 1 duplicate(s), 0 rejected out of 3.")
	})
}

func TestRunCheckOnly(t *testing.T) {
	code, stdout, stderr := runCLI(t, annotatedGames, "-check")
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "2 game(s) accepted")
}

func TestRunOutputFileAndTags(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.pgn")

	code, stdout, _ := runCLI(t, annotatedGames, "-s", "-7", "-o", out)
	require.Equal(t, exitOK, code)
	assert.Empty(t, stdout)

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(written), "[Site \"?\"]\n")
	assert.Contains(t, string(written), "[Result \"1-0\"]\n")
	assert.Contains(t, string(written), "[Result \"?\"]\n")
}

func TestRunExports(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.pgn")
	require.NoError(t, os.WriteFile(path, []byte(annotatedGames), 0o600))
	svgDir := filepath.Join(dir, "svg")
	parquetFile := filepath.Join(dir, "moves.parquet")

	code, _, stderr := runCLI(t, "", "-s", "-check", "-svg", svgDir, "-flip", "-parquet", parquetFile, path)
	require.Equal(t, exitOK, code, stderr)

	for _, name := range []string{"games-001.svg", "games-002.svg"} {
		data, err := os.ReadFile(filepath.Join(svgDir, name))
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "<svg")
	}

	records, err := export.ReadParquet(parquetFile, 1)
	require.NoError(t, err)
	require.Len(t, records, 8)
	assert.Equal(t, int32(0), records[0].GameIndex)
	assert.Equal(t, "Qxe5#", records[4].SAN)
	assert.Equal(t, int32(1), records[5].GameIndex)
	assert.Equal(t, "c4", records[7].SAN)
}

func TestRunFileListAndLatin1(t *testing.T) {
	dir := t.TempDir()
	game := filepath.Join(dir, "latin.pgn")
	require.NoError(t, os.WriteFile(game, []byte("[White \"L\xe9vy\"]\n\n1. e4 *\n"), 0o600))
	list := filepath.Join(dir, "list.txt")
	require.NoError(t, os.WriteFile(list, []byte("# inputs\n\n"+game+"\n"), 0o600))

	code, stdout, stderr := runCLI(t, "", "-s", "-f", list, "-encoding", config.EncodingLatin1)
	require.Equal(t, exitOK, code, stderr)
	assert.Equal(t, "[White \"Lévy\"]\n\n1. e4\n\n", stdout)
}

func TestRunFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{"unknown flag", []string{"-nosuchflag"}, exitUsage},
		{"bad encoding", []string{"-encoding", "ebcdic"}, exitUsage},
		{"short lines", []string{"-linelength", "5"}, exitUsage},
		{"zero square size", []string{"-svg", "out", "-squaresize", "0"}, exitUsage},
		{"missing input", []string{filepath.Join(t.TempDir(), "missing.pgn")}, exitFailure},
		{"missing file list", []string{"-f", filepath.Join(t.TempDir(), "missing.txt")}, exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, "", tt.args...)
			assert.Equal(t, tt.code, code)
		})
	}
}

func TestRunVersionAndHelp(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "-version")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "chessnote version "+programVersion+"\n", stdout)

	code, _, stderr := runCLI(t, "", "-h")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "Usage: chessnote")
	assert.Contains(t, stderr, "-parquet")
}

func TestBuildConfig(t *testing.T) {
	opts := &options{}
	fs := newFlagSet(opts, &bytes.Buffer{})
	require.NoError(t, fs.Parse([]string{
		"-7", "-noresults", "-nonumbers", "-linelength", "60", "-fen",
		"-D", "-duplicate-capacity", "10", "-transpositions",
		"-encoding", "latin1", "-nestedcomments", "-w", "3",
		"-svg", "d", "-squaresize", "30", "-flip", "-parquet", "p", "-check", "-v",
	}))

	cfg := buildConfig(opts, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, config.SevenTagRoster, cfg.Output.TagFormat)
	assert.False(t, cfg.Output.KeepResults)
	assert.False(t, cfg.Output.KeepMoveNumbers)
	assert.Equal(t, uint(60), cfg.Output.MaxLineLength)
	assert.True(t, cfg.Output.OutputFEN)
	assert.True(t, cfg.Duplicate.Suppress)
	assert.Equal(t, 10, cfg.Duplicate.MaxCapacity)
	assert.False(t, cfg.Duplicate.Exact)
	assert.Equal(t, config.EncodingLatin1, cfg.Encoding)
	assert.True(t, cfg.AllowNestedComments)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, config.ExportConfig{SVGDir: "d", SquareSize: 30, Flip: true, ParquetFile: "p"}, cfg.Export)
	assert.True(t, cfg.CheckOnly)
	assert.Equal(t, 2, cfg.Verbosity)
	require.NoError(t, cfg.Validate())
}

func TestVerboseLogsEveryGame(t *testing.T) {
	code, _, stderr := runCLI(t, annotatedGames, "-v", "-check")
	require.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "game accepted")
	assert.Contains(t, stderr, "plies=5")
	assert.Contains(t, stderr, "file=stdin")
}

func TestRunSelection(t *testing.T) {
	path := writeFile(t, "games.pgn", annotatedGames)
	criteria := writeFile(t, "criteria.txt", "# open events only\nEvent = \"Open\"\n")

	club := "1. e4 e5 2. Qh5 Ke7 3. Qxe5# 1-0\n\n"
	open := "1. d4 d5 2. c4\n\n"

	tests := []struct {
		name    string
		args    []string
		want    string
		skipped string
	}{
		{"player", []string{"-p", "b"}, club, "1 game(s) did not match"},
		{"result", []string{"-Tr", "*"}, open, "1 game(s) did not match"},
		{"criteria file", []string{"-t", criteria}, open, "1 game(s) did not match"},
		{"all criteria", []string{"-p", "A", "-Tr", "*"}, "", "2 game(s) did not match"},
		{"any criterion", []string{"-p", "A", "-Tr", "*", "-any"}, club + open, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-notags"}, tt.args...)
			code, stdout, stderr := runCLI(t, "", append(args, path)...)
			require.Equal(t, exitOK, code, stderr)
			assert.Equal(t, tt.want, stdout)
			if tt.skipped != "" {
				assert.Contains(t, stderr, tt.skipped)
			} else {
				assert.NotContains(t, stderr, "did not match")
			}
		})
	}
}

func TestRunSelectionErrors(t *testing.T) {
	path := writeFile(t, "games.pgn", annotatedGames)
	bad := writeFile(t, "criteria.txt", "Event ~ \"(\"\n")

	code, _, stderr := runCLI(t, "", "-t", bad, path)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "line 1")

	code, _, _ = runCLI(t, "", "-t", filepath.Join(t.TempDir(), "missing.txt"), path)
	assert.Equal(t, exitUsage, code)
}
