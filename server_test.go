package genni

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunServerProtocol(t *testing.T) {
	var seen []Bounds
	solve := func(b Bounds) ([]Solution, error) {
		seen = append(seen, b)
		return []Solution{{X: 39876877, Y: 9564546}}, nil
	}

	in := strings.Join([]string{
		"CHECK 39876877 9564546",
		"check 1 2",
		"CHECK x",
		"BOUNDS 1 2",
		"BOUNDS 870 879 540 549 39870 39879 9560 9569",
		"",
		"FOO",
		"RUN",
		"QUIT",
		"RUN",
	}, "\n") + "\n"

	var out bytes.Buffer
	require.NoError(t, RunServer(strings.NewReader(in), &out, solve))

	assert.Equal(t, strings.Join([]string{
		"OK TRUE",
		"OK FALSE",
		"ERR BADARGS",
		"ERR BADARGS",
		"OK",
		"ERR BADCMD",
		"OK 1",
		"39876877 9564546",
	}, "\n")+"\n", out.String())
	assert.Equal(t, []Bounds{firstWindow}, seen)
}

func TestRunServerDefaultsAndErrors(t *testing.T) {
	var seen []Bounds
	solve := func(b Bounds) ([]Solution, error) {
		seen = append(seen, b)
		return nil, errors.New("boom")
	}

	var out bytes.Buffer
	// No trailing newline: the last command is still served at EOF.
	require.NoError(t, RunServer(strings.NewReader("BOUNDS 0 1000 0 9 10 19 0 9\nRUN"), &out, solve))

	assert.Equal(t, "ERR BADARGS\nERR boom\n", out.String())
	assert.Equal(t, []Bounds{DefaultBounds()}, seen)
}

func TestRunServerWithSolver(t *testing.T) {
	solve := func(b Bounds) ([]Solution, error) {
		res, err := NewSolver(WithBounds(b), WithWorkers(2)).Run(t.Context())
		if err != nil {
			return nil, err
		}
		return res.Solutions, nil
	}

	var out bytes.Buffer
	in := "BOUNDS 440 449 640 649 49220 49229 9770 9779\nRUN\nQUIT\n"
	require.NoError(t, RunServer(strings.NewReader(in), &out, solve))
	assert.Equal(t, "OK\nOK 1\n49228443 9773647\n", out.String())
}
