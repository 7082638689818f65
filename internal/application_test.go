package application

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe/internal/config"
	"github.com/rocketscienceinc/tictactoe/testing/suite"
)

func TestRun(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: plain output and a full game ending in a draw
	conf := &config.Config{LogLevel: "debug", Console: config.Console{NoColor: true}}
	in := strings.NewReader("0\n1\n2\n4\n3\n5\n7\n6\n8\nquit\n")
	out := &bytes.Buffer{}

	// When: the application runs over the input
	err := Run(ctx, st.Logger, conf, in, out)

	// Then: the final board is drawn with the result
	require.NoError(t, err)
	assert.Contains(t, out.String(), " X | O | X \n---+---+---\n X | O | O \n---+---+---\n O | X | X \n\nDraw!\n")
	assert.Contains(t, st.Logs.String(), "Console closed")
	assert.Contains(t, st.Logs.String(), `"status":"draw"`)
}
