package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBrokenPipe = errors.New("broken pipe")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errBrokenPipe
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errBrokenPipe
}

func TestConsole_ReadLine(t *testing.T) {
	t.Run("Writes the prompt and returns the line without newline", func(t *testing.T) {
		// Given: a console with two lines of input
		var out bytes.Buffer
		cons := New(strings.NewReader("5\r\n7\n"), &out)

		// When: reading twice
		first, err := cons.ReadLine("> ")
		require.NoError(t, err)
		second, err := cons.ReadLine("> ")
		require.NoError(t, err)

		// Then: each line is returned separately and both prompts were written
		assert.Equal(t, "5", first)
		assert.Equal(t, "7", second)
		assert.Equal(t, "> > ", out.String())
	})

	t.Run("Final line without newline is still returned", func(t *testing.T) {
		cons := New(strings.NewReader("9"), io.Discard)

		line, err := cons.ReadLine("")

		require.NoError(t, err)
		assert.Equal(t, "9", line)
	})

	t.Run("Exhausted input returns ErrInputClosed", func(t *testing.T) {
		// Given: a console whose input is already consumed
		cons := New(strings.NewReader("1\n"), io.Discard)
		_, err := cons.ReadLine("")
		require.NoError(t, err)

		// When: reading once more
		_, err = cons.ReadLine("")

		// Then: the error is ErrInputClosed wrapping io.EOF
		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.ErrorIs(t, err, io.EOF)
	})

	t.Run("Read failure returns ErrInputClosed", func(t *testing.T) {
		cons := New(failingReader{}, io.Discard)

		_, err := cons.ReadLine("")

		require.ErrorIs(t, err, apperror.ErrInputClosed)
		assert.ErrorIs(t, err, errBrokenPipe)
	})

	t.Run("Write failure is returned before reading", func(t *testing.T) {
		cons := New(strings.NewReader("1\n"), failingWriter{})

		_, err := cons.ReadLine("> ")

		require.ErrorIs(t, err, errBrokenPipe)
		assert.NotErrorIs(t, err, apperror.ErrInputClosed)
	})
}

func TestConsole_Println(t *testing.T) {
	var out bytes.Buffer
	cons := New(strings.NewReader(""), &out)

	require.NoError(t, cons.Println("It's a draw!"))

	assert.Equal(t, "It's a draw!\n", out.String())
}
