package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

// Console reads one line per prompt and writes everything else verbatim.
type Console struct {
	reader *bufio.Reader
	writer io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		reader: bufio.NewReader(in),
		writer: out,
	}
}

// ReadLine - writes the prompt and blocks until a line is available.
// The returned line has its newline stripped. Exhausted or broken input
// is reported as apperror.ErrInputClosed.
func (that *Console) ReadLine(prompt string) (string, error) {
	if err := that.Print(prompt); err != nil {
		return "", err
	}

	line, err := that.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return trimNewline(line), nil
		}

		return "", fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)
	}

	return trimNewline(line), nil
}

func (that *Console) Print(text string) error {
	if _, err := io.WriteString(that.writer, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}

func (that *Console) Println(text string) error {
	return that.Print(text + "\n")
}

func trimNewline(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}

	return line
}
