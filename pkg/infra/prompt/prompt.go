package prompt

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mattn/go-isatty"

	"github.com/bayesimpact/gitreview/pkg/domain/interfaces"
)

// Terminal prompts the user on stdin/stdout. When stdin is not a TTY every
// yes/no question is answered "no", matching non-interactive runs in CI.
type Terminal struct {
	reader *bufio.Reader
}

var _ interfaces.Prompter = (*Terminal)(nil)

func New() *Terminal {
	return &Terminal{reader: bufio.NewReader(os.Stdin)}
}

func (x *Terminal) AskYesNo(question string) bool {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		fmt.Printf("%s Answering N, since not a TTY.\n", question)
		return false
	}
	fmt.Printf("%s [y/N] ", question)
	answer, err := x.reader.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(answer)), "y")
}

func (x *Terminal) ReadLine(prompt string) (string, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return "", goerr.New("cannot prompt: stdin is not a TTY")
	}
	fmt.Print(prompt)
	line, err := x.reader.ReadString('\n')
	if err != nil {
		return "", goerr.Wrap(err, "reading answer")
	}
	return strings.TrimSpace(line), nil
}

// Silent answers "no" to everything and fails on free-form prompts. It is
// the default prompter for tests and non-interactive contexts.
type Silent struct{}

var _ interfaces.Prompter = Silent{}

func (Silent) AskYesNo(string) bool {
	return false
}

func (Silent) ReadLine(string) (string, error) {
	return "", goerr.New("cannot prompt in non-interactive mode")
}
