package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/tasktide/tasktide/pkg/planner"
)

var (
	stdin io.Reader = os.Stdin

	isTerminal = func(f *os.File) bool {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
)

// linePrompter asks yes/no questions on stdout and reads one answer line
// per question.
type linePrompter struct {
	in *bufio.Reader
}

func newPrompter() *linePrompter {
	return &linePrompter{in: bufio.NewReader(stdin)}
}

func (p *linePrompter) Confirm(question string) (bool, error) {
	fmt.Printf("%s (y/n): ", question)
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		fmt.Println()
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0":
		return false, nil
	}
	fmt.Println("Invalid input")
	return false, planner.ErrInvalidAnswer
}
