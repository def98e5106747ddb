package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	pathQuestion = "Please enter image path: "
	modeQuestion = "Please enter whether to sharpen or not ('t' or 'f'): "
)

// prompter asks one-line questions on an interactive stream.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(in), out: out}
}

// ask prints question and returns the answer without its line ending.
// A final line without a newline is accepted.
func (p *prompter) ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
