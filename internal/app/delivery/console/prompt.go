package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"medicare-frontend/internal/app/contracts"

	"golang.org/x/term"
)

// Prompter reads answers from the user. Secret reads without echo where the
// input allows it.
type Prompter interface {
	Line(prompt string) (string, error)
	Secret(prompt string) (string, error)
}

type linePrompter struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// NewPrompter reads lines from in. Secrets are read with echo disabled when
// in is a terminal.
func NewPrompter(in io.Reader, out io.Writer) Prompter {
	prompter := &linePrompter{in: bufio.NewReader(in), out: out, fd: -1}
	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		prompter.fd = int(file.Fd())
		prompter.tty = true
	}
	return prompter
}

func (p *linePrompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (p *linePrompter) Secret(prompt string) (string, error) {
	if !p.tty {
		return p.Line(prompt)
	}
	fmt.Fprint(p.out, prompt)
	secret, err := term.ReadPassword(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(secret), nil
}

// confirmer asks a [y/N] question; anything but y or yes declines.
func confirmer(prompter Prompter) contracts.Confirmer {
	return contracts.ConfirmFunc(func(ctx context.Context, message string) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		answer, err := prompter.Line(message + " [y/N] ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		}
		return false, nil
	})
}
