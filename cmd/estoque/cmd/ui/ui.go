// Package ui - ввод и вывод CLI: запросы полей, подтверждения и уведомления.
package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Notice is an error whose message is already localized for the user.
type Notice struct {
	Message string
	Err     error
}

func (n *Notice) Error() string {
	return n.Message
}

func (n *Notice) Unwrap() error {
	return n.Err
}

func NewNotice(message string, err error) *Notice {
	return &Notice{Message: message, Err: err}
}

func Success(w io.Writer, msg string) {
	fmt.Fprintln(w, color.GreenString("✓ %s", msg))
}

func Failure(w io.Writer, msg string) {
	fmt.Fprintln(w, color.RedString("✗ %s", msg))
}

func Info(w io.Writer, msg string) {
	fmt.Fprintln(w, color.CyanString("%s", msg))
}

// Prompter reads answers line by line. Secrets are read without echo when
// the input is a terminal.
type Prompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: in, reader: bufio.NewReader(in), out: out}
}

// Line asks for a value. An empty answer returns def.
func (p *Prompter) Line(label, def string) (string, error) {
	if def != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, def)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	answer, err := p.readLine()
	if err != nil {
		return "", err
	}
	if answer == "" {
		return def, nil
	}
	return answer, nil
}

func (p *Prompter) Secret(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("ошибка чтения пароля: %w", err)
		}
		return string(b), nil
	}
	return p.readLine()
}

// Confirm accepts y, yes, s and sim.
func (p *Prompter) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [y/N]: ", question)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "sim":
		return true, nil
	}
	return false, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("ошибка чтения ввода: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
