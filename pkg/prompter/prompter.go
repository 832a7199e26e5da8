package prompter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var (
	input  io.Reader = os.Stdin
	prompt io.Writer = os.Stderr
)

func readLine() (string, error) {
	line, err := bufio.NewReader(input).ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptString prompts user for a string input
func PromptString(label string) (string, error) {
	fmt.Fprint(prompt, label)
	return readLine()
}

// PromptSecret reads a value without echoing it when stdin is a terminal
func PromptSecret(label string) (string, error) {
	fmt.Fprint(prompt, label)

	f, ok := input.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return readLine()
	}

	secret, err := term.ReadPassword(int(f.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(secret)), nil
}
