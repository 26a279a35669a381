package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// promptPassphrase returns the --passphrase value, or asks for one on
// Stdin. A terminal gets a no-echo prompt; anything else is read a line at
// a time so scripts and tests can pipe passphrases in.
func promptPassphrase(prompt string) (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	fmt.Fprint(Stdout, prompt)
	if term.IsTerminal(int(Stdin.Fd())) {
		p, err := term.ReadPassword(int(Stdin.Fd()))
		fmt.Fprintln(Stdout, "")
		if err != nil {
			return "", err
		}
		return string(p), nil
	}
	if stdinReader == nil {
		stdinReader = bufio.NewReader(Stdin)
	}
	p, err := stdinReader.ReadString('\n')
	if err != nil && (p == "" || !errors.Is(err, io.EOF)) {
		return "", err
	}
	return strings.TrimRight(p, "\r\n"), nil
}

// promptNewPassphrase asks twice unless --passphrase was given.
func promptNewPassphrase() (string, error) {
	if passphrase != "" {
		return passphrase, nil
	}
	first, err := promptPassphrase("New passphrase: ")
	if err != nil {
		return "", err
	}
	second, err := promptPassphrase("Repeat passphrase: ")
	if err != nil {
		return "", err
	}
	if first != second {
		return "", errors.New("passphrases do not match")
	}
	return first, nil
}
