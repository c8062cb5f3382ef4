package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mmcdole/galleria/internal/config"
	"golang.org/x/term"
)

// runSetupFlow asks for the Flickr API key and saves it to the config file
func runSetupFlow(cfg *config.Config, in *os.File, out io.Writer) error {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Welcome to Galleria!")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "A Flickr API key is required. Create one at https://www.flickr.com/services/apps/create/")

	reader := bufio.NewReader(in)
	for {
		fmt.Fprint(out, "Enter your Flickr API key: ")
		key, err := readSecret(in, reader)
		fmt.Fprintln(out)
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		key = strings.TrimSpace(key)
		if key == "" {
			fmt.Fprintln(out, "API key cannot be empty. Please try again.")
			continue
		}

		cfg.Flickr.APIKey = key
		break
	}

	path, err := config.SaveConfig(cfg)
	if err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "✓ Configuration saved to %s\n", path)
	fmt.Fprintln(out)
	return nil
}

// readSecret reads a line without echo when in is a terminal
func readSecret(in *os.File, reader *bufio.Reader) (string, error) {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		return string(b), err
	}
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}
