package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt asks for the parent folder, the target folder and the threshold,
// reading answers line by line from in. An empty threshold keeps the
// configured one.
func Prompt(config *Config, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	ask := func(question string) (string, error) {
		fmt.Fprint(out, question)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	root, err := ask("Enter the parent folder path containing PDFs: ")
	if err != nil {
		return err
	}

	target, err := ask("Enter the target folder path where duplicates will be deleted: ")
	if err != nil {
		return err
	}

	answer, err := ask(fmt.Sprintf("Enter the similarity threshold (e.g., 0.9 for 90%%) [%g]: ", config.Threshold))
	if err != nil {
		return err
	}

	if answer != "" {
		threshold, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return fmt.Errorf("invalid threshold %q: %w", answer, err)
		}
		config.Threshold = threshold
	}

	config.Root = root
	config.Target = target
	return nil
}
