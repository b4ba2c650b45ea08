// ABOUTME: Input text selection
// ABOUTME: Takes --text, else the --input file, else stdin
package cli

import (
	"fmt"
	"io"
	"os"
)

func readInput(haveText bool, text, path string, stdin io.Reader) (string, error) {
	if haveText {
		return text, nil
	}

	if path != "" && path != "-" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
