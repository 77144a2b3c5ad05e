// Interactive input for the new command.
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// multilineTerminator is how many consecutive empty lines end a field. Three
// rather than one, so users can keep blank lines inside their text for
// formatting.
const multilineTerminator = 3

// readLine prints prompt and returns the next input line, trimmed.
func readLine(r *bufio.Reader, w io.Writer, prompt string) (string, error) {
	fmt.Fprint(w, prompt)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// readMultiline collects lines under the given label until three consecutive
// empty lines are entered. The terminator blanks are stripped; interior blank
// lines are preserved exactly. EOF also ends the field.
func readMultiline(r *bufio.Reader, w io.Writer, label string) (string, error) {
	fmt.Fprintln(w, label)
	fmt.Fprintln(w, "(Press Enter three times to finish)")

	var lines []string
	emptyCount := 0
	for {
		line, err := r.ReadString('\n')
		if err != nil && err != io.EOF {
			return "", fmt.Errorf("read input: %w", err)
		}
		done := err == io.EOF && line == ""

		if !done {
			line = strings.TrimRight(line, "\r\n")
			if line == "" {
				emptyCount++
			} else {
				emptyCount = 0
			}
			lines = append(lines, line)
			if emptyCount < multilineTerminator && err != io.EOF {
				continue
			}
		}

		// Strip the trailing empties that signaled the end.
		for i := 0; i < multilineTerminator; i++ {
			if len(lines) > 0 && lines[len(lines)-1] == "" {
				lines = lines[:len(lines)-1]
			}
		}
		return strings.Join(lines, "\n"), nil
	}
}
