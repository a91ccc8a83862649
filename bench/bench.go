// Package bench implements the benchmark file format: a
// description line followed by example lines, toggled between the
// positive and negative sets by bare "++" and "--" lines.
package bench

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Instance is one parsed benchmark file: a free-form description plus the
// positive and negative example sets.
type Instance struct {
	Description string
	Positive    []string
	Negative    []string
}

// Parse reads a benchmark file from r. Line 1 is the description.
// Subsequent lines beginning exactly "++" or "--" toggle the active set
// (starting positive); every other line, after whitespace trimming, is an
// example — including a blank line, which denotes the empty-string
// example.
func Parse(r io.Reader) (*Instance, error) {
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "bench: reading description line")
		}
		return nil, errors.New("bench: empty benchmark file, missing description line")
	}
	inst := &Instance{Description: strings.TrimSpace(scanner.Text())}

	const (
		modePositive = iota
		modeNegative
	)
	mode := modePositive

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "++":
			mode = modePositive
		case "--":
			mode = modeNegative
		default:
			if mode == modePositive {
				inst.Positive = append(inst.Positive, line)
			} else {
				inst.Negative = append(inst.Negative, line)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "bench: scanning benchmark file")
	}
	return inst, nil
}
