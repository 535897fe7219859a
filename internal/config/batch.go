// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"os"
)

// BatchFile is the document read by `bauer batch`.
type BatchFile struct {
	Inputs []BatchInput `yaml:"inputs"`
}

// BatchInput is one polynomial to complete.
type BatchInput struct {
	Name  string    `yaml:"name"`
	Coefs []float64 `yaml:"coefs"`
	Dmin  int       `yaml:"dmin"`
}

// LoadBatch reads and validates a batch input file.
func LoadBatch(path string) (*BatchFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var bf BatchFile
	if err := decodeStrict(data, &bf); err != nil {
		return nil, fmt.Errorf("failed to parse batch file %s: %w", path, err)
	}
	if len(bf.Inputs) == 0 {
		return nil, fmt.Errorf("%w: batch file %s has no inputs", ErrInvalid, path)
	}
	for i, in := range bf.Inputs {
		if len(in.Coefs) == 0 {
			return nil, fmt.Errorf("%w: input %d (%s) has no coefs", ErrInvalid, i, in.Name)
		}
	}

	return &bf, nil
}
