/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: corpus.go
Description: Sample corpus loading for HMM training. Reads observation sequences from
plain text files, one whitespace-separated sequence per line, skipping blank lines and
comments.
*/

package persistence

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/kleascm/akaylee-hmm/pkg/hmm"
)

// ReadItems loads observation sequences from a corpus file. Each
// non-blank, non-comment line is one item; symbols are separated by
// whitespace. Lines starting with '#' are comments.
func ReadItems(path string) ([]hmm.Item, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus file: %w", err)
	}
	defer file.Close()

	var items []hmm.Item
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		item := make(hmm.Item, len(fields))
		for i, f := range fields {
			item[i] = hmm.Symbol(f)
		}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read corpus file: %w", err)
	}
	return items, nil
}
