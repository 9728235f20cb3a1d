package main

import (
	"fmt"
	"log"
)

const msgNoQuestions = "No valid questions were found in the file."

// LoadOutcome is what the user is told after a load attempt.
type LoadOutcome struct {
	Added   int    `json:"added"`
	BatchID string `json:"batchId,omitempty"`
	Message string `json:"message"`
}

// ImportBytes decodes raw as UTF-8 text, parses it and appends the
// accepted questions. Finding nothing is a normal outcome, not an error.
func ImportBytes(store *Store, source string, raw []byte) (LoadOutcome, error) {
	content, err := decodeText(source, raw)
	if err != nil {
		return LoadOutcome{}, err
	}
	return appendParsed(store, source, ParseQuestions(content))
}

// ImportFile is ImportBytes for a file on disk.
func ImportFile(store *Store, path string) (LoadOutcome, error) {
	qs, err := ParseFile(path)
	if err != nil {
		return LoadOutcome{}, err
	}
	return appendParsed(store, path, qs)
}

func appendParsed(store *Store, source string, qs []Question) (LoadOutcome, error) {
	if len(qs) == 0 {
		return LoadOutcome{Message: msgNoQuestions}, nil
	}
	b, err := store.Append(source, qs)
	if err != nil {
		return LoadOutcome{}, err
	}
	log.Printf("loaded %d questions from %s (batch %s)", b.Count, source, b.ID)
	return LoadOutcome{
		Added:   b.Count,
		BatchID: b.ID,
		Message: fmt.Sprintf("Added %d questions from file.", b.Count),
	}, nil
}

func loadErrorMessage(err error) string {
	return fmt.Sprintf("An error occurred: %v", err)
}
