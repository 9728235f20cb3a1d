package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// spaceClass is every rune dumps use as whitespace, including the
// no-break and line/paragraph separators PDF exports leave behind.
const spaceClass = `[\s\v\x{1c}-\x{1f}\x{85}\p{Z}]`

var (
	blockDelimiter = regexp.MustCompile(`(?m)^QUESTION NO:` + spaceClass + `*`)
	leadingNumber  = regexp.MustCompile(`^\d+`)
	optionLine     = regexp.MustCompile(`^[A-Z]\.` + spaceClass)
)

const answerPrefix = "Answer:"

var errNotUTF8 = errors.New("file is not valid UTF-8 text")

// ParseFile reads a question dump from disk and parses it.
func ParseFile(path string) ([]Question, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	content, err := decodeText(path, raw)
	if err != nil {
		return nil, err
	}
	return ParseQuestions(content), nil
}

func decodeText(name string, raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("decode %s: %w", name, errNotUTF8)
	}
	return string(raw), nil
}

// ParseQuestions splits content on "QUESTION NO:" lines and returns every
// block that yields a question text and an answer. Other blocks are dropped.
func ParseQuestions(content string) []Question {
	content = strings.TrimPrefix(content, "\ufeff")
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	var out []Question
	for _, block := range blockDelimiter.Split(content, -1) {
		if q, ok := parseBlock(block); ok {
			out = append(out, q)
		}
	}
	return out
}

type scanMode int

const (
	modeText scanMode = iota
	modeOptions
)

func parseBlock(block string) (Question, bool) {
	block = trimSpace(block)
	if block == "" {
		return Question{}, false
	}
	lines := strings.FieldsFunc(block, isLineBreak)

	first := trimSpace(lines[0])
	digits := leadingNumber.FindString(first)
	if digits == "" {
		return Question{}, false
	}
	id, err := strconv.Atoi(digits)
	if errors.Is(err, strconv.ErrRange) {
		id = math.MaxInt
	} else if err != nil {
		return Question{}, false
	}

	q := Question{ID: id, Text: trimSpace(first[len(digits):])}
	answered := false
	mode := modeText

	for _, line := range lines[1:] {
		line = trimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, answerPrefix) {
			q.Answer = trimSpace(strings.TrimPrefix(line, answerPrefix))
			answered = true
			break
		}
		if optionLine.MatchString(line) {
			mode = modeOptions
			q.Options = append(q.Options, line)
			continue
		}
		switch mode {
		case modeText:
			q.Text = joinLine(q.Text, line)
		case modeOptions:
			last := len(q.Options) - 1
			q.Options[last] = joinLine(q.Options[last], line)
		}
	}

	if !answered || q.Text == "" || q.Answer == "" {
		return Question{}, false
	}
	return q, true
}

func joinLine(acc, line string) string {
	if acc == "" {
		return line
	}
	return acc + " " + line
}

// isLineBreak reports the runes that end a line in a question dump.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f) || unicode.Is(unicode.Z, r)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}
