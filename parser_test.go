package main

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Question
	}{
		{
			name:    "single block",
			content: "QUESTION NO: 9\nWhat is 2+2?\nA. 3\nB. 4\nAnswer: B",
			want: []Question{
				{ID: 9, Text: "What is 2+2?", Options: []string{"A. 3", "B. 4"}, Answer: "B"},
			},
		},
		{
			name:    "missing answer is dropped",
			content: "QUESTION NO: 1\nFirst?\nA. x\nB. y\nQUESTION NO: 2\nSecond?\nA. x\nB. y\nAnswer: A\n",
			want: []Question{
				{ID: 2, Text: "Second?", Options: []string{"A. x", "B. y"}, Answer: "A"},
			},
		},
		{
			name:    "no leading digits is dropped",
			content: "QUESTION NO: seven\nWhat?\nA. x\nAnswer: A",
			want:    nil,
		},
		{
			name:    "text on the id line",
			content: "QUESTION NO: 3 Which colour\nis the sky?\nA. blue\nAnswer: A",
			want: []Question{
				{ID: 3, Text: "Which colour is the sky?", Options: []string{"A. blue"}, Answer: "A"},
			},
		},
		{
			name:    "wrapped option lines",
			content: "QUESTION NO: 5\nPick one\nA. the first\noption wraps\nB. second\n  and wraps again  \nAnswer: B",
			want: []Question{
				{ID: 5, Text: "Pick one", Options: []string{"A. the first option wraps", "B. second and wraps again"}, Answer: "B"},
			},
		},
		{
			name:    "lines after answer are ignored",
			content: "QUESTION NO: 6\nQ?\nA. a\nAnswer:  A  \nExplanation: because\nB. late option",
			want: []Question{
				{ID: 6, Text: "Q?", Options: []string{"A. a"}, Answer: "A"},
			},
		},
		{
			name:    "no options is still a question",
			content: "QUESTION NO: 7\nTrue or false?\nAnswer: True",
			want: []Question{
				{ID: 7, Text: "True or false?", Answer: "True"},
			},
		},
		{
			name:    "empty answer is dropped",
			content: "QUESTION NO: 8\nQ?\nA. a\nAnswer:",
			want:    nil,
		},
		{
			name:    "empty text is dropped",
			content: "QUESTION NO: 8\nA. a\nAnswer: A",
			want:    nil,
		},
		{
			name:    "letters are not validated and ids repeat",
			content: "QUESTION NO: 1\nQ1\nZ. z\nZ. again\nAnswer: Q\nQUESTION NO: 1\nQ2\nAnswer: A",
			want: []Question{
				{ID: 1, Text: "Q1", Options: []string{"Z. z", "Z. again"}, Answer: "Q"},
				{ID: 1, Text: "Q2", Answer: "A"},
			},
		},
		{
			name:    "lowercase letter is not an option",
			content: "QUESTION NO: 4\nStem\na. not an option\nA. real\nAnswer: A",
			want: []Question{
				{ID: 4, Text: "Stem a. not an option", Options: []string{"A. real"}, Answer: "A"},
			},
		},
		{
			name:    "delimiter must start the line",
			content: "QUESTION NO: 1\nSee QUESTION NO: 2 for more\nA. a\nAnswer: A",
			want: []Question{
				{ID: 1, Text: "See QUESTION NO: 2 for more", Options: []string{"A. a"}, Answer: "A"},
			},
		},
		{
			name:    "crlf and blank lines",
			content: "\ufeffQUESTION NO: 10\r\n\r\nWhy?\r\nA. because\r\n\r\nAnswer: A\r\n",
			want: []Question{
				{ID: 10, Text: "Why?", Options: []string{"A. because"}, Answer: "A"},
			},
		},
		{
			name:    "no-break space after option letter",
			content: "QUESTION NO: 11\nStem\nA.\u00a0nbsp option\nB.\u2003em space\nAnswer: A",
			want: []Question{
				{ID: 11, Text: "Stem", Options: []string{"A.\u00a0nbsp option", "B.\u2003em space"}, Answer: "A"},
			},
		},
		{
			name:    "unicode line separators",
			content: "QUESTION NO: 9\u2028What is 2+2?\u2029A. 3\u0085B. 4\vC. 5\fD. 6\x1cAnswer: B",
			want: []Question{
				{ID: 9, Text: "What is 2+2?", Options: []string{"A. 3", "B. 4", "C. 5", "D. 6"}, Answer: "B"},
			},
		},
		{
			name:    "unicode whitespace is trimmed",
			content: "QUESTION NO:\u00a0\n12\u00a0Why?\u3000\nA. a\x1f\nAnswer:\u00a0A\u00a0",
			want: []Question{
				{ID: 12, Text: "Why?", Options: []string{"A. a"}, Answer: "A"},
			},
		},
		{
			name:    "id too large for int saturates",
			content: "QUESTION NO: 99999999999999999999\nBig?\nA. a\nAnswer: A",
			want: []Question{
				{ID: math.MaxInt, Text: "Big?", Options: []string{"A. a"}, Answer: "A"},
			},
		},
		{
			name:    "empty input",
			content: "   \n\n",
			want:    nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseQuestions(tt.content)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseQuestions() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestParseQuestionsIsIdempotent(t *testing.T) {
	content := "QUESTION NO: 1\nA?\nA. a\nAnswer: A\nQUESTION NO: 2\nB?\nB. b\nAnswer: B\n"
	first := ParseQuestions(content)
	second := ParseQuestions(content)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("parses differ: %#v vs %#v", first, second)
	}
	first[0].Options[0] = "changed"
	if second[0].Options[0] != "A. a" {
		t.Fatalf("results share option storage")
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.txt")
	if err := os.WriteFile(good, []byte("QUESTION NO: 9\nWhat is 2+2?\nA. 3\nB. 4\nAnswer: B\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	qs, err := ParseFile(good)
	if err != nil {
		t.Fatalf("ParseFile: %v", err)
	}
	if len(qs) != 1 || qs[0].ID != 9 {
		t.Fatalf("unexpected questions %#v", qs)
	}

	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte{0xff, 0xfe, 'Q'}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ParseFile(bad); !errors.Is(err, errNotUTF8) {
		t.Fatalf("expected decode error, got %v", err)
	}

	if _, err := ParseFile(filepath.Join(dir, "missing.txt")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}
