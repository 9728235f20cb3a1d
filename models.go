package main

import (
	"time"
)

// --- Questions ---

// Question is one quiz record. Options keep display order and look like
// "B. some text"; Answer is compared verbatim with the selected option key.
type Question struct {
	ID      int      `json:"id" yaml:"id"`
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
	Answer  string   `json:"answer" yaml:"answer"`
}

// Batch describes one append into the store.
type Batch struct {
	ID     string `json:"batchId"`
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// --- Tables ---

type questionRow struct {
	Seq       uint        `gorm:"primaryKey;autoIncrement"` // store order
	Number    int         `gorm:"index;not null"`           // id from the source, not unique
	Text      string      `gorm:"not null"`
	Answer    string      `gorm:"size:16;not null"`
	BatchID   string      `gorm:"index;size:36;not null"`
	Options   []optionRow `gorm:"foreignKey:QuestionSeq"`
	CreatedAt time.Time
}

func (questionRow) TableName() string { return "questions" }

type optionRow struct {
	ID          uint   `gorm:"primaryKey"`
	QuestionSeq uint   `gorm:"index;not null"`
	Position    int    `gorm:"not null"` // 0..N-1
	Text        string `gorm:"not null"`
}

func (optionRow) TableName() string { return "options" }

type batchRow struct {
	Seq       uint   `gorm:"primaryKey;autoIncrement"`
	ID        string `gorm:"uniqueIndex;size:36;not null"`
	Source    string `gorm:"not null"`
	Count     int    `gorm:"not null"`
	CreatedAt time.Time
}

func (batchRow) TableName() string { return "batches" }

func (r questionRow) toQuestion() Question {
	opts := make([]string, 0, len(r.Options))
	for _, o := range r.Options {
		opts = append(opts, o.Text)
	}
	return Question{ID: r.Number, Text: r.Text, Options: opts, Answer: r.Answer}
}
