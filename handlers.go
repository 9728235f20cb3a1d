package main

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

/*** DTOs shared across handlers ***/

type QuestionDTO struct {
	ID           int         `json:"id"`
	QuestionText string      `json:"questionText"`
	Options      []OptionDTO `json:"options"`
}

type OptionDTO struct {
	ID   string `json:"id"`   // "A"/"B"/...
	Text string `json:"text"` // full line, e.g. "A. increased sales"
}

type CurrentDTO struct {
	Question *QuestionDTO `json:"question,omitempty"`
	Position int          `json:"position"` // zero-based
	Total    int          `json:"total"`
	Finished bool         `json:"finished"`
	Message  string       `json:"message,omitempty"`
}

type AnswerReq struct {
	Selected string `json:"selected"`
}

// maxUploadBytes bounds a question file upload.
const maxUploadBytes = 8 << 20

var errTooLarge = fmt.Errorf("file exceeds %d bytes", maxUploadBytes)

func toQuestionDTO(q Question) *QuestionDTO {
	opts := make([]OptionDTO, 0, len(q.Options))
	for _, o := range q.Options {
		opts = append(opts, OptionDTO{ID: OptionKey(o), Text: o})
	}
	return &QuestionDTO{ID: q.ID, QuestionText: q.Text, Options: opts}
}

func currentDTO(store *Store, sess *Session) (CurrentDTO, error) {
	q, pos, ok, err := sess.Current()
	if err != nil {
		return CurrentDTO{}, err
	}
	total, err := store.Len()
	if err != nil {
		return CurrentDTO{}, err
	}
	out := CurrentDTO{Position: pos, Total: total, Finished: !ok}
	if ok {
		out.Question = toQuestionDTO(q)
	} else {
		out.Message = msgCompleted
	}
	return out, nil
}

/*** Quiz ***/

func GetCurrent(store *Store, sess *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := currentDTO(store, sess)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func CheckAnswer(sess *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AnswerReq
		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "bad request"})
			return
		}
		res, err := sess.Check(req.Selected)
		if errors.Is(err, ErrFinished) {
			c.JSON(http.StatusConflict, gin.H{"error": msgCompleted})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

func NextQuestion(store *Store, sess *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, err := sess.Next(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		out, err := currentDTO(store, sess)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func RestartQuiz(store *Store, sess *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess.Restart()
		out, err := currentDTO(store, sess)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetScore(sess *Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, sess.Score())
	}
}

/*** Question bank ***/

func ListQuestions(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		qs, err := store.All()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		out := make([]QuestionDTO, 0, len(qs))
		for _, q := range qs {
			out = append(out, *toQuestionDTO(q))
		}
		c.JSON(http.StatusOK, out)
	}
}

func ListBatches(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		bs, err := store.Batches()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db"})
			return
		}
		c.JSON(http.StatusOK, bs)
	}
}

// ImportQuestionsFile accepts a multipart "file" field holding a question dump.
func ImportQuestionsFile(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file required"})
			return
		}
		if fh.Size > maxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": loadErrorMessage(errTooLarge)})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": loadErrorMessage(err)})
			return
		}
		defer f.Close()

		raw, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": loadErrorMessage(err)})
			return
		}
		if len(raw) > maxUploadBytes {
			c.JSON(http.StatusBadRequest, gin.H{"error": loadErrorMessage(errTooLarge)})
			return
		}
		out, err := ImportBytes(store, filepath.Base(fh.Filename), raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": loadErrorMessage(err)})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}
