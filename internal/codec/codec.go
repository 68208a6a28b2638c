// Package codec implements the wire-safe encoding of quizzes for the document
// store. The store's rendering layer treats page bodies as markup, so every
// free-text field is HTML-escaped before serialization and the result-update
// write path escapes the whole serialized payload once more and wraps it in a
// paragraph marker. Decode applies the inverse transforms in the same order.
// The escaping contract is fragile; keep every escape/unescape call site inside
// this package.
package codec

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"

	"quizpages/internal/domain"
)

const (
	kindRadio    = "radio"
	kindCheckbox = "checkbox"
)

// pTags matches the paragraph markers the store injects around body content.
// Only <p> tags are stripped; the intended content shape is always produced by
// this codec, so broader markup tolerance is deliberately not provided.
var pTags = regexp.MustCompile(`</?p>`)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

var unescaper = strings.NewReplacer(
	"&#39;", "'",
	"&quot;", `"`,
	"&gt;", ">",
	"&lt;", "<",
	"&amp;", "&",
)

// Escape HTML-escapes ampersand, angle brackets, quote and apostrophe.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Unescape is the exact inverse of Escape. The ampersand entity is replaced
// last so that entity-looking content survives one full round trip.
func Unescape(s string) string {
	return unescaper.Replace(s)
}

// storageQuestion is the wire shape of one question inside a page body.
type storageQuestion struct {
	Question      string   `json:"question"`
	Choices       []string `json:"choices"`
	CorrectAnswer []string `json:"correctAnswer"`
	Type          string   `json:"type"`
}

// storageDocument is the wire shape of a whole quiz page body.
type storageDocument struct {
	Quiz   []storageQuestion     `json:"quiz"`
	Result []domain.ResultRecord `json:"result"`
}

// rawDocument defers decoding of the quiz field so that its absence can be
// told apart from an empty sequence.
type rawDocument struct {
	Quiz   json.RawMessage       `json:"quiz"`
	Result []domain.ResultRecord `json:"result"`
}

func kindToWire(kind domain.QuestionKind) string {
	if kind == domain.MultipleChoice {
		return kindCheckbox
	}
	return kindRadio
}

func kindFromWire(wire string) domain.QuestionKind {
	switch wire {
	case kindCheckbox:
		return domain.MultipleChoice
	case kindRadio:
		return domain.SingleChoice
	default:
		return domain.QuestionKind(wire)
	}
}

func toStorageQuestions(questions []domain.Question) []storageQuestion {
	out := make([]storageQuestion, len(questions))
	for i, q := range questions {
		choices := make([]string, len(q.Choices))
		for j, choice := range q.Choices {
			choices[j] = Escape(choice)
		}
		answers := make([]string, len(q.CorrectAnswers))
		for j, answer := range q.CorrectAnswers {
			answers[j] = Escape(answer)
		}
		out[i] = storageQuestion{
			Question:      Escape(q.Text),
			Choices:       choices,
			CorrectAnswer: answers,
			Type:          kindToWire(q.Kind),
		}
	}
	return out
}

func fromStorageQuestions(questions []storageQuestion) []domain.Question {
	out := make([]domain.Question, len(questions))
	for i, q := range questions {
		choices := make([]string, len(q.Choices))
		for j, choice := range q.Choices {
			choices[j] = Unescape(choice)
		}
		answers := make([]string, len(q.CorrectAnswer))
		for j, answer := range q.CorrectAnswer {
			answers[j] = Unescape(answer)
		}
		out[i] = domain.Question{
			Text:           Unescape(q.Question),
			Kind:           kindFromWire(q.Type),
			Choices:        choices,
			CorrectAnswers: answers,
		}
	}
	return out
}

// Encode serializes a quiz into the body of a newly created page: a JSON
// document with every free-text field escaped exactly once.
func Encode(quiz *domain.Quiz) (string, error) {
	results := quiz.Results
	if results == nil {
		results = []domain.ResultRecord{}
	}
	doc := storageDocument{
		Quiz:   toStorageQuestions(quiz.Questions),
		Result: results,
	}
	return marshalDocument(doc)
}

// marshalDocument serializes without JSON-level HTML escaping: the body's
// free text is already entity-escaped and the store expects literal entities,
// not \u0026 escape sequences.
func marshalDocument(doc storageDocument) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

// EncodeUpdate serializes a quiz for the result-update write path: the JSON
// payload is escaped once more as a whole and wrapped in a single paragraph
// marker, matching what the store's editor produces.
func EncodeUpdate(quiz *domain.Quiz) (string, error) {
	payload, err := Encode(quiz)
	if err != nil {
		return "", err
	}
	return "<p>" + Escape(payload) + "</p>", nil
}

// Decode parses a page body back into questions and result history. It strips
// paragraph markers, inverts the payload-level escaping when present, and
// requires a quiz sequence in the parsed document. Callers use the error as a
// filter predicate: a body that is not a quiz document is an expected
// condition, not a fault.
func Decode(body string) (*domain.Quiz, error) {
	cleaned := pTags.ReplaceAllString(body, "")

	var raw rawDocument
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		// Bodies written through the update path carry one extra level of
		// escaping; invert it and try again.
		if err2 := json.Unmarshal([]byte(Unescape(cleaned)), &raw); err2 != nil {
			return nil, err
		}
	}
	if raw.Quiz == nil {
		return nil, domain.NewInvalidInputError("document has no quiz sequence")
	}

	var questions []storageQuestion
	if err := json.Unmarshal(raw.Quiz, &questions); err != nil {
		return nil, err
	}
	if questions == nil {
		return nil, domain.NewInvalidInputError("quiz field is not a sequence")
	}

	results := raw.Result
	if results == nil {
		results = []domain.ResultRecord{}
	}
	return &domain.Quiz{
		Questions: fromStorageQuestions(questions),
		Results:   results,
	}, nil
}
