package domain

import "context"

// DocumentListing is one entry of the store's document collection. Decode is
// attempted per document and the outcome is carried explicitly: the store may
// hold unrelated documents, so a decode failure is an expected condition the
// catalog discards rather than an error to propagate.
type DocumentListing struct {
	ID        string
	Name      string
	Quiz      *Quiz
	DecodeErr error
}

// IsQuiz reports whether the listed document decoded as a quiz.
func (l DocumentListing) IsQuiz() bool {
	return l.DecodeErr == nil && l.Quiz != nil
}

// DocumentStore defines the interface (port) for the external versioned
// document store that persists quizzes. Implementations are adapters
// (e.g. the page store HTTP client).
type DocumentStore interface {
	// CreateQuiz persists a new quiz document and returns its document id.
	CreateQuiz(ctx context.Context, quiz *Quiz) (string, error)

	// FetchQuizDocument reads and decodes the quiz stored under documentID.
	FetchQuizDocument(ctx context.Context, documentID string) (*Quiz, error)

	// ListQuizDocuments fetches the whole document collection in store order,
	// attempting to decode each entry.
	ListQuizDocuments(ctx context.Context) ([]DocumentListing, error)

	// AppendResult appends a result record to the quiz document under
	// optimistic concurrency. A stale read surfaces as a version conflict;
	// the caller decides whether to retry.
	AppendResult(ctx context.Context, documentID string, record ResultRecord) error
}
