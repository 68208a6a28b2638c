// Package pagestore is the adapter for the external versioned document store
// that persists quizzes as pages. It speaks the store's v2 pages API: create
// (POST title + storage-format body), read (GET by id, body + version), update
// (PUT by id with incremented version) and list. All HTTP-level failures are
// classified into domain errors here; nothing above this package sees a raw
// status code.
package pagestore

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"quizpages/internal/codec"
	"quizpages/internal/config"
	"quizpages/internal/domain"

	"github.com/imroc/req/v3"
)

const (
	representationStorage = "storage"
	statusCurrent         = "current"
	resultUpdateMessage   = "Updated quiz results"
)

// Store is the HTTP client for the document store. It implements
// domain.DocumentStore.
type Store struct {
	http    *req.Client
	spaceID string
}

// New builds a Store from configuration. The timeout applies per request;
// cancellation beyond that is the caller's context.
func New(cfg config.StoreConfig) *Store {
	client := req.C().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetCommonHeader("Accept", "application/json")
	if cfg.AuthToken != "" {
		client.SetCommonBearerAuthToken(cfg.AuthToken)
	}
	return &Store{http: client, spaceID: cfg.SpaceID}
}

type pageVersion struct {
	Number  int    `json:"number"`
	Message string `json:"message,omitempty"`
}

type pageBody struct {
	Representation string `json:"representation"`
	Value          string `json:"value"`
}

type page struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Title  string `json:"title"`
	Body   struct {
		Storage pageBody `json:"storage"`
	} `json:"body"`
	Version pageVersion `json:"version"`
}

type pageList struct {
	Results []page `json:"results"`
}

type createPageRequest struct {
	SpaceID string   `json:"spaceId"`
	Status  string   `json:"status"`
	Title   string   `json:"title"`
	Body    pageBody `json:"body"`
}

type updatePageRequest struct {
	ID      string      `json:"id"`
	Status  string      `json:"status"`
	Title   string      `json:"title"`
	Body    pageBody    `json:"body"`
	Version pageVersion `json:"version"`
}

// CreateQuiz persists a new quiz page and returns the store's document id.
// A store-side name collision (HTTP 400) maps to DuplicateName.
func (s *Store) CreateQuiz(ctx context.Context, quiz *domain.Quiz) (string, error) {
	body, err := codec.Encode(quiz)
	if err != nil {
		return "", domain.NewInternalError("failed to encode quiz", err)
	}

	var created page
	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(createPageRequest{
			SpaceID: s.spaceID,
			Status:  statusCurrent,
			Title:   quiz.Name,
			Body: pageBody{
				Representation: representationStorage,
				Value:          body,
			},
		}).
		SetSuccessResult(&created).
		Post("/pages")
	if err != nil {
		return "", domain.NewTransportError(err)
	}
	if resp.StatusCode == http.StatusBadRequest {
		return "", domain.NewDuplicateNameError(quiz.Name)
	}
	if !resp.IsSuccessState() {
		return "", domain.NewStoreUnavailableError(resp.StatusCode)
	}
	return created.ID, nil
}

// fetchPage reads a page with its storage-format body and version counter.
func (s *Store) fetchPage(ctx context.Context, documentID string) (*page, error) {
	var fetched page
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("body-format", representationStorage).
		SetSuccessResult(&fetched).
		Get(fmt.Sprintf("/pages/%s", documentID))
	if err != nil {
		return nil, domain.NewTransportError(err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.NewNotFoundError(documentID)
	}
	if !resp.IsSuccessState() {
		return nil, domain.NewStoreUnavailableError(resp.StatusCode)
	}
	return &fetched, nil
}

// FetchQuizDocument reads and decodes the quiz stored under documentID.
func (s *Store) FetchQuizDocument(ctx context.Context, documentID string) (*domain.Quiz, error) {
	fetched, err := s.fetchPage(ctx, documentID)
	if err != nil {
		return nil, err
	}
	quiz, err := codec.Decode(fetched.Body.Storage.Value)
	if err != nil {
		return nil, domain.NewMalformedDocumentError(documentID, err)
	}
	quiz.ID = fetched.ID
	quiz.Name = fetched.Title
	return quiz, nil
}

// ListQuizDocuments fetches the whole page collection in store listing order
// and attempts to decode every entry. Decode failures are carried on the
// listing, not returned: the store may hold unrelated pages and the catalog
// decides what to do with them.
func (s *Store) ListQuizDocuments(ctx context.Context) ([]domain.DocumentListing, error) {
	var collection pageList
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("body-format", representationStorage).
		SetSuccessResult(&collection).
		Get("/pages")
	if err != nil {
		return nil, domain.NewTransportError(err)
	}
	if !resp.IsSuccessState() {
		return nil, domain.NewStoreUnavailableError(resp.StatusCode)
	}

	listings := make([]domain.DocumentListing, 0, len(collection.Results))
	for _, entry := range collection.Results {
		listing := domain.DocumentListing{ID: entry.ID, Name: entry.Title}
		quiz, decodeErr := codec.Decode(entry.Body.Storage.Value)
		if decodeErr != nil {
			listing.DecodeErr = domain.NewMalformedDocumentError(entry.ID, decodeErr)
		} else {
			quiz.ID = entry.ID
			quiz.Name = entry.Title
			listing.Quiz = quiz
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// AppendResult appends a result record to the quiz page under optimistic
// concurrency: read the current body and version, decode, append, re-encode
// through the update write path, and submit with version+1. A stale read loses
// the race and surfaces as VersionConflict; no retry happens here.
func (s *Store) AppendResult(ctx context.Context, documentID string, record domain.ResultRecord) error {
	fetched, err := s.fetchPage(ctx, documentID)
	if err != nil {
		return err
	}
	if fetched.Body.Storage.Value == "" {
		return domain.NewMissingContentError(documentID)
	}

	quiz, err := codec.Decode(fetched.Body.Storage.Value)
	if err != nil {
		return domain.NewMalformedDocumentError(documentID, err)
	}
	quiz.Results = append(quiz.Results, record)

	body, err := codec.EncodeUpdate(quiz)
	if err != nil {
		return domain.NewInternalError("failed to encode quiz update", err)
	}

	resp, err := s.http.R().
		SetContext(ctx).
		SetBody(updatePageRequest{
			ID:     fetched.ID,
			Status: fetched.Status,
			Title:  fetched.Title,
			Body: pageBody{
				Representation: representationStorage,
				Value:          body,
			},
			Version: pageVersion{
				Number:  fetched.Version.Number + 1,
				Message: resultUpdateMessage,
			},
		}).
		Put(fmt.Sprintf("/pages/%s", documentID))
	if err != nil {
		return domain.NewTransportError(err)
	}
	switch {
	case resp.StatusCode == http.StatusConflict:
		return domain.NewVersionConflictError(documentID)
	case resp.StatusCode == http.StatusNotFound:
		return domain.NewNotFoundError(documentID)
	case !resp.IsSuccessState():
		return domain.NewStoreUnavailableError(resp.StatusCode)
	}
	return nil
}
