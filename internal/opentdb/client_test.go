package opentdb

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestClient(rt http.RoundTripper) *Client {
	return NewClient(&http.Client{Transport: rt}, "")
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewReader([]byte(body))),
		Header:     make(http.Header),
	}
}

func TestFetchQuestionsBuildsQuery(t *testing.T) {
	var seen url.Values

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.URL.Query()
		return jsonResponse(http.StatusOK, `{"response_code":0,"results":[]}`), nil
	}))

	_, err := client.FetchQuestions(context.Background(), Params{Amount: 5, Category: 18, Difficulty: "hard"})
	if err != nil {
		t.Fatalf("FetchQuestions returned error: %v", err)
	}

	want := map[string]string{
		"amount":     "5",
		"category":   "18",
		"difficulty": "hard",
		"type":       "multiple",
	}
	for key, value := range want {
		if got := seen.Get(key); got != value {
			t.Fatalf("query %s = %q, want %q", key, got, value)
		}
	}
}

func TestFetchQuestionsOmitsAnyFilters(t *testing.T) {
	var seen url.Values

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seen = r.URL.Query()
		return jsonResponse(http.StatusOK, `{"response_code":0,"results":[]}`), nil
	}))

	if _, err := client.FetchQuestions(context.Background(), Params{Amount: 3}); err != nil {
		t.Fatalf("FetchQuestions returned error: %v", err)
	}
	if seen.Has("category") || seen.Has("difficulty") {
		t.Fatalf("expected category and difficulty to be omitted, got %v", seen)
	}
}

func TestFetchQuestionsUsesDefaultAmountWhenNonPositive(t *testing.T) {
	var seenAmount string

	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		seenAmount = r.URL.Query().Get("amount")
		return jsonResponse(http.StatusOK, `{"response_code":0,"results":[]}`), nil
	}))

	questions, err := client.FetchQuestions(context.Background(), Params{})
	if err != nil {
		t.Fatalf("FetchQuestions returned error: %v", err)
	}
	if len(questions) != 0 {
		t.Fatalf("expected no questions, got %d", len(questions))
	}
	if seenAmount != "10" {
		t.Fatalf("expected default amount 10, got %q", seenAmount)
	}
}

func TestFetchQuestionsMissingResultsIsEmpty(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"response_code":0}`), nil
	}))

	questions, err := client.FetchQuestions(context.Background(), Params{Amount: 2})
	if err != nil {
		t.Fatalf("FetchQuestions returned error: %v", err)
	}
	if questions == nil || len(questions) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", questions)
	}
}

func TestFetchQuestionsDecodesResults(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		payload := Response{
			Results: []RawQuestion{
				{Question: "Q1", CorrectAnswer: "a", IncorrectAnswers: []string{"b", "c", "d"}},
			},
		}
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		return jsonResponse(http.StatusOK, string(encoded)), nil
	}))

	questions, err := client.FetchQuestions(context.Background(), Params{Amount: 1})
	if err != nil {
		t.Fatalf("FetchQuestions returned error: %v", err)
	}
	if len(questions) != 1 || questions[0].CorrectAnswer != "a" || len(questions[0].IncorrectAnswers) != 3 {
		t.Fatalf("unexpected questions: %+v", questions)
	}
}

func TestFetchQuestionsPropagatesNonOKStatus(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, ""), nil
	}))

	_, err := client.FetchQuestions(context.Background(), Params{Amount: 5})
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", fetchErr.StatusCode)
	}
}

func TestFetchQuestionsTransportError(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return nil, errors.New("connection refused")
	}))

	_, err := client.FetchQuestions(context.Background(), Params{Amount: 5})
	var fetchErr *FetchError
	if !errors.As(err, &fetchErr) || fetchErr.StatusCode != 0 {
		t.Fatalf("expected transport *FetchError, got %v", err)
	}
}

func TestFetchQuestionsJSONDecodeError(t *testing.T) {
	client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, "not-json"), nil
	}))

	_, err := client.FetchQuestions(context.Background(), Params{Amount: 3})
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestFetchQuestionsNonZeroResponseCode(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{code: CodeNoResults, want: ErrNoResults},
		{code: CodeInvalidParameter, want: ErrInvalidParameter},
		{code: CodeTokenNotFound, want: ErrTokenNotFound},
		{code: CodeTokenEmpty, want: ErrTokenEmpty},
		{code: CodeRateLimit, want: ErrRateLimited},
	}

	for _, tc := range tests {
		t.Run(tc.want.Error(), func(t *testing.T) {
			client := newTestClient(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
				payload := Response{
					ResponseCode: tc.code,
					Results:      []RawQuestion{{Question: "ignored"}},
				}
				encoded, err := json.Marshal(payload)
				if err != nil {
					t.Fatalf("marshal payload: %v", err)
				}
				return jsonResponse(http.StatusOK, string(encoded)), nil
			}))

			_, err := client.FetchQuestions(context.Background(), Params{Amount: 3})
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}
