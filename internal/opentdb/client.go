package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultURL    = "https://opentdb.com/api.php"
	defaultAmount = 10
	TypeMultiple  = "multiple"
)

// RawQuestion mirrors the OpenTriviaDB question payload.
type RawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

// Response is the envelope returned by api.php.
type Response struct {
	ResponseCode int           `json:"response_code"`
	Results      []RawQuestion `json:"results"`
}

// Params selects which questions api.php returns. Zero Category and empty
// Difficulty mean "any" and are left out of the query.
type Params struct {
	Amount     int
	Category   int
	Difficulty string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient(httpClient *http.Client, baseURL string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultURL
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

func (c *Client) FetchQuestions(ctx context.Context, params Params) ([]RawQuestion, error) {
	reqURL, err := c.buildURL(params)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &FetchError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{StatusCode: resp.StatusCode}
	}

	var payload Response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %v", ErrMalformedResponse, err)}
	}

	if err := responseCodeError(payload.ResponseCode); err != nil {
		return nil, &FetchError{StatusCode: resp.StatusCode, Err: err}
	}

	if payload.Results == nil {
		return []RawQuestion{}, nil
	}
	return payload.Results, nil
}

func (c *Client) buildURL(params Params) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}

	amount := params.Amount
	if amount <= 0 {
		amount = defaultAmount
	}

	query := base.Query()
	query.Set("amount", strconv.Itoa(amount))
	if params.Category > 0 {
		query.Set("category", strconv.Itoa(params.Category))
	}
	if difficulty := strings.TrimSpace(params.Difficulty); difficulty != "" {
		query.Set("difficulty", difficulty)
	}
	query.Set("type", TypeMultiple)
	base.RawQuery = query.Encode()

	return base.String(), nil
}
