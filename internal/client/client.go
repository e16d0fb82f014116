// Package client calls the review service over HTTP.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	apiv1 "github.com/at-ishikawa/vocabreview/internal/api/v1"
)

// DefaultMaxRetryAttempts is the number of retries after an unavailable response.
const DefaultMaxRetryAttempts = 2

// Error codes returned by the server, as serialized by the Connect protocol.
const (
	CodeInvalidArgument = "invalid_argument"
	CodeNotFound        = "not_found"
	CodeUnauthenticated = "unauthenticated"
	CodeUnavailable     = "unavailable"
)

// Error is an error response of the review service.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("response error %d: %s", e.StatusCode, e.Code)
	}
	return fmt.Sprintf("response error %d: %s: %s", e.StatusCode, e.Code, e.Message)
}

// HasCode reports whether err is a service error with the given code.
func HasCode(err error, code string) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Code == code
}

type Client struct {
	httpClient       *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithMaxRetryAttempts overrides DefaultMaxRetryAttempts.
func WithMaxRetryAttempts(attempts uint) Option {
	return func(c *Client) {
		c.maxRetryAttempts = attempts
	}
}

// WithRetryDelay sets the base delay of the exponential backoff between retries.
func WithRetryDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retryDelay = delay
	}
}

func NewClient(serverURL, token string, opts ...Option) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(serverURL)
	httpClient.SetHeader("Content-Type", "application/json")
	httpClient.SetHeader("Connect-Protocol-Version", "1")
	if token != "" {
		httpClient.SetHeader("Authorization", "Bearer "+token)
	}

	c := &Client{
		httpClient:       httpClient,
		maxRetryAttempts: DefaultMaxRetryAttempts,
		retryDelay:       500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

func (c *Client) SubmitReview(ctx context.Context, req *apiv1.SubmitReviewRequest) (*apiv1.SubmitReviewResponse, error) {
	return call[apiv1.SubmitReviewRequest, apiv1.SubmitReviewResponse](ctx, c, apiv1.ReviewServiceSubmitReviewProcedure, req)
}

func (c *Client) EnrollWord(ctx context.Context, req *apiv1.EnrollWordRequest) (*apiv1.EnrollWordResponse, error) {
	return call[apiv1.EnrollWordRequest, apiv1.EnrollWordResponse](ctx, c, apiv1.ReviewServiceEnrollWordProcedure, req)
}

func (c *Client) GetPlan(ctx context.Context, req *apiv1.GetPlanRequest) (*apiv1.GetPlanResponse, error) {
	return call[apiv1.GetPlanRequest, apiv1.GetPlanResponse](ctx, c, apiv1.ReviewServiceGetPlanProcedure, req)
}

func (c *Client) ListDueWords(ctx context.Context) (*apiv1.ListDueWordsResponse, error) {
	return call[apiv1.ListDueWordsRequest, apiv1.ListDueWordsResponse](ctx, c, apiv1.ReviewServiceListDueWordsProcedure, &apiv1.ListDueWordsRequest{})
}

func (c *Client) GetOverview(ctx context.Context) (*apiv1.GetOverviewResponse, error) {
	return call[apiv1.GetOverviewRequest, apiv1.GetOverviewResponse](ctx, c, apiv1.ReviewServiceGetOverviewProcedure, &apiv1.GetOverviewRequest{})
}

func (c *Client) ListReviewHistory(ctx context.Context, req *apiv1.ListReviewHistoryRequest) (*apiv1.ListReviewHistoryResponse, error) {
	return call[apiv1.ListReviewHistoryRequest, apiv1.ListReviewHistoryResponse](ctx, c, apiv1.ReviewServiceListReviewHistoryProcedure, req)
}

// call posts one unary request and retries only while the server reports it is unavailable.
func call[Req, Res any](ctx context.Context, c *Client, procedure string, req *Req) (*Res, error) {
	var result *Res
	if err := retry.Do(
		func() error {
			out := new(Res)
			response, err := c.httpClient.R().
				SetContext(ctx).
				SetBody(req).
				SetResult(out).
				Post(procedure)
			if err != nil {
				return fmt.Errorf("httpClient.Post(%s) > %w", procedure, err)
			}
			if response.IsError() {
				apiErr := parseError(response.StatusCode(), response.String())
				if apiErr.Code != CodeUnavailable {
					return retry.Unrecoverable(apiErr)
				}
				return apiErr
			}
			result = out
			return nil
		},
		retry.Context(ctx),
		retry.Attempts(c.maxRetryAttempts+1),
		retry.Delay(c.retryDelay),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Default().Debug("retrying review service call", "procedure", procedure, "attempt", n+1, "error", err)
		}),
	); err != nil {
		return nil, err
	}
	return result, nil
}

func parseError(statusCode int, body string) *Error {
	apiErr := &Error{StatusCode: statusCode}
	if err := json.Unmarshal([]byte(body), apiErr); err != nil || apiErr.Code == "" {
		apiErr.Code = http.StatusText(statusCode)
		apiErr.Message = body
	}
	return apiErr
}
