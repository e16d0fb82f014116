package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	apiv1 "github.com/at-ishikawa/vocabreview/internal/api/v1"
	"github.com/at-ishikawa/vocabreview/internal/auth"
	mock_server "github.com/at-ishikawa/vocabreview/internal/mocks/server"
	"github.com/at-ishikawa/vocabreview/internal/review"
)

func TestNewAuthInterceptor(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setupMock  func(verifier *mock_server.MockTokenVerifier)
		wantUserID int64
		wantCode   connect.Code
	}{
		{
			name:   "valid token",
			header: "Bearer good",
			setupMock: func(verifier *mock_server.MockTokenVerifier) {
				verifier.EXPECT().Verify("good").Return(int64(12), nil)
			},
			wantUserID: 12,
		},
		{
			name:      "missing header",
			setupMock: func(verifier *mock_server.MockTokenVerifier) {},
			wantCode:  connect.CodeUnauthenticated,
		},
		{
			name:      "wrong scheme",
			header:    "Basic dXNlcjpwYXNz",
			setupMock: func(verifier *mock_server.MockTokenVerifier) {},
			wantCode:  connect.CodeUnauthenticated,
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setupMock: func(verifier *mock_server.MockTokenVerifier) {
				verifier.EXPECT().Verify("expired").Return(int64(0), auth.ErrInvalidToken)
			},
			wantCode: connect.CodeUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			verifier := mock_server.NewMockTokenVerifier(ctrl)
			tt.setupMock(verifier)

			var gotUserID int64
			next := connect.UnaryFunc(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
				gotUserID, _ = auth.UserIDFromContext(ctx)
				return connect.NewResponse(&apiv1.GetOverviewResponse{}), nil
			})

			req := connect.NewRequest(&apiv1.GetOverviewRequest{})
			if tt.header != "" {
				req.Header().Set("Authorization", tt.header)
			}

			_, err := NewAuthInterceptor(verifier)(next)(context.Background(), req)
			if tt.wantCode != 0 {
				requireConnectCode(t, err, tt.wantCode)
				assert.Zero(t, gotUserID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUserID, gotUserID)
		})
	}
}

func TestReviewService_HTTP(t *testing.T) {
	h, m := newTestHandler(t)

	issuer, err := auth.NewIssuer("secret", time.Hour)
	require.NoError(t, err)
	verifier, err := auth.NewVerifier("secret")
	require.NoError(t, err)
	token, err := issuer.Issue(5)
	require.NoError(t, err)

	path, handler := apiv1.NewReviewServiceHandler(h, connect.WithInterceptors(NewAuthInterceptor(verifier)))
	mux := http.NewServeMux()
	mux.Handle(path, handler)
	srv := httptest.NewServer(mux)
	defer srv.Close()

	next := testNow.Add(48 * time.Hour)
	m.coordinator.EXPECT().SubmitReview(gomock.Any(), review.Submission{UserID: 5, WordID: 9, IsCorrect: boolPtr(true), TimeSpent: 3}).
		Return(review.ReviewPlan{UserID: 5, WordID: 9, MasteryLevel: 1, ReviewCount: 1, LastReviewAt: &testNow, NextReviewAt: &next}, nil)
	m.coordinator.EXPECT().SubmitReview(gomock.Any(), review.Submission{UserID: 5, WordID: 404, IsCorrect: boolPtr(false)}).
		Return(review.ReviewPlan{}, review.ErrPlanNotFound)

	tests := []struct {
		name       string
		body       string
		token      string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "submit review",
			body:       `{"word_id":9,"is_correct":true,"time_spent":3}`,
			token:      token,
			wantStatus: http.StatusOK,
			wantBody:   `{"plan":{"word_id":9,"mastery_level":1,"review_count":1,"last_review_at":"2025-03-10T09:00:00Z","next_review_at":"2025-03-12T09:00:00Z","is_mastered":false}}`,
		},
		{
			name:       "unknown word",
			body:       `{"word_id":404,"is_correct":false}`,
			token:      token,
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "missing token",
			body:       `{"word_id":9,"is_correct":true}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown field",
			body:       `{"word_id":9,"correct":true}`,
			token:      token,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodPost, srv.URL+apiv1.ReviewServiceSubmitReviewProcedure, strings.NewReader(tt.body))
			require.NoError(t, err)
			req.Header.Set("Content-Type", "application/json")
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}

			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode, string(body))
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, string(body))
				return
			}

			var connectErr struct {
				Code string `json:"code"`
			}
			require.NoError(t, json.Unmarshal(body, &connectErr))
			assert.NotEmpty(t, connectErr.Code)
		})
	}
}
