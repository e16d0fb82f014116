package server

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/at-ishikawa/vocabreview/internal/auth"
)

// NewAuthInterceptor rejects requests without a valid bearer token and puts the
// token's user into the request context.
func NewAuthInterceptor(verifier TokenVerifier) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			token, err := auth.ParseBearer(req.Header().Get("Authorization"))
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			userID, err := verifier.Verify(token)
			if err != nil {
				// The cause stays in the server log.
				slog.Default().DebugContext(ctx, "token rejected", "procedure", req.Spec().Procedure, "error", err)
				return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrInvalidToken)
			}

			return next(auth.WithUserID(ctx, userID), req)
		}
	}
}
