package server

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/protobuf/types/known/durationpb"

	"github.com/at-ishikawa/vocabreview/internal/review"
)

// RetryDelay is the delay suggested to clients when the review store is unavailable.
const RetryDelay = time.Second

func toConnectError(ctx context.Context, err error) *connect.Error {
	switch {
	case errors.Is(err, review.ErrInvalidInput):
		return invalidArgumentError(err)
	case errors.Is(err, review.ErrPlanNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, review.ErrStoreUnavailable):
		slog.Default().WarnContext(ctx, "review store unavailable", "error", err)
		connectErr := connect.NewError(connect.CodeUnavailable, err)
		if detail, detailErr := connect.NewErrorDetail(&errdetails.RetryInfo{
			RetryDelay: durationpb.New(RetryDelay),
		}); detailErr == nil {
			connectErr.AddDetail(detail)
		}
		return connectErr
	default:
		slog.Default().ErrorContext(ctx, "unexpected error", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}
}

func invalidArgumentError(err error) *connect.Error {
	connectErr := connect.NewError(connect.CodeInvalidArgument, err)

	var validationErr *review.ValidationError
	if !errors.As(err, &validationErr) {
		return connectErr
	}

	var fieldViolations []*errdetails.BadRequest_FieldViolation
	for _, v := range validationErr.Violations {
		fieldViolations = append(fieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       v.Field,
			Description: v.Description,
		})
	}
	if detail, detailErr := connect.NewErrorDetail(&errdetails.BadRequest{
		FieldViolations: fieldViolations,
	}); detailErr == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}
