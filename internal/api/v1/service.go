package apiv1

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
)

// ReviewServiceName is the fully-qualified name of the ReviewService service.
const ReviewServiceName = "vocabreview.v1.ReviewService"

// These constants are the fully-qualified names of the RPCs defined in this package. They're
// exposed at runtime as Spec.Procedure and as the final two segments of the HTTP route.
const (
	ReviewServiceSubmitReviewProcedure      = "/vocabreview.v1.ReviewService/SubmitReview"
	ReviewServiceEnrollWordProcedure        = "/vocabreview.v1.ReviewService/EnrollWord"
	ReviewServiceGetPlanProcedure           = "/vocabreview.v1.ReviewService/GetPlan"
	ReviewServiceListDueWordsProcedure      = "/vocabreview.v1.ReviewService/ListDueWords"
	ReviewServiceGetOverviewProcedure       = "/vocabreview.v1.ReviewService/GetOverview"
	ReviewServiceListReviewHistoryProcedure = "/vocabreview.v1.ReviewService/ListReviewHistory"
)

// ReviewServiceHandler is an implementation of the vocabreview.v1.ReviewService service.
type ReviewServiceHandler interface {
	SubmitReview(context.Context, *connect.Request[SubmitReviewRequest]) (*connect.Response[SubmitReviewResponse], error)
	EnrollWord(context.Context, *connect.Request[EnrollWordRequest]) (*connect.Response[EnrollWordResponse], error)
	GetPlan(context.Context, *connect.Request[GetPlanRequest]) (*connect.Response[GetPlanResponse], error)
	ListDueWords(context.Context, *connect.Request[ListDueWordsRequest]) (*connect.Response[ListDueWordsResponse], error)
	GetOverview(context.Context, *connect.Request[GetOverviewRequest]) (*connect.Response[GetOverviewResponse], error)
	ListReviewHistory(context.Context, *connect.Request[ListReviewHistoryRequest]) (*connect.Response[ListReviewHistoryResponse], error)
}

// NewReviewServiceHandler builds an HTTP handler from the service implementation. It returns the
// path on which to mount the handler and the handler itself.
func NewReviewServiceHandler(svc ReviewServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{connect.WithCodec(JSONCodec{})}, opts...)

	submitReview := connect.NewUnaryHandler(ReviewServiceSubmitReviewProcedure, svc.SubmitReview, opts...)
	enrollWord := connect.NewUnaryHandler(ReviewServiceEnrollWordProcedure, svc.EnrollWord, opts...)
	getPlan := connect.NewUnaryHandler(ReviewServiceGetPlanProcedure, svc.GetPlan, opts...)
	listDueWords := connect.NewUnaryHandler(ReviewServiceListDueWordsProcedure, svc.ListDueWords, opts...)
	getOverview := connect.NewUnaryHandler(ReviewServiceGetOverviewProcedure, svc.GetOverview, opts...)
	listReviewHistory := connect.NewUnaryHandler(ReviewServiceListReviewHistoryProcedure, svc.ListReviewHistory, opts...)

	return "/" + ReviewServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case ReviewServiceSubmitReviewProcedure:
			submitReview.ServeHTTP(w, r)
		case ReviewServiceEnrollWordProcedure:
			enrollWord.ServeHTTP(w, r)
		case ReviewServiceGetPlanProcedure:
			getPlan.ServeHTTP(w, r)
		case ReviewServiceListDueWordsProcedure:
			listDueWords.ServeHTTP(w, r)
		case ReviewServiceGetOverviewProcedure:
			getOverview.ServeHTTP(w, r)
		case ReviewServiceListReviewHistoryProcedure:
			listReviewHistory.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}
