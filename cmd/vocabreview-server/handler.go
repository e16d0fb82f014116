package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/jmoiron/sqlx"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	apiv1 "github.com/at-ishikawa/vocabreview/internal/api/v1"
	"github.com/at-ishikawa/vocabreview/internal/auth"
	"github.com/at-ishikawa/vocabreview/internal/config"
	"github.com/at-ishikawa/vocabreview/internal/review"
	"github.com/at-ishikawa/vocabreview/internal/server"
	"github.com/at-ishikawa/vocabreview/internal/word"
)

const healthCheckTimeout = 2 * time.Second

// newHandler wires the review service on db behind the auth interceptor and CORS.
func newHandler(cfg *config.Config, db *sqlx.DB) (http.Handler, error) {
	verifier, err := auth.NewVerifier(cfg.Auth.Secret)
	if err != nil {
		return nil, fmt.Errorf("auth.NewVerifier() > %w", err)
	}

	plans := review.NewDBPlanRepository(db)
	coordinator, err := review.NewCoordinator(review.NewDBStore(db), plans,
		review.WithTxTimeout(cfg.Database.TxTimeout()))
	if err != nil {
		return nil, fmt.Errorf("review.NewCoordinator() > %w", err)
	}
	selector := review.NewSelector(plans, review.NewDBOutcomeRepository(db))

	handler := server.NewReviewHandler(coordinator, selector, word.NewDBCatalog(db))
	path, h := apiv1.NewReviewServiceHandler(handler,
		connect.WithInterceptors(server.NewAuthInterceptor(verifier)))

	mux := http.NewServeMux()
	mux.Handle(path, h)
	mux.HandleFunc("/healthz", healthz(db))

	return corsMiddleware(h2c.NewHandler(mux, &http2.Server{}), cfg.Server.CORS.AllowedOrigins), nil
}

func healthz(db *sqlx.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}

func corsMiddleware(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
