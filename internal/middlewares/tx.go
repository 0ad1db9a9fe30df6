package middlewares

import (
	"bytes"
	"context"
	"database/sql"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-usecase-explorer/internal/logger"
)

// TxMiddleware wraps an HTTP handler with a database transaction.
// The response is buffered: a handler status >= 400 rolls the transaction
// back, otherwise the response is released only after a successful commit.
// Work registered with AfterCommit runs after the commit and is dropped otherwise.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return txMiddleware(db, nil)
}

// SnapshotMiddleware runs an HTTP handler inside a read-only repeatable read
// transaction so that every query of the request sees the same snapshot.
func SnapshotMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return txMiddleware(db, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
}

func txMiddleware(db *sqlx.DB, opts *sql.TxOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), opts)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			defer func() {
				if rec := recover(); rec != nil {
					_ = tx.Rollback()
					panic(rec)
				}
			}()

			hooks := &afterCommitHooks{}
			ctx := context.WithValue(setTxToContext(r.Context(), tx), afterCommitKey{}, hooks)

			bw := &bufferedWriter{header: make(http.Header), statusCode: http.StatusOK}
			next.ServeHTTP(bw, r.WithContext(ctx))

			if bw.statusCode >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				bw.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				writeError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			bw.flush(w)
			hooks.run()
		})
	}
}

// bufferedWriter holds the handler response until the transaction outcome is known.
type bufferedWriter struct {
	header     http.Header
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferedWriter) Header() http.Header { return bw.header }

func (bw *bufferedWriter) WriteHeader(code int) { bw.statusCode = code }

func (bw *bufferedWriter) Write(b []byte) (int, error) { return bw.body.Write(b) }

func (bw *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range bw.header {
		w.Header()[k] = v
	}
	w.WriteHeader(bw.statusCode)
	_, _ = w.Write(bw.body.Bytes())
}

type txKey struct{}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey{}).(*sqlx.Tx)
	return tx
}

type afterCommitKey struct{}

type afterCommitHooks struct {
	fns []func()
}

func (h *afterCommitHooks) run() {
	for _, fn := range h.fns {
		fn()
	}
}

// AfterCommit defers fn until the request transaction in ctx commits.
// fn never runs when the transaction rolls back or fails to commit.
// Without a request transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(afterCommitKey{}).(*afterCommitHooks)
	if !ok {
		fn()
		return
	}
	hooks.fns = append(hooks.fns, fn)
}
