package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	nlogger "github.com/neutron-org/neutron-logger"
	"go.uber.org/zap"

	"github.com/openrank/compute-relayer/internal/relay"
)

const (
	ServerContext           = "http"
	StateResource           = "/state"
	FailedSequencesResource = "/failed-sequences"
	RetryResource           = "/retry"
)

// Requeuer accepts failed sequence numbers back into the retry sweep. Implemented by *relay.Relayer.
type Requeuer interface {
	Requeue(seqNumbers ...uint64)
}

// State is the response of the state resource.
type State struct {
	Cursor   uint64   `json:"cursor"`
	RetrySet []uint64 `json:"retry_set"`
}

// RetryRequest is the body of the retry resource.
type RetryRequest struct {
	SeqNumbers []uint64 `json:"seq_numbers"`
}

func Run(ctx context.Context, logRegistry *nlogger.Registry, storage relay.Storage, requeuer Requeuer, listenAddr string) error {
	server := &http.Server{
		Addr:              listenAddr,
		Handler:           Router(logRegistry, storage, requeuer),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger := logRegistry.Get(ServerContext)
	errch := make(chan error, 1)

	go func() {
		if err := server.ListenAndServe(); err != nil {
			if err != http.ErrServerClosed {
				logger.Error("failed to serve http", zap.Error(err))
				errch <- err
			}
		}
	}()

	select {
	case err := <-errch:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down the api http")
	webserverCtx, cancelWebserverCtx := context.WithTimeout(context.Background(), time.Second*5)
	defer cancelWebserverCtx()
	if err := server.Shutdown(webserverCtx); err != nil {
		logger.Error("failed to shutdown api http gracefully", zap.Error(err))
		return nil
	}

	logger.Info("api http shut down successfully")
	return nil
}

func Router(logRegistry *nlogger.Registry, storage relay.Storage, requeuer Requeuer) *mux.Router {
	logger := logRegistry.Get(ServerContext)
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc(StateResource, state(logger, storage)).Methods(http.MethodGet)
	router.HandleFunc(FailedSequencesResource, failedSequences(logger, storage)).Methods(http.MethodGet)
	router.HandleFunc(RetryResource, retrySequences(logger, storage, requeuer)).Methods(http.MethodPost)
	return router
}

func state(logger *zap.Logger, storage relay.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cursor, err := storage.GetCursor()
		if err != nil {
			logger.Error("failed to execute GetCursor", zap.Error(err))
			http.Error(w, "Error processing request", http.StatusInternalServerError)
			return
		}
		retrySet, err := storage.GetRetrySet()
		if err != nil {
			logger.Error("failed to execute GetRetrySet", zap.Error(err))
			http.Error(w, "Error processing request", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, http.StatusOK, State{Cursor: cursor, RetrySet: retrySet.Sorted()})
	}
}

func failedSequences(logger *zap.Logger, storage relay.Storage) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := storage.GetAllFailedSequences()
		if err != nil {
			logger.Error("failed to execute GetAllFailedSequences", zap.Error(err))
			http.Error(w, "Error processing request", http.StatusInternalServerError)
			return
		}

		writeJSON(w, logger, http.StatusOK, res)
	}
}

// retrySequences only accepts sequence numbers the cursor has already passed; the rest will be attempted
// by the forward batch anyway.
func retrySequences(logger *zap.Logger, storage relay.Storage, requeuer Requeuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RetryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, fmt.Sprintf("failed to decode request body: %s", err), http.StatusBadRequest)
			return
		}
		if len(req.SeqNumbers) == 0 {
			http.Error(w, "seq_numbers must not be empty", http.StatusBadRequest)
			return
		}

		cursor, err := storage.GetCursor()
		if err != nil {
			logger.Error("failed to execute GetCursor", zap.Error(err))
			http.Error(w, "Error processing request", http.StatusInternalServerError)
			return
		}
		for _, seq := range req.SeqNumbers {
			if seq >= cursor {
				http.Error(w, fmt.Sprintf("sequence number %d has not been attempted yet (cursor is %d)", seq, cursor),
					http.StatusBadRequest)
				return
			}
		}

		requeuer.Requeue(req.SeqNumbers...)
		logger.Info("accepted retry request", zap.Uint64s("seq_numbers", req.SeqNumbers))
		writeJSON(w, logger, http.StatusAccepted, req)
	}
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}
