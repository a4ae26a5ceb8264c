package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/sprintertech/sprinter-settlement/api/handlers"
)

func NewRouter(
	quoteHandler *handlers.QuoteHandler,
	bundleHandler *handlers.BundleHandler,
	watchHandler *handlers.WatchHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/v1/accounts/{account}/quotes", quoteHandler.HandleRequest).Methods("POST")
	r.HandleFunc("/v1/bundles/{bundleId:[0-9]+}", bundleHandler.HandleRequest).Methods("GET")
	r.HandleFunc("/v1/bundles/{bundleId:[0-9]+}/watch", watchHandler.HandleRequest).Methods("GET")
	return r
}

func Serve(
	ctx context.Context,
	addr string,
	quoteHandler *handlers.QuoteHandler,
	bundleHandler *handlers.BundleHandler,
	watchHandler *handlers.WatchHandler,
) {
	r := NewRouter(quoteHandler, bundleHandler, watchHandler)

	server := &http.Server{
		Addr:        addr,
		Handler:     r,
		ReadTimeout: time.Second * 10,
	}
	go func() {
		log.Info().Msgf("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			panic(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Err(err).Msgf("Error shutting down server")
	} else {
		log.Info().Msgf("Server shut down gracefully.")
	}
}
