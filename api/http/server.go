package http

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"bitbucket.org/novatechnologies/mercadobitcoin/api/http/handler"
	"bitbucket.org/novatechnologies/mercadobitcoin/client/mercado"
	"bitbucket.org/novatechnologies/mercadobitcoin/infra/logger"
)

const requestIDHeader = "X-Request-ID"

type Server struct {
	srv http.Server
}

func NewServer(client mercado.Client, port int) *Server {
	return &Server{
		srv: http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           NewRouter(client),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter exposes the client operations under /api/{symbol}/.
func NewRouter(client mercado.Client) http.Handler {
	h := handler.NewMarketHandler(client)

	router := mux.NewRouter()
	router.Use(requestLogger)
	api := router.PathPrefix("/api/{symbol}").Methods(http.MethodGet).Subrouter()
	api.HandleFunc("/ticker/", h.GetTicker)
	api.HandleFunc("/orderbook/", h.GetOrderBook)
	api.HandleFunc("/trades/", h.GetTrades)
	api.HandleFunc("/day-summary/", h.GetDaySummary)
	return router
}

// requestLogger tags every request with an id and a request-scoped logger.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)

		log := logger.FromContext(r.Context()).WithFields(logrus.Fields{
			"request_id": id,
			"path":       r.URL.Path,
		})
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(logger.WithLogger(r.Context(), log)))
		log.WithField("duration", time.Since(start)).Debug("request served")
	})
}

func (s *Server) Start(ctx context.Context) {
	s.srv.BaseContext = func(listener net.Listener) context.Context {
		return ctx
	}
	go func() {
		logger.FromContext(ctx).Infof("[*] Http server is started on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FromContext(ctx).WithError(err).Error("http server stopped")
		}
	}()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
