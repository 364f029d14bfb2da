package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"housingready/pkg/types"

	"github.com/alexedwards/flow"
	"github.com/go-playground/form/v4"
	"github.com/sirupsen/logrus"
)

var decoder = form.NewDecoder()

type Service struct {
	logger *logrus.Logger
	config *types.Config

	clients   ClientRepository
	documents DocumentRepository
	db        Pinger

	now func() time.Time

	server *http.Server
}

func New(
	config *types.Config,
	logger *logrus.Logger,
	db Pinger,
	clients ClientRepository,
	documents DocumentRepository,
) *Service {
	mux := flow.New()

	s := &Service{
		logger:    logger,
		config:    config,
		clients:   clients,
		documents: documents,
		db:        db,
		now:       time.Now,
		server: &http.Server{
			Addr:              fmt.Sprintf(":%d", config.ServerPort),
			ReadTimeout:       time.Duration(config.ReadTimeoutSec) * time.Second,
			ReadHeaderTimeout: time.Duration(config.ReadTimeoutSec) * time.Second,
			WriteTimeout:      time.Duration(config.WriteTimeoutSec) * time.Second,
			MaxHeaderBytes:    1 << 20,
		},
	}

	s.buildRouter(mux)
	s.server.Handler = s.LoggingMiddleware(s.StripTrailingSlash(mux))

	return s
}

func (s *Service) Start() error {
	return s.server.ListenAndServe()
}

func (s *Service) Stop(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Handler is the full middleware chain in front of the router.
func (s *Service) Handler() http.Handler {
	return s.server.Handler
}

func (s *Service) buildRouter(r *flow.Mux) {
	r.NotFound = http.HandlerFunc(s.handleNotFound)
	r.MethodNotAllowed = http.HandlerFunc(s.handleMethodNotAllowed)

	r.HandleFunc("/healthz", s.handleHealth, http.MethodGet)

	r.HandleFunc("/clients", s.handleGetClients, http.MethodGet)
	r.HandleFunc("/clients", s.handlePostClient, http.MethodPost)
	r.HandleFunc("/clients/export", s.handleGetClientsExport, http.MethodGet)
	r.HandleFunc("/clients/:id", s.handleGetClient, http.MethodGet)
	r.HandleFunc("/clients/:id", s.handlePutClient, http.MethodPut)
	r.HandleFunc("/clients/:id", s.handleDeleteClient, http.MethodDelete)

	r.HandleFunc("/documents", s.handleGetDocuments, http.MethodGet)
	r.HandleFunc("/documents", s.handlePostDocument, http.MethodPost)
	r.HandleFunc("/documents/:id", s.handleGetDocument, http.MethodGet)
	r.HandleFunc("/documents/:id", s.handleDeleteDocument, http.MethodDelete)
}
