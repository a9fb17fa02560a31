package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chainview-labs/storage-value-api/types"
)

// BlockchainReader is the surface of the chain client the server consumes.
// Tests substitute a fake.
type BlockchainReader interface {
	LatestValue(ctx context.Context) (string, error)
	ValueUpdatedEvents(ctx context.Context, fromBlock, toBlock uint64, latest bool, page, limit int) (*types.PaginatedEvents, error)
	Endpoint() string
	ChainName() string
	ChainID() *big.Int
}

// API server
type Server struct {
	r      chi.Router
	log    *slog.Logger
	reader BlockchainReader
	srv    *http.Server
	opts   ServerOpts
}

type ServerOpts struct {
	Logger *slog.Logger
	Reader BlockchainReader
	Port   string
}

// Create API server
func NewServer(opts ServerOpts) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		r:      chi.NewRouter(),
		log:    opts.Logger,
		reader: opts.Reader,
		opts:   opts,
	}
	s.routes()

	s.srv = &http.Server{
		Addr:    ":" + opts.Port,
		Handler: s.r,
	}

	return s
}

// Starts the HTTP server. Blocks until Shutdown is called or the listener
// fails.
func (s *Server) StartServer() error {
	s.log.Info("📡 Server Started. API Server is now listening on http://localhost:" + s.opts.Port)
	if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the HTTP server, letting in-flight requests finish.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// Turns server into http server
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.r.ServeHTTP(w, r)
}

// Envelope wraps every response, success and error alike. Timestamp is the
// response-construction instant.
type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Message    string            `json:"message"`
	Data       interface{}       `json:"data"`
	Pagination *types.Pagination `json:"pagination,omitempty"`
	Timestamp  string            `json:"timestamp"`
}

func writeEnvelope(w http.ResponseWriter, e Envelope) {
	e.Timestamp = time.Now().UTC().Format(time.RFC3339)
	w.WriteHeader(e.StatusCode)
	if err := json.NewEncoder(w).Encode(e); err != nil {
		fmt.Fprintf(w, "%s", err.Error())
	}
}

// Returns JSON response to the API user. HTTP status code, message and data
// must be provided
func JSON(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	writeEnvelope(w, Envelope{StatusCode: statusCode, Message: message, Data: data})
}

// Returns a paginated JSON response, with the pagination block as a sibling
// of data
func PAGINATED(w http.ResponseWriter, statusCode int, message string, data interface{}, pagination types.Pagination) {
	writeEnvelope(w, Envelope{StatusCode: statusCode, Message: message, Data: data, Pagination: &pagination})
}

// Returns an error to the API user. Data is null except for transport
// failures, which carry a diagnostic object
func ERROR(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	writeEnvelope(w, Envelope{StatusCode: statusCode, Message: message, Data: data})
}
