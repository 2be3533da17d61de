package server

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/bastiangx/lexiterm/internal/utils"
	"github.com/bastiangx/lexiterm/pkg/config"
	"github.com/bastiangx/lexiterm/pkg/dictionary"
	"github.com/bastiangx/lexiterm/pkg/search"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for letter-search queries. The dictionary and
// score table are read-only shared data; each request runs one synchronous
// engine pass.
type Server struct {
	dict  *dictionary.Dictionary
	table *search.ScoreTable
	cfg   *config.Config

	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// NewServer creates a query server using stdin/stdout for IPC.
func NewServer(dict *dictionary.Dictionary, table *search.ScoreTable, cfg *config.Config) *Server {
	return NewServerIO(dict, table, cfg, os.Stdin, os.Stdout)
}

// NewServerIO creates a query server over arbitrary streams.
func NewServerIO(dict *dictionary.Dictionary, table *search.ScoreTable, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		dict:  dict,
		table: table,
		cfg:   cfg,
		dec:   msgpack.NewDecoder(r),
		enc:   msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	log.Debug("Starting query server")

	for {
		var req QueryRequest
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleQuery(req)
	}
}

// handleQuery runs one request through the engine and writes the ranked
// response. Bad input gets an error response, never a dead server.
func (s *Server) handleQuery(req QueryRequest) {
	if !utils.IsValidLetters(req.Letters) {
		s.sendError(req.ID, "letters may only contain a-z, A-Z or *", 400)
		return
	}

	budget := time.Duration(s.cfg.Engine.RegexBudgetMs) * time.Millisecond
	pattern, err := search.Compile(req.Pattern, budget)
	if err != nil {
		s.sendError(req.ID, err.Error(), 400)
		return
	}

	letters := search.NewLetterSet(req.Letters)
	result, stats, err := search.Run(context.Background(), s.dict.Words(), letters, pattern, s.table)
	if err != nil {
		s.sendError(req.ID, err.Error(), 500)
		return
	}
	if stats.BudgetOverruns > 0 {
		log.Debugf("query %s: %d words hit the pattern budget", req.ID, stats.BudgetOverruns)
	}

	limit := req.Limit
	if ceiling := s.cfg.Engine.ResultLimit; ceiling > 0 && (limit <= 0 || limit > ceiling) {
		limit = ceiling
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}

	matches := make([]QueryMatch, len(result))
	for i, m := range result {
		matches[i] = QueryMatch{Word: m.Word, Score: m.Score}
	}

	s.send(QueryResponse{
		ID:        req.ID,
		Matches:   matches,
		Count:     len(matches),
		TimeTaken: stats.Elapsed.Milliseconds(),
	})
}

func (s *Server) send(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(QueryError{ID: id, Error: message, Code: code})
}
