package evaluator

import (
	"fmt"
	"io"
	"time"

	"fortio.org/log"
	"github.com/google/uuid"

	"github.com/funvibe/rinha/internal/ast"
	"github.com/funvibe/rinha/internal/config"
)

// Session is one program run: one evaluator, one cache, one id.
type Session struct {
	ID        string
	Evaluator *Evaluator

	elapsed time.Duration
}

// SessionStats summarizes a finished run.
type SessionStats struct {
	Calls   uint64
	Prints  uint64
	Elapsed time.Duration
	Cache   *CacheStats // nil when memoization is off
}

func (s SessionStats) String() string {
	line := fmt.Sprintf("calls: %d, prints: %d, elapsed: %s", s.Calls, s.Prints, s.Elapsed)
	if s.Cache != nil {
		line += "\n" + s.Cache.String()
	}
	return line
}

// NewSession builds a session writing program output to out.
func NewSession(cfg *config.Config, out io.Writer) *Session {
	if cfg == nil {
		cfg = config.Default()
	}
	e := New()
	e.Out = out
	e.MaxDepth = cfg.MaxDepth
	e.TailCalls = cfg.TailCalls
	if !cfg.Memoize {
		e.Cache = nil
	}
	return &Session{ID: uuid.NewString(), Evaluator: e}
}

// Run evaluates the program in a fresh root environment.
func (s *Session) Run(file *ast.File) (Value, error) {
	log.S(log.Info, "evaluation started",
		log.Str("session", s.ID),
		log.Str("program", file.Name),
		log.Attr("memoize", s.Evaluator.Cache != nil),
		log.Attr("tail_calls", s.Evaluator.TailCalls))

	start := time.Now()
	val, err := s.Evaluator.Eval(file.Expression, NewEnvironment())
	s.elapsed = time.Since(start)

	stats := s.Stats()
	attrs := []log.KeyVal{
		log.Str("session", s.ID),
		log.Attr("calls", stats.Calls),
		log.Attr("prints", stats.Prints),
		log.Str("elapsed", stats.Elapsed.String()),
	}
	if stats.Cache != nil {
		attrs = append(attrs, log.Attr("cache_entries", stats.Cache.Entries), log.Attr("cache_hits", stats.Cache.Hits))
	}
	if err != nil {
		attrs = append(attrs, log.Str("error", string(KindOf(err))))
		log.S(log.Info, "evaluation failed", attrs...)
		return nil, err
	}
	log.S(log.Info, "evaluation finished", attrs...)
	return val, nil
}

func (s *Session) Stats() SessionStats {
	stats := SessionStats{
		Calls:   s.Evaluator.Calls(),
		Prints:  s.Evaluator.Effects(),
		Elapsed: s.elapsed,
	}
	if s.Evaluator.Cache != nil {
		cs := s.Evaluator.Cache.Stats()
		stats.Cache = &cs
	}
	return stats
}
