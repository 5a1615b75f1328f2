package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/gridpath/algorithms"
	"github.com/katalvlaran/gridpath/injector"
	"github.com/katalvlaran/gridpath/internal/wire"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/stepper"
)

// maxSteps bounds a single websocket run.
const maxSteps = 1 << 20

type server struct {
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func newServer(logger *slog.Logger) *server {
	return &server{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// local visualization tool; any page may connect
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger: logger,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.handleWS)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok\n"))
	})
	return mux
}

func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	sess := &session{conn: conn, logger: s.logger.With(slog.String("remote", r.RemoteAddr))}
	defer sess.close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				sess.logger.Debug("websocket read ended", slog.String("error", err.Error()))
			}
			return
		}
		typ, req, err := wire.Decode(msg)
		if err != nil {
			sess.send(wire.Error(err))
			continue
		}
		switch typ {
		case wire.TypeStop:
			sess.stop()
		case wire.TypeStart:
			if err := sess.start(req); err != nil {
				sess.send(wire.Error(err))
			}
		}
	}
}

// session is one websocket connection. At most one run is active at a time.
type session struct {
	conn   *websocket.Conn
	logger *slog.Logger

	writeMu sync.Mutex // serializes WriteJSON

	runMu sync.Mutex
	cur   *stepper.Stepper
	wg    sync.WaitGroup
}

func (ss *session) send(v any) {
	ss.writeMu.Lock()
	defer ss.writeMu.Unlock()
	if err := ss.conn.WriteJSON(v); err != nil {
		ss.logger.Debug("websocket write failed", slog.String("error", err.Error()))
	}
}

// start cancels any active run and launches req.
func (ss *session) start(req *wire.StartRequest) error {
	ss.stop()

	p, err := req.Problem()
	if err != nil {
		return err
	}
	in, err := injector.New(injector.WithSeed(req.Seed), injector.WithProbability(req.Dynamic))
	if err != nil {
		return fmt.Errorf("dynamic %v: %w", req.Dynamic, err)
	}
	in.Scatter(p.Grid, req.Random, p.Start, p.Goal)

	var searchOpts []search.Option
	if req.Strict {
		searchOpts = append(searchOpts, search.WithStrictHeuristic())
	}
	strategy, err := algorithms.New(req.Algorithm, searchOpts...)
	if err != nil {
		return err
	}
	if err := algorithms.CheckDynamic(req.Algorithm, req.Dynamic); err != nil {
		return err
	}

	opts := []stepper.Option{
		stepper.WithDelay(time.Duration(req.Speed) * time.Millisecond),
		stepper.WithMaxSteps(maxSteps),
		stepper.WithLogger(ss.logger),
		stepper.WithOnStep(func(u stepper.Update) { ss.send(wire.Step(u)) }),
	}
	if req.Dynamic > 0 {
		opts = append(opts, stepper.WithInjector(in))
	}
	sp, err := stepper.New(strategy, p, opts...)
	if err != nil {
		return err
	}

	ss.runMu.Lock()
	ss.cur = sp
	ss.runMu.Unlock()

	ss.wg.Add(1)
	go func() {
		defer ss.wg.Done()
		res, err := sp.Run(context.Background())
		if err != nil {
			ss.send(wire.Error(err))
		}
		ss.send(wire.Result(res, p.Grid.Obstacles.Slice()))
	}()
	return nil
}

// stop cancels the active run, if any, and waits for it to report.
func (ss *session) stop() {
	ss.runMu.Lock()
	if ss.cur != nil {
		ss.cur.Cancel()
		ss.cur = nil
	}
	ss.runMu.Unlock()
	ss.wg.Wait()
}

func (ss *session) close() {
	ss.stop()
	_ = ss.conn.Close()
}
