package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vango-dev/outlet/pkg/dom"
	"github.com/vango-dev/outlet/pkg/render"
	"github.com/vango-dev/outlet/pkg/router"
)

// Session is one live browser connection with its own router.
type Session struct {
	ID string

	conn   *websocket.Conn
	win    *RemoteWindow
	outlet *dom.Node
	router *router.Router
	server *Server
	logger *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

func newSession(s *Server, conn *websocket.Conn, path string) *Session {
	ctx, cancel := context.WithCancel(context.Background())
	sess := &Session{
		ID:     uuid.NewString(),
		conn:   conn,
		outlet: dom.NewElement("div"),
		server: s,
		ctx:    ctx,
		cancel: cancel,
		send:   make(chan []byte, s.config.SendBuffer),
		done:   make(chan struct{}),
	}
	sess.logger = s.logger.With("session_id", sess.ID)
	sess.win = NewRemoteWindow(path, sess.enqueue)
	sess.router = s.newRouter(sess.outlet, sess.win, sess.logger, sess.onEvent)
	return sess
}

// Path returns the session's current location.
func (s *Session) Path() string {
	return s.win.Location()
}

// Router returns the session's router.
func (s *Session) Router() *router.Router {
	return s.router
}

// run starts the router and the write loop, then reads until the
// connection ends.
func (s *Session) run() {
	s.wg.Add(1)
	go s.writeLoop()

	s.router.Start(s.ctx)
	s.readLoop()
}

func (s *Session) readLoop() {
	defer s.Close()

	s.conn.SetReadLimit(s.server.config.MaxMessageSize)
	for {
		s.conn.SetReadDeadline(time.Now().Add(s.server.config.ReadTimeout))

		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseGoingAway,
				websocket.CloseAbnormalClosure,
				websocket.CloseNormalClosure) {
				s.logger.Error("read error", "error", err)
				s.server.metrics.wsError("read")
			}
			return
		}

		msg, err := DecodeClientMessage(data)
		if err != nil {
			s.logger.Warn("bad client message", "error", err)
			s.server.metrics.wsError("decode")
			continue
		}

		switch msg.Type {
		case MsgNavigate:
			s.router.Navigate(msg.Path)
		case MsgPopState:
			s.win.Visit(msg.Path)
		}
	}
}

// writeLoop is the only writer on the connection. After a failed write it
// keeps draining the queue until the session closes, so that senders never
// block on a dead connection.
func (s *Session) writeLoop() {
	defer s.wg.Done()
	failed := false
	for {
		select {
		case data := <-s.send:
			if failed {
				continue
			}
			s.conn.SetWriteDeadline(time.Now().Add(s.server.config.WriteTimeout))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.logger.Debug("write error", "error", err)
				s.server.metrics.wsError("write")
				failed = true
				// Unblocks the read loop, which closes the session.
				s.conn.Close()
			}
		case <-s.done:
			return
		}
	}
}

// enqueue hands a message to the write loop. It drops the message once the
// session is closed.
func (s *Session) enqueue(m ServerMessage) {
	select {
	case s.send <- encode(m):
	case <-s.done:
	}
}

// onEvent sends the outlet to the browser after every change to it.
func (s *Session) onEvent(e router.Event) {
	switch e.Kind {
	case router.EventStarted, router.EventMounted, router.EventFailed, router.EventUnmatched:
	default:
		return
	}

	// The snapshot and the enqueue happen under the router lock so that
	// render messages leave in the order the outlet changed.
	s.router.Inspect(func(outlet *dom.Node) {
		html, err := render.NewRenderer(render.RendererConfig{}).RenderChildren(outlet)
		if err != nil {
			s.logger.Error("render outlet", "path", e.Path, "error", err)
			return
		}
		s.enqueue(ServerMessage{Type: MsgRender, Path: e.Path, HTML: html})
	})
}

// Close stops the router and releases the connection. It is safe to call
// more than once.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.router.Stop()
		s.cancel()
		close(s.done)
		s.conn.Close()
		s.wg.Wait()
		s.server.removeSession(s)
		s.logger.Debug("session closed")
	})
}
