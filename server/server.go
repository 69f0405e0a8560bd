package server

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"net/http/pprof"
	"starfield/world"
	"sync"
	"time"

	"google.golang.org/protobuf/types/known/structpb"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wspb"
)

type subscriber struct {
	Messages chan *structpb.Struct
	c        *websocket.Conn
	drop     sync.Once
}

// Server streams world snapshots to websocket subscribers. The feed is read
// only; nothing a subscriber sends reaches the game.
type Server struct {
	subscribers map[*subscriber]struct{}
	mu          sync.RWMutex
	serveMux    http.ServeMux
	// OriginPatterns is passed to websocket.Accept.
	OriginPatterns []string
}

func NewServer() *Server {
	s := &Server{
		subscribers:    make(map[*subscriber]struct{}),
		OriginPatterns: []string{"localhost:*", "127.0.0.1:*"},
	}

	s.serveMux.HandleFunc("/", s.onConnection)
	s.serveMux.HandleFunc("/debug/pprof/", pprof.Index)
	s.serveMux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	s.serveMux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	s.serveMux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	s.serveMux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	return s
}

func (s *Server) addSubscriber(sub *subscriber) {
	s.mu.Lock()
	s.subscribers[sub] = struct{}{}
	s.mu.Unlock()
}

func (s *Server) removeSubscriber(sub *subscriber) {
	s.mu.Lock()
	delete(s.subscribers, sub)
	s.mu.Unlock()
}

func (s *Server) Subscribers() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.serveMux.ServeHTTP(w, r)
}

func (s *Server) onConnection(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.OriginPatterns,
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.Close(websocket.StatusInternalError, "")

	if err := s.handleConnection(r.Context(), c); err != nil && !errors.Is(err, context.Canceled) {
		log.Println(err)
		return
	}
	c.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) handleConnection(ctx context.Context, c *websocket.Conn) error {
	// Subscribers never send; CloseRead handles control frames and cancels
	// ctx once the peer goes away.
	ctx = c.CloseRead(ctx)

	sub := &subscriber{
		Messages: make(chan *structpb.Struct, 64),
		c:        c,
	}
	s.addSubscriber(sub)
	defer s.removeSubscriber(sub)

	for {
		select {
		case msg := <-sub.Messages:
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err := wspb.Write(writeCtx, c, msg)
			cancel()
			if err != nil {
				return err
			}
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Publish hands snapshot to every subscriber without blocking the game. A
// subscriber that cannot keep up is disconnected.
func (s *Server) Publish(snapshot world.Snapshot) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.subscribers) == 0 {
		return
	}
	msg := SnapshotToProto(snapshot)
	for sub := range s.subscribers {
		select {
		case sub.Messages <- msg:
		default:
			sub.drop.Do(func() {
				go sub.c.Close(websocket.StatusPolicyViolation, "subscriber too slow")
			})
		}
	}
}

// Run serves handler on address until ctx is done.
func Run(ctx context.Context, address string, handler http.Handler) error {
	l, err := net.Listen("tcp", address)
	if err != nil {
		return err
	}
	log.Printf("Telemetry on ws://%v", l.Addr())
	s := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.Serve(l)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}
