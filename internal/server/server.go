// Package server runs the line-oriented TCP front end: one goroutine per
// accepted connection, one JSON request per line, one JSON response per
// line. All protocol semantics live in the router.
package server

import (
	"bufio"
	"context"
	"log"
	"net"

	"telecare-backend/internal/protocol"

	"golang.org/x/time/rate"
)

// Measurement uploads carry whole sample arrays in one line.
const maxLineBytes = 4 * 1024 * 1024

// A misbehaving client gets throttled, not disconnected: processing waits
// on the limiter, so well-paced clients are unaffected.
const (
	requestsPerSecond = rate.Limit(50)
	requestBurst      = 100
)

type Server struct {
	addr   string
	router *protocol.Router
}

func New(addr string, router *protocol.Router) *Server {
	return &Server{addr: addr, router: router}
}

// ListenAndServe blocks accepting connections until the listener fails.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	defer ln.Close()
	log.Printf("[Server] Listening on %s", s.addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			return err
		}
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()
	log.Printf("[Server] Client connected: %s", conn.RemoteAddr())

	limiter := rate.NewLimiter(requestsPerSecond, requestBurst)
	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := limiter.Wait(context.Background()); err != nil {
			break
		}
		resp := s.router.Process(scanner.Text())
		if _, err := conn.Write(append([]byte(resp), '\n')); err != nil {
			break
		}
	}

	log.Printf("[Server] Client disconnected: %s", conn.RemoteAddr())
}
