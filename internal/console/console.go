// Package console is a small HTTP interface for inspecting and driving a running device.
package console

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/callebjorkell/openlcd/internal/device"
	"github.com/callebjorkell/openlcd/internal/eeprom"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultAddress = ":8090"
	maxWriteSize   = 1024
)

type Snapshotter interface {
	Snapshot() device.Snapshot
}

type Server struct {
	server   http.Server
	device   Snapshotter
	store    eeprom.Imager
	received io.Writer
}

// NewServer creates a console. Bytes posted to /write are handed to received as if they came from
// the host.
func NewServer(addr string, d Snapshotter, store eeprom.Imager, received io.Writer) *Server {
	if addr == "" {
		addr = DefaultAddress
	}
	s := &Server{
		device:   d,
		store:    store,
		received: received,
	}
	s.server = http.Server{Addr: addr, Handler: s.Handler()}
	return s
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/settings", s.settings)
	mux.HandleFunc("/eeprom", s.eeprom)
	mux.HandleFunc("/write", s.write)
	return mux
}

// Listen serves until Close is called.
func (s *Server) Listen() error {
	log.Infof("Starting console on %v", s.server.Addr)
	err := s.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	log.Debug("Closing console...")
	return s.server.Shutdown(ctx)
}

func (s *Server) settings(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.device.Snapshot()); err != nil {
		log.Warn("Unable to write snapshot: ", err)
	}
}

func (s *Server) eeprom(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	dump, err := eeprom.Dump(s.store)
	if err != nil {
		log.Warn("Unable to dump EEPROM: ", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = io.WriteString(w, dump)
}

func (s *Server) write(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(io.LimitReader(req.Body, maxWriteSize+1))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	if len(body) > maxWriteSize {
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		return
	}

	log.Debugf("Console wrote %d bytes", len(body))
	if _, err := s.received.Write(body); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}
