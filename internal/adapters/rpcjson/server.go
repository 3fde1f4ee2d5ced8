package rpcjson

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sporttracker/sporttracker/internal/application"
	"github.com/sporttracker/sporttracker/internal/domain"
)

// Server exposes the core to the desktop GUI process as JSON-RPC 2.0 over a
// unix socket. The socket is chmod 0600; the store is single-user, there is
// no further auth layer.
type Server struct {
	service  *application.TrackerService
	listener net.Listener
	path     string
}

type request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      any             `json:"id"`
}

type response struct {
	JSONRPC string    `json:"jsonrpc"`
	Result  any       `json:"result,omitempty"`
	Error   *rpcError `json:"error,omitempty"`
	ID      any       `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func Start(path string, service *application.TrackerService) (*Server, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("rpc socket path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	_ = os.Remove(path)
	ln, err := net.Listen("unix", path)
	if err != nil {
		return nil, err
	}
	if err := os.Chmod(path, 0o600); err != nil {
		_ = ln.Close()
		_ = os.Remove(path)
		return nil, err
	}

	s := &Server{service: service, listener: ln, path: path}
	go s.serve()
	return s, nil
}

func (s *Server) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.handleConn(conn)
	}
}

func (s *Server) Close() error {
	err := s.listener.Close()
	_ = os.Remove(s.path)
	return err
}

func (s *Server) handleConn(conn net.Conn) {
	defer func() { _ = conn.Close() }()
	dec := json.NewDecoder(conn)
	enc := json.NewEncoder(conn)

	for {
		var req request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			_ = enc.Encode(response{JSONRPC: "2.0", Error: &rpcError{Code: -32700, Message: "parse error"}, ID: nil})
			return
		}

		resp := s.dispatch(context.Background(), req)
		if err := enc.Encode(resp); err != nil {
			return
		}
	}
}

func (s *Server) dispatch(ctx context.Context, req request) response {
	if req.JSONRPC != "2.0" || strings.TrimSpace(req.Method) == "" {
		return response{JSONRPC: "2.0", Error: &rpcError{Code: -32600, Message: "invalid request"}, ID: req.ID}
	}

	switch req.Method {
	case "sporttypes.list":
		sportTypes, err := s.service.SportTypes(ctx)
		if err != nil {
			return domainError(req.ID, err)
		}
		data := domain.ApplicationData{SportTypes: sportTypes}
		return result(req.ID, application.DatasetFromApplicationData(data).SportTypes)
	case "exercises.list":
		var p struct {
			SportTypeID int64 `json:"sport_type_id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		exercises, err := s.service.Exercises(ctx, p.SportTypeID)
		if err != nil {
			return domainError(req.ID, err)
		}
		data := domain.ApplicationData{Exercises: exercises}
		return result(req.ID, application.DatasetFromApplicationData(data).Exercises)
	case "exercises.add":
		var p application.DatasetExercise
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		sportTypes, err := s.service.SportTypes(ctx)
		if err != nil {
			return domainError(req.ID, err)
		}
		exercise, err := p.ToExercise(sportTypes)
		if err != nil {
			return domainError(req.ID, err)
		}
		created, err := s.service.AddExercise(ctx, exercise)
		if err != nil {
			return domainError(req.ID, err)
		}
		return result(req.ID, application.NewDatasetExercise(created))
	case "notes.list":
		notes, err := s.service.Notes(ctx)
		if err != nil {
			return domainError(req.ID, err)
		}
		data := domain.ApplicationData{Notes: notes}
		return result(req.ID, application.DatasetFromApplicationData(data).Notes)
	case "notes.add":
		var p struct {
			DateTime time.Time `json:"date_time"`
			Comment  string    `json:"comment"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		note, err := s.service.AddNote(ctx, &domain.Note{DateTime: p.DateTime, Comment: p.Comment})
		if err != nil {
			return domainError(req.ID, err)
		}
		return result(req.ID, application.DatasetNote{ID: note.ID, DateTime: note.DateTime, Comment: note.Comment})
	case "notes.delete":
		var p struct {
			ID int64 `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		if err := s.service.DeleteNote(ctx, p.ID); err != nil {
			return domainError(req.ID, err)
		}
		return result(req.ID, map[string]any{"ok": true})
	case "weights.list":
		weights, err := s.service.Weights(ctx)
		if err != nil {
			return domainError(req.ID, err)
		}
		data := domain.ApplicationData{Weights: weights}
		return result(req.ID, application.DatasetFromApplicationData(data).Weights)
	case "weights.add":
		var p struct {
			DateTime time.Time `json:"date_time"`
			Value    float64   `json:"value"`
			Comment  string    `json:"comment"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		weight, err := s.service.AddWeight(ctx, &domain.Weight{DateTime: p.DateTime, Value: p.Value, Comment: p.Comment})
		if err != nil {
			return domainError(req.ID, err)
		}
		return result(req.ID, application.DatasetWeight{ID: weight.ID, DateTime: weight.DateTime, Value: weight.Value, Comment: weight.Comment})
	case "weights.delete":
		var p struct {
			ID int64 `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		if err := s.service.DeleteWeight(ctx, p.ID); err != nil {
			return domainError(req.ID, err)
		}
		return result(req.ID, map[string]any{"ok": true})
	case "exercises.delete":
		var p struct {
			ID int64 `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		if err := s.service.DeleteExercise(ctx, p.ID); err != nil {
			return domainError(req.ID, err)
		}
		return result(req.ID, map[string]any{"ok": true})
	case "sporttypes.delete":
		var p struct {
			ID int64 `json:"id"`
		}
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		if err := s.service.DeleteSportType(ctx, p.ID); err != nil {
			return domainError(req.ID, err)
		}
		return result(req.ID, map[string]any{"ok": true})
	case "data.import":
		var p application.Dataset
		if !decodeParams(req.Params, &p) {
			return invalidParams(req.ID)
		}
		data, err := p.ToApplicationData()
		if err != nil {
			return domainError(req.ID, err)
		}
		if err := s.service.ImportApplicationData(ctx, data); err != nil {
			return domainError(req.ID, err)
		}
		return result(req.ID, map[string]any{"ok": true})
	case "data.export":
		data, err := s.service.LoadAll(ctx)
		if err != nil {
			return domainError(req.ID, err)
		}
		return result(req.ID, application.DatasetFromApplicationData(data))
	default:
		return response{JSONRPC: "2.0", Error: &rpcError{Code: -32601, Message: "method not found"}, ID: req.ID}
	}
}

func result(id any, payload any) response {
	return response{JSONRPC: "2.0", Result: payload, ID: id}
}

func decodeParams(raw json.RawMessage, out any) bool {
	if len(raw) == 0 || string(raw) == "null" {
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

func invalidParams(id any) response {
	return response{JSONRPC: "2.0", Error: &rpcError{Code: -32602, Message: "invalid params"}, ID: id}
}

// domainError maps the store error taxonomy onto stable RPC codes so the GUI
// can react without parsing messages.
func domainError(id any, err error) response {
	code := 50000
	switch {
	case errors.Is(err, domain.ErrNotFound):
		code = 40400
	case errors.Is(err, domain.ErrIntegrity):
		code = 40900
	case errors.Is(err, domain.ErrConstraint):
		code = 40901
	case errors.Is(err, domain.ErrSchema), errors.Is(err, domain.ErrConnection):
		code = 50300
	}
	return response{JSONRPC: "2.0", Error: &rpcError{Code: code, Message: err.Error()}, ID: id}
}
