package webui

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cyberbull/startupdocs/internal/document"
	"github.com/cyberbull/startupdocs/internal/export"
	"github.com/cyberbull/startupdocs/internal/pipeline"
	"github.com/cyberbull/startupdocs/internal/schema"
	"github.com/cyberbull/startupdocs/internal/session"
	"github.com/cyberbull/startupdocs/internal/template"
)

// Server exposes the form-driven generation API and a minimal form page.
type Server struct {
	pipeline  *pipeline.Pipeline
	sessions  *session.Manager
	registry  *template.Registry
	log       *logrus.Logger
	startedAt time.Time
}

var languages = []string{"English", "Hindi", "Spanish"}

func NewServer(p *pipeline.Pipeline, sessions *session.Manager, registry *template.Registry, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{
		pipeline:  p,
		sessions:  sessions,
		registry:  registry,
		log:       log,
		startedAt: time.Now().UTC(),
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/status", s.handleStatus)
	mux.HandleFunc("/api/types", s.handleTypes)
	mux.HandleFunc("/api/schema", s.handleSchema)
	mux.HandleFunc("/api/generate", s.handleGenerate)
	mux.HandleFunc("/api/history", s.handleHistory)
	mux.HandleFunc("/api/export", s.handleExport)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(defaultIndexHTML))
}

func (s *Server) handleStatus(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"ok":         true,
		"started_at": s.startedAt.Format(time.RFC3339),
		"uptime_sec": int(time.Since(s.startedAt).Seconds()),
	})
}

type typeInfo struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

func (s *Server) handleTypes(w http.ResponseWriter, _ *http.Request) {
	types := make([]typeInfo, 0)
	for _, t := range s.registry.DocumentTypes() {
		types = append(types, typeInfo{Key: t, Label: document.Label(t)})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"types":     types,
		"tones":     document.Tones(),
		"languages": languages,
	})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	docType := strings.TrimSpace(r.URL.Query().Get("type"))
	if docType == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "type is required"})
		return
	}
	fields := schema.FieldsFor(docType)
	if fields == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown document type"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"fields": fields})
}

type generateRequest struct {
	SessionID    string            `json:"session_id"`
	Query        string            `json:"query"`
	DocumentType string            `json:"document_type"`
	Language     string            `json:"language"`
	Tone         string            `json:"tone"`
	Fields       map[string]string `json:"fields"`
}

type generateResponse struct {
	DocumentType string `json:"document_type"`
	Content      string `json:"content"`
	CreatedAt    string `json:"created_at"`
	HTML         string `json:"html,omitempty"`
	Download     string `json:"download"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json body"})
		return
	}
	req.SessionID = strings.TrimSpace(req.SessionID)
	if req.SessionID == "" {
		req.SessionID = "web-default"
	}
	if strings.TrimSpace(req.Query) == "" {
		req.Query = document.Label(req.DocumentType)
	}
	if strings.TrimSpace(req.Language) == "" {
		req.Language = "English"
	}
	if strings.TrimSpace(req.Tone) == "" {
		req.Tone = document.ToneFormal
	}

	sess, err := s.sessions.GetOrCreate(req.SessionID)
	if err != nil {
		s.log.WithError(err).Error("failed to open session")
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to open session"})
		return
	}

	promptReq := document.PromptRequest{
		Query:        req.Query,
		DocumentType: req.DocumentType,
		Language:     req.Language,
		Tone:         req.Tone,
	}
	doc, failure := s.pipeline.Generate(r.Context(), promptReq, req.Fields, sess)
	if failure != nil {
		switch failure.Kind {
		case pipeline.ValidationError:
			writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
				"error":   failure.Message,
				"missing": failure.Missing,
			})
		case pipeline.ModelError:
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": failure.Message})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": failure.Message})
		}
		return
	}

	html, err := export.RenderHTML(doc.Content)
	if err != nil {
		s.log.WithError(err).Warn("markdown rendering failed")
	}
	n, _ := sess.History().Len()
	writeJSON(w, http.StatusOK, generateResponse{
		DocumentType: doc.DocumentType,
		Content:      doc.Content,
		CreatedAt:    doc.CreatedAt.Format(time.RFC3339),
		HTML:         html,
		Download:     export.DownloadLink(doc.Content, export.FileName(doc.DocumentType, n)),
	})
}

type historyItem struct {
	Index        int    `json:"index"`
	DocumentType string `json:"document_type"`
	Label        string `json:"label"`
	Content      string `json:"content"`
	CreatedAt    string `json:"created_at"`
	Download     string `json:"download"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(strings.TrimSpace(r.URL.Query().Get("session_id")))
	if !ok {
		writeJSON(w, http.StatusOK, map[string]any{"documents": []historyItem{}})
		return
	}
	docs, err := sess.History().List()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "failed to load history"})
		return
	}
	items := make([]historyItem, 0, len(docs))
	for i, doc := range docs {
		items = append(items, historyItem{
			Index:        i,
			DocumentType: doc.DocumentType,
			Label:        document.Label(doc.DocumentType),
			Content:      doc.Content,
			CreatedAt:    doc.CreatedAt.Format(time.RFC3339),
			Download:     export.DownloadLink(doc.Content, export.FileName(doc.DocumentType, i+1)),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{"documents": items})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.sessions.Get(strings.TrimSpace(r.URL.Query().Get("session_id")))
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown session"})
		return
	}
	index, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil || index < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid index"})
		return
	}
	docs, err := sess.History().List()
	if err != nil || index >= len(docs) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "document not found"})
		return
	}
	doc := docs[index]
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.FileName(doc.DocumentType, index+1)+`"`)
	_, _ = w.Write([]byte(doc.Content))
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
