// Package previewserver serves a live-updating view of a file's extracted
// paragraphs: a browser connects over a WebSocket and receives a fresh JSON
// paragraph list each time the watched file's contents change.
package previewserver

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/go-justext/justext"
	"github.com/go-justext/justext/internal/model"
)

// pollInterval is how often the watched file's modification time is checked.
const pollInterval = 500 * time.Millisecond

// wsUpgrader is a Gorilla WebSocket instance, used to respond HTTP requests
// with a WebSocket handshake.
var wsUpgrader = websocket.Upgrader{}

// previewStylesheet colors paragraphs by their final classification.
const previewStylesheet = `
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; }
p.good { color: #111; }
p.bad { color: #aaa; text-decoration: line-through; }
`

// Server watches Path and streams its extracted paragraphs to connected
// browsers whenever the file changes.
type Server struct {
	Path     string
	Stoplist map[string]struct{}
	Options  model.Options
	Logger   *slog.Logger

	assetsOnce sync.Once
	assets     *StylesheetAssetCollector
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// styleAssets lazily builds the stylesheet collector, so handlers can be
// exercised directly (e.g. in tests) without going through ListenAndServe.
func (s *Server) styleAssets() *StylesheetAssetCollector {
	s.assetsOnce.Do(func() {
		s.assets = NewStylesheetAssetCollector("/assets")
		_ = s.assets.AddAsset("preview.css", []byte(previewStylesheet))
	})
	return s.assets
}

// ListenAndServe blocks serving the preview page and its WebSocket endpoint
// at addr until ctx is cancelled or the server fails.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.serveIndex)
	mux.HandleFunc("/ws", s.serveWebSocket)
	mux.HandleFunc("/assets/", s.serveAsset)

	httpServer := &http.Server{Addr: addr, Handler: mux}

	errC := make(chan error, 1)
	go func() { errC <- httpServer.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errC:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := struct {
		Path       string
		Stylesheet string
	}{Path: s.Path, Stylesheet: s.styleAssets().AssetPath("preview.css")}
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger().Error("render preview page", "error", err)
	}
}

func (s *Server) serveAsset(w http.ResponseWriter, r *http.Request) {
	handled, err := s.styleAssets().ServeAsset(w, r)
	if err != nil {
		s.logger().Warn("serve asset", "error", err)
	}
	if !handled {
		http.NotFound(w, r)
	}
}

func (s *Server) serveWebSocket(w http.ResponseWriter, r *http.Request) {
	ws, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger().Warn("websocket upgrade", "error", err)
		return
	}
	defer ws.Close()

	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var lastModTime time.Time

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			info, err := os.Stat(s.Path)
			if err != nil {
				s.sendError(ws, fmt.Errorf("stat %s: %w", s.Path, err))
				continue
			}
			if !info.ModTime().After(lastModTime) {
				continue
			}
			lastModTime = info.ModTime()

			paragraphs, err := s.extract()
			if err != nil {
				s.sendError(ws, err)
				continue
			}
			if err := ws.WriteJSON(previewMessage{Paragraphs: paragraphs}); err != nil {
				if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					return
				}
				s.logger().Warn("write websocket message", "error", err)
				return
			}
		}
	}
}

func (s *Server) sendError(ws *websocket.Conn, err error) {
	s.logger().Warn("preview extraction failed", "error", err)
	_ = ws.WriteJSON(previewMessage{Error: err.Error()})
}

func (s *Server) extract() ([]justext.Paragraph, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.Path, err)
	}
	return justext.Extract(data, s.Stoplist, s.Options)
}

type previewMessage struct {
	Paragraphs []justext.Paragraph `json:"paragraphs,omitempty"`
	Error      string              `json:"error,omitempty"`
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8"><title>justext preview: {{.Path}}</title>
<link rel="stylesheet" href="{{.Stylesheet}}">
</head>
<body>
<h1>{{.Path}}</h1>
<div id="paragraphs"></div>
<script>
const container = document.getElementById("paragraphs");
const ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = (evt) => {
	const msg = JSON.parse(evt.data);
	if (msg.error) {
		container.innerHTML = "<pre>" + msg.error + "</pre>";
		return;
	}
	container.innerHTML = (msg.paragraphs || []).map(p =>
		"<p class=\"" + p.Class + "\">" + p.Text + "</p>").join("\n");
};
</script>
</body>
</html>
`))
