package main

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"k8s.io/klog/v2"

	"showdown-advisor/advisor"
	"showdown-advisor/client"
	"showdown-advisor/config"
	"showdown-advisor/data"
	"showdown-advisor/engine"
	"showdown-advisor/game"
	"showdown-advisor/parser"
)

//go:embed templates/*.html
var templateFS embed.FS

var reconnectDelay = 2 * time.Second

type server struct {
	cfg       *config.Config
	searcher  *engine.Searcher
	opts      advisor.Options
	templates *template.Template
}

func newServer(cfg *config.Config) *server {
	return &server{
		cfg:       cfg,
		searcher:  &engine.Searcher{MaxDepth: cfg.Search.MaxDepth, Workers: cfg.Search.Workers},
		opts:      advisor.Options{Level: cfg.Search.Level, Rules: engine.Rules{ForbidFaintedSwitch: cfg.Search.ForbidFaintedSwitch}},
		templates: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

func (s *server) routes() http.Handler {
	r := mux.NewRouter()
	fs := http.FileServer(http.Dir(s.cfg.StaticDir))
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", fs))
	r.HandleFunc("/connect", s.handleConnect).Methods(http.MethodGet)
	r.HandleFunc("/api/advise", s.handleAdvise).Methods(http.MethodPost)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	return r
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	err := s.templates.ExecuteTemplate(w, "index.html", s.cfg)
	if err != nil {
		http.Error(w, "Error al renderizar la plantilla", http.StatusInternalServerError)
	}
}

// advise runs the search on the tracked battle. It returns nil while the
// battle does not have enough information yet.
func (s *server) advise(state *game.BattleState, me string) *advisor.Advice {
	bs, err := advisor.FromBattle(state, me, s.opts)
	if err != nil {
		klog.V(1).Infof("sin recomendación: %v", err)
		return nil
	}
	adv, err := advisor.Advise(bs, s.searcher)
	if err != nil {
		klog.Warningf("error en la búsqueda: %v", err)
		return nil
	}
	return adv
}

func (s *server) handleAdvise(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "cuerpo ilegible", http.StatusBadRequest)
		return
	}
	snap, err := advisor.ParseSnapshot(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	bs, err := snap.State(s.opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	adv, err := advisor.Advise(bs, s.searcher)
	if err != nil {
		klog.Errorf("advise: %v", err)
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adv); err != nil {
		klog.Errorf("advise: writing response: %v", err)
	}
}

func (s *server) handleConnect(w http.ResponseWriter, r *http.Request) {
	klog.Infof("Received connection request from %s", r.RemoteAddr)

	roomID := r.URL.Query().Get("roomid")
	if roomID == "" {
		klog.Warning("Error: Empty room ID")
		http.Error(w, "El ID de la sala no puede estar vacío", http.StatusBadRequest)
		return
	}
	// Asegurar que el roomID tenga el prefijo 'battle-'
	if !strings.HasPrefix(roomID, "battle-") {
		roomID = "battle-" + roomID
	}
	me := r.URL.Query().Get("player")
	if me != "p1" && me != "p2" {
		me = s.cfg.Perspective
	}
	klog.Infof("Room ID requested: %s (advice for %s)", roomID, me)

	flusher, ok := w.(http.Flusher)
	if !ok {
		klog.Error("Error: Streaming not supported")
		http.Error(w, "Streaming no soportado", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Cache-Control")

	st := &stream{w: w, flusher: flusher, roomID: roomID, me: me, state: game.NewBattleState()}
	ctx := r.Context()
	for attempt := 0; attempt < s.cfg.MaxReconnects; attempt++ {
		if attempt > 0 {
			st.send(fmt.Sprintf("<p>Reconectando con Showdown... (intento %d/%d)</p>", attempt+1, s.cfg.MaxReconnects))
			select {
			case <-ctx.Done():
				return
			case <-time.After(reconnectDelay):
			}
		}
		err := s.follow(ctx, st)
		if err == nil {
			return
		}
		klog.Warningf("Error con Showdown (intento %d): %v", attempt+1, err)
	}
	st.send("<p class='error'>Error persistente al conectar con Showdown</p>")
}

// stream is one SSE client following a battle room.
type stream struct {
	w       io.Writer
	flusher http.Flusher
	roomID  string
	me      string
	state   *game.BattleState
}

func (st *stream) send(html string) {
	fmt.Fprintf(st.w, "data: %s\n\n", html)
	st.flusher.Flush()
}

func (st *stream) ping() {
	fmt.Fprint(st.w, ": ping\n\n")
	st.flusher.Flush()
}

var errBattleEnded = errors.New("battle ended")

// follow connects to Showdown and relays the room until the battle ends
// (nil), the client leaves (nil) or the connection fails (error).
func (s *server) follow(ctx context.Context, st *stream) error {
	sd, err := client.NewShowdownClient(s.cfg.ShowdownURL)
	if err != nil {
		st.send(fmt.Sprintf("<p>Error al conectar con Showdown: %s</p>", template.HTMLEscapeString(err.Error())))
		return err
	}
	defer sd.Close()

	if err := sd.JoinRoom(st.roomID); err != nil {
		return fmt.Errorf("error al unirse a la sala: %w", err)
	}
	klog.Infof("Successfully joined room: %s", st.roomID)
	st.send(fmt.Sprintf("<p>Conectado a la sala <strong>%s</strong>. Esperando eventos...</p>", template.HTMLEscapeString(st.roomID)))

	frames := make(chan string)
	readErr := make(chan error, 1)
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		defer close(frames)
		for {
			room, frame, err := sd.ReadFrame()
			if err != nil {
				readErr <- err
				return
			}
			if room != "" && room != st.roomID {
				continue
			}
			select {
			case frames <- frame:
			case <-stop:
				return
			}
		}
	}()

	pingTicker := time.NewTicker(s.cfg.PingInterval)
	defer pingTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			klog.Info("El cliente se ha desconectado.")
			return nil
		case <-pingTicker.C:
			st.ping()
		case frame, ok := <-frames:
			if !ok {
				return <-readErr
			}
			if err := s.relay(st, frame); errors.Is(err, errBattleEnded) {
				klog.Info("Batalla terminada, cerrando conexión SSE.")
				return nil
			}
		}
	}
}

// relay applies a frame to the tracked battle and pushes the log lines,
// the summary and the current advice to the client.
func (s *server) relay(st *stream, frame string) error {
	logged := parser.ProcessFrame(st.state, frame)
	for _, line := range logged {
		klog.V(2).Infof("Enviando al frontend: %s", line)
		st.send(fmt.Sprintf("<p class='logline'>%s</p>", template.HTMLEscapeString(line)))
	}
	if len(logged) > 0 {
		st.send(parser.RenderBattleState(st.state, st.me, s.advise(st.state, st.me)))
	}
	if st.state.Ended {
		return errBattleEnded
	}
	return nil
}

func main() {
	klog.InitFlags(nil)
	configPath := flag.String("config", "", "YAML config file")
	addr := flag.String("addr", "", "listen address, overrides the config")
	flag.Parse()
	defer klog.Flush()

	cfg, err := config.Load(*configPath)
	if err != nil {
		klog.Fatalf("Error cargando configuración: %v", err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	if err := data.LoadPokemonData(cfg.PokedexPath); err != nil {
		klog.Fatalf("Error cargando datos de Pokémon: %v", err)
	}
	if err := data.LoadMoveData(cfg.MovesPath); err != nil {
		klog.Fatalf("Error cargando datos de movimientos: %v", err)
	}

	s := newServer(cfg)
	fmt.Printf("Servidor iniciado en http://localhost%s\n", cfg.Addr)
	srv := &http.Server{
		Addr:        cfg.Addr,
		Handler:     s.routes(),
		ReadTimeout: 10 * time.Second,
	}
	klog.Fatal(srv.ListenAndServe())
}
