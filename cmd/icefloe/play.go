package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcticline/icefloe/internal/archive"
	"github.com/arcticline/icefloe/internal/client"
	"github.com/arcticline/icefloe/internal/config"
	"github.com/arcticline/icefloe/internal/game"
	"github.com/arcticline/icefloe/internal/logic"
	"github.com/arcticline/icefloe/internal/protocol"
	"github.com/arcticline/icefloe/internal/render"
	"github.com/arcticline/icefloe/internal/transport"
)

var (
	flagHost          string
	flagPort          int
	flagRoom          string
	flagReservation   string
	flagStrategy      string
	flagAutoReconnect bool
	flagSurvive       bool
	flagShowBoard     bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Connect to a game server and play",
	Long: `Connect to a penguin game server, join a game, and play it with one
of the built-in strategies.

Without --room or --reservation the client asks for a seat in any open
game. With --survive the process keeps running after the server leaves;
with --auto-reconnect it retries a dropped connection a few times
before giving up.

Examples:
  icefloe play
  icefloe play --strategy random --show-board
  icefloe play --room r-42
  icefloe play --reservation CODE --auto-reconnect`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagHost, "host", "", "Game server host")
	playCmd.Flags().IntVar(&flagPort, "port", 0, "Game server port")
	playCmd.Flags().StringVar(&flagRoom, "room", "", "Join a specific room")
	playCmd.Flags().StringVar(&flagReservation, "reservation", "", "Redeem a reservation code")
	playCmd.Flags().StringVar(&flagStrategy, "strategy", "", "Move strategy (see 'icefloe strategies')")
	playCmd.Flags().BoolVar(&flagAutoReconnect, "auto-reconnect", false, "Retry a dropped connection")
	playCmd.Flags().BoolVar(&flagSurvive, "survive", false, "Keep running after the server leaves")
	playCmd.Flags().BoolVar(&flagShowBoard, "show-board", false, "Print the board after every state update")
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Flags beat the config file.
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = flagHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = flagPort
	}
	if cmd.Flags().Changed("strategy") {
		cfg.Strategy = flagStrategy
	}
	if cmd.Flags().Changed("auto-reconnect") {
		cfg.Connection.AutoReconnect = flagAutoReconnect
	}
	if cmd.Flags().Changed("survive") {
		cfg.Connection.Survive = flagSurvive
	}
	if flagDBPath != "" {
		cfg.Archive.Path = flagDBPath
	}
	if flagLogLevel == "" && cfg.Log.Level != "" {
		if lvl, err := log.ParseLevel(cfg.Log.Level); err == nil {
			log.SetLevel(lvl)
		}
	}

	strategy, err := logic.Create(cfg.Strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'icefloe strategies' to see what is available.")
		os.Exit(1)
	}

	var store *archive.Store
	if cfg.Archive.Path != "" {
		store, err = archive.Open(cfg.Archive.Path)
		if err != nil {
			log.Warn("game archive unavailable", "err", err)
		} else {
			defer store.Close()
		}
	}

	conn := transport.New(cfg.Server.Host, cfg.Server.Port, cfg.Server.Path,
		transport.WithLogger(log.With("component", "transport")))

	handler := &playHandler{
		strategy:  strategy,
		store:     store,
		showBoard: flagShowBoard,
		survive:   cfg.Connection.Survive,
	}

	session := client.New(conn, handler, client.Config{
		AutoReconnect:     cfg.Connection.AutoReconnect,
		Survive:           cfg.Connection.Survive,
		ReconnectAttempts: cfg.Connection.ReconnectAttempts,
		ReconnectDelay:    time.Duration(cfg.Connection.ReconnectDelayMS) * time.Millisecond,
	}, log.With("component", "client"))
	handler.session = session

	if err := session.Connect(); err != nil {
		fmt.Fprintf(os.Stderr, "Error connecting to %s:%d: %v\n", cfg.Server.Host, cfg.Server.Port, err)
		os.Exit(1)
	}

	switch {
	case flagRoom != "":
		err = session.JoinRoom(flagRoom)
	case flagReservation != "":
		err = session.JoinReservation(flagReservation)
	default:
		err = session.JoinAnyGame()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error joining game: %v\n", err)
		os.Exit(1)
	}

	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Session failed: %v\n", err)
		os.Exit(1)
	}
}

// playHandler wires a strategy, the renderer and the archive into a
// client session.
type playHandler struct {
	client.NopHandler

	strategy  logic.Strategy
	store     *archive.Store
	session   *client.GameClient
	showBoard bool
	survive   bool

	ownTeam   string
	startedAt time.Time
}

func (h *playHandler) CalculateMove(state *game.GameState) *game.Move {
	return h.strategy.CalculateMove(state)
}

func (h *playHandler) OnGameJoined(roomID string) {
	fmt.Printf("Joined room %s\n", roomID)
}

func (h *playHandler) OnUpdate(state *game.GameState) {
	if h.startedAt.IsZero() {
		h.startedAt = time.Now()
	}
	if h.showBoard {
		fmt.Println(render.State(state))
	}
}

func (h *playHandler) OnRoomMessage(data protocol.RoomData) {
	// The server announces our side in a welcome payload right after
	// the join; everything else is ignored.
	gd, ok := data.(*protocol.GenericData)
	if !ok || gd.Class != "welcome" {
		return
	}
	var welcome struct {
		Team string `json:"team"`
	}
	if err := json.Unmarshal(gd.Raw, &welcome); err == nil {
		h.ownTeam = welcome.Team
		fmt.Printf("Playing as %s\n", welcome.Team)
	}
}

func (h *playHandler) OnError(message string) {
	fmt.Fprintf(os.Stderr, "Server error: %s\n", message)
}

func (h *playHandler) OnGameOver(result *protocol.Result) {
	fmt.Println(render.Result(result))
	if last := h.session.History().LatestState(); last != nil {
		fmt.Println(render.Scores(last))
	}
	h.archiveGame(result)
}

func (h *playHandler) archiveGame(result *protocol.Result) {
	if h.store == nil {
		return
	}

	rec := archive.GameRecord{
		SessionID: h.session.SessionID(),
		RoomID:    h.session.RoomID(),
		Strategy:  h.strategy.Name(),
		OwnTeam:   h.ownTeam,
		Winner:    result.Winner,
	}
	if len(result.Scores) >= 2 {
		rec.ScoreOne, rec.ScoreTwo = result.Scores[0], result.Scores[1]
	} else if last := h.session.History().LatestState(); last != nil {
		rec.ScoreOne = last.TeamByID(game.TeamOne).Fish
		rec.ScoreTwo = last.TeamByID(game.TeamTwo).Fish
	}
	if last := h.session.History().LatestState(); last != nil {
		rec.Turns = last.Turn + 1
	}
	if !h.startedAt.IsZero() {
		rec.Duration = int(time.Since(h.startedAt).Seconds())
	}

	if _, err := h.store.SaveGame(rec); err != nil {
		log.Warn("could not archive game", "err", err)
	}
}

func (h *playHandler) WhileDisconnected(_ *client.GameClient) bool {
	if h.survive {
		time.Sleep(time.Second)
		return false
	}
	return true
}
