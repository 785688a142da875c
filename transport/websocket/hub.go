package websocket

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
)

const (
	sendBufferSize = 16
	pingInterval   = 30 * time.Second
	writeWait      = 10 * time.Second
)

// Client is one websocket connection. Writes go through send and are flushed by a single writer goroutine.
type Client struct {
	conn         *websocket.Conn
	send         chan []byte
	pingInterval time.Duration

	mu       sync.Mutex
	playerID string
}

func newClient(conn *websocket.Conn) *Client {
	return &Client{
		conn:         conn,
		send:         make(chan []byte, sendBufferSize),
		pingInterval: pingInterval,
	}
}

func (that *Client) PlayerID() string {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.playerID
}

func (that *Client) setPlayerID(playerID string) {
	that.mu.Lock()
	that.playerID = playerID
	that.mu.Unlock()
}

// enqueue drops the message when the client can't keep up.
func (that *Client) enqueue(message []byte) bool {
	select {
	case that.send <- message:
		return true
	default:
		return false
	}
}

// writePump writes queued messages and pings a connection idle for pingInterval until send is closed.
func (that *Client) writePump() error {
	idle := time.NewTimer(that.pingInterval)
	defer idle.Stop()

	ping, err := encode(actionPing, Payload{})
	if err != nil {
		return err
	}

	for {
		select {
		case message, ok := <-that.send:
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return nil
			}

			if err = that.write(message); err != nil {
				return err
			}
		case <-idle.C:
			if err = that.write(ping); err != nil {
				return err
			}
		}

		idle.Reset(that.pingInterval)
	}
}

func (that *Client) write(message []byte) error {
	if err := that.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return that.conn.WriteMessage(websocket.TextMessage, message)
}

// Hub routes messages to players by ID. A player has at most one live client; a reconnect replaces it.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	players map[string]*Client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		players: make(map[string]*Client),
	}
}

func (that *Hub) Register(playerID string, client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if previous := client.PlayerID(); previous != playerID && that.players[previous] == client {
		delete(that.players, previous)
	}

	client.setPlayerID(playerID)
	that.players[playerID] = client
}

// Unregister forgets the client unless the player already reconnected on another one.
func (that *Hub) Unregister(client *Client) {
	playerID := client.PlayerID()
	if playerID == "" {
		return
	}

	that.mu.Lock()
	if that.players[playerID] == client {
		delete(that.players, playerID)
	}
	that.mu.Unlock()
}

func (that *Hub) connected(playerID string) bool {
	that.mu.RLock()
	defer that.mu.RUnlock()

	_, ok := that.players[playerID]

	return ok
}

// SendTo reports whether the message was queued for the player.
func (that *Hub) SendTo(playerID, action string, payload Payload) bool {
	log := that.logger.With("method", "SendTo", "playerID", playerID)

	message, err := encode(action, payload)
	if err != nil {
		log.Error("failed to encode message", "action", action, "error", err)
		return false
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	client, ok := that.players[playerID]
	if !ok {
		log.Debug("player is not connected")
		return false
	}

	if !client.enqueue(message) {
		log.Warn("send buffer is full, message dropped", "action", action)
		return false
	}

	return true
}

// Broadcast sends the game to every human player in it, each with their own seat.
func (that *Hub) Broadcast(action string, game *entity.Game) {
	view := gameView(game)

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		that.SendTo(player.ID, action, Payload{Player: player, Game: view})
	}
}

// GameUpdated pushes a move the players did not trigger themselves.
func (that *Hub) GameUpdated(_ context.Context, game *entity.Game) {
	that.Broadcast(actionGameUpdate, game)
}
