package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"luckroll-backend/internal/models"
	"luckroll-backend/internal/services"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler streams live leaderboard snapshots to connected clients
// while the bot pool keeps mutating the roster underneath.
type WebSocketHandler struct {
	engine *services.GameEngine
	bots   *services.BotPool
	hub    *WebSocketHub
}

type WebSocketHub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *Message
}

type Client struct {
	Conn *websocket.Conn
}

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func NewWebSocketHandler(ctx context.Context, engine *services.GameEngine, bots *services.BotPool, interval time.Duration) *WebSocketHandler {
	hub := &WebSocketHub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *Message, 100),
	}

	h := &WebSocketHandler{
		engine: engine,
		bots:   bots,
		hub:    hub,
	}

	go hub.run(ctx)
	go h.pushLeaderboard(ctx, interval)

	return h
}

func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade to WebSocket: %v", err)
		return
	}

	client := &Client{Conn: conn}
	h.hub.register <- client

	defer func() {
		h.hub.unregister <- client
		conn.Close()
	}()

	h.sendLeaderboard(client)

	for {
		var msg Message
		err := conn.ReadJSON(&msg)
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		h.handleMessage(client, &msg)
	}
}

func (h *WebSocketHandler) handleMessage(client *Client, msg *Message) {
	switch msg.Type {
	case "PING":
		client.Conn.WriteJSON(Message{
			Type: "PONG",
			Data: gin.H{"timestamp": time.Now().Unix()},
		})
	case "LEADERBOARD":
		h.sendLeaderboard(client)
	}
}

func (h *WebSocketHandler) sendLeaderboard(client *Client) {
	entries, err := h.engine.Leaderboard(h.bots.Snapshot())
	if err != nil {
		log.Printf("Failed to assemble leaderboard for WS: %v", err)
		return
	}

	client.Conn.WriteJSON(Message{
		Type: "LEADERBOARD_UPDATE",
		Data: entries,
	})
}

// pushLeaderboard broadcasts a fresh snapshot on a fixed cadence.
func (h *WebSocketHandler) pushLeaderboard(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			entries, err := h.engine.Leaderboard(h.bots.Snapshot())
			if err != nil {
				continue
			}
			h.BroadcastLeaderboard(entries)
		}
	}
}

var _ services.Broadcaster = (*WebSocketHandler)(nil)

func (h *WebSocketHandler) BroadcastLeaderboard(entries []models.LeaderboardEntry) {
	select {
	case h.hub.broadcast <- &Message{Type: "LEADERBOARD_UPDATE", Data: entries}:
	default:
		// drop the update when the hub is backed up; the next tick resends
	}
}

func (hub *WebSocketHub) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case client := <-hub.register:
			hub.clients[client] = true

		case client := <-hub.unregister:
			delete(hub.clients, client)

		case message := <-hub.broadcast:
			for client := range hub.clients {
				client.Conn.WriteJSON(message)
			}
		}
	}
}
