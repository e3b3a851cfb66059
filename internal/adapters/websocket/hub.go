package websocket

import (
	"encoding/json"
	"log"
	"sync"
)

// HubMessage envolve a mensagem e o cliente remetente.
type HubMessage struct {
	Client  *Client
	Content Envelope
}

// Hub implementa ports.RealTimeHub.
type Hub struct {
	clients    map[*Client]bool
	matches    map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client

	// IncomingMsgs é o canal onde o Hub recebe comandos dos clientes
	IncomingMsgs chan HubMessage

	// Handler processa eventos de negócio (injetado via setter ou campo)
	EventHandler func(*Client, Envelope)

	// DisconnectHandler é chamado quando um cliente sai do Hub
	DisconnectHandler func(*Client)

	// Mapeia SessionID -> Client (para envio direto)
	playerSessions map[string]*Client

	mu sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		register:       make(chan *Client),
		unregister:     make(chan *Client),
		clients:        make(map[*Client]bool),
		matches:        make(map[string]map[*Client]bool),
		playerSessions: make(map[string]*Client),
		IncomingMsgs:   make(chan HubMessage),
	}
}

// Implementação da interface RealTimeHub
func (h *Hub) BroadcastToMatch(matchID string, message interface{}) {
	bytes, err := json.Marshal(message)
	if err != nil {
		log.Println("Erro ao serializar broadcast:", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if clients, ok := h.matches[matchID]; ok {
		for client := range clients {
			select {
			case client.Send <- bytes:
			default:
				close(client.Send)
				delete(h.clients, client)
				delete(clients, client)
			}
		}
	}
}

func (h *Hub) SendToPlayer(sessionID string, message interface{}) {
	bytes, err := json.Marshal(message)
	if err != nil {
		log.Println("Erro ao serializar mensagem direta:", err)
		return
	}

	h.mu.RLock()
	client, ok := h.playerSessions[sessionID]
	h.mu.RUnlock()

	if ok {
		select {
		case client.Send <- bytes:
		default:
			// Falha no envio
		}
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			if _, ok := h.matches[client.MatchID]; !ok {
				h.matches[client.MatchID] = make(map[*Client]bool)
			}
			h.matches[client.MatchID][client] = true

			if client.SessionID != "" {
				h.playerSessions[client.SessionID] = client
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			removed := false
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				if clients, ok := h.matches[client.MatchID]; ok {
					delete(clients, client)
					if len(clients) == 0 {
						delete(h.matches, client.MatchID)
					}
				}
				if client.SessionID != "" {
					delete(h.playerSessions, client.SessionID)
				}
				close(client.Send)
				removed = true
			}
			h.mu.Unlock()

			if removed && h.DisconnectHandler != nil {
				go h.DisconnectHandler(client)
			}

		case msg := <-h.IncomingMsgs:
			// Delega para o handler de negócio
			if h.EventHandler != nil {
				go h.EventHandler(msg.Client, msg.Content)
			}
		}
	}
}
