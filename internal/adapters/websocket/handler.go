package websocket

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"trilhaquiz/internal/application/usecases"

	"github.com/google/uuid"
)

// WebSocketHandler gerencia o upgrade e o roteamento de eventos.
type WebSocketHandler struct {
	hub     *Hub
	matchUC *usecases.MatchUseCases
}

func NewWebSocketHandler(hub *Hub, matchUC *usecases.MatchUseCases) *WebSocketHandler {
	handler := &WebSocketHandler{
		hub:     hub,
		matchUC: matchUC,
	}

	// Registra os callbacks no Hub
	hub.EventHandler = handler.HandleEvent
	hub.DisconnectHandler = handler.HandleDisconnect
	return handler
}

// HandleWS faz o upgrade da conexão HTTP para WebSocket.
func (h *WebSocketHandler) HandleWS(w http.ResponseWriter, r *http.Request) {
	matchID := r.URL.Query().Get("matchId")
	if matchID == "" {
		matchID = r.URL.Query().Get("match")
	}

	if matchID == "" {
		http.Error(w, "Match ID required (matchId)", http.StatusBadRequest)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("Upgrade error:", err)
		return
	}

	sessionID := uuid.NewString()

	client := &Client{
		Hub:       h.hub,
		Conn:      conn,
		Send:      make(chan []byte, 256),
		MatchID:   matchID,
		SessionID: sessionID,
	}

	client.Hub.register <- client

	go client.writePump()
	go client.readPump()
}

// HandleEvent processa mensagens vindas dos clientes (Router de Eventos).
func (h *WebSocketHandler) HandleEvent(client *Client, msg Envelope) {
	switch msg.Type {
	case "join_match":
		var payload struct {
			Nickname string `json:"nickname"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			_, err := h.matchUC.JoinMatch(client.MatchID, payload.Nickname, client.SessionID)
			if err != nil {
				h.sendError(client.SessionID, err.Error())
			}
		}

	case "add_bot":
		var payload struct {
			HostID     string `json:"hostId"`
			Name       string `json:"name"`
			Difficulty string `json:"difficulty"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			_, err := h.matchUC.AddBot(context.Background(), client.MatchID, payload.HostID, payload.Name, payload.Difficulty)
			if err != nil {
				h.sendError(client.SessionID, err.Error())
			}
		}

	case "remove_player":
		var payload struct {
			HostID   string `json:"hostId"`
			PlayerID int    `json:"playerId"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			if err := h.matchUC.RemovePlayer(client.MatchID, payload.HostID, payload.PlayerID); err != nil {
				h.sendError(client.SessionID, err.Error())
			}
		}

	case "start_game":
		var payload struct {
			HostID string `json:"hostId"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			if err := h.matchUC.StartMatch(client.MatchID, payload.HostID); err != nil {
				h.sendError(client.SessionID, err.Error())
			}
		}

	case "roll_dice":
		if err := h.matchUC.RollDice(client.MatchID, client.SessionID); err != nil {
			h.sendError(client.SessionID, err.Error())
		}

	case "submit_answer":
		var payload struct {
			Answer string `json:"answer"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			if err := h.matchUC.SubmitAnswer(client.MatchID, client.SessionID, payload.Answer); err != nil {
				h.sendError(client.SessionID, err.Error())
			}
		}

	case "reset_game":
		var payload struct {
			HostID string `json:"hostId"`
		}
		if err := json.Unmarshal(msg.Payload, &payload); err == nil {
			if err := h.matchUC.ResetMatch(client.MatchID, payload.HostID); err != nil {
				h.sendError(client.SessionID, err.Error())
			}
		}

	default:
		log.Printf("Evento desconhecido: %s", msg.Type)
	}
}

// HandleDisconnect libera o assento do jogador quando a conexão cai.
func (h *WebSocketHandler) HandleDisconnect(client *Client) {
	h.matchUC.ReleaseSeat(client.MatchID, client.SessionID)
}

func (h *WebSocketHandler) sendError(sessionID, errorMsg string) {
	h.hub.SendToPlayer(sessionID, map[string]interface{}{
		"type":    "error",
		"payload": errorMsg,
	})
}
