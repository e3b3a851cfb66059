package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Tempo máximo para escrever uma mensagem ao peer.
	writeWait = 10 * time.Second

	// Tempo máximo para receber o próximo pong do peer.
	pongWait = 60 * time.Second

	// Intervalo de envio de pings (deve ser menor que pongWait).
	pingPeriod = (pongWait * 9) / 10

	// Tamanho máximo de mensagem aceito do peer.
	maxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// O CORS já é tratado no router HTTP
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Envelope é o formato de toda mensagem trafegada no WebSocket.
type Envelope struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Client representa uma conexão WebSocket ativa dentro de uma partida.
type Client struct {
	Hub  *Hub
	Conn *websocket.Conn

	// Send é o buffer de mensagens de saída.
	Send chan []byte

	// MatchID é o código da partida à qual o cliente está conectado.
	MatchID string

	// SessionID identifica a conexão (vínculo com o assento do jogador).
	SessionID string
}

// readPump lê mensagens da conexão e as encaminha ao Hub.
func (c *Client) readPump() {
	defer func() {
		c.Hub.unregister <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Println("Erro de leitura no WebSocket:", err)
			}
			break
		}

		var msg Envelope
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Println("Mensagem malformada ignorada:", err)
			continue
		}

		c.Hub.IncomingMsgs <- HubMessage{Client: c, Content: msg}
	}
}

// writePump escreve mensagens do canal Send na conexão.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// O Hub fechou o canal
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
