package conversation

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"campaignforge/internal/campaign"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// wsRequest is the incoming WebSocket message format.
type wsRequest struct {
	Type    string `json:"type"`    // "message"
	UserID  string `json:"user_id"` // empty for anonymous sessions
	Content string `json:"content"`
}

// wsResponse is the outgoing WebSocket message format.
type wsResponse struct {
	Type       string         `json:"type"` // "response" or "error"
	UserID     string         `json:"user_id"`
	Content    string         `json:"content"`
	State      campaign.State `json:"state,omitempty"`
	IsComplete bool           `json:"is_complete,omitempty"`
}

func handleWebSocket(e *Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Printf("conversation: websocket upgrade: %v", err)
			return
		}
		defer conn.Close()

		// One anonymous identity per connection unless the client names one.
		connUserID := ""

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("conversation: websocket read: %v", err)
				}
				return
			}

			var req wsRequest
			if err := json.Unmarshal(msg, &req); err != nil {
				sendWSError(conn, "", "invalid message format")
				continue
			}
			if req.Content == "" {
				sendWSError(conn, req.UserID, "content is required")
				continue
			}
			if req.Type != "message" {
				sendWSError(conn, req.UserID, "unknown message type: "+req.Type)
				continue
			}

			userID := req.UserID
			if userID == "" {
				if connUserID == "" {
					connUserID = uuid.New().String()
				}
				userID = connUserID
			}

			reply, err := e.ProcessMessage(r.Context(), userID, req.Content)
			if err != nil {
				sendWSError(conn, userID, "processing failed: "+err.Error())
				continue
			}

			sendWSResponse(conn, wsResponse{
				Type:       "response",
				UserID:     userID,
				Content:    reply.Response,
				State:      reply.State,
				IsComplete: reply.IsComplete,
			})
		}
	}
}

func sendWSResponse(conn *websocket.Conn, resp wsResponse) {
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("conversation: websocket write: %v", err)
	}
}

func sendWSError(conn *websocket.Conn, userID, message string) {
	sendWSResponse(conn, wsResponse{Type: "error", UserID: userID, Content: message})
}
