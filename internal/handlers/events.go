package handlers

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/logger"
	ws "github.com/temilolu-codes/Smart-maize-disease-detection-system/internal/services/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// EventsHandler upgrades dashboard viewers to a websocket fed by the
// prediction hub. The connection is push-only; inbound frames are drained
// just to detect disconnects.
func EventsHandler(hub *ws.HubService, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connection, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Error("WebSocket upgrade error: %v", err)
			return
		}
		connection.SetReadLimit(512)
		connection.SetReadDeadline(time.Now().Add(60 * time.Second))
		connection.SetPongHandler(func(appData string) error {
			connection.SetReadDeadline(time.Now().Add(60 * time.Second))
			return nil
		})
		defer connection.Close()

		hub.Register(connection)
		defer hub.Unregister(connection)

		log.Info("Viewer connected")

		for {
			_, _, err := connection.ReadMessage()
			if err != nil {
				log.Info("Viewer disconnected: %v", err)
				break
			}
		}
	}
}
