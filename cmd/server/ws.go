package main

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for development
	},
}

var clients = make(map[*websocket.Conn]*sync.Mutex)
var clientsMutex sync.RWMutex

type progressEvent struct {
	Step   string `json:"step"`
	Millis int64  `json:"millis,omitempty"`
	Error  string `json:"error,omitempty"`
}

func wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WebSocket upgrade error:", err)
		return
	}
	clientsMutex.Lock()
	clients[conn] = &sync.Mutex{}
	clientsMutex.Unlock()

	// Drain incoming messages until the client goes away.
	go func() {
		defer removeClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func removeClient(conn *websocket.Conn) {
	clientsMutex.Lock()
	delete(clients, conn)
	clientsMutex.Unlock()
	conn.Close()
}

func broadcast(ev progressEvent) {
	clientsMutex.RLock()
	var failed []*websocket.Conn
	for client, mutex := range clients {
		mutex.Lock()
		err := client.WriteJSON(ev)
		mutex.Unlock()
		if err != nil {
			log.Println("WebSocket write error:", err)
			failed = append(failed, client)
		}
	}
	clientsMutex.RUnlock()

	for _, client := range failed {
		removeClient(client)
	}
}
