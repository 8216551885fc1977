package ws

// Hub bertanggung jawab untuk:
// - menyimpan koneksi client display antrian,
// - menerima pesan dari handler API,
// - broadcast pesan ke seluruh client yang terhubung.

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var HubInstance = NewHub()

func init() {
	go HubInstance.Run()
}

// Client mewakili satu koneksi WebSocket.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Hub mengelola semua koneksi client.
type Hub struct {
	Clients    map[*Client]bool
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Broadcast:  make(chan []byte),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true
			log.Debug().Int("clients", len(h.Clients)).Msg("ws client registered")
		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				log.Debug().Int("clients", len(h.Clients)).Msg("ws client unregistered")
			}
		case message := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- message:
				default:
					close(client.Send)
					delete(h.Clients, client)
				}
			}
		}
	}
}

// BroadcastAntrianUpdate membungkus payload perubahan antrian dengan wrapper
// {type, data} lalu mengirimkannya ke semua client display antrian.
func BroadcastAntrianUpdate(data map[string]interface{}) {
	wrapper := map[string]interface{}{
		"type": "antrian_update",
		"data": data,
	}
	msg, err := json.Marshal(wrapper)
	if err != nil {
		log.Error().Err(err).Msg("gagal membuat pesan broadcast antrian")
		return
	}
	HubInstance.Broadcast <- msg
}
