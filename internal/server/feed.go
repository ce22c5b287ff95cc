package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sablewood/cauldron/internal/crafting/service"
)

const feedWriteWait = 10 * time.Second

// subscriber pairs a websocket connection with the mutex serializing writes
// to it. gorilla/websocket allows at most one concurrent writer per
// connection.
type subscriber struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (s *subscriber) write(messageType int, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = s.conn.SetWriteDeadline(time.Now().Add(feedWriteWait))
	return s.conn.WriteMessage(messageType, payload)
}

// Feed fans crafting outcomes out to websocket subscribers so every client
// at the table sees a craft resolve as it happens.
type Feed struct {
	upgrader websocket.Upgrader

	mu   sync.Mutex
	subs map[*subscriber]bool
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		subs: make(map[*subscriber]bool),
	}
}

// HandleFeed upgrades the request and keeps the connection subscribed until
// the client goes away. Inbound messages are discarded; the feed is
// broadcast-only.
func (f *Feed) HandleFeed(w http.ResponseWriter, r *http.Request) {
	conn, err := f.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("feed upgrade failed: %v", err)
		return
	}
	sub := &subscriber{conn: conn}

	f.mu.Lock()
	f.subs[sub] = true
	f.mu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			f.drop(sub)
			return
		}
	}
}

// BroadcastOutcome sends a resolved craft to every subscriber, dropping
// connections that fail to accept the write.
func (f *Feed) BroadcastOutcome(outcome service.Outcome) {
	payload, err := json.Marshal(outcome)
	if err != nil {
		log.Printf("feed marshal outcome: %v", err)
		return
	}

	for _, sub := range f.snapshot() {
		if err := sub.write(websocket.TextMessage, payload); err != nil {
			f.drop(sub)
		}
	}
}

// Close disconnects every subscriber.
func (f *Feed) Close() {
	f.mu.Lock()
	subs := make([]*subscriber, 0, len(f.subs))
	for sub := range f.subs {
		subs = append(subs, sub)
	}
	f.subs = make(map[*subscriber]bool)
	f.mu.Unlock()

	message := websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down")
	for _, sub := range subs {
		_ = sub.write(websocket.CloseMessage, message)
		_ = sub.conn.Close()
	}
}

func (f *Feed) snapshot() []*subscriber {
	f.mu.Lock()
	defer f.mu.Unlock()
	subs := make([]*subscriber, 0, len(f.subs))
	for sub := range f.subs {
		subs = append(subs, sub)
	}
	return subs
}

func (f *Feed) drop(sub *subscriber) {
	f.mu.Lock()
	delete(f.subs, sub)
	f.mu.Unlock()
	_ = sub.conn.Close()
}
