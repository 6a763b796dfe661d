// Package websocket provides a WebSocket feed of referee verdicts.
//
// The package uses a hub-and-spoke model: a central Hub owns the set of
// connected clients and fans each published report out to all of them. Each
// connection gets a read and a write goroutine; slow clients are dropped
// rather than allowed to block the hub.
//
// Message Protocol:
//
// Outgoing messages are JSON-encoded:
//
//	{"event": "report", "report": { ...report fields... }}
//
// Clients do not send application messages; the read side only services
// pings and detects disconnects.
//
// Usage:
//
//	hub := websocket.NewHub(logger)
//	go hub.Run()
//
//	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
//		hub.ServeWS(w, r)
//	})
//
//	hub.BroadcastReport(rep)
package websocket
