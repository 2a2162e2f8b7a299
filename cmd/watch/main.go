// Watch connects to a running officeanim server and prints the frame
// stream, one summary line per avatar per tick.
//
//	go run ./cmd/watch -addr localhost:8090
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/websocket"

	"github.com/ambientworks/go-officeanim/pkg/web"
)

func main() {
	addr := flag.String("addr", "localhost:8090", "server address")
	flag.Parse()

	u := url.URL{Scheme: "ws", Host: *addr, Path: "/ws/frames"}
	fmt.Printf("👀 Watching %s\n\n", u.String())

	conn, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ dial failed: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n👋 Bye")
		conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
		os.Exit(0)
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			fmt.Fprintf(os.Stderr, "connection closed: %v\n", err)
			return
		}

		var batch web.FrameBatch
		if err := json.Unmarshal(data, &batch); err != nil {
			fmt.Fprintf(os.Stderr, "bad frame batch: %v\n", err)
			continue
		}

		for _, f := range batch.Frames {
			dialog := ""
			if f.Dialog.Visible {
				dialog = "💬 " + f.Dialog.Label
			}
			fmt.Printf("[%8.2fs] %-10s %-11s (%6.2f, %5.2f, %6.2f) %s\n",
				batch.Elapsed, f.Entity, f.Phase,
				f.Pose.Position.X(), f.Pose.Position.Y(), f.Pose.Position.Z(),
				dialog)
		}
	}
}
