// Officeanim serves the animated agent office: scene API plus a live
// websocket frame stream for a browser-side 3D renderer.
//
// Configuration is environment-driven:
//
//	PORT=8090 SCENE=office TICK_RATE=30 go run ./cmd/officeanim
//	SCENE_FILE=./myoffice.yaml go run ./cmd/officeanim
package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ambientworks/go-officeanim/internal/config"
	"github.com/ambientworks/go-officeanim/internal/log"
	"github.com/ambientworks/go-officeanim/pkg/scene"
	"github.com/ambientworks/go-officeanim/pkg/web"
)

func main() {
	log.Init(config.LogLevel())

	var (
		scn *scene.Scene
		err error
	)
	if path := config.SceneFile(); path != "" {
		scn, err = scene.LoadFromFile(path)
	} else {
		scn, err = scene.LoadEmbedded(config.SceneName())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ failed to load scene: %v\n", err)
		os.Exit(1)
	}

	srv := web.NewServer(config.Port(), scn, config.TickRate())

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n👋 Shutting down...")
		srv.Shutdown()
	}()

	fmt.Println("🏢 Office Animation Server")
	fmt.Println("==========================")
	fmt.Printf("Scene: %s (%d avatars)\n", scn.Name, len(scn.Entities))
	fmt.Printf("Listening on :%s\n\n", config.Port())

	if err := srv.Start(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
