package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"holdemsrv/account"
	"holdemsrv/player"
	"holdemsrv/room"
	"holdemsrv/server"
)

const (
	defaultAddr         = "0.0.0.0:7777"
	defaultTickInterval = 100 * time.Millisecond
	defaultOpeningChips = 1_000_000
)

func main() {
	fmt.Println("Starting Hold'em Game Server...")

	_ = godotenv.Load()

	addr := os.Getenv("HOLDEM_ADDR")
	if addr == "" {
		addr = defaultAddr
	}

	ctx := context.Background()

	var chips account.ChipStore
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		pg, err := account.OpenPG(ctx, dsn)
		if err != nil {
			log.Fatalf("chip store: %v", err)
		}
		defer pg.Close()
		if err := pg.Migrate(ctx); err != nil {
			log.Fatalf("chip store migrate: %v", err)
		}
		chips = pg
		log.Println("chip store: postgres")
	} else {
		chips = account.NewMemStore(defaultOpeningChips)
		log.Println("chip store: in-memory")
	}

	players := player.NewRegistry()
	rooms := room.NewRegistry(chips)

	// Standing rooms so a fresh client always has somewhere to go.
	lobby, code := rooms.CreateRoom(room.KindChat, "lobby")
	if code != 0 {
		log.Fatalf("create lobby: error %d", code)
	}
	rooms.MarkStanding(lobby.ID())

	mainTable, code := rooms.CreateRoom(room.KindPoker, "main table")
	if code != 0 {
		log.Fatalf("create main table: error %d", code)
	}
	rooms.MarkStanding(mainTable.ID())
	if pr, ok := mainTable.(*room.PokerRoom); ok && os.Getenv("DEBUG") != "" {
		pr.SetDebugDump(true)
	}

	go rooms.Run(ctx, defaultTickInterval)

	s := server.NewServer(players, rooms)
	if err := s.Start(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
