package main

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pairchat/backend/internal/config"
	"pairchat/backend/internal/models"
	"pairchat/backend/internal/storage"
)

// Admin CLI for inspecting chat state straight from the durable store.
func main() {
	cfg := config.Load()
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	storageSvc := storage.NewStorageService(db, nil) // No redis needed for admin CLI

	if len(os.Args) < 2 {
		fmt.Println("Usage: admin <adduser|rooms|history|unread> [args]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "adduser":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin adduser <username> <nickname>")
			os.Exit(1)
		}
		user := &models.User{Username: os.Args[2], Nickname: os.Args[3]}
		if err := storageSvc.SaveUser(user); err != nil {
			log.Fatalf("failed to save user: %v", err)
		}
		fmt.Println(user.ID)

	case "rooms":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin rooms <userID>")
			os.Exit(1)
		}
		rooms, err := storageSvc.GetRoomsForUser(os.Args[2])
		if err != nil {
			log.Fatalf("failed to list rooms: %v", err)
		}
		for _, room := range rooms {
			fmt.Printf("%s  %s <-> %s  created %s\n",
				room.RoomID, room.PubUserID, room.SubUserID,
				room.CreatedAt.Format("2006-01-02 15:04"))
		}

	case "history":
		if len(os.Args) < 3 {
			fmt.Println("Usage: admin history <roomID>")
			os.Exit(1)
		}
		history, err := storageSvc.GetChatHistory(os.Args[2])
		if err != nil {
			log.Fatalf("failed to load history: %v", err)
		}
		for _, msg := range history {
			read := " "
			if msg.IsRead {
				read = "r"
			}
			fmt.Printf("[%s] %s %s: %s\n",
				msg.CreatedAt.Format("2006-01-02 15:04"), read, msg.UserID, msg.Content)
		}

	case "unread":
		if len(os.Args) < 4 {
			fmt.Println("Usage: admin unread <roomID> <userID>")
			os.Exit(1)
		}
		count, err := storageSvc.CountUnread(os.Args[2], os.Args[3])
		if err != nil {
			log.Fatalf("failed to count unread: %v", err)
		}
		fmt.Println(count)

	default:
		fmt.Printf("unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}
}
