package main

import (
	"fmt"
	"log"
	"os"

	"github.com/biochemsafety/site/internal/config"
	"github.com/biochemsafety/site/internal/db"
)

// Creates the admin account if it does not exist yet:
//
//	go run ./scripts/init_admin <username> <password>
func main() {
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: init_admin <username> <password>")
		os.Exit(2)
	}

	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("database init failed:", err)
	}

	if err := db.EnsureAdmin(os.Args[1], os.Args[2]); err != nil {
		log.Fatal("admin account setup failed:", err)
	}

	fmt.Printf("admin account %q is ready\n", os.Args[1])
}
