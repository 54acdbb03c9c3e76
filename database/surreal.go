package database

import (
	"log"
	"os"

	surrealdb "github.com/surrealdb/surrealdb.go"
)

// SDB is the handle to the SurrealDB document store holding the dream
// team collection. Accounts stay in MySQL; only documents live here.
var SDB *surrealdb.DB

func ConnectSurreal() {
	url := os.Getenv("SURREAL_URL")
	if url == "" {
		url = "ws://localhost:8000/rpc"
	}
	user := os.Getenv("SURREAL_USER")
	if user == "" {
		user = "root"
	}
	pass := os.Getenv("SURREAL_PASS")
	if pass == "" {
		pass = "root"
	}
	ns := os.Getenv("SURREAL_NAMESPACE")
	if ns == "" {
		ns = "dream_team"
	}
	name := os.Getenv("SURREAL_DATABASE")
	if name == "" {
		name = "dream_team"
	}

	db, err := surrealdb.New(url)
	if err != nil {
		log.Fatalf("Failed to connect to SurrealDB: %v", err)
	}

	if _, err := db.Signin(map[string]interface{}{"user": user, "pass": pass}); err != nil {
		log.Fatalf("Failed to sign in to SurrealDB: %v", err)
	}
	if _, err := db.Use(ns, name); err != nil {
		log.Fatalf("Failed to select SurrealDB namespace: %v", err)
	}

	SDB = db
	log.Println("SurrealDB connection successfully established.")
}
