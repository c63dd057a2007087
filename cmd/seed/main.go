package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/Aaronzito/api-web-encontrarte/config"
	"github.com/Aaronzito/api-web-encontrarte/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@encontrarte.local"
	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var userID int64
	err = db.QueryRow(`
		INSERT INTO users (usr_role, name, lastname, email, password, address, city, phone)
		VALUES ('Creator', 'Demo', 'Creator', $1, $2, 'Calle Falsa 123', 'Quito', '0999999999')
		RETURNING id
	`, email, hash).Scan(&userID)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%d email=%s password=%s\n", userID, email, password)

	var artworkID int64
	err = db.QueryRow(`
		INSERT INTO artworks (artwork_type, title, descripcion, firstprice, artistid, categoriaid)
		VALUES ('painting', 'Atardecer', 'Oleo sobre lienzo', 150, $1, 1)
		RETURNING id
	`, userID).Scan(&artworkID)
	if err != nil {
		log.Fatalf("failed to seed artwork: %v", err)
	}
	fmt.Printf("seeded artwork: id=%d artistid=%d\n", artworkID, userID)
}
