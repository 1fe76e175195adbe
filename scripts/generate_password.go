// scripts/generate_password.go
//
// Generates the bcrypt hash for the ADMIN_PASSWORD_HASH environment
// variable: go run scripts/generate_password.go <password>
package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("Usage: go run scripts/generate_password.go <password>")
	}

	password := os.Args[1]
	if len(password) < 8 {
		log.Fatal("Password must be at least 8 characters long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		log.Fatal("Error generating hash:", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, []byte(password)); err != nil {
		log.Fatal("Hash verification failed:", err)
	}

	fmt.Printf("ADMIN_PASSWORD_HASH=%s\n", string(hash))
}
