// Command hashgen produces a bcrypt hash for the ADMIN_PASSWORD_HASH
// setting without the password ever appearing on screen or in shell history.
package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/avigneron/boutique/internal/server/auth"
)

var readPassword = term.ReadPassword

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	fmt.Print("New admin password: ")
	password, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}

	fmt.Print("Repeat password: ")
	confirm, err := readPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}

	if string(password) != string(confirm) {
		return fmt.Errorf("passwords do not match")
	}
	if len(password) == 0 {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := auth.HashPassword(string(password))
	if err != nil {
		return err
	}

	fmt.Println(hash)
	return nil
}
