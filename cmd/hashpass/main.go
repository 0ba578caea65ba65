// hashpass genera el valor de ADMIN_PASSWORD_HASH (bcrypt) pidiendo la contraseña sin eco.
//
// Uso: go run ./cmd/hashpass
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// readPassword es un punto de sustitución para tests.
var readPassword = term.ReadPassword

const minLen = 8

func main() {
	hash, err := run(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(hash))
}

// run pide la contraseña dos veces y devuelve su hash bcrypt.
func run(prompt io.Writer) ([]byte, error) {
	fd := int(os.Stdin.Fd())

	fmt.Fprint(prompt, "Contraseña del panel: ")
	pw, err := readPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return nil, fmt.Errorf("leer contraseña: %w", err)
	}
	if len(pw) < minLen {
		return nil, fmt.Errorf("la contraseña debe tener al menos %d caracteres", minLen)
	}

	fmt.Fprint(prompt, "Repetir contraseña: ")
	again, err := readPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return nil, fmt.Errorf("leer contraseña: %w", err)
	}
	if !bytes.Equal(pw, again) {
		return nil, errors.New("las contraseñas no coinciden")
	}
	return bcrypt.GenerateFromPassword(pw, bcrypt.DefaultCost)
}
