package main

import (
	"fmt"
	"log"

	"github.com/nvr-ai/go-icons/icons"
)

// successMessage is printed once both icons have been written.
const successMessage = "Icons generated successfully!"

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to generate icons: %v", err)
	}
	fmt.Println(successMessage)
}

// run generates the default icon set relative to the working directory.
func run() error {
	_, err := icons.Default().Generate()
	return err
}
