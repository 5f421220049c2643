package main

import (
	"log"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		log.SetFlags(0)
		log.Printf("maqamat: %v", err)
		os.Exit(1)
	}
}
