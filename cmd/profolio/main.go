package main

import (
	"log"

	"github.com/karolinacerm/profolio/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
