package main

import (
	"log"

	"github.com/wanwish/rainy-words/internal/server"
)

func main() {
	if err := server.Run(); err != nil {
		log.Fatal(err.Error())
	}
}
