package main

import (
	"log"

	approuters "github.com/SalllesAndr/user-service/internal/app_routers"
	"github.com/SalllesAndr/user-service/internal/configuration"
)

func main() {
	container, err := configuration.BuildContainer()
	if err != nil {
		log.Fatalf("Failed to build container: %v", err)
	}

	// Ensure cleanup on shutdown
	defer container.Close()

	// Setup routers
	approuters.StartServer(container)
}
