package main

import (
	"log"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"

	"github.com/nxc/galaxy-portfolio/internal/config"
	"github.com/nxc/galaxy-portfolio/internal/content"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}
	gin.SetMode(cfg.GinMode)

	site, err := content.Load(cfg.ContentDir)
	if err != nil {
		log.Fatal("Failed to load content: ", err)
	}
	log.Printf("Loaded content for %s: %d projects, %d testimonials",
		site.Profile.Name, len(site.Projects), len(site.Testimonials))

	r, err := newRouter(cfg, site)
	if err != nil {
		log.Fatal("Failed to set up routes: ", err)
	}
	log.Printf("Portfolio listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
