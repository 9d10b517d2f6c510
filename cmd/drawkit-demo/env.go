package main

import (
	"image/color"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lucasb-eyer/go-colorful"
)

func init() {
	godotenv.Load()
}

func getEnvString(key string, def string) string {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	return val
}

func getEnvInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s'. Using default %d.", key, val, def)
		return def
	}
	return parsed
}

func getEnvFloat(key string, def float64) float64 {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(val, 64)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s'. Using default %v.", key, val, def)
		return def
	}
	return parsed
}

// getEnvColor reads a hex color such as "#5865F2".
func getEnvColor(key string, def color.RGBA) color.RGBA {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	c, err := colorful.Hex(val)
	if err != nil {
		log.Printf("Warning: Invalid %s '%s'. Using default %v.", key, val, def)
		return def
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}
}
