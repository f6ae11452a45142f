package main

import (
	"os"
)

type Config struct {
	MongoURI     string
	MongoDB      string
	GeocoderURL  string
	GeminiURL    string
	GeminiModel  string
	GeminiAPIKey string
	Port         string
}

func mustConfig() Config {
	cfg := Config{
		MongoURI:     getenv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getenv("MONGO_DB", "kisanmitra"),
		GeocoderURL:  getenv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
		GeminiURL:    getenv("GEMINI_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:  getenv("GEMINI_MODEL", "gemini-flash-latest"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"), // empty key means offline chat mode
		Port:         getenv("PORT", "8080"),
	}

	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
