package main

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type App struct {
	cfg       Config
	mongo     *mongo.Client
	db        *mongo.Database
	prefs     *prefsStore
	geocoder  *GeocoderClient
	responder responder

	mu       sync.RWMutex
	language string
}

func newApp(ctx context.Context, cfg Config) (*App, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		return nil, err
	}
	db := client.Database(cfg.MongoDB)

	app := &App{
		cfg:      cfg,
		mongo:    client,
		db:       db,
		prefs:    &prefsStore{col: db.Collection("prefs")},
		geocoder: NewGeocoderClient(cfg.GeocoderURL),
	}

	// The chat mode is fixed at startup: keyword knowledge base without a
	// credential, Gemini with one.
	if cfg.GeminiAPIKey != "" {
		app.responder = &onlineResponder{
			client: NewGeminiClient(cfg.GeminiURL, cfg.GeminiModel, cfg.GeminiAPIKey),
		}
	} else {
		app.responder = &offlineResponder{}
	}

	// One-time migration: the old preference key is gone for good.
	if err := app.prefs.dropLegacy(ctx); err != nil {
		return nil, err
	}

	lang, err := app.prefs.loadLanguage(ctx)
	if err != nil {
		return nil, err
	}
	app.language = lang

	return app, nil
}

// currentLanguage returns the active preference code.
func (a *App) currentLanguage() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.language
}

// setLanguage updates the in-memory preference and writes it through.
func (a *App) setLanguage(ctx context.Context, code string) error {
	if err := a.prefs.saveLanguage(ctx, code); err != nil {
		return err
	}
	a.mu.Lock()
	a.language = code
	a.mu.Unlock()
	return nil
}

// chatMode reports which responder variant was selected at startup.
func (a *App) chatMode() string {
	if a.cfg.GeminiAPIKey != "" {
		return "online"
	}
	return "offline"
}

// geminiClient returns the AI client when one is configured, nil otherwise.
func (a *App) geminiClient() *GeminiClient {
	if r, ok := a.responder.(*onlineResponder); ok {
		return r.client
	}
	return nil
}

func (a *App) close(ctx context.Context) { _ = a.mongo.Disconnect(ctx) }
