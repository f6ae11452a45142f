package main

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kisanmitra/agri"
)

// The language code is the only durable preference. It lives in a single
// document in the "prefs" collection, read once at startup and written on
// every change.
const (
	prefLanguageID = "language"
	// legacyPrefID was the pre-rewrite storage key. It is deleted once at
	// startup; nothing reads it anymore.
	legacyPrefID = "app_language"
)

type prefDoc struct {
	ID    string `bson:"_id"`
	Value string `bson:"value"`
}

type prefsStore struct {
	col *mongo.Collection
}

// loadLanguage returns the stored language code, or the default when no
// preference has been written yet.
func (s *prefsStore) loadLanguage(ctx context.Context) (string, error) {
	var doc prefDoc
	err := s.col.FindOne(ctx, bson.M{"_id": prefLanguageID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return agri.DefaultLanguage, nil
	}
	if err != nil {
		return "", err
	}
	if !agri.SupportedLanguage(doc.Value) {
		return agri.DefaultLanguage, nil
	}
	return doc.Value, nil
}

// saveLanguage upserts the preference document.
func (s *prefsStore) saveLanguage(ctx context.Context, code string) error {
	_, err := s.col.UpdateOne(ctx,
		bson.M{"_id": prefLanguageID},
		bson.M{"$set": bson.M{"value": code}},
		options.Update().SetUpsert(true),
	)
	return err
}

// dropLegacy removes the old preference key. One-time cleanup, idempotent.
func (s *prefsStore) dropLegacy(ctx context.Context) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": legacyPrefID})
	return err
}
