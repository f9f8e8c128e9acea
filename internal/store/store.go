// Package store holds the domain collections: accounts, fleet and rides.
// Each store owns its collection behind a mutex, so every operation is an
// atomic read-modify-write, and writes a whole-collection snapshot through
// the persistence gateway after each mutation.
package store

import (
	"context"
	"encoding/json"
	"log"
	"math"

	"ridebook/internal/storage"
)

// saveSnapshot serializes v and stores it under key. Persistence failures are
// logged and swallowed: the in-memory state stays authoritative.
func saveSnapshot(ctx context.Context, gw storage.Gateway, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("store: marshal snapshot %q: %v", key, err)
		return
	}
	if err := gw.Save(ctx, key, data); err != nil {
		log.Printf("store: save snapshot %q: %v", key, err)
	}
}

// loadSnapshot reads the snapshot under key into dst. Returns false when the
// snapshot is missing or unreadable, in which case the caller seeds instead.
func loadSnapshot(ctx context.Context, gw storage.Gateway, key string, dst any) bool {
	data, err := gw.Load(ctx, key)
	if err != nil {
		if err != storage.ErrNoSnapshot {
			log.Printf("store: load snapshot %q: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("store: decode snapshot %q: %v", key, err)
		return false
	}
	return true
}

// runningAverage folds a new rating into an average over oldCount ratings,
// rounded to one decimal place. A zero average counts as "never rated".
func runningAverage(oldAvg float64, oldCount int, newRating float64) float64 {
	if oldCount < 0 {
		oldCount = 0
	}
	avg := (oldAvg*float64(oldCount) + newRating) / float64(oldCount+1)
	return math.Round(avg*10) / 10
}

// validRating reports whether a rating value is within 0-5.
func validRating(rating float64) bool {
	return rating >= 0 && rating <= 5
}
