package pricing

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moveflow/models"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

const snapshotKey = "rates:snapshot"

// RateSource provides the six upstream rate collections.
type RateSource interface {
	GetServiceRates(ctx context.Context) ([]models.ServiceRate, error)
	GetTravelFees(ctx context.Context) ([]models.TravelFee, error)
	GetTruckFees(ctx context.Context) ([]models.TruckFee, error)
	GetStairFees(ctx context.Context) ([]models.StairFee, error)
	GetSpecialItems(ctx context.Context) ([]models.SpecialItem, error)
	GetAddons(ctx context.Context) ([]models.Addon, error)
}

// Fetcher assembles immutable rate snapshots. A snapshot is complete or it is
// an error: if any one of the six fetches fails, no partial tables leak out.
type Fetcher struct {
	Source RateSource
	Cache  *redis.Client // optional; nil disables caching
	TTL    time.Duration
}

// Snapshot returns the current rate tables, preferring the cached copy.
func (f *Fetcher) Snapshot(ctx context.Context) (*models.RateTables, error) {
	if f.Cache != nil {
		if data, err := f.Cache.Get(ctx, snapshotKey).Result(); err == nil {
			var cached models.RateTables
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	snapshot, err := f.fetchAll(ctx)
	if err != nil {
		return nil, err
	}

	if f.Cache != nil {
		if data, err := json.Marshal(snapshot); err == nil {
			f.Cache.Set(ctx, snapshotKey, data, f.TTL)
		}
	}
	return snapshot, nil
}

// fetchAll runs the six collection reads concurrently and joins them. The
// first failure cancels the rest and fails the whole snapshot.
func (f *Fetcher) fetchAll(ctx context.Context) (*models.RateTables, error) {
	var snapshot models.RateTables
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := f.Source.GetServiceRates(ctx)
		if err != nil {
			return fmt.Errorf("service rates: %w", err)
		}
		snapshot.ServiceRates = rows
		return nil
	})
	g.Go(func() error {
		rows, err := f.Source.GetTravelFees(ctx)
		if err != nil {
			return fmt.Errorf("travel fees: %w", err)
		}
		snapshot.TravelFees = rows
		return nil
	})
	g.Go(func() error {
		rows, err := f.Source.GetTruckFees(ctx)
		if err != nil {
			return fmt.Errorf("truck fees: %w", err)
		}
		snapshot.TruckFees = rows
		return nil
	})
	g.Go(func() error {
		rows, err := f.Source.GetStairFees(ctx)
		if err != nil {
			return fmt.Errorf("stair fees: %w", err)
		}
		snapshot.StairFees = rows
		return nil
	})
	g.Go(func() error {
		rows, err := f.Source.GetSpecialItems(ctx)
		if err != nil {
			return fmt.Errorf("special items: %w", err)
		}
		snapshot.SpecialItems = rows
		return nil
	})
	g.Go(func() error {
		rows, err := f.Source.GetAddons(ctx)
		if err != nil {
			return fmt.Errorf("addons: %w", err)
		}
		snapshot.Addons = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to fetch rate tables: %w", err)
	}
	return &snapshot, nil
}
