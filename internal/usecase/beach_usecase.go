package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"beachrent/internal/domain/entities"
	"beachrent/internal/usecase/interfaces"
)

var (
	ErrInvalidBeachID     = errors.New("invalid beach id")
	ErrBeachNotFound      = errors.New("beach not found")
	ErrOutsideServiceArea = errors.New("point is outside every service area")
	ErrNoLocationProvided = errors.New("no location provided")
)

// IBeachUseCase exposes the beach catalog plus the geofence lookup used to
// validate delivery points.

type IBeachUseCase interface {
	List(ctx context.Context) ([]entities.Beach, error)
	GetByID(ctx context.Context, id string) (entities.Beach, error)
	Locate(ctx context.Context, lat, lng float64) (entities.Beach, error)
}

type BeachUseCase struct {
	directory interfaces.IBeachDirectory
	cache     interfaces.IBeachCache
}

var _ IBeachUseCase = (*BeachUseCase)(nil)

func NewBeachUseCase(directory interfaces.IBeachDirectory, cache interfaces.IBeachCache) *BeachUseCase {
	return &BeachUseCase{directory: directory, cache: cache}
}

// List reads through the cache: a hit short-circuits the platform call, a
// miss refreshes the cached blob. Cache failures are logged, never surfaced.
func (u *BeachUseCase) List(ctx context.Context) ([]entities.Beach, error) {
	if u.cache != nil {
		cached, err := u.cache.GetBeaches(ctx)
		if err != nil {
			log.Printf("[beach][usecase] cache read failed err=%v", err)
		} else if cached != nil {
			return cached, nil
		}
	}

	beaches, err := u.directory.ListBeaches(ctx)
	if err != nil {
		return nil, err
	}

	if u.cache != nil {
		if err := u.cache.SetBeaches(ctx, beaches); err != nil {
			log.Printf("[beach][usecase] cache write failed err=%v", err)
		}
	}
	return beaches, nil
}

func (u *BeachUseCase) GetByID(ctx context.Context, id string) (entities.Beach, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Beach{}, ErrInvalidBeachID
	}

	b, err := u.directory.GetBeach(ctx, id)
	if err != nil {
		return entities.Beach{}, err
	}
	if b.ID == "" {
		return entities.Beach{}, ErrBeachNotFound
	}
	return b, nil
}

// Locate resolves the beach serving a delivery point. (0,0) is the unset
// sentinel and never resolves.
func (u *BeachUseCase) Locate(ctx context.Context, lat, lng float64) (entities.Beach, error) {
	if lat == 0 && lng == 0 {
		return entities.Beach{}, ErrNoLocationProvided
	}

	beaches, err := u.List(ctx)
	if err != nil {
		return entities.Beach{}, err
	}

	match := FindBeachInPolygon(lat, lng, beaches)
	if match == nil {
		return entities.Beach{}, ErrOutsideServiceArea
	}
	return *match, nil
}
