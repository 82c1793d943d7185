// Package distance provides the route distance sources used for ranking.
package distance

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/kachieze/whereto/internal/domain"
)

// Default bounds of RandomSource, inclusive.
const (
	DefaultMin = 200
	DefaultMax = 500
)

// RandomSource stands in for a real distance service by drawing a uniform
// integer from [low, high] for every call.
type RandomSource struct {
	low, high int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource creates a RandomSource over [low, high].
func NewRandomSource(low, high int) (*RandomSource, error) {
	return NewRandomSourceWithRand(low, high, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewRandomSourceWithRand creates a RandomSource drawing from rng.
func NewRandomSourceWithRand(low, high int, rng *rand.Rand) (*RandomSource, error) {
	if low < 0 || high < low {
		return nil, fmt.Errorf("invalid distance range [%d, %d]", low, high)
	}
	return &RandomSource{low: low, high: high, rng: rng}, nil
}

// Distance returns a random whole number in [low, high]. The route is ignored.
func (s *RandomSource) Distance(ctx context.Context, route domain.Route) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	n := s.rng.Intn(s.high-s.low+1) + s.low
	s.mu.Unlock()

	return float64(n), nil
}

var _ domain.DistanceSource = (*RandomSource)(nil)
