//go:build unit

package reservation_test

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"visit-booking/internal/domain/reservation"
	"visit-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codePattern = regexp.MustCompile(`^uid-\d+-[0-9a-f]{16}$`)

func millisOf(t *testing.T, code string) int64 {
	t.Helper()
	parts := strings.Split(code, "-")
	require.Len(t, parts, 3)
	ms, err := strconv.ParseInt(parts[1], 10, 64)
	require.NoError(t, err)
	return ms
}

func TestTimestampCodeGenerator(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("format", func(t *testing.T) {
		gen := reservation.NewTimestampCodeGenerator(clock.NewMockClock(now))
		code := gen.Generate()
		assert.Regexp(t, codePattern, code)
		assert.Equal(t, now.UnixMilli(), millisOf(t, code))
	})

	t.Run("unique within the same millisecond", func(t *testing.T) {
		gen := reservation.NewTimestampCodeGenerator(clock.NewMockClock(now))

		const workers, perWorker = 8, 250
		var (
			mu   sync.Mutex
			seen = make(map[string]struct{}, workers*perWorker)
			wg   sync.WaitGroup
		)
		for range workers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range perWorker {
					code := gen.Generate()
					mu.Lock()
					seen[code] = struct{}{}
					mu.Unlock()
				}
			}()
		}
		wg.Wait()
		assert.Len(t, seen, workers*perWorker)
	})

	t.Run("millis never go backwards", func(t *testing.T) {
		clk := clock.NewMockClock(now)
		gen := reservation.NewTimestampCodeGenerator(clk)

		first := millisOf(t, gen.Generate())
		clk.Add(-time.Hour)
		second := millisOf(t, gen.Generate())
		clk.Set(now.Add(time.Second))
		third := millisOf(t, gen.Generate())

		assert.Equal(t, first, second)
		assert.Equal(t, now.Add(time.Second).UnixMilli(), third)
	})
}
