package reservation

import (
	"encoding/hex"
	"strconv"
	"sync/atomic"

	"visit-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

type CodeGenerator interface {
	Generate() string
}

const (
	codePrefix       = "uid-"
	codeRandomLength = 16
)

// TimestampCodeGenerator yields codes of the form uid-<unix millis>-<16 hex chars>.
// The millisecond component never goes backwards within one generator, even if
// the wall clock does.
type TimestampCodeGenerator struct {
	clock  clock.Clock
	lastMs atomic.Int64
}

func NewTimestampCodeGenerator(c clock.Clock) *TimestampCodeGenerator {
	return &TimestampCodeGenerator{clock: c}
}

func (g *TimestampCodeGenerator) Generate() string {
	ms := g.nextMillis()
	id := uuid.New()
	random := hex.EncodeToString(id[:])[:codeRandomLength]
	return codePrefix + strconv.FormatInt(ms, 10) + "-" + random
}

func (g *TimestampCodeGenerator) nextMillis() int64 {
	now := g.clock.Now().UnixMilli()
	for {
		last := g.lastMs.Load()
		if now <= last {
			return last
		}
		if g.lastMs.CompareAndSwap(last, now) {
			return now
		}
	}
}
