package bootstrap

import (
	"errors"
	"io/fs"
	"log/slog"

	"visit-booking/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads .env when present, then the process environment.
// Variables already set in the environment win over .env.
func LoadConfig() (config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env", "error", err)
	}
	return config.LoadConfig()
}
