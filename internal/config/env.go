package config

import (
	"os"
	"strconv"
)

// applyEnv overlays environment variables onto the configuration.
// Unset or unparsable variables leave the current value alone.
func applyEnv(cfg *Config) {
	setEnvInt("HATCH_XP_PER_HABIT", &cfg.Balance.XPPerHabit)
	setEnvInt("HATCH_COINS_PER_HABIT", &cfg.Balance.CoinsPerHabit)
	setEnvInt("HATCH_GEMS_PER_STREAK_DAY", &cfg.Balance.GemsPerStreakDay)
	setEnvInt("HATCH_HAPPINESS_PER_WIN", &cfg.Balance.HappinessPerWin)
	setEnvInt("HATCH_RPS_WIN_COINS", &cfg.Balance.RPSWinCoins)
	setEnvInt("HATCH_RPS_TIE_COINS", &cfg.Balance.RPSTieCoins)
	setEnvInt("HATCH_RPS_LOSS_COINS", &cfg.Balance.RPSLossCoins)
	setEnvInt("HATCH_MEMORY_WIN_COINS", &cfg.Balance.MemoryWinCoins)
	setEnvInt("HATCH_BLITZ_SECONDS", &cfg.Balance.BlitzSeconds)
	setEnvInt("HATCH_BLITZ_SCORE_DIVISOR", &cfg.Balance.BlitzScoreDivisor)
	setEnvInt("HATCH_BLITZ_CELEBRATION_SCORE", &cfg.Balance.BlitzCelebrationScore)

	if v := os.Getenv("HATCH_FLAVOR_MODEL"); v != "" {
		cfg.Flavor.Model = v
	}
	if v := os.Getenv("HATCH_FLAVOR_BASE_URL"); v != "" {
		cfg.Flavor.BaseURL = v
	}
	setEnvInt("HATCH_FLAVOR_TIMEOUT_SECONDS", &cfg.Flavor.TimeoutSeconds)
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Flavor.APIKey = v
	}
}

func setEnvInt(name string, dst *int) {
	raw := os.Getenv(name)
	if raw == "" {
		return
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return
	}
	*dst = v
}
