package config

// Balance holds the gameplay reward tunables.
type Balance struct {
	// Habit rewards
	XPPerHabit       int `yaml:"xp_per_habit" json:"xp_per_habit"`
	CoinsPerHabit    int `yaml:"coins_per_habit" json:"coins_per_habit"`
	GemsPerStreakDay int `yaml:"gems_per_streak_day" json:"gems_per_streak_day"`
	HappinessPerWin  int `yaml:"happiness_per_win" json:"happiness_per_win"`

	// Rock-paper-scissors payouts
	RPSWinCoins  int `yaml:"rps_win_coins" json:"rps_win_coins"`
	RPSTieCoins  int `yaml:"rps_tie_coins" json:"rps_tie_coins"`
	RPSLossCoins int `yaml:"rps_loss_coins" json:"rps_loss_coins"`

	// Memory match payout
	MemoryWinCoins int `yaml:"memory_win_coins" json:"memory_win_coins"`

	// Tap-blitz
	BlitzSeconds          int `yaml:"blitz_seconds" json:"blitz_seconds"`
	BlitzScoreDivisor     int `yaml:"blitz_score_divisor" json:"blitz_score_divisor"`
	BlitzCelebrationScore int `yaml:"blitz_celebration_score" json:"blitz_celebration_score"`
}

// Default returns the stock reward balance.
func Default() Balance {
	return Balance{
		XPPerHabit:            15,
		CoinsPerHabit:         10,
		GemsPerStreakDay:      5,
		HappinessPerWin:       5,
		RPSWinCoins:           20,
		RPSTieCoins:           2,
		RPSLossCoins:          1,
		MemoryWinCoins:        30,
		BlitzSeconds:          10,
		BlitzScoreDivisor:     2,
		BlitzCelebrationScore: 20,
	}
}
