package game

type PetStage string

const (
	StageEgg    PetStage = "Egg"
	StageBaby   PetStage = "Baby"
	StageChild  PetStage = "Child"
	StageTeen   PetStage = "Teen"
	StageAdult  PetStage = "Adult"
	StageMythic PetStage = "Mythic"
)

func (s PetStage) IsValid() bool {
	switch s {
	case StageEgg, StageBaby, StageChild, StageTeen, StageAdult, StageMythic:
		return true
	default:
		return false
	}
}

// stageThresholds is ordered ascending; a pet is at the highest stage whose
// threshold does not exceed its XP.
var stageThresholds = []struct {
	Stage PetStage
	XP    int
}{
	{StageEgg, 0},
	{StageBaby, 100},
	{StageChild, 300},
	{StageTeen, 600},
	{StageAdult, 1000},
	{StageMythic, 5000},
}

// StageForXP returns the highest stage whose threshold is <= xp.
func StageForXP(xp int) PetStage {
	stage := StageEgg
	for _, t := range stageThresholds {
		if xp < t.XP {
			break
		}
		stage = t.Stage
	}
	return stage
}

// NextStageThreshold returns the XP needed for the next stage, or false at
// the final stage.
func NextStageThreshold(xp int) (int, bool) {
	for _, t := range stageThresholds {
		if xp < t.XP {
			return t.XP, true
		}
	}
	return 0, false
}

// LevelForXP is a simple linear curve: one level per 100 XP, starting at 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/100 + 1
}

const DefaultPetName = "Hatchy"

type PetState struct {
	Name      string   `json:"name"`
	XP        int      `json:"xp"`
	Level     int      `json:"level"`
	Stage     PetStage `json:"stage"`
	Hunger    int      `json:"hunger"`    // 0-100
	Happiness int      `json:"happiness"` // 0-100

	EquippedHat        *string `json:"equippedHat"`
	EquippedBackground *string `json:"equippedBackground"`
	EquippedSkin       *string `json:"equippedSkin"`
	EquippedAccessory  *string `json:"equippedAccessory"`
}

// NewPet returns the documented default pet: an Egg at 0 XP.
func NewPet() PetState {
	return PetState{
		Name:      DefaultPetName,
		XP:        0,
		Level:     1,
		Stage:     StageEgg,
		Hunger:    50,
		Happiness: 50,
	}
}

// ApplyExperience adds XP, recomputes level and stage from the threshold
// table and bumps happiness (saturating at 100). It reports whether the
// stage changed, which callers use as the level-up celebration signal.
// XP never decreases, so the stage cannot regress.
func (p *PetState) ApplyExperience(amount, happinessGain int) (stageUp bool) {
	if amount < 0 {
		amount = 0
	}
	before := p.Stage
	p.XP += amount
	p.Level = LevelForXP(p.XP)
	p.Stage = StageForXP(p.XP)
	p.Happiness = clampPercent(p.Happiness + happinessGain)
	return p.Stage != before
}

// Normalize repairs a pet loaded from an old or partial snapshot so the
// derived fields match the XP invariants.
func (p *PetState) Normalize() {
	if p.Name == "" {
		p.Name = DefaultPetName
	}
	if p.XP < 0 {
		p.XP = 0
	}
	p.Level = LevelForXP(p.XP)
	p.Stage = StageForXP(p.XP)
	p.Hunger = clampPercent(p.Hunger)
	p.Happiness = clampPercent(p.Happiness)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
