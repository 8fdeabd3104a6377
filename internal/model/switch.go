package model

import "time"

// SwitchType is the actuation mechanism category.
type SwitchType string

const (
	SwitchTypeLinear  SwitchType = "LINEAR"
	SwitchTypeTactile SwitchType = "TACTILE"
	SwitchTypeClicky  SwitchType = "CLICKY"
	SwitchTypeSilent  SwitchType = "SILENT"
)

// Valid reports whether the value is a declared switch type.
func (t SwitchType) Valid() bool {
	switch t {
	case SwitchTypeLinear, SwitchTypeTactile, SwitchTypeClicky, SwitchTypeSilent:
		return true
	}
	return false
}

// SoundProfile is the acoustic character of a switch.
type SoundProfile string

const (
	SoundProfileQuiet    SoundProfile = "QUIET"
	SoundProfileModerate SoundProfile = "MODERATE"
	SoundProfileLoud     SoundProfile = "LOUD"
	SoundProfileThocky   SoundProfile = "THOCKY"
	SoundProfileClacky   SoundProfile = "CLACKY"
	SoundProfileCreamy   SoundProfile = "CREAMY"
)

// Valid reports whether the value is a declared sound profile.
func (s SoundProfile) Valid() bool {
	switch s {
	case SoundProfileQuiet, SoundProfileModerate, SoundProfileLoud,
		SoundProfileThocky, SoundProfileClacky, SoundProfileCreamy:
		return true
	}
	return false
}

// Tactility is the tactile feedback strength of a switch.
type Tactility string

const (
	TactilityNone   Tactility = "NONE"
	TactilityLight  Tactility = "LIGHT"
	TactilityMedium Tactility = "MEDIUM"
	TactilityHeavy  Tactility = "HEAVY"
)

// Valid reports whether the value is a declared tactility level.
func (t Tactility) Valid() bool {
	switch t {
	case TactilityNone, TactilityLight, TactilityMedium, TactilityHeavy:
		return true
	}
	return false
}

// Switch represents a mechanical keyboard switch in the catalog.
type Switch struct {
	ID    string
	Name  string
	Brand string
	Type  SwitchType

	// Physical characteristics (mm / grams-force)
	Actuation float64
	Force     float64
	Travel    float64

	SoundProfile SoundProfile
	Tactility    Tactility

	Price        *float64 // nullable; unpriced switches stay listed
	Availability bool

	ImageURL    *string
	SoundURL    *string
	Description *string
	ReleaseDate *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// SwitchRecord is a Switch hydrated with its review ratings and association
// counts, as read by the catalog repository. The ratings list is internal
// input for rating aggregation and never reaches the API response.
type SwitchRecord struct {
	Switch

	Ratings       []int
	ReviewCount   int64
	FavoriteCount int64
}
