package dnd5e

// Feature is a class or subclass feature resolved for a specific character
type Feature struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty"`
	Source      string       `json:"source" yaml:"source"`
	Level       int          `json:"level" yaml:"level"`
	Recharge    Recharge     `json:"recharge,omitempty" yaml:"recharge,omitempty"`
	Uses        *FeatureUses `json:"uses,omitempty" yaml:"uses,omitempty"`
}

// FeatureUses is a concrete uses quota. Max is always at least 1.
type FeatureUses struct {
	Max     int `json:"max" yaml:"max"`
	Current int `json:"current" yaml:"current"`
}
