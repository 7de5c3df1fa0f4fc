package behavior

// VocalizationBehavior is the sound an Actor makes. Every Actor has one.
type VocalizationBehavior interface {
	Vocalize() string
}

type LoudQuack struct{}

func (LoudQuack) Vocalize() string { return "Quacking loud" }

type RapidQuack struct{}

func (RapidQuack) Vocalize() string { return "Quacking rapidly" }

type Squeak struct{}

func (Squeak) Vocalize() string { return "Squeak" }
