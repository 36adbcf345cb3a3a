package model

// Energy is the cost a task asks of you, 0 (restful) through 4 (intense).
type Energy int

const (
	EnergyRestful  Energy = 0
	EnergyLight    Energy = 1
	EnergyModerate Energy = 2
	EnergyHigh     Energy = 3
	EnergyIntense  Energy = 4
)

func (e Energy) IsValid() bool {
	return e >= EnergyRestful && e <= EnergyIntense
}

func (e Energy) Label() string {
	switch e {
	case EnergyRestful:
		return "Restful"
	case EnergyLight:
		return "Light"
	case EnergyModerate:
		return "Moderate"
	case EnergyHigh:
		return "High"
	case EnergyIntense:
		return "Intense"
	default:
		return "Moderate"
	}
}

func (e Energy) Icon() string {
	switch e {
	case EnergyRestful:
		return "🌿"
	case EnergyLight:
		return "◎"
	case EnergyHigh:
		return "🔥🔥"
	case EnergyIntense:
		return "🔥🔥🔥"
	default:
		return "🔥"
	}
}
