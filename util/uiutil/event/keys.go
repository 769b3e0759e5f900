package event

type KeySym int

// Only the navigation keys the toolkit reacts to. Drivers map everything else to KSymNone.
const (
	KSymNone KeySym = iota
	KSymUp
	KSymDown
	KSymPageUp
	KSymPageDown
	KSymHome
	KSymEnd
)

func (k KeySym) String() string {
	switch k {
	case KSymUp:
		return "up"
	case KSymDown:
		return "down"
	case KSymPageUp:
		return "pageup"
	case KSymPageDown:
		return "pagedown"
	case KSymHome:
		return "home"
	case KSymEnd:
		return "end"
	}
	return "none"
}
