package weapon

// Loadout is an ordered set of launchers a weapon can cycle through.
type Loadout struct {
	launchers []Launcher
	current   int
}

// NewLoadout creates a loadout starting at the first launcher. Nil entries are dropped.
func NewLoadout(launchers ...Launcher) *Loadout {
	l := &Loadout{}
	for _, la := range launchers {
		if la != nil {
			l.launchers = append(l.launchers, la)
		}
	}
	return l
}

// Current returns the selected launcher, or nil for an empty loadout.
func (l *Loadout) Current() Launcher {
	if len(l.launchers) == 0 {
		return nil
	}
	return l.launchers[l.current]
}

// Next advances to the following launcher, wrapping around, and returns it.
func (l *Loadout) Next() Launcher {
	if len(l.launchers) == 0 {
		return nil
	}
	l.current = (l.current + 1) % len(l.launchers)
	return l.launchers[l.current]
}
