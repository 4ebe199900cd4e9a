package atom

import "sync"

// Atom is an interned string handle. Two atoms created from equal strings are
// equal as values, so comparison is O(1) and never touches string data.
type Atom uint32

var table = struct {
	sync.RWMutex
	ids     map[string]Atom
	strings []string
}{
	ids:     map[string]Atom{"": 0},
	strings: []string{""},
}

// FromString interns s and returns its handle. The empty string is always
// atom 0.
func FromString(s string) Atom {
	table.RLock()
	a, ok := table.ids[s]
	table.RUnlock()
	if ok {
		return a
	}

	table.Lock()
	defer table.Unlock()
	if a, ok := table.ids[s]; ok {
		return a
	}
	a = Atom(len(table.strings))
	table.ids[s] = a
	table.strings = append(table.strings, s)
	return a
}

func (a Atom) String() string {
	table.RLock()
	defer table.RUnlock()
	return table.strings[a]
}

// IsEmpty reports whether the atom is the interned empty string.
func (a Atom) IsEmpty() bool {
	return a == 0
}
