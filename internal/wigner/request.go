package wigner

// Request is a single symbol evaluation request, either a ThreeJ or a SixJ.
// A request is built once from parsed input, evaluated once, and discarded;
// nothing mutates it.
type Request interface {
	// Validate checks the triangle and selection rules. A violated rule
	// returns an *InvalidSymbolError naming it; the symbol's value is then
	// exactly zero.
	Validate() error

	// Kind returns "3j" or "6j".
	Kind() string

	isRequest()
}

// ThreeJ requests evaluation of the Wigner 3-j symbol
//
//	( J1 J2 J3 )
//	( M1 M2 M3 )
type ThreeJ struct {
	J1, J2, J3 QNum
	M1, M2, M3 QNum
}

// Kind returns "3j".
func (ThreeJ) Kind() string { return "3j" }

func (ThreeJ) isRequest() {}

// SixJ requests evaluation of the Wigner 6-j symbol
//
//	{ J1 J2 J3 }
//	{ J4 J5 J6 }
type SixJ struct {
	J1, J2, J3 QNum
	J4, J5, J6 QNum
}

// Kind returns "6j".
func (SixJ) Kind() string { return "6j" }

func (SixJ) isRequest() {}
