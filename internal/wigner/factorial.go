package wigner

import (
	"fmt"
	"math/big"
	"sync"
)

// factorialTable memoizes exact factorials for the process lifetime. The
// same small factorials (bounded by 2*max(j)+1) recur many times within one
// evaluation, and the table may be hit from concurrent evaluations, so
// first-populate is guarded.
type factorialTable struct {
	mu    sync.Mutex
	cache []*big.Int
}

var factorials = factorialTable{
	cache: []*big.Int{big.NewInt(1)}, // 0! = 1
}

// factorial returns n! as an exact arbitrary-precision integer.
//
// The returned value is shared memo state and must be treated as read-only;
// callers copy before mutating. A negative argument is a validator bug, not
// an input condition, and fails fast.
func factorial(n int64) *big.Int {
	if n < 0 {
		panic(fmt.Sprintf("wigner: factorial of negative argument %d (unvalidated request?)", n))
	}

	factorials.mu.Lock()
	defer factorials.mu.Unlock()

	for i := int64(len(factorials.cache)); i <= n; i++ {
		next := new(big.Int).Mul(factorials.cache[i-1], big.NewInt(i))
		factorials.cache = append(factorials.cache, next)
	}
	return factorials.cache[n]
}
