package wigner

import (
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorialSmall(t *testing.T) {
	assert.Equal(t, int64(1), factorial(0).Int64())
	assert.Equal(t, int64(1), factorial(1).Int64())
	assert.Equal(t, int64(120), factorial(5).Int64())
	assert.Equal(t, int64(3628800), factorial(10).Int64())
}

func TestFactorialBeyondFixedWidth(t *testing.T) {
	// 25! overflows uint64; the engine must stay exact.
	want, ok := new(big.Int).SetString("15511210043330985984000000", 10)
	require.True(t, ok)
	assert.Equal(t, 0, want.Cmp(factorial(25)))
}

func TestFactorialMemoIsStable(t *testing.T) {
	first := new(big.Int).Set(factorial(12))
	factorial(30) // grow the table past it
	assert.Equal(t, 0, first.Cmp(factorial(12)))
}

func TestFactorialConcurrentFirstPopulate(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := int64(0); n <= 40; n++ {
				factorial(n)
			}
		}()
	}
	wg.Wait()

	want := new(big.Int).MulRange(1, 40)
	assert.Equal(t, 0, want.Cmp(factorial(40)))
}

func TestFactorialNegativePanics(t *testing.T) {
	assert.Panics(t, func() { factorial(-1) })
}
