package field_test

import (
	"io"
	"math"
	"strconv"
	"testing"

	"github.com/Caqil/ecfield/pkg/crypto/rand"
	"github.com/Caqil/ecfield/pkg/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deterministicReader(t *testing.T, info string) io.Reader {
	t.Helper()
	r, err := rand.NewDeterministicReader([]byte("field properties"), []byte(info))
	require.NoError(t, err)
	return r
}

func TestFieldAxioms(t *testing.T) {
	for _, p := range []uint64{2, 3, 31, 223, 65521, 4294967291, 18446744073709551557} {
		f, err := field.NewField(p)
		require.NoError(t, err)
		r := deterministicReader(t, strconv.FormatUint(p, 10))

		for i := 0; i < 20; i++ {
			a, err := rand.RandomElement(r, f)
			require.NoError(t, err)
			assert.Less(t, a.Value(), p)

			// a + 0 == a
			sum, err := a.Add(f.Zero())
			require.NoError(t, err)
			assert.True(t, sum.Equal(a))

			// a + (p - a) == 0
			neg, err := f.Element((p - a.Value()) % p)
			require.NoError(t, err)
			sum, err = a.Add(neg)
			require.NoError(t, err)
			assert.True(t, sum.IsZero(), "%s + %s", a, neg)

			if a.IsZero() {
				continue
			}

			// a * a^-1 == 1
			inv, err := a.Pow(-1)
			require.NoError(t, err)
			prod, err := a.Mul(inv)
			require.NoError(t, err)
			assert.True(t, prod.Equal(f.One()), "%s * %s", a, inv)

			// a^(p-1) == 1
			if p-1 <= math.MaxInt64 {
				fermat, err := a.Pow(int64(p - 1))
				require.NoError(t, err)
				assert.True(t, fermat.Equal(f.One()), "%s^(p-1)", a)
			}

			// (a / b) * b == a
			b, err := rand.RandomNonZeroElement(r, f)
			require.NoError(t, err)
			q, err := a.Div(b)
			require.NoError(t, err)
			back, err := q.Mul(b)
			require.NoError(t, err)
			assert.True(t, back.Equal(a), "(%s / %s) * %s", a, b, b)
		}
	}
}
