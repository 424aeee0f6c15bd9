package genres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	selected := map[string]bool{
		"action": true,
		"drama":  true,
		"horror": true,
	}

	mask := Encode(selected)
	decoded := Decode(mask)

	require.Len(t, decoded, NumGenres)
	for _, g := range Labels {
		if selected[g] {
			assert.Equal(t, 1, decoded[g], "el bit de %s debería estar prendido", g)
		} else {
			assert.Equal(t, 0, decoded[g], "el bit de %s debería estar apagado", g)
		}
	}
}

func TestEncodeMSBFirst(t *testing.T) {
	// el primer label del orden canónico ocupa el bit más significativo
	mask := Encode(map[string]bool{"action": true})
	assert.Equal(t, 1<<(NumGenres-1), mask)

	// y el último, el menos significativo
	mask = Encode(map[string]bool{"western": true})
	assert.Equal(t, 1, mask)
}

func TestEncodeIgnoresUnknownLabels(t *testing.T) {
	mask := Encode(map[string]bool{
		"drama":     true,
		"biography": true, // el scraper trae géneros que no modelamos
	})

	assert.Equal(t, Encode(map[string]bool{"drama": true}), mask)
}

func TestHas(t *testing.T) {
	mask := Encode(map[string]bool{"comedy": true, "romance": true})

	assert.True(t, Has(mask, "comedy"))
	assert.True(t, Has(mask, "romance"))
	assert.False(t, Has(mask, "war"))
	assert.False(t, Has(mask, "biography"))
}

func TestFlagsMatchesDecode(t *testing.T) {
	mask := Encode(map[string]bool{"animation": true, "thriller": true})

	flags := Flags(mask)
	decoded := Decode(mask)
	for pos, g := range Labels {
		assert.Equal(t, float64(decoded[g]), flags[pos], "columna %d (%s)", pos, g)
	}
}

func TestAllGenresSet(t *testing.T) {
	all := make(map[string]bool, NumGenres)
	for _, g := range Labels {
		all[g] = true
	}

	mask := Encode(all)
	assert.Equal(t, (1<<NumGenres)-1, mask)
}
