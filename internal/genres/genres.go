// Package genres convierte entre el set de géneros legible y la máscara de
// 19 bits que guarda el catálogo. El orden de Labels ES el contrato con los
// datos persistidos: cambiarlo corrompe silenciosamente las features one-hot
// y requiere migrar la colección movies.
package genres

// Labels en orden canónico, MSB primero.
var Labels = []string{
	"action",
	"adventure",
	"animation",
	"comedy",
	"crime",
	"documentary",
	"drama",
	"family",
	"fantasy",
	"history",
	"horror",
	"music",
	"mystery",
	"romance",
	"science_fiction",
	"tv_movie",
	"thriller",
	"war",
	"western",
}

// NumGenres es el ancho de la máscara.
const NumGenres = 19

// Géneros opt-in: nunca aparecen en recomendaciones salvo que el caller los
// pida explícitamente.
var SpecialGenres = []string{"animation", "horror", "documentary"}

// Encode produce la máscara de 19 bits a partir de un set de labels.
// Labels desconocidos se ignoran (encoding lossy a propósito: el scraper
// puede traer géneros que no modelamos).
func Encode(labels map[string]bool) int {
	mask := 0
	for _, g := range Labels {
		mask <<= 1
		if labels[g] {
			mask |= 1
		}
	}
	return mask
}

// Decode expande la máscara en un mapa label -> 0|1, el inverso exacto de
// Encode.
func Decode(mask int) map[string]int {
	out := make(map[string]int, NumGenres)
	for pos, g := range Labels {
		bit := (mask >> (NumGenres - 1 - pos)) & 1
		out[g] = bit
	}
	return out
}

// Has reporta si el bit del género está prendido en la máscara. Un label
// desconocido nunca está.
func Has(mask int, label string) bool {
	for pos, g := range Labels {
		if g == label {
			return (mask>>(NumGenres-1-pos))&1 == 1
		}
	}
	return false
}

// Flags expande la máscara en el vector one-hot en orden canónico.
func Flags(mask int) [NumGenres]float64 {
	var out [NumGenres]float64
	for pos := range Labels {
		out[pos] = float64((mask >> (NumGenres - 1 - pos)) & 1)
	}
	return out
}
