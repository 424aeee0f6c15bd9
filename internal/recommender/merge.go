package recommender

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
)

// mergeKey es la identidad compartida entre las listas de varios usuarios.
type mergeKey struct {
	title  string
	poster string
	year   int
	url    string
}

// Merge combina las listas rankeadas de varios usuarios: solo sobreviven
// las películas presentes en TODAS las listas (sin crédito parcial), el
// rating predicho se promedia entre usuarios, se re-rankea, se dedupea por
// url y se trunca a n. Una intersección vacía es un resultado válido
// ("nada en común"), no un error.
func Merge(n int, sets []models.RecommendationSet) []models.RecommendationItem {
	if len(sets) == 0 {
		return []models.RecommendationItem{}
	}

	type acc struct {
		item  models.RecommendationItem
		sum   float64
		users int
	}

	merged := make(map[mergeKey]*acc)
	for i, set := range sets {
		for _, item := range set.Items {
			rating, err := strconv.ParseFloat(item.PredictedRating, 64)
			if err != nil {
				continue
			}
			key := mergeKey{item.Title, item.Poster, item.ReleaseYear, item.URL}

			a, ok := merged[key]
			if !ok {
				if i > 0 {
					continue // no estaba en las listas anteriores
				}
				a = &acc{item: item}
				merged[key] = a
			}
			if a.users == i {
				// primera aparición en la lista de este usuario
				a.sum += rating
				a.users++
			}
		}
	}

	out := make([]models.RecommendationItem, 0, len(merged))
	for _, a := range merged {
		if a.users != len(sets) {
			continue
		}
		avg := math.Round(a.sum/float64(a.users)*100) / 100
		item := a.item
		item.PredictedRating = fmt.Sprintf("%.2f", avg)
		out = append(out, item)
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].PredictedRating != out[b].PredictedRating {
			return out[a].PredictedRating > out[b].PredictedRating
		}
		return out[a].URL < out[b].URL
	})

	seenURL := make(map[string]bool, len(out))
	final := make([]models.RecommendationItem, 0, n)
	for _, item := range out {
		if seenURL[item.URL] {
			continue
		}
		seenURL[item.URL] = true
		final = append(final, item)
		if len(final) == n {
			break
		}
	}

	return final
}
