package recommender

import (
	"testing"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(title, poster string, year int, rating, url string) models.RecommendationItem {
	return models.RecommendationItem{
		Title:           title,
		Poster:          poster,
		ReleaseYear:     year,
		PredictedRating: rating,
		URL:             url,
	}
}

func TestMergeStrictIntersection(t *testing.T) {
	shared := item("Común", "p1", 2000, "4.00", "/film/comun/")
	onlyAna := item("Solo Ana", "p2", 2001, "4.90", "/film/solo-ana/")

	sets := []models.RecommendationSet{
		{Username: "ana", Items: []models.RecommendationItem{shared, onlyAna}},
		{Username: "bob", Items: []models.RecommendationItem{item("Común", "p1", 2000, "3.00", "/film/comun/")}},
	}

	merged := Merge(10, sets)
	require.Len(t, merged, 1, "sin crédito parcial: solo lo que está en todas las listas")
	assert.Equal(t, "Común", merged[0].Title)
}

func TestMergeAveragesRatings(t *testing.T) {
	sets := []models.RecommendationSet{
		{Username: "ana", Items: []models.RecommendationItem{item("Común", "p", 2000, "4.00", "/film/comun/")}},
		{Username: "bob", Items: []models.RecommendationItem{item("Común", "p", 2000, "3.00", "/film/comun/")}},
	}

	merged := Merge(10, sets)
	require.Len(t, merged, 1)
	assert.Equal(t, "3.50", merged[0].PredictedRating)
}

func TestMergeIdentityIsFullTuple(t *testing.T) {
	// misma película con poster distinto entre usuarios: no es la misma
	// identidad, no intersecta
	sets := []models.RecommendationSet{
		{Username: "ana", Items: []models.RecommendationItem{item("Común", "p1", 2000, "4.00", "/film/comun/")}},
		{Username: "bob", Items: []models.RecommendationItem{item("Común", "p2", 2000, "3.00", "/film/comun/")}},
	}

	assert.Empty(t, Merge(10, sets))
}

func TestMergeRanksByAverage(t *testing.T) {
	sets := []models.RecommendationSet{
		{Username: "ana", Items: []models.RecommendationItem{
			item("Alta", "p", 2000, "4.80", "/film/alta/"),
			item("Baja", "p", 2001, "3.00", "/film/baja/"),
		}},
		{Username: "bob", Items: []models.RecommendationItem{
			item("Baja", "p", 2001, "4.90", "/film/baja/"),
			item("Alta", "p", 2000, "4.60", "/film/alta/"),
		}},
	}

	merged := Merge(10, sets)
	require.Len(t, merged, 2)
	assert.Equal(t, "Alta", merged[0].Title) // 4.70 > 3.95
	assert.Equal(t, "4.70", merged[0].PredictedRating)
	assert.Equal(t, "3.95", merged[1].PredictedRating)
}

func TestMergeTruncates(t *testing.T) {
	var items1, items2 []models.RecommendationItem
	for i := 0; i < 5; i++ {
		it := item("M", "p", 2000+i, "4.00", "/film/m"+string(rune('a'+i))+"/")
		items1 = append(items1, it)
		items2 = append(items2, it)
	}
	sets := []models.RecommendationSet{
		{Username: "ana", Items: items1},
		{Username: "bob", Items: items2},
	}

	assert.Len(t, Merge(3, sets), 3)
}

func TestMergeEmptyIntersectionIsValid(t *testing.T) {
	sets := []models.RecommendationSet{
		{Username: "ana", Items: []models.RecommendationItem{item("A", "p", 2000, "4.00", "/film/a/")}},
		{Username: "bob", Items: []models.RecommendationItem{item("B", "p", 2001, "4.00", "/film/b/")}},
	}

	merged := Merge(10, sets)
	assert.NotNil(t, merged)
	assert.Empty(t, merged)
}

func TestMergeDuplicateWithinOneList(t *testing.T) {
	// una lista con la misma película dos veces no infla el promedio
	sets := []models.RecommendationSet{
		{Username: "ana", Items: []models.RecommendationItem{
			item("Común", "p", 2000, "4.00", "/film/comun/"),
			item("Común", "p", 2000, "4.00", "/film/comun/"),
		}},
		{Username: "bob", Items: []models.RecommendationItem{item("Común", "p", 2000, "3.00", "/film/comun/")}},
	}

	merged := Merge(10, sets)
	require.Len(t, merged, 1)
	assert.Equal(t, "3.50", merged[0].PredictedRating)
}
