package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/cache"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"
)

// Colaboradores de datos del núcleo. Los repos de Mongo los implementan;
// los tests inyectan fakes.
type CatalogSource interface {
	GetCatalog(ctx context.Context) ([]models.MovieRecord, error)
}

type RatingsSource interface {
	GetUserRatings(ctx context.Context, username string) ([]models.UserRatingRecord, []int, error)
}

// UserDataTTL es cuánto viven en Redis las filas crudas de un usuario. Se
// cachean las filas, nunca el modelo entrenado: reentrenar siempre contra
// el snapshot más fresco es la decisión de diseño de todo el sistema.
const UserDataTTL = time.Hour

// cachedRatings es el payload cacheado: el scrape crudo, pre-join, para que
// un refresh del catálogo no sirva joins viejos.
type cachedRatings struct {
	Rated   []models.UserRatingRecord `json:"rated"`
	Unrated []int                     `json:"unrated"`
}

// ProfileService arma el perfil procesado de un usuario: ratings (cacheados
// 1h) joineados contra el catálogo, con diferencial de rating.
type ProfileService struct {
	ratings RatingsSource
	movies  CatalogSource
	cache   *cache.Cache
}

func NewProfileService(ratings RatingsSource, movies CatalogSource, c *cache.Cache) *ProfileService {
	return &ProfileService{ratings: ratings, movies: movies, cache: c}
}

func userDataKey(username string) string {
	return fmt.Sprintf("user_df:%s", username)
}

// GetProfile devuelve el perfil procesado del usuario contra el catálogo
// dado. Un perfil corto NO se rechaza acá: el modelo general existe justo
// para esos usuarios, y el mínimo de filas lo valida el entrenamiento
// personalizado cuando corresponde.
func (s *ProfileService) GetProfile(ctx context.Context, username string, catalog []models.MovieRecord) (*models.UserProfile, error) {
	var data cachedRatings

	ok, err := s.cache.GetJSON(ctx, userDataKey(username), &data)
	if err != nil {
		log.Printf("[profile] error leyendo cache de %s: %v", username, err)
		ok = false
	}

	if !ok {
		rated, unrated, err := s.ratings.GetUserRatings(ctx, username)
		if err != nil {
			return nil, &recommender.UserProfileError{Username: username, Reason: err.Error()}
		}
		data = cachedRatings{Rated: rated, Unrated: unrated}

		if err := s.cache.SetJSON(ctx, userDataKey(username), data, UserDataTTL); err != nil {
			log.Printf("[profile] no se pudo cachear los ratings de %s: %v", username, err)
		}
	}

	return &models.UserProfile{
		Username: username,
		Rows:     joinWithCatalog(data.Rated, catalog),
		Unrated:  data.Unrated,
	}, nil
}

// InvalidateProfile vacía el cache de un usuario (lo usa el admin cuando el
// scraper refresca un perfil a mano).
func (s *ProfileService) InvalidateProfile(ctx context.Context, username string) error {
	return s.cache.Invalidate(ctx, userDataKey(username))
}

// joinWithCatalog hace el join interno sobre (movie_id, url) y calcula el
// diferencial contra el rating agregado. Ratings cuya película ya no está
// en el catálogo se descartan.
func joinWithCatalog(rated []models.UserRatingRecord, catalog []models.MovieRecord) []models.ProcessedUserRow {
	type joinKey struct {
		id  int
		url string
	}
	index := make(map[joinKey]int, len(catalog))
	for i := range catalog {
		index[joinKey{catalog[i].MovieID, catalog[i].URL}] = i
	}

	rows := make([]models.ProcessedUserRow, 0, len(rated))
	for _, r := range rated {
		i, ok := index[joinKey{r.MovieID, r.URL}]
		if !ok {
			continue
		}

		row := models.ProcessedUserRow{
			MovieRecord: catalog[i],
			UserRating:  r.UserRating,
			Liked:       r.Liked,
			Username:    r.Username,
		}
		if row.LetterboxdRating != nil {
			diff := r.UserRating - *row.LetterboxdRating
			row.RatingDiff = &diff
		}
		rows = append(rows, row)
	}
	return rows
}
