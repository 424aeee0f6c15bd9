package cluster

import (
	"errors"
	"fmt"

	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/models"
	"github.com/victorverma3/Letterboxd-Movie-Recommendations/internal/recommender"
)

// Kinds de error que viajan por el wire; el coordinador los reconstruye
// como errores tipados.
const (
	ErrKindFilter  = "filter"
	ErrKindProfile = "profile"
	ErrKindOther   = "other"
)

// RecTask es el pipeline de UN usuario (entrenar + filtrar + puntuar),
// enviado del coordinador a un nodo de recomendación. Las filas del usuario
// viajan en el task; el catálogo lo lee cada nodo de Mongo.
type RecTask struct {
	Username  string                    `json:"username"`
	NumRecs   int                       `json:"numRecs"`
	ModelType string                    `json:"modelType"`
	Filters   recommender.FilterOptions `json:"filters"`
	Rows      []models.ProcessedUserRow `json:"rows"`
	Unrated   []int                     `json:"unrated"`
	Ping      bool                      `json:"ping,omitempty"` // health check, no computa nada
}

// RecResponse es la lista rankeada de un usuario, o su error.
type RecResponse struct {
	Username string                      `json:"username"`
	Items    []models.RecommendationItem `json:"items"`
	Error    string                      `json:"error,omitempty"`
	ErrKind  string                      `json:"errKind,omitempty"`
}

// ErrorKind clasifica un error del pipeline para el wire.
func ErrorKind(err error) string {
	var fe *recommender.FilterError
	var pe *recommender.UserProfileError
	switch {
	case errors.As(err, &fe):
		return ErrKindFilter
	case errors.As(err, &pe):
		return ErrKindProfile
	default:
		return ErrKindOther
	}
}

// KindToError reconstruye el error tipado del otro lado del wire, para que
// el coordinador pueda seguir haciendo errors.As como si el pipeline
// hubiera corrido in-process.
func KindToError(kind, msg, username string) error {
	switch kind {
	case ErrKindFilter:
		return &recommender.FilterError{Msg: msg}
	case ErrKindProfile:
		return &recommender.UserProfileError{Username: username, Reason: msg}
	default:
		return fmt.Errorf("%s", msg)
	}
}
