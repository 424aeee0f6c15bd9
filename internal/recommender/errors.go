// Package recommender implementa el núcleo de recomendaciones: features,
// modelo por usuario, modelo general, filtros del pool de candidatos,
// scoring, merge multi-usuario y compatibilidad de perfiles. Todo opera
// sobre datos ya cargados; el fetch vive en repository/service.
package recommender

import "fmt"

// Taxonomía cerrada de errores del núcleo. Los handlers hacen errors.As
// contra estos tipos; ninguno se traga en el camino.

// UserProfileError: el historial del usuario no sirve (muy corto o el fetch
// falló). No se reintenta.
type UserProfileError struct {
	Username string
	Reason   string
}

func (e *UserProfileError) Error() string {
	return fmt.Sprintf("perfil de %s insuficiente: %s", e.Username, e.Reason)
}

// FilterError: los filtros dejaron el pool de candidatos vacío. Es
// corregible por el usuario (aflojar filtros), no una falla del sistema.
type FilterError struct {
	Msg string
}

func (e *FilterError) Error() string { return e.Msg }

// WatchlistEmptyError: la intersección watchlist ∩ catálogo quedó vacía.
type WatchlistEmptyError struct {
	Username string
}

func (e *WatchlistEmptyError) Error() string {
	return fmt.Sprintf("ninguna película de la watchlist de %s está en el catálogo", e.Username)
}

// WatchlistOverlapError: no hay películas en común entre las watchlists.
type WatchlistOverlapError struct{}

func (e *WatchlistOverlapError) Error() string {
	return "no hay películas en común entre las watchlists"
}

// PredictionListError: ninguna de las urls pedidas está en el catálogo.
type PredictionListError struct{}

func (e *PredictionListError) Error() string {
	return "ninguno de los títulos pedidos está en el catálogo"
}

// MissingFeatureError: una fila llegó sin una columna del contrato de
// features (drift de esquema). Violación interna, no apta para el caller.
type MissingFeatureError struct {
	Field string
	URL   string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("fila %s sin feature %s", e.URL, e.Field)
}

// ModelUnavailableError: el artefacto del modelo general no se pudo cargar.
// Nunca se degrada en silencio a otro tipo de modelo.
type ModelUnavailableError struct {
	Path string
	Err  error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("modelo general no disponible en %s: %v", e.Path, e.Err)
}

func (e *ModelUnavailableError) Unwrap() error { return e.Err }
