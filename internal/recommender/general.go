package recommender

import (
	"sync"
)

// GeneralModel envuelve el bosque pre-entrenado compartido por todos los
// usuarios. Se carga lazy del artefacto en disco y después es solo lectura;
// main construye una sola instancia y la inyecta donde haga falta.
type GeneralModel struct {
	path string

	mu     sync.Mutex
	forest *Forest
}

func NewGeneralModel(path string) *GeneralModel {
	return &GeneralModel{path: path}
}

// Load devuelve el bosque, cargándolo del disco la primera vez. Si el
// artefacto falta o está corrupto devuelve ModelUnavailableError: el caller
// no debe degradarse en silencio a otro modelo porque eso cambia la
// semántica de las recomendaciones sin que nadie lo note.
func (g *GeneralModel) Load() (Model, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.forest != nil {
		return g.forest, nil
	}

	f, err := LoadForest(g.path)
	if err != nil {
		return nil, &ModelUnavailableError{Path: g.path, Err: err}
	}
	g.forest = f
	return g.forest, nil
}

// Reload descarta el bosque en memoria; el próximo Load relee el artefacto.
// Lo usa el mantenimiento admin después de un retrain.
func (g *GeneralModel) Reload() {
	g.mu.Lock()
	g.forest = nil
	g.mu.Unlock()
}

// Status reporta el estado del artefacto para el panel de admin.
func (g *GeneralModel) Status() (path string, loaded bool, forest *Forest) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.path, g.forest != nil, g.forest
}

// Path del artefacto en disco.
func (g *GeneralModel) Path() string { return g.path }
