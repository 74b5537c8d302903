package memory

import (
	"sort"
	"strings"
	"time"

	"github.com/acoves/despensa-api/internal/domain/entity"
)

type alimentoRepo struct {
	s *Store
}

func (r *alimentoRepo) Create(a *entity.Alimento) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.alimentos[a.ID] = *a
	return nil
}

func (r *alimentoRepo) GetByID(id string) (*entity.Alimento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	a, ok := r.s.alimentos[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *alimentoRepo) Update(a *entity.Alimento) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.alimentos[a.ID] = *a
	return nil
}

func (r *alimentoRepo) List(nombre string, limit, offset int) ([]*entity.Alimento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	filtro := strings.ToLower(nombre)
	var out []*entity.Alimento
	for _, a := range r.s.alimentos {
		if filtro != "" && !strings.Contains(strings.ToLower(a.Nombre), filtro) {
			continue
		}
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return paginar(out, limit, offset), nil
}

func (r *alimentoRepo) ListCaducanEntre(desde, hasta time.Time, limit, offset int) ([]*entity.Alimento, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Alimento
	for _, a := range r.s.alimentos {
		if a.FechaCaducidad.Before(desde) || a.FechaCaducidad.After(hasta) {
			continue
		}
		a := a
		out = append(out, &a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaCaducidad.Before(out[j].FechaCaducidad) })
	return paginar(out, limit, offset), nil
}

// Delete elimina el alimento y, en cascada, sus existencias.
func (r *alimentoRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.alimentos, id)
	for eid, e := range r.s.existencias {
		if e.IDAlimento == id {
			delete(r.s.existencias, eid)
		}
	}
	return nil
}
