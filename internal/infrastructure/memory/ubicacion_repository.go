package memory

import (
	"sort"
	"strings"

	"github.com/acoves/despensa-api/internal/domain/entity"
)

type ubicacionRepo struct {
	s *Store
}

func (r *ubicacionRepo) Create(u *entity.Ubicacion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.ubicaciones[u.ID] = *u
	return nil
}

func (r *ubicacionRepo) GetByID(id string) (*entity.Ubicacion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.ubicaciones[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *ubicacionRepo) Update(u *entity.Ubicacion) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.ubicaciones[u.ID] = *u
	return nil
}

func (r *ubicacionRepo) List(tipo string, limit, offset int) ([]*entity.Ubicacion, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	filtro := strings.ToLower(tipo)
	var out []*entity.Ubicacion
	for _, u := range r.s.ubicaciones {
		if filtro != "" && !strings.Contains(strings.ToLower(u.TipoUbicacion), filtro) {
			continue
		}
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Descripcion < out[j].Descripcion })
	return paginar(out, limit, offset), nil
}

func (r *ubicacionRepo) SumCapacidadByTipo(tipo string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	filtro := strings.ToLower(tipo)
	var total int64
	for _, u := range r.s.ubicaciones {
		if strings.Contains(strings.ToLower(u.TipoUbicacion), filtro) {
			total += u.Capacidad
		}
	}
	return total, nil
}

// Delete elimina la ubicación y, en cascada, sus existencias.
func (r *ubicacionRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.ubicaciones, id)
	for eid, e := range r.s.existencias {
		if e.IDUbicacion == id {
			delete(r.s.existencias, eid)
		}
	}
	return nil
}
