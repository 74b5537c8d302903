package memory

import (
	"sort"
	"strings"
	"time"

	"github.com/acoves/despensa-api/internal/domain/entity"
)

type existenciaRepo struct {
	s *Store
}

func (r *existenciaRepo) Create(e *entity.Existencia) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.existencias[e.ID] = *e
	return nil
}

func (r *existenciaRepo) GetByID(id string) (*entity.Existencia, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	e, ok := r.s.existencias[id]
	if !ok {
		return nil, nil
	}
	return &e, nil
}

func (r *existenciaRepo) Update(e *entity.Existencia) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.existencias[e.ID] = *e
	return nil
}

func (r *existenciaRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.existencias, id)
	return nil
}

// detalle compone el modelo de lectura con los datos del alimento y la
// ubicación, si todavía existen.
func (r *existenciaRepo) detalle(e entity.Existencia) *entity.ExistenciaDetalle {
	d := &entity.ExistenciaDetalle{Existencia: e}
	if a, ok := r.s.alimentos[e.IDAlimento]; ok {
		d.NombreAlimento = a.Nombre
		d.FechaCaducidad = a.FechaCaducidad
	}
	if u, ok := r.s.ubicaciones[e.IDUbicacion]; ok {
		d.DescripcionUbicacion = u.Descripcion
		d.TipoUbicacion = u.TipoUbicacion
	}
	return d
}

func (r *existenciaRepo) List(idAlimento, idUbicacion string, limit, offset int) ([]*entity.ExistenciaDetalle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.ExistenciaDetalle
	for _, e := range r.s.existencias {
		if idAlimento != "" && e.IDAlimento != idAlimento {
			continue
		}
		if idUbicacion != "" && e.IDUbicacion != idUbicacion {
			continue
		}
		out = append(out, r.detalle(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaEntrada.Before(out[j].FechaEntrada) })
	return paginar(out, limit, offset), nil
}

func (r *existenciaRepo) ListCaducanEntre(desde, hasta time.Time, limit int) ([]*entity.ExistenciaDetalle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.ExistenciaDetalle
	for _, e := range r.s.existencias {
		a, ok := r.s.alimentos[e.IDAlimento]
		if !ok || a.FechaCaducidad.Before(desde) || a.FechaCaducidad.After(hasta) {
			continue
		}
		out = append(out, r.detalle(e))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TipoUbicacion < out[j].TipoUbicacion })
	return paginar(out, limit, 0), nil
}

func (r *existenciaRepo) FindOldest(idAlimento, idUbicacion string) (*entity.Existencia, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var oldest *entity.Existencia
	for _, e := range r.s.existencias {
		if e.IDAlimento != idAlimento || e.IDUbicacion != idUbicacion {
			continue
		}
		e := e
		if oldest == nil || e.FechaEntrada.Before(oldest.FechaEntrada) {
			oldest = &e
		}
	}
	return oldest, nil
}

func (r *existenciaRepo) SumCantidadByUbicacion(idUbicacion string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var total int64
	for _, e := range r.s.existencias {
		if e.IDUbicacion == idUbicacion {
			total += e.Cantidad
		}
	}
	return total, nil
}

func (r *existenciaRepo) SumCantidadByTipoUbicacion(tipo string) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var total int64
	for _, e := range r.s.existencias {
		u, ok := r.s.ubicaciones[e.IDUbicacion]
		if ok && strings.EqualFold(u.TipoUbicacion, tipo) {
			total += e.Cantidad
		}
	}
	return total, nil
}
