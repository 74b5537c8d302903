package memory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/acoves/despensa-api/internal/domain"
	"github.com/acoves/despensa-api/internal/domain/entity"
)

type usuarioRepo struct {
	s *Store
}

func (r *usuarioRepo) Create(u *entity.Usuario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existente := range r.s.usuarios {
		if strings.EqualFold(existente.Email, u.Email) {
			return fmt.Errorf("%w: email %s", domain.ErrDuplicate, u.Email)
		}
	}
	r.s.usuarios[u.ID] = *u
	return nil
}

func (r *usuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.usuarios[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *usuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.usuarios {
		if strings.EqualFold(u.Email, email) {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *usuarioRepo) Update(u *entity.Usuario) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.usuarios[u.ID] = *u
	return nil
}

func (r *usuarioRepo) List(nombre string, limit, offset int) ([]*entity.Usuario, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	filtro := strings.ToLower(nombre)
	var out []*entity.Usuario
	for _, u := range r.s.usuarios {
		if filtro != "" && !strings.Contains(strings.ToLower(u.Nombre), filtro) {
			continue
		}
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return paginar(out, limit, offset), nil
}

func (r *usuarioRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.usuarios, id)
	return nil
}
