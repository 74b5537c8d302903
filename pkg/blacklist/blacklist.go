package blacklist

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Frecuencia de purga de entradas expiradas.
const cleanupInterval = 5 * time.Minute

// Blacklist guarda los tokens revocados (logout) hasta su expiración natural.
// Cada entrada lleva un TTL igual a la vida restante del token, de modo que
// el conjunto no crece sin límite: un token expirado ya no pasa la
// verificación de firma y su entrada se purga sola.
type Blacklist struct {
	c *cache.Cache
}

// New crea una lista negra vacía.
func New() *Blacklist {
	return &Blacklist{c: cache.New(cache.NoExpiration, cleanupInterval)}
}

// Revoke añade un token con el TTL indicado. Con ttl <= 0 no se guarda nada:
// el token ya está expirado y no puede volver a usarse.
func (b *Blacklist) Revoke(token string, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	b.c.Set(token, struct{}{}, ttl)
}

// IsRevoked indica si un token está en la lista negra.
func (b *Blacklist) IsRevoked(token string) bool {
	_, found := b.c.Get(token)
	return found
}

// Len devuelve el número de tokens actualmente revocados (incluye entradas
// expiradas aún no purgadas).
func (b *Blacklist) Len() int {
	return b.c.ItemCount()
}
