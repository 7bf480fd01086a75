package entity

import "time"

// RefreshToken es un token opaco de larga vida persistido para poder revocarlo.
// Se elimina al hacer logout; la expiración se verifica al usarlo (GC pasivo).
type RefreshToken struct {
	Token     string // opaco, clave primaria
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired indica si el token ya no es canjeable.
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
