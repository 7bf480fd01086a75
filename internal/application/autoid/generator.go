package autoid

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
	"github.com/jhoicas/Produccion-api/internal/domain/repository"
)

// Prefijos por rol. super_admin no recibe autoId (no pertenece a un tenant).
const (
	PrefixEmployee   = "EMP"
	PrefixSupervisor = "SUP"
	PrefixAdmin      = "ADM"
)

// Generator produce identificadores legibles por tenant y rol: prefijo de rol,
// correlativo incremental y dos dígitos bajos de reloj como mitigación de
// colisiones bajo creación concurrente. La unicidad real la garantiza el
// índice único del store; quien crea el usuario reintenta ante 23505.
type Generator struct {
	users repository.UserRepository
	now   func() time.Time
}

// New construye el generador.
func New(users repository.UserRepository) *Generator {
	return &Generator{users: users, now: time.Now}
}

// Prefix devuelve el prefijo del rol; "" si el rol no lleva autoId.
func Prefix(role string) string {
	switch role {
	case entity.RoleEmployee:
		return PrefixEmployee
	case entity.RoleSupervisor:
		return PrefixSupervisor
	case entity.RoleFactoryAdmin:
		return PrefixAdmin
	default:
		return ""
	}
}

// Generate produce el siguiente autoId para el rol, restringido al tenant si
// tenantID no es vacío. Nunca falla: sin historial arranca el correlativo en 1,
// y un autoId previo no parseable también reinicia en 1.
func (g *Generator) Generate(role, tenantID string) string {
	prefix := Prefix(role)
	if prefix == "" {
		prefix = PrefixEmployee
	}
	next := 1
	if last, err := g.users.MaxAutoID(prefix, tenantID); err == nil && last != "" {
		if n := trailingNumber(strings.TrimPrefix(last, prefix)); n > 0 {
			// El run numérico incluye el sufijo de reloj del id anterior;
			// solo cuentan los dígitos del correlativo (todos menos los dos últimos).
			if n >= 100 {
				next = n/100 + 1
			} else {
				next = n + 1
			}
		}
	}
	suffix := g.now().UnixMilli() % 100
	return fmt.Sprintf("%s%04d%02d", prefix, next, suffix)
}

// trailingNumber parsea el run numérico final de s; 0 si no hay dígitos.
func trailingNumber(s string) int {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	if i == len(s) {
		return 0
	}
	n := 0
	for _, c := range s[i:] {
		n = n*10 + int(c-'0')
		if n > 1<<30 {
			return 0
		}
	}
	return n
}
