package autoid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// fakeUsers responde MaxAutoID desde una tabla prefijo→último id y registra
// con qué tenant se consultó.
type fakeUsers struct {
	last       map[string]string
	seenTenant string
}

func (r *fakeUsers) Create(*entity.User) error                  { return nil }
func (r *fakeUsers) GetByID(string) (*entity.User, error)       { return nil, nil }
func (r *fakeUsers) GetByEmail(string) (*entity.User, error)    { return nil, nil }
func (r *fakeUsers) GetByAutoID(string) (*entity.User, error)   { return nil, nil }
func (r *fakeUsers) Update(*entity.User) error                  { return nil }
func (r *fakeUsers) ListByTenant(string, string, int, int) ([]*entity.User, int, error) {
	return nil, 0, nil
}
func (r *fakeUsers) MaxAutoID(prefix, tenantID string) (string, error) {
	r.seenTenant = tenantID
	return r.last[prefix], nil
}

func newGenerator(last map[string]string) (*Generator, *fakeUsers) {
	users := &fakeUsers{last: last}
	g := New(users)
	// Reloj fijo: el sufijo de dos dígitos queda determinista (…042 ms → 42).
	g.now = func() time.Time { return time.UnixMilli(1756641600042) }
	return g, users
}

func TestPrefix_PorRol(t *testing.T) {
	assert.Equal(t, "EMP", Prefix(entity.RoleEmployee))
	assert.Equal(t, "SUP", Prefix(entity.RoleSupervisor))
	assert.Equal(t, "ADM", Prefix(entity.RoleFactoryAdmin))
	assert.Empty(t, Prefix(entity.RoleSuperAdmin), "super_admin no lleva autoId")
}

func TestGenerate_SinHistorialArrancaEnUno(t *testing.T) {
	g, _ := newGenerator(nil)
	assert.Equal(t, "EMP000142", g.Generate(entity.RoleEmployee, "tenant-1"))
	assert.Equal(t, "SUP000142", g.Generate(entity.RoleSupervisor, "tenant-1"))
	assert.Equal(t, "ADM000142", g.Generate(entity.RoleFactoryAdmin, "tenant-1"))
}

func TestGenerate_IncrementaElCorrelativo(t *testing.T) {
	// El id previo termina en correlativo 7 + sufijo de reloj 93; el siguiente
	// correlativo es 8, con el sufijo del reloj actual.
	g, _ := newGenerator(map[string]string{"EMP": "EMP000793"})
	assert.Equal(t, "EMP000842", g.Generate(entity.RoleEmployee, "tenant-1"))
}

func TestGenerate_HistorialNoParseableReinicia(t *testing.T) {
	g, _ := newGenerator(map[string]string{"EMP": "EMP-legacy"})
	assert.Equal(t, "EMP000142", g.Generate(entity.RoleEmployee, "tenant-1"))
}

func TestGenerate_ConsultaRestringidaAlTenant(t *testing.T) {
	g, users := newGenerator(nil)
	g.Generate(entity.RoleEmployee, "tenant-9")
	assert.Equal(t, "tenant-9", users.seenTenant,
		"el correlativo se calcula dentro del tenant")
}

func TestGenerate_NuncaProduceVacio(t *testing.T) {
	g, _ := newGenerator(nil)
	id := g.Generate("rol-desconocido", "")
	require.NotEmpty(t, id)
	assert.Equal(t, "EMP000142", id, "rol sin prefijo cae al prefijo de empleado")
}
