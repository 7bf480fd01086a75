package http_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	apphttp "github.com/jhoicas/Produccion-api/internal/interfaces/http"
)

// Los handlers no se invocan: solo se inspecciona la tabla de rutas, así que
// basta con dependencias vacías.
func routeSet(t *testing.T) map[string]bool {
	t.Helper()
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{JWTSecret: testJWTSecret})

	set := make(map[string]bool)
	for _, r := range app.GetRoutes() {
		set[r.Method+" "+r.Path] = true
	}
	return set
}

func TestRouter_VerbosDelCicloDeTareas(t *testing.T) {
	routes := routeSet(t)

	// El juicio del supervisor va por POST; el avance del empleado por PATCH.
	assert.True(t, routes[http.MethodPost+" /api/tasks/:id/confirm"])
	assert.True(t, routes[http.MethodPost+" /api/tasks/:id/reject"])
	assert.True(t, routes[http.MethodPatch+" /api/tasks/:id/complete"])
	assert.True(t, routes[http.MethodDelete+" /api/tasks/:id"])

	assert.False(t, routes[http.MethodPatch+" /api/tasks/:id/confirm"],
		"confirm no debe registrarse como PATCH")
	assert.False(t, routes[http.MethodPatch+" /api/tasks/:id/reject"],
		"reject no debe registrarse como PATCH")
}

func TestRouter_RutasPublicas(t *testing.T) {
	routes := routeSet(t)

	assert.True(t, routes[http.MethodPost+" /api/auth/login"])
	assert.True(t, routes[http.MethodPost+" /api/auth/refresh"])
	assert.True(t, routes[http.MethodPost+" /api/auth/logout"])
	assert.True(t, routes[http.MethodPost+" /api/tenants/signup"])
}
