package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTenant(t *testing.T) {
	valid := [][2]string{
		{TenantPending, TenantActive},
		{TenantPending, TenantRejected},
		{TenantActive, TenantFrozen},
		{TenantFrozen, TenantActive},
	}
	for _, tr := range valid {
		assert.True(t, CanTransitionTenant(tr[0], tr[1]), "%s -> %s debe ser válido", tr[0], tr[1])
	}

	invalid := [][2]string{
		{TenantRejected, TenantActive}, // rejected es terminal
		{TenantRejected, TenantPending},
		{TenantActive, TenantPending},
		{TenantActive, TenantRejected},
		{TenantFrozen, TenantRejected},
		{TenantPending, TenantFrozen},
		{TenantActive, TenantActive},
	}
	for _, tr := range invalid {
		assert.False(t, CanTransitionTenant(tr[0], tr[1]), "%s -> %s no debe ser válido", tr[0], tr[1])
	}
}

func TestNormalizeFactoryName(t *testing.T) {
	assert.Equal(t, "confecciones norte", NormalizeFactoryName("  CONFECCIONES   Norte "))
	assert.Equal(t, NormalizeFactoryName("Fábrica Sur"), NormalizeFactoryName("FÁBRICA  SUR"))
	assert.NotEqual(t, NormalizeFactoryName("Fabrica"), NormalizeFactoryName("Fábrica"),
		"la normalización no elimina acentos, solo canoniza la forma Unicode")
}

func TestTaskDisplayStatus(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	vencida := &Task{Status: TaskActive, Deadline: now.Add(-time.Minute)}
	assert.Equal(t, TaskOverdue, vencida.DisplayStatus(now))

	alDia := &Task{Status: TaskActive, Deadline: now.Add(time.Minute)}
	assert.Equal(t, TaskActive, alDia.DisplayStatus(now))

	// Solo active deriva a overdue; los demás estados se muestran tal cual.
	for _, status := range []string{TaskCompleted, TaskConfirmed, TaskRejected} {
		t2 := &Task{Status: status, Deadline: now.Add(-time.Hour)}
		assert.Equal(t, status, t2.DisplayStatus(now))
	}
}
