package assistant

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farma-vida/pkg"
)

func testSnapshot() *pkg.AggregateSnapshot {
	return &pkg.AggregateSnapshot{
		TotalUsers:     38,
		Administrators: 2,
		Doctors:        4,
		Pharmacists:    4,
		Patients:       28,
		InventoryItems: 85,
		StockUnits:     12500,
	}
}

func TestBuildContext_UserRoleStats(t *testing.T) {
	snap := testSnapshot()
	ctx, directive := BuildContext(IntentUserRoleStats, snap)

	require.NotNil(t, ctx)
	// Every number in the context must match the snapshot verbatim.
	for _, n := range []int{snap.TotalUsers, snap.Administrators, snap.Doctors, snap.Pharmacists, snap.Patients} {
		assert.Contains(t, *ctx, fmt.Sprintf("%d", n))
	}
	assert.Contains(t, *ctx, "38")
	assert.Contains(t, *ctx, "28")
	assert.Contains(t, directive, "exclusivamente")
}

func TestBuildContext_UserRoleStats_ZeroCountsStillEnumerated(t *testing.T) {
	ctx, _ := BuildContext(IntentUserRoleStats, &pkg.AggregateSnapshot{})

	require.NotNil(t, ctx)
	assert.Contains(t, *ctx, "Administradores: 0")
	assert.Contains(t, *ctx, "Doctores: 0")
	assert.Contains(t, *ctx, "Farmacéuticos: 0")
	assert.Contains(t, *ctx, "Pacientes: 0")
}

func TestBuildContext_InventoryStats(t *testing.T) {
	ctx, directive := BuildContext(IntentInventoryStats, testSnapshot())

	require.NotNil(t, ctx)
	assert.Contains(t, *ctx, "85")
	assert.Contains(t, *ctx, "12500")
	assert.Contains(t, directive, "exclusivamente")
}

func TestBuildContext_PersonalData_RefusalIsPolicyBased(t *testing.T) {
	ctx, directive := BuildContext(IntentPersonalData, testSnapshot())

	assert.Nil(t, ctx)
	lower := strings.ToLower(directive)
	assert.Contains(t, lower, "privacidad")
	// The refusal reason must never hint at data existence.
	assert.NotContains(t, lower, "no existe")
	assert.NotContains(t, lower, "not found")
	assert.NotContains(t, lower, "no se encontr")
}

func TestBuildContext_General(t *testing.T) {
	ctx, directive := BuildContext(IntentGeneral, nil)

	assert.Nil(t, ctx)
	assert.Contains(t, directive, "sin inventar cifras")
	assert.Contains(t, directive, "consejos médicos")
}

func TestBuildContext_GatewayFailure(t *testing.T) {
	for _, intent := range []Intent{IntentUserRoleStats, IntentInventoryStats} {
		ctx, directive := BuildContext(intent, nil)

		assert.Nil(t, ctx, intent.String())
		assert.Contains(t, directive, "problema temporal", intent.String())
		assert.Contains(t, directive, "No inventes", intent.String())
	}
}
