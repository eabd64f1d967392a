package assistant

import (
	"fmt"

	"farma-vida/pkg"
)

// BuildContext turns a classified intent and a fresh snapshot into the
// grounding fact string and the directive for the model.  A nil context
// means the model answers without database facts.
//
// For intents that require counts, a nil snapshot signals that the gateway
// failed; the directive then asks the model to apologize for a temporary
// data-access problem instead of fabricating numbers.
func BuildContext(intent Intent, snap *pkg.AggregateSnapshot) (*string, string) {
	switch intent {
	case IntentUserRoleStats:
		if snap == nil {
			return nil, directiveDataUnavailable
		}
		// Every role is enumerated even at zero so the model cannot
		// interpret absence as unknown.
		ctx := fmt.Sprintf(
			"Usuarios registrados en el sistema: %d en total. Administradores: %d. Doctores: %d. Farmacéuticos: %d. Pacientes: %d.",
			snap.TotalUsers, snap.Administrators, snap.Doctors, snap.Pharmacists, snap.Patients,
		)
		return &ctx, directiveStats

	case IntentInventoryStats:
		if snap == nil {
			return nil, directiveDataUnavailable
		}
		ctx := fmt.Sprintf(
			"Inventario actual: %d medicamentos distintos y %d unidades en stock en total.",
			snap.InventoryItems, snap.StockUnits,
		)
		return &ctx, directiveStats

	case IntentPersonalData:
		return nil, directivePersonalData

	default:
		return nil, directiveGeneral
	}
}
