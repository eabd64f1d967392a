package pkg

// Role identifiers as seeded in the roles table.  The aggregate queries
// rely on these fixed ids, so they must stay in sync with schema.sql.
const (
	RoleAdministrador = 1
	RoleDoctor        = 2
	RoleFarmaceutico  = 3
	RolePaciente      = 4
)

// AggregateSnapshot holds the system-wide counts used to ground one
// assistant query.  It is fetched fresh on every query and never cached.
// All fields are populated together or not at all; a partially filled
// snapshot is never handed to callers.
type AggregateSnapshot struct {
	TotalUsers     int `json:"total_users"`
	Administrators int `json:"administrators"`
	Doctors        int `json:"doctors"`
	Pharmacists    int `json:"pharmacists"`
	Patients       int `json:"patients"`
	InventoryItems int `json:"inventory_items"`
	StockUnits     int `json:"stock_units"`
}

// DashboardStats backs the pharmacist dashboard counters.
type DashboardStats struct {
	MedicinesCount int `json:"medicines_count"`
	SuppliesCount  int `json:"supplies_count"`
	StockUnits     int `json:"stock_units"`
	LowStockCount  int `json:"low_stock_count"`
}

// AssistantRequest is the JSON body accepted by the assistant endpoint.
type AssistantRequest struct {
	Message string `json:"message"`
}

// AssistantResult is the caller-facing outcome of one assistant query.
// OK=false means the query itself failed (missing credential, provider
// failure).  A provider safety decline is still OK=true with an apologetic
// response, so callers must read OK rather than infer success from the text.
type AssistantResult struct {
	OK       bool   `json:"ok"`
	Response string `json:"response"`
}
