package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"farma-vida/internal/metrics"
	"farma-vida/pkg"
)

const roleCountQuery = `SELECT COUNT(*) FROM perfiles WHERE id_de_rol = $1`

// StatsRepository is the read-only aggregate gateway.  It computes the
// counts that ground assistant answers and the pharmacist dashboard.
type StatsRepository struct {
	DB                *sql.DB
	LowStockThreshold int
}

// NewStatsRepository constructs a StatsRepository from an existing sql.DB.
// The caller is responsible for managing the DB connection lifecycle.
func NewStatsRepository(db *sql.DB, lowStockThreshold int) *StatsRepository {
	return &StatsRepository{DB: db, LowStockThreshold: lowStockThreshold}
}

// FetchSnapshot reads every aggregate count inside one read-only transaction
// so the per-role counts and the total come from the same database snapshot.
// If any sub-query fails the whole fetch fails; callers never see a
// partially populated snapshot, since grounding a model prompt on zeroed
// counts would assert wrong numbers to the end user.
func (r *StatsRepository) FetchSnapshot(ctx context.Context) (*pkg.AggregateSnapshot, error) {
	start := time.Now()

	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("begin snapshot tx: %w", err)
	}
	defer tx.Rollback()

	var snap pkg.AggregateSnapshot
	counts := []struct {
		dest  *int
		query string
		args  []interface{}
	}{
		{&snap.TotalUsers, `SELECT COUNT(*) FROM perfiles`, nil},
		{&snap.Administrators, roleCountQuery, []interface{}{pkg.RoleAdministrador}},
		{&snap.Doctors, roleCountQuery, []interface{}{pkg.RoleDoctor}},
		{&snap.Pharmacists, roleCountQuery, []interface{}{pkg.RoleFarmaceutico}},
		{&snap.Patients, roleCountQuery, []interface{}{pkg.RolePaciente}},
		{&snap.InventoryItems, `SELECT COUNT(*) FROM inventario`, nil},
		{&snap.StockUnits, `SELECT COALESCE(SUM(stock), 0) FROM inventario`, nil},
	}
	for _, c := range counts {
		if err := tx.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("aggregate count failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit snapshot tx: %w", err)
	}
	metrics.SnapshotFetchDuration.Observe(time.Since(start).Seconds())
	return &snap, nil
}

// DashboardStats returns the pharmacist dashboard counters: distinct
// medicines, supplies, total stock units and how many items sit below the
// configured low-stock threshold.
func (r *StatsRepository) DashboardStats(ctx context.Context) (*pkg.DashboardStats, error) {
	var stats pkg.DashboardStats
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventario`,
	).Scan(&stats.MedicinesCount); err != nil {
		return nil, fmt.Errorf("count medicines: %w", err)
	}
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM suministros`,
	).Scan(&stats.SuppliesCount); err != nil {
		return nil, fmt.Errorf("count supplies: %w", err)
	}
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(stock), 0) FROM inventario`,
	).Scan(&stats.StockUnits); err != nil {
		return nil, fmt.Errorf("sum stock: %w", err)
	}
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventario WHERE stock < $1`, r.LowStockThreshold,
	).Scan(&stats.LowStockCount); err != nil {
		return nil, fmt.Errorf("count low stock: %w", err)
	}
	return &stats, nil
}
