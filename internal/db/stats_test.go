package db

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farma-vida/pkg"
)

func countRow(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func expectSnapshotQueries(mock sqlmock.Sqlmock, snap pkg.AggregateSnapshot) {
	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM perfiles`)).
		WillReturnRows(countRow(snap.TotalUsers))
	mock.ExpectQuery(regexp.QuoteMeta(roleCountQuery)).
		WithArgs(pkg.RoleAdministrador).WillReturnRows(countRow(snap.Administrators))
	mock.ExpectQuery(regexp.QuoteMeta(roleCountQuery)).
		WithArgs(pkg.RoleDoctor).WillReturnRows(countRow(snap.Doctors))
	mock.ExpectQuery(regexp.QuoteMeta(roleCountQuery)).
		WithArgs(pkg.RoleFarmaceutico).WillReturnRows(countRow(snap.Pharmacists))
	mock.ExpectQuery(regexp.QuoteMeta(roleCountQuery)).
		WithArgs(pkg.RolePaciente).WillReturnRows(countRow(snap.Patients))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM inventario`)).
		WillReturnRows(countRow(snap.InventoryItems))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(stock), 0) FROM inventario`)).
		WillReturnRows(countRow(snap.StockUnits))
	mock.ExpectCommit()
}

func TestFetchSnapshot(t *testing.T) {
	dbConn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer dbConn.Close()

	want := pkg.AggregateSnapshot{
		TotalUsers:     38,
		Administrators: 2,
		Doctors:        4,
		Pharmacists:    4,
		Patients:       28,
		InventoryItems: 85,
		StockUnits:     12500,
	}
	expectSnapshotQueries(mock, want)

	repo := NewStatsRepository(dbConn, 10)
	snap, err := repo.FetchSnapshot(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &want, snap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchSnapshot_RoleSumMatchesTotal(t *testing.T) {
	dbConn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer dbConn.Close()

	want := pkg.AggregateSnapshot{
		TotalUsers:     38,
		Administrators: 2,
		Doctors:        4,
		Pharmacists:    4,
		Patients:       28,
	}
	expectSnapshotQueries(mock, want)

	repo := NewStatsRepository(dbConn, 10)
	snap, err := repo.FetchSnapshot(context.Background())
	require.NoError(t, err)

	// Not enforced by the gateway, but worth watching: source data can
	// drift if rows are written outside the application.
	sum := snap.Administrators + snap.Doctors + snap.Pharmacists + snap.Patients
	assert.Equal(t, snap.TotalUsers, sum)
}

func TestFetchSnapshot_SubQueryFailureFailsWhole(t *testing.T) {
	dbConn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer dbConn.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM perfiles`)).
		WillReturnRows(countRow(38))
	mock.ExpectQuery(regexp.QuoteMeta(roleCountQuery)).
		WithArgs(pkg.RoleAdministrador).
		WillReturnError(errors.New("relation does not exist"))
	mock.ExpectRollback()

	repo := NewStatsRepository(dbConn, 10)
	snap, err := repo.FetchSnapshot(context.Background())

	// No partial snapshot may ever escape.
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFetchSnapshot_BeginFailure(t *testing.T) {
	dbConn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer dbConn.Close()

	mock.ExpectBegin().WillReturnError(errors.New("too many connections"))

	repo := NewStatsRepository(dbConn, 10)
	snap, err := repo.FetchSnapshot(context.Background())

	require.Error(t, err)
	assert.Nil(t, snap)
}

func TestDashboardStats(t *testing.T) {
	dbConn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer dbConn.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM inventario`)).
		WillReturnRows(countRow(85))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM suministros`)).
		WillReturnRows(countRow(12))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COALESCE(SUM(stock), 0) FROM inventario`)).
		WillReturnRows(countRow(12500))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM inventario WHERE stock < $1`)).
		WithArgs(10).
		WillReturnRows(countRow(7))

	repo := NewStatsRepository(dbConn, 10)
	stats, err := repo.DashboardStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &pkg.DashboardStats{MedicinesCount: 85, SuppliesCount: 12, StockUnits: 12500, LowStockCount: 7}, stats)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDashboardStats_QueryFailure(t *testing.T) {
	dbConn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer dbConn.Close()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM inventario`)).
		WillReturnError(errors.New("connection reset"))

	repo := NewStatsRepository(dbConn, 10)
	stats, err := repo.DashboardStats(context.Background())

	require.Error(t, err)
	assert.Nil(t, stats)
}
