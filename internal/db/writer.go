package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Apps-1-2-3/Traffic-Prediction-System/internal/models"
)

// InsertBatch writes all records under a fresh batch id in one transaction
// and returns the id. Either the whole batch lands or none of it does.
func (db *DB) InsertBatch(ctx context.Context, createdAt time.Time, records []models.DatasetRecord) (string, error) {
	batchID := uuid.New().String()

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO export_batches (batch_id, created_at_utc, record_count) VALUES (?, ?, ?)",
		batchID, createdAt.UTC().Format(time.RFC3339), len(records),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create batch: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO dataset_records (
			batch_id, timestamp, intersection_id, intersection_name,
			lat, lng, road_type, area_type, time_of_day, weather, day_type,
			congestion_level, predicted_speed, volume, wait_time
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return "", fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		_, err := stmt.ExecContext(ctx,
			batchID, rec.Timestamp, rec.IntersectionID, rec.IntersectionName,
			rec.Lat, rec.Lng, rec.RoadType, rec.AreaType, rec.TimeOfDay,
			rec.Weather, rec.DayType, rec.CongestionLevel, rec.PredictedSpeed,
			rec.Volume, rec.WaitTime,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit batch: %w", err)
	}

	return batchID, nil
}

// CountRecords returns the number of stored records for a batch.
func (db *DB) CountRecords(ctx context.Context, batchID string) (int, error) {
	var count int
	err := db.conn.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM dataset_records WHERE batch_id = ?", batchID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}
