// Marquee - Streaming Catalog Recommendations and Viewing Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tomtom215/marquee/internal/models"
)

// RecordView appends a view event and increments the item's views_count in
// one transaction. It returns ErrNotFound when the item is missing or
// soft-deleted, in which case nothing is written.
func (db *DB) RecordView(ctx context.Context, ev *models.ViewEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.New().String()
	}
	if ev.ViewedAt.IsZero() {
		ev.ViewedAt = time.Now().UTC()
	}
	if ev.DeviceType == "" {
		ev.DeviceType = models.DefaultDeviceType
	}

	err := db.withTx(ctx, "insert", "view_events", func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE content SET views_count = views_count + 1
			 WHERE id = ? AND content_type = ? AND deleted_at IS NULL`,
			ev.ContentID, string(ev.ContentType))
		if err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return ErrNotFound
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO view_events (id, content_id, content_type, device_type, device_name, ip_address, viewed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			ev.ID, ev.ContentID, string(ev.ContentType), ev.DeviceType,
			nullString(ev.DeviceName), nullString(ev.IPAddress), ev.ViewedAt.UTC())
		return err
	})
	if err != nil {
		return fmt.Errorf("record view of %s: %w", ev.ContentID, err)
	}
	return nil
}

// CountByDevice groups the views of one item since the given instant
// (inclusive) by device type. Rows are ordered by count descending, then
// device type ascending.
func (db *DB) CountByDevice(ctx context.Context, contentID string, contentType models.ContentType, since time.Time) ([]models.DeviceCount, error) {
	counts := []models.DeviceCount{}

	err := db.run(ctx, "aggregate", "view_events", func(ctx context.Context) error {
		rows, err := db.conn.QueryContext(ctx, `
			SELECT device_type, COUNT(*) AS n
			FROM view_events
			WHERE content_id = ? AND content_type = ? AND viewed_at >= ?
			GROUP BY device_type
			ORDER BY n DESC, device_type ASC`,
			contentID, string(contentType), since.UTC())
		if err != nil {
			return err
		}
		defer closeWithLog(rows, "rows")

		for rows.Next() {
			var dc models.DeviceCount
			if err := rows.Scan(&dc.DeviceType, &dc.Count); err != nil {
				return err
			}
			counts = append(counts, dc)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("count views by device: %w", err)
	}
	return counts, nil
}

// CountByContent groups the views of one content type since the given
// instant by content id, most viewed first. Ties are broken by content id.
func (db *DB) CountByContent(ctx context.Context, contentType models.ContentType, since time.Time, limit int) ([]models.ContentCount, error) {
	counts := []models.ContentCount{}
	if limit <= 0 {
		return counts, nil
	}

	err := db.run(ctx, "aggregate", "view_events", func(ctx context.Context) error {
		rows, err := db.conn.QueryContext(ctx, `
			SELECT content_id, COUNT(*) AS n
			FROM view_events
			WHERE content_type = ? AND viewed_at >= ?
			GROUP BY content_id
			ORDER BY n DESC, content_id ASC
			LIMIT ?`,
			string(contentType), since.UTC(), limit)
		if err != nil {
			return err
		}
		defer closeWithLog(rows, "rows")

		for rows.Next() {
			var cc models.ContentCount
			if err := rows.Scan(&cc.ContentID, &cc.Count); err != nil {
				return err
			}
			counts = append(counts, cc)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("count views by content: %w", err)
	}
	return counts, nil
}

// CountViews returns the number of view events since the given instant.
// A zero since counts every event.
func (db *DB) CountViews(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := db.run(ctx, "count", "view_events", func(ctx context.Context) error {
		if since.IsZero() {
			return db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM view_events`).Scan(&n)
		}
		return db.conn.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM view_events WHERE viewed_at >= ?`, since.UTC()).Scan(&n)
	})
	if err != nil {
		return 0, fmt.Errorf("count views: %w", err)
	}
	return n, nil
}
