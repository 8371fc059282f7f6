package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"societyledger/internal/models"
)

// AddMember inserts a new member into the database.
func (s *SQLiteStore) AddMember(ctx context.Context, member *models.Member) error {
	var photo interface{} = nil
	if member.PhotoBase64 != "" {
		photo = member.PhotoBase64
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO members (id, name, flat_number, mobile, photo_base64, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		member.ID, member.Name, member.FlatNumber, member.Mobile, photo, member.CreatedAt,
	)
	if err != nil {
		return insertErr("members", err)
	}

	return nil
}

// ListMembers retrieves all members. Ordering is unspecified.
func (s *SQLiteStore) ListMembers(ctx context.Context) ([]*models.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, flat_number, mobile, photo_base64, created_at FROM members",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := []*models.Member{}
	for rows.Next() {
		member := &models.Member{}
		var photo sql.NullString

		if err := rows.Scan(&member.ID, &member.Name, &member.FlatNumber,
			&member.Mobile, &photo, &member.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}

		if photo.Valid {
			member.PhotoBase64 = photo.String
		}

		members = append(members, member)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}
