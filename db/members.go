package db

import (
	"context"
	"database/sql"

	"rrcapi/models"
)

func (s *Store) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.query(ctx, "list", "members",
		"SELECT id, name, role, admin, added_at FROM members ORDER BY added_at DESC, id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var (
			m       models.Member
			role    sql.NullString
			admin   sql.NullBool
			addedAt Timestamp
		)
		if err := rows.Scan(&m.ID, &m.Name, &role, &admin, &addedAt); err != nil {
			return nil, &QueryError{Op: "scan", Table: "members", Err: err}
		}
		m.Role = role.String
		m.Admin = admin.Bool
		m.AddedAt = addedAt.Time
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "list", Table: "members", Err: err}
	}
	return members, nil
}

// UpsertMember inserts the member or, when the id exists, overwrites name,
// role and admin. added_at keeps its original value.
func (s *Store) UpsertMember(ctx context.Context, id, name, role string, admin bool) error {
	_, err := s.exec(ctx, "upsert", "members", `
	INSERT INTO members (id, name, role, admin)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (id) DO UPDATE SET name = excluded.name, role = excluded.role, admin = excluded.admin`,
		id, name, role, admin)
	return err
}

// DeleteMember removes the member if present. A missing id is not an error.
func (s *Store) DeleteMember(ctx context.Context, id string) error {
	_, err := s.exec(ctx, "delete", "members", "DELETE FROM members WHERE id = $1", id)
	return err
}

func (s *Store) SetMemberAdmin(ctx context.Context, id string, admin bool) error {
	_, err := s.exec(ctx, "update", "members", "UPDATE members SET admin = $1 WHERE id = $2", admin, id)
	return err
}
