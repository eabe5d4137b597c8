package db

import (
	"context"

	"rrcapi/models"
)

const weaponColumns = "id, name, type, owner, notes, created_at"

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWeapon(row rowScanner) (models.Weapon, error) {
	var (
		w         models.Weapon
		createdAt Timestamp
	)
	if err := row.Scan(&w.ID, &w.Name, &w.Type, &w.Owner, &w.Notes, &createdAt); err != nil {
		return models.Weapon{}, err
	}
	w.CreatedAt = createdAt.Time
	return w, nil
}

func (s *Store) ListWeapons(ctx context.Context) ([]models.Weapon, error) {
	rows, err := s.query(ctx, "list", "weapons", "SELECT "+weaponColumns+" FROM weapons ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	weapons := []models.Weapon{}
	for rows.Next() {
		w, err := scanWeapon(rows)
		if err != nil {
			return nil, &QueryError{Op: "scan", Table: "weapons", Err: err}
		}
		weapons = append(weapons, w)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "list", Table: "weapons", Err: err}
	}
	return weapons, nil
}

// CreateWeapon inserts a weapon and returns it with the id and timestamp the
// store assigned. Nil optional fields are stored as NULL.
func (s *Store) CreateWeapon(ctx context.Context, name string, weaponType, owner, notes *string) (models.Weapon, error) {
	row := s.queryRow(ctx, `
	INSERT INTO weapons (name, type, owner, notes)
	VALUES ($1, $2, $3, $4)
	RETURNING `+weaponColumns, name, weaponType, owner, notes)
	w, err := scanWeapon(row)
	if err != nil {
		return models.Weapon{}, &QueryError{Op: "insert", Table: "weapons", Err: err}
	}
	return w, nil
}

func (s *Store) DeleteWeapon(ctx context.Context, id int64) error {
	_, err := s.exec(ctx, "delete", "weapons", "DELETE FROM weapons WHERE id = $1", id)
	return err
}
