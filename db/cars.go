package db

import (
	"context"

	"rrcapi/models"
)

const carColumns = "id, make, model, plate, owner, notes, img, created_at"

func scanCar(row rowScanner) (models.Car, error) {
	var (
		c         models.Car
		createdAt Timestamp
	)
	if err := row.Scan(&c.ID, &c.Make, &c.Model, &c.Plate, &c.Owner, &c.Notes, &c.Img, &createdAt); err != nil {
		return models.Car{}, err
	}
	c.CreatedAt = createdAt.Time
	return c, nil
}

func (s *Store) ListCars(ctx context.Context) ([]models.Car, error) {
	rows, err := s.query(ctx, "list", "cars", "SELECT "+carColumns+" FROM cars ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cars := []models.Car{}
	for rows.Next() {
		c, err := scanCar(rows)
		if err != nil {
			return nil, &QueryError{Op: "scan", Table: "cars", Err: err}
		}
		cars = append(cars, c)
	}
	if err := rows.Err(); err != nil {
		return nil, &QueryError{Op: "list", Table: "cars", Err: err}
	}
	return cars, nil
}

// NewCar holds the caller-supplied columns of a car. Only Make is required.
type NewCar struct {
	Make  string
	Model *string
	Plate *string
	Owner *string
	Notes *string
	Img   *string
}

func (s *Store) CreateCar(ctx context.Context, in NewCar) (models.Car, error) {
	row := s.queryRow(ctx, `
	INSERT INTO cars (make, model, plate, owner, notes, img)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING `+carColumns, in.Make, in.Model, in.Plate, in.Owner, in.Notes, in.Img)
	c, err := scanCar(row)
	if err != nil {
		return models.Car{}, &QueryError{Op: "insert", Table: "cars", Err: err}
	}
	return c, nil
}

func (s *Store) DeleteCar(ctx context.Context, id int64) error {
	_, err := s.exec(ctx, "delete", "cars", "DELETE FROM cars WHERE id = $1", id)
	return err
}
