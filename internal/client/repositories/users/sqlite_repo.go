package users

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/randomusers/internal/client/models"
	"github.com/dmitrijs2005/randomusers/internal/dbx"
)

// SQLiteRepository implements Repository on the users table.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

const upsertQuery = `INSERT INTO users (id, title, first_name, last_name, gender, email, phone, cell,
		picture_large, picture_medium, country, state, city, street_name, street_number)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		title = excluded.title,
		first_name = excluded.first_name,
		last_name = excluded.last_name,
		gender = excluded.gender,
		email = excluded.email,
		phone = excluded.phone,
		cell = excluded.cell,
		picture_large = excluded.picture_large,
		picture_medium = excluded.picture_medium,
		country = excluded.country,
		state = excluded.state,
		city = excluded.city,
		street_name = excluded.street_name,
		street_number = excluded.street_number`

func upsert(ctx context.Context, db dbx.DBTX, u models.User) error {
	u = withID(u)
	_, err := db.ExecContext(ctx, upsertQuery,
		u.ID, u.Name.Title, u.Name.First, u.Name.Last, u.Gender, u.Email, u.Phone, u.Cell,
		u.Picture.Large, u.Picture.Medium,
		u.Location.Country, u.Location.State, u.Location.City,
		u.Location.Street.Name, u.Location.Street.Number)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) AddOrReplace(ctx context.Context, u models.User) error {
	return upsert(ctx, r.db, u)
}

func (r *SQLiteRepository) AddOrReplaceAll(ctx context.Context, users []models.User) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, u := range users {
			if err := upsert(ctx, tx, u); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) ReplaceAll(ctx context.Context, users []models.User) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
			return fmt.Errorf("failed to clear users: %w", err)
		}
		for _, u := range users {
			if err := upsert(ctx, tx, u); err != nil {
				return err
			}
		}
		return nil
	})
}

// GetAll reads every user ordered by rowid. Upserts keep the rowid of the
// row they replace, so order reflects first insertion.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	query := `SELECT id, title, first_name, last_name, gender, email, phone, cell,
		picture_large, picture_medium, country, state, city, street_name, street_number
		FROM users ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	result := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name.Title, &u.Name.First, &u.Name.Last, &u.Gender,
			&u.Email, &u.Phone, &u.Cell, &u.Picture.Large, &u.Picture.Medium,
			&u.Location.Country, &u.Location.State, &u.Location.City,
			&u.Location.Street.Name, &u.Location.Street.Number); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
