package catalog

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// LIST (CATALOG ORDER = position ASC)
// --------------------------------------------------
func (r *PostgresRepository) List(ctx context.Context) ([]Item, error) {
	rows, err := r.db.Query(ctx, `
		SELECT name, display_name, price, description
		FROM menu_items
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Item
	for rows.Next() {
		var item Item
		if err := rows.Scan(
			&item.Name,
			&item.DisplayName,
			&item.Price,
			&item.Description,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range items {
		keywords, err := r.listKeywords(ctx, items[i].Name)
		if err != nil {
			return nil, err
		}
		items[i].Keywords = keywords
	}

	return items, nil
}

func (r *PostgresRepository) listKeywords(ctx context.Context, name string) ([]string, error) {
	rows, err := r.db.Query(ctx, `
		SELECT keyword
		FROM menu_keywords
		WHERE item_name = $1
		ORDER BY position ASC
	`, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keywords = append(keywords, k)
	}
	return keywords, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, name string) (*Item, error) {
	item := &Item{}
	err := r.db.QueryRow(ctx, `
		SELECT name, display_name, price, description
		FROM menu_items
		WHERE name = $1
	`, name).Scan(&item.Name, &item.DisplayName, &item.Price, &item.Description)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	item.Keywords, err = r.listKeywords(ctx, name)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// --------------------------------------------------
// UPSERT (item + keyword list, atomic)
// --------------------------------------------------
func (r *PostgresRepository) Upsert(ctx context.Context, item Item) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO menu_items (name, display_name, price, description, position)
		VALUES (
			$1, $2, $3, $4,
			COALESCE((SELECT MAX(position) + 1 FROM menu_items), 0)
		)
		ON CONFLICT (name) DO UPDATE
		SET display_name = $2,
		    price = $3,
		    description = $4
	`, item.Name, item.DisplayName, item.Price, item.Description)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM menu_keywords WHERE item_name = $1
	`, item.Name); err != nil {
		return err
	}

	for i, keyword := range item.Keywords {
		if _, err := tx.Exec(ctx, `
			INSERT INTO menu_keywords (item_name, keyword, position)
			VALUES ($1, $2, $3)
		`, item.Name, keyword, i); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) Delete(ctx context.Context, name string) error {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM menu_items WHERE name = $1
	`, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrItemNotFound
	}
	return nil
}
