package customer

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/customer"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = "id, name, phone, city, district, street, number, latitude, longitude"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)
	query := `INSERT INTO customers (name, phone, city, district, street, number, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + selectColumns

	var customerModel CustomerDB
	err := r.querier.QueryRow(
		ctx,
		query,
		strVal(customerModifyModel.Name),
		strVal(customerModifyModel.Phone),
		strVal(customerModifyModel.City),
		strVal(customerModifyModel.District),
		strVal(customerModifyModel.Street),
		strVal(customerModifyModel.Number),
		customerModifyModel.Latitude,
		customerModifyModel.Longitude,
	).Scan(
		&customerModel.ID,
		&customerModel.Name,
		&customerModel.Phone,
		&customerModel.City,
		&customerModel.District,
		&customerModel.Street,
		&customerModel.Number,
		&customerModel.Latitude,
		&customerModel.Longitude,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, customer.ErrConflict
		}
		return nil, fmt.Errorf("unexpected customer repository create error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

// Update modifies the row addressed by the modify's ID. The id itself is a
// routing key only and is never written as a column.
func (r *Repository) Update(ctx context.Context, customerModifyEntity entities.CustomerModify) (*entities.Customer, error) {
	customerModifyModel := FromDomainModify(&customerModifyEntity)

	builder := qb.
		Update("customers")

	if customerModifyModel.Name != nil {
		builder = builder.Set("name", customerModifyModel.Name)
	}
	if customerModifyModel.Phone != nil {
		builder = builder.Set("phone", customerModifyModel.Phone)
	}
	if customerModifyModel.City != nil {
		builder = builder.Set("city", customerModifyModel.City)
	}
	if customerModifyModel.District != nil {
		builder = builder.Set("district", customerModifyModel.District)
	}
	if customerModifyModel.Street != nil {
		builder = builder.Set("street", customerModifyModel.Street)
	}
	if customerModifyModel.Number != nil {
		builder = builder.Set("number", customerModifyModel.Number)
	}
	if customerModifyModel.Latitude != nil && customerModifyModel.Longitude != nil {
		builder = builder.
			Set("latitude", customerModifyModel.Latitude).
			Set("longitude", customerModifyModel.Longitude)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": customerModifyModel.ID}).
		Suffix("RETURNING " + selectColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	var customerModel CustomerDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&customerModel.ID,
			&customerModel.Name,
			&customerModel.Phone,
			&customerModel.City,
			&customerModel.District,
			&customerModel.Street,
			&customerModel.Number,
			&customerModel.Latitude,
			&customerModel.Longitude,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, customer.ErrConflict
		}

		return nil, fmt.Errorf("unexpected customer repository update error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetByName(ctx context.Context, name string) (*entities.Customer, error) {
	query := `SELECT ` + selectColumns + `
		FROM customers
		WHERE name = $1`

	var customerModel CustomerDB
	err := r.querier.QueryRow(ctx, query, name).
		Scan(
			&customerModel.ID,
			&customerModel.Name,
			&customerModel.Phone,
			&customerModel.City,
			&customerModel.District,
			&customerModel.Street,
			&customerModel.Number,
			&customerModel.Latitude,
			&customerModel.Longitude,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, customer.ErrCustomerNotFound
		}

		return nil, fmt.Errorf("unexpected customer repository getbyname error: %w", err)
	}

	return ToDomain(&customerModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Customer, error) {
	query := `
	SELECT ` + selectColumns + `
	FROM customers
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
	}
	defer rows.Close()

	customerModels := make([]CustomerDB, 0, 8)
	for rows.Next() {
		var customerModel CustomerDB
		err := rows.Scan(
			&customerModel.ID,
			&customerModel.Name,
			&customerModel.Phone,
			&customerModel.City,
			&customerModel.District,
			&customerModel.Street,
			&customerModel.Number,
			&customerModel.Latitude,
			&customerModel.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
		}
		customerModels = append(customerModels, customerModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected customer repository getall error: %w", err)
	}

	return ToDomainList(customerModels), nil
}
