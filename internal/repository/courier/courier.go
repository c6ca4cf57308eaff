package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = "id, name, status, user_name, password, latitude, longitude"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	status := string(entities.DefaultCourierStatus)
	if courierModifyModel.Status != nil {
		status = *courierModifyModel.Status
	}

	query := `INSERT INTO couriers (name, status, user_name, password, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + selectColumns

	var courierModel CourierDB
	err := r.querier.QueryRow(
		ctx,
		query,
		strVal(courierModifyModel.Name),
		status,
		strVal(courierModifyModel.UserName),
		strVal(courierModifyModel.Password),
		courierModifyModel.Latitude,
		courierModifyModel.Longitude,
	).Scan(
		&courierModel.ID,
		&courierModel.Name,
		&courierModel.Status,
		&courierModel.UserName,
		&courierModel.Password,
		&courierModel.Latitude,
		&courierModel.Longitude,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

// Update modifies the row addressed by the modify's ID. The id itself is a
// routing key only and is never written as a column.
func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.UserName != nil {
		builder = builder.Set("user_name", courierModifyModel.UserName)
	}
	if courierModifyModel.Password != nil {
		builder = builder.Set("password", courierModifyModel.Password)
	}
	if courierModifyModel.Latitude != nil && courierModifyModel.Longitude != nil {
		builder = builder.
			Set("latitude", courierModifyModel.Latitude).
			Set("longitude", courierModifyModel.Longitude)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + selectColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var courierModel CourierDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Status,
			&courierModel.UserName,
			&courierModel.Password,
			&courierModel.Latitude,
			&courierModel.Longitude,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetByUserName(ctx context.Context, userName string) (*entities.Courier, error) {
	query := `SELECT ` + selectColumns + `
		FROM couriers
		WHERE user_name = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, userName).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Status,
			&courierModel.UserName,
			&courierModel.Password,
			&courierModel.Latitude,
			&courierModel.Longitude,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		return nil, fmt.Errorf("unexpected courier repository getbyusername error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `
	SELECT ` + selectColumns + `
	FROM couriers
	ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Status,
			&courierModel.UserName,
			&courierModel.Password,
			&courierModel.Latitude,
			&courierModel.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
		}
		courierModels = append(courierModels, courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository getall error: %w", err)
	}

	return ToDomainList(courierModels), nil
}
