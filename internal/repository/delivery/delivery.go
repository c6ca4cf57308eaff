package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"dispatch/internal/entities"
	"dispatch/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const selectColumns = `id, date_marker, name, status, phone, city, district, street, number,
		latitude, longitude, value, payment, payment_status, courier, volume, notes,
		time_marker, status_message`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyModel := FromDomainModify(&deliveryModifyEntity)
	if len(deliveryModifyModel.TimeMarker) != 0 && len(deliveryModifyModel.TimeMarker) != 2 {
		return nil, delivery.ErrInvalidTimeMarker
	}

	query := `INSERT INTO deliveries (date_marker, name, status, phone, city, district, street, number,
			latitude, longitude, value, payment, payment_status, courier, volume, notes,
			time_marker, status_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + selectColumns

	var deliveryModel DeliveryDB
	err := scanDelivery(r.querier.QueryRow(
		ctx,
		query,
		deliveryModifyModel.DateMarker,
		strVal(deliveryModifyModel.Name),
		strVal(deliveryModifyModel.Status),
		strVal(deliveryModifyModel.Phone),
		strVal(deliveryModifyModel.City),
		strVal(deliveryModifyModel.District),
		strVal(deliveryModifyModel.Street),
		strVal(deliveryModifyModel.Number),
		deliveryModifyModel.Latitude,
		deliveryModifyModel.Longitude,
		strVal(deliveryModifyModel.Value),
		strVal(deliveryModifyModel.Payment),
		strVal(deliveryModifyModel.PaymentStatus),
		strVal(deliveryModifyModel.Courier),
		strVal(deliveryModifyModel.Volume),
		strVal(deliveryModifyModel.Notes),
		deliveryModifyModel.TimeMarker,
		strVal(deliveryModifyModel.StatusMessage),
	), &deliveryModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

// Update modifies the row addressed by the modify's ID. The id itself is a
// routing key only and is never written as a column.
func (r *Repository) Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	deliveryModifyModel := FromDomainModify(&deliveryModifyEntity)
	if len(deliveryModifyModel.TimeMarker) != 0 && len(deliveryModifyModel.TimeMarker) != 2 {
		return nil, delivery.ErrInvalidTimeMarker
	}

	builder := qb.
		Update("deliveries")

	if deliveryModifyModel.DateMarker != nil {
		builder = builder.Set("date_marker", deliveryModifyModel.DateMarker)
	}
	if deliveryModifyModel.Name != nil {
		builder = builder.Set("name", deliveryModifyModel.Name)
	}
	if deliveryModifyModel.Status != nil {
		builder = builder.Set("status", deliveryModifyModel.Status)
	}
	if deliveryModifyModel.Phone != nil {
		builder = builder.Set("phone", deliveryModifyModel.Phone)
	}
	if deliveryModifyModel.City != nil {
		builder = builder.Set("city", deliveryModifyModel.City)
	}
	if deliveryModifyModel.District != nil {
		builder = builder.Set("district", deliveryModifyModel.District)
	}
	if deliveryModifyModel.Street != nil {
		builder = builder.Set("street", deliveryModifyModel.Street)
	}
	if deliveryModifyModel.Number != nil {
		builder = builder.Set("number", deliveryModifyModel.Number)
	}
	if deliveryModifyModel.Latitude != nil && deliveryModifyModel.Longitude != nil {
		builder = builder.
			Set("latitude", deliveryModifyModel.Latitude).
			Set("longitude", deliveryModifyModel.Longitude)
	}
	if deliveryModifyModel.Value != nil {
		builder = builder.Set("value", deliveryModifyModel.Value)
	}
	if deliveryModifyModel.Payment != nil {
		builder = builder.Set("payment", deliveryModifyModel.Payment)
	}
	if deliveryModifyModel.PaymentStatus != nil {
		builder = builder.Set("payment_status", deliveryModifyModel.PaymentStatus)
	}
	if deliveryModifyModel.Courier != nil {
		builder = builder.Set("courier", deliveryModifyModel.Courier)
	}
	if deliveryModifyModel.Volume != nil {
		builder = builder.Set("volume", deliveryModifyModel.Volume)
	}
	if deliveryModifyModel.Notes != nil {
		builder = builder.Set("notes", deliveryModifyModel.Notes)
	}
	if deliveryModifyModel.TimeMarker != nil {
		builder = builder.Set("time_marker", deliveryModifyModel.TimeMarker)
	}
	if deliveryModifyModel.StatusMessage != nil {
		builder = builder.Set("status_message", deliveryModifyModel.StatusMessage)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryModifyModel.ID}).
		Suffix("RETURNING " + selectColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	var deliveryModel DeliveryDB
	err = scanDelivery(r.querier.QueryRow(ctx, query, args...), &deliveryModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}

		return nil, fmt.Errorf("unexpected delivery repository update error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

func (r *Repository) GetByDateMarker(ctx context.Context, dateMarker []int64) ([]entities.Delivery, error) {
	query := `SELECT ` + selectColumns + `
		FROM deliveries
		WHERE date_marker = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, dateMarker)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbydatemarker error: %w", err)
	}
	defer rows.Close()

	deliveryModels, err := collectDeliveries(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getbydatemarker error: %w", err)
	}

	return ToDomainList(deliveryModels), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Delivery, error) {
	query := `SELECT ` + selectColumns + `
		FROM deliveries
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}
	defer rows.Close()

	deliveryModels, err := collectDeliveries(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository getall error: %w", err)
	}

	return ToDomainList(deliveryModels), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM deliveries WHERE id = $1`

	tag, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository delete error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}

	return nil
}

func scanDelivery(row pgx.Row, deliveryModel *DeliveryDB) error {
	return row.Scan(
		&deliveryModel.ID,
		&deliveryModel.DateMarker,
		&deliveryModel.Name,
		&deliveryModel.Status,
		&deliveryModel.Phone,
		&deliveryModel.City,
		&deliveryModel.District,
		&deliveryModel.Street,
		&deliveryModel.Number,
		&deliveryModel.Latitude,
		&deliveryModel.Longitude,
		&deliveryModel.Value,
		&deliveryModel.Payment,
		&deliveryModel.PaymentStatus,
		&deliveryModel.Courier,
		&deliveryModel.Volume,
		&deliveryModel.Notes,
		&deliveryModel.TimeMarker,
		&deliveryModel.StatusMessage,
	)
}

func collectDeliveries(rows pgx.Rows) ([]DeliveryDB, error) {
	deliveryModels := make([]DeliveryDB, 0, 8)
	for rows.Next() {
		var deliveryModel DeliveryDB
		if err := scanDelivery(rows, &deliveryModel); err != nil {
			return nil, err
		}
		deliveryModels = append(deliveryModels, deliveryModel)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return deliveryModels, nil
}
