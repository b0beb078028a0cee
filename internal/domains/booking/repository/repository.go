package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/internal/domains/booking/model"
	"stayhub/shared/logger"

	gDto "stayhub/shared/dto"
)

const otelScopeName = "repository.booking"

type Booking interface {
	Insert(ctx context.Context, model model.Booking) (int, error)
	GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Booking, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, booking model.Booking) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, otelScopeName, otelScopeName+".Insert")
	defer scope.End()

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s) VALUES (:%s, :%s, :%s, :%s) RETURNING %s",
		model.TableName,
		model.FieldUserName, model.FieldUserAddress, model.FieldBookingDate, model.FieldPlaceID,
		model.FieldUserName, model.FieldUserAddress, model.FieldBookingDate, model.FieldPlaceID,
		model.FieldID,
	)

	stmt, err := repo.db.Write.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	var id int
	if err := stmt.GetContext(ctx, &id, booking); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return id, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context, filter gDto.FilterGroup) ([]model.Booking, error) {
	ctx, scope := repo.otel.NewScope(ctx, otelScopeName, otelScopeName+".GetAll")
	defer scope.End()

	where, args := filter.GetWhereClause()

	// Storage order, which for this schema is insertion order.
	query := fmt.Sprintf("SELECT * FROM %s %s ORDER BY %s", model.TableName, where, model.FieldID)

	bookings := []model.Booking{}

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	if err := stmt.SelectContext(ctx, &bookings, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return bookings, nil
}

