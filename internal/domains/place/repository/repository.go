package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"stayhub/infras/otel"
	"stayhub/infras/postgres"
	"stayhub/internal/domains/place/model"
	"stayhub/shared/logger"

	gDto "stayhub/shared/dto"
)

const otelScopeName = "repository.place"

type Place interface {
	Insert(ctx context.Context, model model.Place) (int, error)
	GetAll(ctx context.Context) ([]model.Place, error)
	Get(ctx context.Context, filter gDto.FilterGroup) (model.Place, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Place {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Insert(ctx context.Context, place model.Place) (int, error) {
	ctx, scope := repo.otel.NewScope(ctx, otelScopeName, otelScopeName+".Insert")
	defer scope.End()

	query := fmt.Sprintf(
		"INSERT INTO %s (%s, %s, %s, %s) VALUES (:%s, :%s, :%s, :%s) RETURNING %s",
		model.TableName,
		model.FieldName, model.FieldDescription, model.FieldImageURL, model.FieldAmount,
		model.FieldName, model.FieldDescription, model.FieldImageURL, model.FieldAmount,
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
	if err := stmt.GetContext(ctx, &id, place); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to insert data (%s): %w", model.EntityName, err)
	}

	return id, nil
}

func (repo *repositoryImpl) GetAll(ctx context.Context) ([]model.Place, error) {
	ctx, scope := repo.otel.NewScope(ctx, otelScopeName, otelScopeName+".GetAll")
	defer scope.End()

	// Insertion order.
	query := fmt.Sprintf("SELECT * FROM %s ORDER BY %s", model.TableName, model.FieldID)

	places := []model.Place{}
	if err := repo.db.Read.SelectContext(ctx, &places, query); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return places, nil
}

func (repo *repositoryImpl) Get(ctx context.Context, filter gDto.FilterGroup) (model.Place, error) {
	ctx, scope := repo.otel.NewScope(ctx, otelScopeName, otelScopeName+".Get")
	defer scope.End()

	where, args := filter.GetWhereClause()
	query := fmt.Sprintf("SELECT * FROM %s %s", model.TableName, where)

	var place model.Place

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return place, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &place, args); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Place{}, nil
		}

		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return place, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return place, nil
}

func (repo *repositoryImpl) Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, otelScopeName, otelScopeName+".Exist")
	defer scope.End()

	where, args := filter.GetWhereClause()
	query := fmt.Sprintf("SELECT EXISTS(SELECT 1 FROM %s %s)", model.TableName, where)

	exist := false

	stmt, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}
	defer stmt.Close()

	if err := stmt.GetContext(ctx, &exist, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", model.EntityName, err)
	}

	return exist, nil
}
