package splitstorage

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/guregu/dynamo"
	dynamolib "github.com/veedubyou/track-splitter/src/shared/lib/dynamo"
	"github.com/veedubyou/track-splitter/src/shared/lib/errors/mark"
)

const (
	SeparationsTable = "Separations"
	idKey            = "id"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . Store
type Store interface {
	PutRecord(ctx context.Context, record SeparationRecord) error
	GetRecord(ctx context.Context, id string) (SeparationRecord, error)
}

var _ Store = DB{}

func NewDB(dynamoDB dynamolib.DynamoDBWrapper) DB {
	return DB{
		dynamoDB: dynamoDB,
	}
}

type DB struct {
	dynamoDB dynamolib.DynamoDBWrapper
}

func (d DB) EnsureTable() error {
	if err := d.dynamoDB.EnsureTable(SeparationsTable, SeparationRecord{}); err != nil {
		return mark.Wrap(err, DefaultErrorMark, "Failed to ensure separations table")
	}

	return nil
}

func (d DB) PutRecord(ctx context.Context, record SeparationRecord) error {
	err := d.dynamoDB.Table(SeparationsTable).
		Put(record).
		RunWithContext(ctx)
	if err != nil {
		return mark.Wrap(err, DefaultErrorMark, "Failed to save separation record")
	}

	return nil
}

func (d DB) GetRecord(ctx context.Context, id string) (SeparationRecord, error) {
	record := SeparationRecord{}
	err := d.dynamoDB.Table(SeparationsTable).
		Get(idKey, id).
		OneWithContext(ctx, &record)

	if err != nil {
		switch {
		case errors.Is(err, dynamo.ErrNotFound):
			return SeparationRecord{}, mark.Wrap(err, RecordNotFoundMark, "Separation record for this ID couldn't be found")
		default:
			return SeparationRecord{}, mark.Wrap(err, DefaultErrorMark, "Failed to fetch separation record due to unknown data store error")
		}
	}

	return record, nil
}
