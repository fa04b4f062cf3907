package repository

import (
	"errors"
	"time"

	"photostudio-backend/internal/database/models"
	apperrors "photostudio-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Predicate narrows a query. It is applied as a gorm scope.
type Predicate func(*gorm.DB) *gorm.DB

// WhereEq matches rows whose column equals value. A nil value matches NULL.
func WhereEq(column string, value interface{}) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		if isNil(value) {
			return db.Where(column + " IS NULL")
		}
		return db.Where(column+" = ?", value)
	}
}

// WhereIn matches rows whose column is one of values
func WhereIn(column string, values interface{}) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" IN ?", values)
	}
}

// Where adds a raw condition
func Where(query string, args ...interface{}) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(query, args...)
	}
}

// OrderBy sorts the result
func OrderBy(order string) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		return db.Order(order)
	}
}

// Page limits and offsets the result
func Page(limit, offset int) Predicate {
	return func(db *gorm.DB) *gorm.DB {
		if limit > 0 {
			db = db.Limit(limit)
		}
		if offset > 0 {
			db = db.Offset(offset)
		}
		return db
	}
}

func isNil(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case *uuid.UUID:
		return v == nil
	case *string:
		return v == nil
	}
	return false
}

func apply(db *gorm.DB, preds []Predicate) *gorm.DB {
	for _, p := range preds {
		db = p(db)
	}
	return db
}

// Repository is the keyed store for one entity kind
type Repository[T models.Entity] struct {
	db *gorm.DB
}

// NewRepository creates a repository for entity kind T
func NewRepository[T models.Entity](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// Create inserts record, assigning its ID and stamping created_at and updated_at
func (r *Repository[T]) Create(record *T) error {
	return translate[T](r.db.Create(record).Error)
}

// GetByID retrieves a record by ID
func (r *Repository[T]) GetByID(id uuid.UUID) (*T, error) {
	var record T
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, translate[T](err)
	}
	return &record, nil
}

// Update applies patch (column -> value) to the record and returns the stored result
func (r *Repository[T]) Update(id uuid.UUID, patch map[string]interface{}) (*T, error) {
	values := make(map[string]interface{}, len(patch)+1)
	for k, v := range patch {
		values[k] = v
	}
	values["updated_at"] = time.Now()

	res := r.db.Model(new(T)).Where("id = ?", id).Updates(values)
	if res.Error != nil {
		return nil, translate[T](res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, notFound[T]()
	}
	return r.GetByID(id)
}

// Save overwrites every column of record (last write wins)
func (r *Repository[T]) Save(record *T) error {
	return translate[T](r.db.Save(record).Error)
}

// Delete removes the record. Deleting an absent record is not an error.
func (r *Repository[T]) Delete(id uuid.UUID) error {
	return translate[T](r.db.Delete(new(T), "id = ?", id).Error)
}

// List returns every record matching preds
func (r *Repository[T]) List(preds ...Predicate) ([]T, error) {
	records := make([]T, 0)
	if err := apply(r.db.Model(new(T)), preds).Find(&records).Error; err != nil {
		return nil, translate[T](err)
	}
	return records, nil
}

// First returns the first record matching preds
func (r *Repository[T]) First(preds ...Predicate) (*T, error) {
	var record T
	if err := apply(r.db.Model(new(T)), preds).First(&record).Error; err != nil {
		return nil, translate[T](err)
	}
	return &record, nil
}

// Count returns the number of records matching preds
func (r *Repository[T]) Count(preds ...Predicate) (int64, error) {
	var total int64
	err := apply(r.db.Model(new(T)), preds).Count(&total).Error
	return total, translate[T](err)
}

// Exists reports whether any record matches preds
func (r *Repository[T]) Exists(preds ...Predicate) (bool, error) {
	total, err := r.Count(preds...)
	return total > 0, err
}

// MaxInt returns the largest value of an integer column among matching records, or 0
func (r *Repository[T]) MaxInt(column string, preds ...Predicate) (int, error) {
	var max *int
	err := apply(r.db.Model(new(T)), preds).Select("MAX(" + column + ")").Scan(&max).Error
	if err != nil {
		return 0, translate[T](err)
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

// DeleteWhere removes every record matching preds. At least one predicate is required.
func (r *Repository[T]) DeleteWhere(preds ...Predicate) (int64, error) {
	if len(preds) == 0 {
		return 0, gorm.ErrMissingWhereClause
	}
	res := apply(r.db, preds).Delete(new(T))
	return res.RowsAffected, translate[T](res.Error)
}

// UpdateWhere applies patch to every record matching preds
func (r *Repository[T]) UpdateWhere(patch map[string]interface{}, preds ...Predicate) (int64, error) {
	if len(preds) == 0 {
		return 0, gorm.ErrMissingWhereClause
	}
	values := make(map[string]interface{}, len(patch)+1)
	for k, v := range patch {
		values[k] = v
	}
	values["updated_at"] = time.Now()
	res := apply(r.db.Model(new(T)), preds).Updates(values)
	return res.RowsAffected, translate[T](res.Error)
}

func notFound[T models.Entity]() error {
	var zero T
	return apperrors.NewNotFoundError(zero.EntityName())
}

// translate maps gorm errors onto the application error taxonomy
func translate[T models.Entity](err error) error {
	if err == nil {
		return nil
	}
	var zero T
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.NewNotFoundError(zero.EntityName())
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return apperrors.NewConflictError(zero.EntityName(), "")
	}
	return err
}
