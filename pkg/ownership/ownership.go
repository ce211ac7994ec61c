// Package ownership proves that a caller owns a resource by walking its
// parent references up to the farm: Activity -> Field, Crop -> Field,
// Field -> Farm, Farm -> owning user.
package ownership

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"farmbook/entities"
	"farmbook/pkg/contract"
)

type Kind string

const (
	Farm     Kind = "Farm"
	Field    Kind = "Field"
	Crop     Kind = "Crop"
	Activity Kind = "Activity"
)

// Checker is what route guards and controllers depend on.
type Checker interface {
	Check(ctx context.Context, userID string, kind Kind, id uint) error
}

type Gate struct{ db *gorm.DB }

func New(db *gorm.DB) *Gate { return &Gate{db: db} }

// Owner returns the user id owning the farm at the root of id's chain. A
// missing row anywhere on the chain is reported as a NotFoundError for kind.
func (g *Gate) Owner(ctx context.Context, kind Kind, id uint) (string, error) {
	db := g.db.WithContext(ctx)
	switch kind {
	case Activity:
		var a entities.Activity
		if err := first(db, &a, id, "field_id"); err != nil {
			return "", g.miss(kind, id, err)
		}
		return g.fieldOwner(db, kind, id, a.FieldID)
	case Crop:
		var c entities.Crop
		if err := first(db, &c, id, "field_id"); err != nil {
			return "", g.miss(kind, id, err)
		}
		return g.fieldOwner(db, kind, id, c.FieldID)
	case Field:
		return g.fieldOwner(db, kind, id, id)
	case Farm:
		return g.farmOwner(db, kind, id, id)
	default:
		return "", fmt.Errorf("ownership: unknown kind %q", kind)
	}
}

func (g *Gate) fieldOwner(db *gorm.DB, kind Kind, id, fieldID uint) (string, error) {
	var f entities.Field
	if err := first(db, &f, fieldID, "farm_id"); err != nil {
		return "", g.miss(kind, id, err)
	}
	return g.farmOwner(db, kind, id, f.FarmID)
}

func (g *Gate) farmOwner(db *gorm.DB, kind Kind, id, farmID uint) (string, error) {
	var f entities.Farm
	if err := first(db, &f, farmID, "user_id"); err != nil {
		return "", g.miss(kind, id, err)
	}
	return f.UserID, nil
}

// Check reports not-found before it reports forbidden.
func (g *Gate) Check(ctx context.Context, userID string, kind Kind, id uint) error {
	owner, err := g.Owner(ctx, kind, id)
	if err != nil {
		return err
	}
	if owner != userID {
		return fmt.Errorf("%s %d: %w", kind, id, contract.ErrForbidden)
	}
	return nil
}

func first(db *gorm.DB, dst any, id uint, column string) error {
	return db.Select("id", column).Where("id = ?", id).Take(dst).Error
}

func (g *Gate) miss(kind Kind, id uint, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return contract.NotFound(string(kind), id)
	}
	return fmt.Errorf("resolve %s %d owner: %w", kind, id, err)
}
