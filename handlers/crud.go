package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/studytrack/studytrack-api/utils/query"
	"github.com/studytrack/studytrack-api/utils/response"
	"gorm.io/gorm"
)

// ErrResponded signals that a helper already wrote the HTTP response
var ErrResponded = errors.New("response already written")

// ParseID reads a positive integer path parameter, answering 400 when it is malformed
func ParseID(c *fiber.Ctx, name string) (uint, error) {
	id, err := query.ParamID(c, name)
	if err != nil {
		_ = response.BadRequest(c, fmt.Sprintf("Invalid %s", name))
		return 0, ErrResponded
	}
	return id, nil
}

// Done maps a helper error to the handler return value
func Done(err error) error {
	if errors.Is(err, ErrResponded) {
		return nil
	}
	return err
}

// ListBy answers with every T matching the condition in id order, or 404 when there are none
func ListBy[T any](c *fiber.Ctx, db *gorm.DB, notFound string, cond string, args ...interface{}) error {
	var rows []T
	if err := db.WithContext(c.UserContext()).Where(cond, args...).Order("id ASC").Find(&rows).Error; err != nil {
		return fmt.Errorf("list %T: %w", rows, err)
	}
	if len(rows) == 0 {
		return response.NotFound(c, notFound)
	}
	return response.Success(c, rows)
}

// GetByID answers with the T identified by the path parameter, or 404
func GetByID[T any](c *fiber.Ctx, db *gorm.DB, param, notFound string) error {
	id, err := ParseID(c, param)
	if err != nil {
		return Done(err)
	}

	var row T
	if err := db.WithContext(c.UserContext()).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, notFound)
		}
		return fmt.Errorf("get %T %d: %w", row, id, err)
	}
	return response.Success(c, row)
}

// DeleteByID deletes the T identified by the path parameter, or answers 404 when it does not exist
func DeleteByID[T any](c *fiber.Ctx, db *gorm.DB, param, notFound string) error {
	id, err := ParseID(c, param)
	if err != nil {
		return Done(err)
	}

	var row T
	result := db.WithContext(c.UserContext()).Delete(&row, id)
	if result.Error != nil {
		return fmt.Errorf("delete %T %d: %w", row, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return response.NotFound(c, notFound)
	}
	return response.SuccessWithMessage(c, "Deleted successfully", fiber.Map{"deleted": result.RowsAffected})
}

// ParentExists answers 404 and returns ErrResponded when no T has the given id
func ParentExists[T any](c *fiber.Ctx, db *gorm.DB, id uint, notFound string) error {
	var count int64
	if err := db.WithContext(c.UserContext()).Model(new(T)).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("check %T %d: %w", new(T), id, err)
	}
	if count == 0 {
		_ = response.NotFound(c, notFound)
		return ErrResponded
	}
	return nil
}
