package eventbase

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"galeri_backend/internals/constants"
	"galeri_backend/internals/features/events/lifecycle"
	helper "galeri_backend/internals/helpers"
)

// WriteError: ValidationError → 400 per field, ErrNotFound → 404, sisanya lewat mapper PG.
func WriteError(c *fiber.Ctx, err error, notFoundMsg string) error {
	var ve *lifecycle.ValidationError
	switch {
	case errors.As(err, &ve):
		return helper.JsonValidationError(c, map[string][]string{ve.Field: {ve.Message}})
	case errors.Is(err, ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.WritePGError(c, err)
}

// CanManage: editor/admin melihat semua record, termasuk yang tidak publik.
func CanManage(c *fiber.Ctx) bool {
	return helper.HasAnyRole(c, constants.EditorAndAbove)
}

// FilterFromRequest membaca ?q=&status=&public=&page=&per_page=.
func FilterFromRequest(c *fiber.Ctx) (ListFilter, helper.Paging, error) {
	var q ListQuery
	if err := c.QueryParser(&q); err != nil {
		return ListFilter{}, helper.Paging{}, fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 12, 100)
	f := ListFilter{
		PublicOnly: q.Public || !CanManage(c),
		Q:          q.Q,
		Limit:      p.Limit,
		Offset:     p.Offset,
	}
	if q.Status != "" {
		st, err := lifecycle.ParseStatus(q.Status)
		if err != nil {
			return ListFilter{}, helper.Paging{}, fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		f.Status = st
	}
	return f, p, nil
}
