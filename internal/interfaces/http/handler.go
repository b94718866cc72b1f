package http

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/vinherch/warehouse-zhaw-backend/internal/application/inventory"
	"github.com/vinherch/warehouse-zhaw-backend/internal/domain"
)

// Helpers compartidos por los handlers de recursos. Cada handler conserva sus anotaciones swag
// y delega aquí el parseo, la llamada al caso de uso y la respuesta.

func paramID(c *fiber.Ctx) (int64, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: id inválido %q", domain.ErrInvalidInput, c.Params("id"))
	}
	return int64(id), nil
}

func bindJSON(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fmt.Errorf("%w: cuerpo inválido: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func listAll[T any](c *fiber.Ctx, fn func(context.Context) ([]T, error)) error {
	out, err := fn(c.UserContext())
	if err != nil {
		return err
	}
	if out == nil {
		out = []T{}
	}
	return c.JSON(out)
}

func getOne[T any](c *fiber.Ctx, fn func(context.Context, int64) (*T, error)) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	out, err := fn(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func createOne[Req, Res any](c *fiber.Ctx, fn func(context.Context, Req) (*Res, error)) error {
	var in Req
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := fn(c.UserContext(), in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

func updateOne[Req, Res any](c *fiber.Ctx, fn func(context.Context, int64, Req) (*Res, error)) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	var in Req
	if err := bindJSON(c, &in); err != nil {
		return err
	}
	out, err := fn(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(out)
}

func deleteOne(c *fiber.Ctx, fn func(context.Context, int64) error) error {
	id, err := paramID(c)
	if err != nil {
		return err
	}
	if err := fn(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// sendCSV responde el export del recurso como adjunto "<recurso>.csv".
func sendCSV(c *fiber.Ctx, export *inventory.CSVExportUseCase, resource string) error {
	var buf bytes.Buffer
	if err := export.Export(c.UserContext(), resource, &buf); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, inventory.FileName(resource)))
	return c.Send(buf.Bytes())
}
