package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
)

func (a *App) ListCategories(ctx context.Context) error {
	categories, err := a.categories.List(ctx)
	if err != nil {
		return err
	}
	for _, c := range categories {
		printlnFn(fmt.Sprintf("%4d  %s", c.ID, c.Name))
	}
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter category name", os.Stdout)
	if err != nil {
		return err
	}
	return a.categories.Create(ctx, models.CategoryRequest{Name: name})
}

func (a *App) EditCategory(ctx context.Context, id string) error {
	categoryID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid category id:", id)
		return err
	}
	name, err := getSimpleText(a.reader, "Enter category name", os.Stdout)
	if err != nil {
		return err
	}
	return a.categories.Update(ctx, categoryID, models.CategoryRequest{Name: name})
}

func (a *App) DeleteCategory(ctx context.Context, id string) error {
	categoryID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid category id:", id)
		return err
	}
	return a.categories.Delete(ctx, categoryID)
}
