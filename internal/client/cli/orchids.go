package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
)

func printOrchidRow(o models.Orchid) {
	category := ""
	if o.Category != nil {
		category = o.Category.Name
	}
	availability := "available"
	if !o.IsAvailable {
		availability = "unavailable"
	}
	printlnFn(fmt.Sprintf("%4d  %-30s %10.2f  %-15s %s", o.ID, o.Name, o.Price, category, availability))
}

// Browse lists the orchids a customer can buy.
func (a *App) Browse(ctx context.Context) error {
	orchids, err := a.orchids.ListAvailable(ctx)
	if err != nil {
		return err
	}
	if len(orchids) == 0 {
		printlnFn("No orchids available right now")
		return nil
	}
	for _, o := range orchids {
		printOrchidRow(o)
	}
	return nil
}

// ViewOrchid shows one orchid in full.
func (a *App) ViewOrchid(ctx context.Context, id string) error {
	orchidID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid orchid id:", id)
		return err
	}

	o, err := a.orchids.Get(ctx, orchidID)
	if err != nil {
		return err
	}

	printlnFn("Name:       ", o.Name)
	printlnFn("Description:", o.Description)
	printlnFn(fmt.Sprintf("Price:       %.2f", o.Price))
	if o.Category != nil {
		printlnFn("Category:   ", o.Category.Name)
	}
	kind := "hybrid"
	if o.IsNatural {
		kind = "natural"
	}
	printlnFn("Kind:       ", kind)
	printlnFn("Available:  ", o.IsAvailable)
	if o.URL != "" {
		printlnFn("Image:      ", o.URL)
	}
	return nil
}

// ListOrchids shows the full catalogue, including unavailable entries.
func (a *App) ListOrchids(ctx context.Context) error {
	orchids, err := a.orchids.List(ctx)
	if err != nil {
		return err
	}
	for _, o := range orchids {
		printOrchidRow(o)
	}
	return nil
}

// promptOrchid collects an orchid form. While editing, a blank answer to any
// prompt keeps the current value; on create every field must be entered.
func (a *App) promptOrchid(current *models.Orchid) (models.OrchidRequest, error) {
	editing := current != nil
	var req models.OrchidRequest
	if editing {
		req = models.OrchidRequest{
			Name:        current.Name,
			Description: current.Description,
			URL:         current.URL,
			Price:       current.Price,
			IsNatural:   current.IsNatural,
			IsAvailable: current.IsAvailable,
		}
		if current.Category != nil {
			req.CategoryID = current.Category.ID
		}
	}

	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return req, err
	}
	if name != "" {
		req.Name = name
	}

	description, err := getSimpleText(a.reader, "Enter description", os.Stdout)
	if err != nil {
		return req, err
	}
	if description != "" {
		req.Description = description
	}

	url, err := getSimpleText(a.reader, "Enter image URL", os.Stdout)
	if err != nil {
		return req, err
	}
	if url != "" {
		req.URL = url
	}

	priceText, err := getSimpleText(a.reader, "Enter price", os.Stdout)
	if err != nil {
		return req, err
	}
	if priceText != "" || !editing {
		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil {
			return req, err
		}
		req.Price = price
	}

	naturalText, err := getSimpleText(a.reader, "Natural species? (y/n)", os.Stdout)
	if err != nil {
		return req, err
	}
	if naturalText != "" || !editing {
		natural, err := parseYesNo(naturalText)
		if err != nil {
			return req, err
		}
		req.IsNatural = natural
	}

	availableText, err := getSimpleText(a.reader, "Available for sale? (y/n)", os.Stdout)
	if err != nil {
		return req, err
	}
	if availableText != "" || !editing {
		available, err := parseYesNo(availableText)
		if err != nil {
			return req, err
		}
		req.IsAvailable = available
	}

	categoryText, err := getSimpleText(a.reader, "Enter category id", os.Stdout)
	if err != nil {
		return req, err
	}
	if categoryText != "" || !editing {
		categoryID, err := strconv.Atoi(categoryText)
		if err != nil {
			return req, err
		}
		req.CategoryID = categoryID
	}

	return req, nil
}

func (a *App) AddOrchid(ctx context.Context) error {
	req, err := a.promptOrchid(nil)
	if err != nil {
		return err
	}
	return a.orchids.Create(ctx, req)
}

func (a *App) EditOrchid(ctx context.Context, id string) error {
	orchidID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid orchid id:", id)
		return err
	}

	current, err := a.orchids.Get(ctx, orchidID)
	if err != nil {
		return err
	}

	printlnFn("Editing", current.Name, "(blank keeps the current value)")
	req, err := a.promptOrchid(current)
	if err != nil {
		return err
	}
	return a.orchids.Update(ctx, orchidID, req)
}

func (a *App) DeleteOrchid(ctx context.Context, id string) error {
	orchidID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid orchid id:", id)
		return err
	}
	return a.orchids.Delete(ctx, orchidID)
}
