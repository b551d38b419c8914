package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
	"github.com/MinhAlfred/orchidstore/internal/client/nav"
)

// ShowCart prints the current cart with derived totals.
func (a *App) ShowCart(ctx context.Context) error {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		printlnFn("Your cart is empty")
		return nil
	}
	for _, l := range lines {
		printlnFn(fmt.Sprintf("%4d  %-30s %10.2f x%d = %.2f", l.ProductID, l.Name, l.Price, l.Quantity, l.Subtotal()))
	}
	printlnFn(fmt.Sprintf("Total: %.2f (%d items)", a.cart.TotalAmount(), a.cart.TotalQuantity()))
	return nil
}

// AddToCart resolves the orchid and merges it into the cart. The quantity
// argument is optional and defaults to one.
func (a *App) AddToCart(ctx context.Context, id, qty string) error {
	orchidID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid orchid id:", id)
		return err
	}

	quantity := 1
	if qty != "" {
		quantity, err = strconv.Atoi(qty)
		if err != nil {
			printlnFn("Invalid quantity:", qty)
			return err
		}
	}

	o, err := a.orchids.Get(ctx, orchidID)
	if err != nil {
		return err
	}
	if !o.IsAvailable {
		printlnFn(o.Name, "is not available")
		return nil
	}

	if err := a.cart.Add(ctx, *o, quantity); err != nil {
		a.Error("Failed to update cart")
		return err
	}
	printlnFn("Added", o.Name, "to cart")
	return nil
}

func (a *App) RemoveFromCart(ctx context.Context, id string) error {
	orchidID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid orchid id:", id)
		return err
	}
	if err := a.cart.Remove(ctx, orchidID); err != nil {
		a.Error("Failed to update cart")
		return err
	}
	return a.ShowCart(ctx)
}

func (a *App) SetCartQuantity(ctx context.Context, id, qty string) error {
	orchidID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid orchid id:", id)
		return err
	}
	quantity, err := strconv.Atoi(qty)
	if err != nil {
		printlnFn("Invalid quantity:", qty)
		return err
	}
	if err := a.cart.SetQuantity(ctx, orchidID, quantity); err != nil {
		a.Error("Failed to update cart")
		return err
	}
	return a.ShowCart(ctx)
}

func (a *App) ClearCart(ctx context.Context) error {
	if err := a.cart.Clear(ctx); err != nil {
		a.Error("Failed to update cart")
		return err
	}
	printlnFn("Cart cleared")
	return nil
}

// Checkout turns the cart into an order. On success the cart is emptied and
// the user lands on their order list.
func (a *App) Checkout(ctx context.Context) error {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		printlnFn("Your cart is empty")
		return nil
	}

	req := models.OrderRequest{OrderDetails: make([]models.OrderItemRequest, 0, len(lines))}
	for _, l := range lines {
		req.OrderDetails = append(req.OrderDetails, models.OrderItemRequest{
			ProductID: l.ProductID,
			Quantity:  l.Quantity,
		})
	}

	order, err := a.orders.Create(ctx, req)
	if err != nil {
		return err
	}

	if err := a.cart.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to clear cart after checkout", "error", err)
	}

	printlnFn(fmt.Sprintf("Order #%d placed, total %.2f", order.ID, order.TotalAmount))
	nav.NavigateTo(nav.RouteOrders)
	return nil
}
