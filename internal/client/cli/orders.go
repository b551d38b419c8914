package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MinhAlfred/orchidstore/internal/client/models"
)

func printOrderRow(o models.Order) {
	printlnFn(fmt.Sprintf("%4d  %-19s %-10s %10.2f", o.ID, o.OrderDate, o.OrderStatus, o.TotalAmount))
}

func printOrders(orders []models.Order) {
	if len(orders) == 0 {
		printlnFn("No orders yet")
		return
	}
	for _, o := range orders {
		printOrderRow(o)
	}
}

// MyOrders lists the calling user's own orders.
func (a *App) MyOrders(ctx context.Context) error {
	orders, err := a.orders.ListMine(ctx)
	if err != nil {
		return err
	}
	printOrders(orders)
	return nil
}

// AllOrders lists every order in the system.
func (a *App) AllOrders(ctx context.Context) error {
	orders, err := a.orders.List(ctx)
	if err != nil {
		return err
	}
	printOrders(orders)
	return nil
}

// ShowOrder prints one order with its line items.
func (a *App) ShowOrder(ctx context.Context, id string) error {
	orderID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid order id:", id)
		return err
	}

	o, err := a.orders.Get(ctx, orderID)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Order #%d  %s  %s", o.ID, o.OrderDate, o.OrderStatus))
	for _, d := range o.OrderDetails {
		printlnFn(fmt.Sprintf("  %-30s %10.2f x%d", d.Name, d.Price, d.Quantity))
	}
	printlnFn(fmt.Sprintf("Total: %.2f", o.TotalAmount))
	return nil
}

// CompleteOrder marks a paid order as completed.
func (a *App) CompleteOrder(ctx context.Context, id string) error {
	orderID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid order id:", id)
		return err
	}
	return a.orders.MarkSuccess(ctx, orderID)
}

// CancelOrder cancels one of the user's own pending orders.
func (a *App) CancelOrder(ctx context.Context, id string) error {
	orderID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid order id:", id)
		return err
	}
	return a.orders.Delete(ctx, orderID)
}

func (a *App) DeleteOrder(ctx context.Context, id string) error {
	orderID, err := strconv.Atoi(id)
	if err != nil {
		printlnFn("Invalid order id:", id)
		return err
	}
	return a.orders.Delete(ctx, orderID)
}
