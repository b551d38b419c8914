package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool

	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Browse(ctx context.Context) error
	ViewOrchid(ctx context.Context, id string) error

	ShowCart(ctx context.Context) error
	AddToCart(ctx context.Context, id, qty string) error
	RemoveFromCart(ctx context.Context, id string) error
	SetCartQuantity(ctx context.Context, id, qty string) error
	ClearCart(ctx context.Context) error
	Checkout(ctx context.Context) error

	MyOrders(ctx context.Context) error
	ShowOrder(ctx context.Context, id string) error
	CompleteOrder(ctx context.Context, id string) error
	CancelOrder(ctx context.Context, id string) error

	ListOrchids(ctx context.Context) error
	AddOrchid(ctx context.Context) error
	EditOrchid(ctx context.Context, id string) error
	DeleteOrchid(ctx context.Context, id string) error

	ListCategories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	EditCategory(ctx context.Context, id string) error
	DeleteCategory(ctx context.Context, id string) error

	ListUsers(ctx context.Context) error
	EditUser(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error

	ListRoles(ctx context.Context) error
	AddRole(ctx context.Context) error
	EditRole(ctx context.Context, id string) error
	DeleteRole(ctx context.Context, id string) error

	AllOrders(ctx context.Context) error
	DeleteOrder(ctx context.Context, id string) error
}

const helpAnonymous = "Available commands: register, login, exit"
const helpCustomer = "Available commands: browse, view <id>, cart, add <id> [qty], remove <id>, setqty <id> <qty>, clearcart, checkout, orders, order <id>, completeorder <id>, cancelorder <id>, whoami, logout, exit"
const helpAdmin = helpCustomer + "\nAdmin commands: orchids, addorchid, editorchid <id>, delorchid <id>, categories, addcategory, editcategory <id>, delcategory <id>, users, edituser <id>, deluser <id>, roles, addrole, editrole <id>, delrole <id>, allorders, delorder <id>"

// runREPL starts a read-eval-print loop for the storefront CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands needing authentication report "Please log in first" when no
// session exists; admin commands report "Admins only" for non-admins. Any
// errors returned by command handlers are ignored here; handlers surface
// their own failures as notifications. This keeps the loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("orchid> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			switch {
			case !a.isLoggedIn():
				printlnFn(helpAnonymous)
			case a.isAdmin():
				printlnFn(helpAdmin)
			default:
				printlnFn(helpCustomer)
			}
			continue
		case "register":
			_ = a.Register(ctx)
			continue
		case "login":
			_ = a.Login(ctx)
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			printlnFn("Please log in first")
			continue
		}

		switch cmd {
		case "browse", "b":
			_ = a.Browse(ctx)
		case "view":
			if len(args) == 0 {
				printlnFn("Usage: view <id>")
				continue
			}
			_ = a.ViewOrchid(ctx, args[0])
		case "cart":
			_ = a.ShowCart(ctx)
		case "add":
			if len(args) == 0 {
				printlnFn("Usage: add <id> [qty]")
				continue
			}
			qty := ""
			if len(args) > 1 {
				qty = args[1]
			}
			_ = a.AddToCart(ctx, args[0], qty)
		case "remove":
			if len(args) == 0 {
				printlnFn("Usage: remove <id>")
				continue
			}
			_ = a.RemoveFromCart(ctx, args[0])
		case "setqty":
			if len(args) < 2 {
				printlnFn("Usage: setqty <id> <qty>")
				continue
			}
			_ = a.SetCartQuantity(ctx, args[0], args[1])
		case "clearcart":
			_ = a.ClearCart(ctx)
		case "checkout":
			_ = a.Checkout(ctx)
		case "orders":
			_ = a.MyOrders(ctx)
		case "order":
			if len(args) == 0 {
				printlnFn("Usage: order <id>")
				continue
			}
			_ = a.ShowOrder(ctx, args[0])
		case "completeorder":
			if len(args) == 0 {
				printlnFn("Usage: completeorder <id>")
				continue
			}
			_ = a.CompleteOrder(ctx, args[0])
		case "cancelorder":
			if len(args) == 0 {
				printlnFn("Usage: cancelorder <id>")
				continue
			}
			_ = a.CancelOrder(ctx, args[0])
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "orchids", "addorchid", "editorchid", "delorchid",
			"categories", "addcategory", "editcategory", "delcategory",
			"users", "edituser", "deluser",
			"roles", "addrole", "editrole", "delrole",
			"allorders", "delorder":
			if !a.isAdmin() {
				printlnFn("Admins only")
				continue
			}
			runAdminCommand(ctx, a, cmd, args)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func runAdminCommand(ctx context.Context, a execIface, cmd string, args []string) {
	needID := func(usage string) (string, bool) {
		if len(args) == 0 {
			printlnFn(usage)
			return "", false
		}
		return args[0], true
	}

	switch cmd {
	case "orchids":
		_ = a.ListOrchids(ctx)
	case "addorchid":
		_ = a.AddOrchid(ctx)
	case "editorchid":
		if id, ok := needID("Usage: editorchid <id>"); ok {
			_ = a.EditOrchid(ctx, id)
		}
	case "delorchid":
		if id, ok := needID("Usage: delorchid <id>"); ok {
			_ = a.DeleteOrchid(ctx, id)
		}
	case "categories":
		_ = a.ListCategories(ctx)
	case "addcategory":
		_ = a.AddCategory(ctx)
	case "editcategory":
		if id, ok := needID("Usage: editcategory <id>"); ok {
			_ = a.EditCategory(ctx, id)
		}
	case "delcategory":
		if id, ok := needID("Usage: delcategory <id>"); ok {
			_ = a.DeleteCategory(ctx, id)
		}
	case "users":
		_ = a.ListUsers(ctx)
	case "edituser":
		if id, ok := needID("Usage: edituser <id>"); ok {
			_ = a.EditUser(ctx, id)
		}
	case "deluser":
		if id, ok := needID("Usage: deluser <id>"); ok {
			_ = a.DeleteUser(ctx, id)
		}
	case "roles":
		_ = a.ListRoles(ctx)
	case "addrole":
		_ = a.AddRole(ctx)
	case "editrole":
		if id, ok := needID("Usage: editrole <id>"); ok {
			_ = a.EditRole(ctx, id)
		}
	case "delrole":
		if id, ok := needID("Usage: delrole <id>"); ok {
			_ = a.DeleteRole(ctx, id)
		}
	case "allorders":
		_ = a.AllOrders(ctx)
	case "delorder":
		if id, ok := needID("Usage: delorder <id>"); ok {
			_ = a.DeleteOrder(ctx, id)
		}
	}
}
