package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	apperrors "github.com/slicelab/storefront/internal/errors"
	"github.com/slicelab/storefront/internal/ports"
	"github.com/slicelab/storefront/internal/service"
	"github.com/slicelab/storefront/internal/util"
)

const backendCallTimeout = 2 * time.Minute

var errNotSignedIn = errors.New("not signed in, run `storefront login` first")

type cartAddOptions struct {
	Pizza    string
	Quantity int
}

type cartRemoveOptions struct {
	LineID   int
	Quantity int
	All      bool
}

func parseCartAddFlags(args []string) (cartAddOptions, error) {
	var opts cartAddOptions
	fs := flag.NewFlagSet("cart-add", flag.ContinueOnError)
	fs.StringVar(&opts.Pizza, "pizza", "", "catalog pizza name to add")
	fs.IntVar(&opts.Quantity, "qty", 1, "quantity to add")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.Pizza == "" {
		return opts, apperrors.Validation("-pizza is required")
	}
	return opts, nil
}

func parseCartRemoveFlags(args []string) (cartRemoveOptions, error) {
	var opts cartRemoveOptions
	fs := flag.NewFlagSet("cart-remove", flag.ContinueOnError)
	fs.IntVar(&opts.LineID, "line", 0, "cart line id to remove from")
	fs.IntVar(&opts.Quantity, "qty", 0, "quantity to remove (defaults to the whole line)")
	fs.BoolVar(&opts.All, "all", false, "remove the whole line")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.LineID == 0 {
		return opts, apperrors.Validation("-line is required")
	}
	return opts, nil
}

func runCart(cmdCtx *commandContext, _ []string) error {
	manager, backend, err := buildSession(cmdCtx)
	if err != nil {
		return err
	}
	id, err := requireIdentity(cmdCtx, manager)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, backendCallTimeout)
	defer cancel()

	cart := bootstrapCart(cmdCtx, backend)
	if err := cart.Refresh(ctx, id.Email); err != nil {
		return friendly(err)
	}

	return printCart(cart)
}

func runCartAdd(cmdCtx *commandContext, args []string) error {
	opts, err := parseCartAddFlags(args)
	if err != nil {
		return err
	}

	manager, backend, err := buildSession(cmdCtx)
	if err != nil {
		return err
	}
	id, err := requireIdentity(cmdCtx, manager)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, backendCallTimeout)
	defer cancel()

	catalogSvc := service.NewCatalogService(backend)
	products, err := catalogSvc.List(ctx)
	if err != nil {
		return friendly(err)
	}

	for _, p := range products {
		if !strings.EqualFold(p.Name, opts.Pizza) {
			continue
		}
		price, priceErr := catalogSvc.UnitPrice(p)
		if priceErr != nil {
			return priceErr
		}

		cart := bootstrapCart(cmdCtx, backend)
		added, addErr := cart.AddItem(ctx, ports.AddItemInput{
			Email:     id.Email,
			ItemName:  p.Name,
			UnitPrice: price,
			Quantity:  opts.Quantity,
		})
		if addErr != nil {
			return friendly(addErr)
		}
		return writef(os.Stdout, "Added %d x %s to your cart.\n", added, p.Name)
	}
	return apperrors.Validationf("no pizza named %q in the catalog", opts.Pizza)
}

func runCartRemove(cmdCtx *commandContext, args []string) error {
	opts, err := parseCartRemoveFlags(args)
	if err != nil {
		return err
	}

	manager, backend, err := buildSession(cmdCtx)
	if err != nil {
		return err
	}
	id, err := requireIdentity(cmdCtx, manager)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, backendCallTimeout)
	defer cancel()

	cart := bootstrapCart(cmdCtx, backend)
	if err := cart.Refresh(ctx, id.Email); err != nil {
		return friendly(err)
	}

	line, ok := cart.Line(opts.LineID)
	if !ok {
		return apperrors.Validationf("no cart line with id %d", opts.LineID)
	}

	draft, err := cart.OpenRemovalDraft(opts.LineID)
	if err != nil {
		return err
	}
	if !opts.All && opts.Quantity > 0 {
		// The draft opens at the full line quantity; walk it down to the
		// requested amount. Adjust clamps, so overshooting is harmless.
		if _, err := cart.AdjustDraft(opts.Quantity - draft.Requested); err != nil {
			return err
		}
	}

	if err := cart.CommitDraft(ctx, id.Email); err != nil {
		return friendly(err)
	}

	if remaining, ok := cart.Line(opts.LineID); ok {
		return writef(os.Stdout, "Removed %d x %s, %d left in the cart.\n",
			line.Quantity-remaining.Quantity, line.ItemName, remaining.Quantity)
	}
	return writef(os.Stdout, "Removed %s from your cart.\n", line.ItemName)
}

func bootstrapCart(cmdCtx *commandContext, backend ports.CartBackend) *service.CartController {
	return service.NewCartController(service.CartControllerOptions{
		Backend: backend,
		Logger:  cmdCtx.Logger,
	})
}

func printCart(cart *service.CartController) error {
	lines := cart.Lines()
	if len(lines) == 0 {
		return writef(os.Stdout, "Your cart is empty.\n")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "ID\tPIZZA\tPRICE\tQTY\tSUBTOTAL\n"); err != nil {
		return err
	}
	for _, line := range lines.Sorted() {
		if err := writef(w, "%d\t%s\t$%s\t%d\t$%s\n",
			line.ID, line.ItemName,
			util.FormatPrice(line.UnitPrice), line.Quantity,
			util.FormatPrice(line.Subtotal())); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return writef(os.Stdout, "\nTotal: $%s\n", util.FormatPrice(cart.TotalPrice()))
}

// friendly keeps transport and rejection noise out of the error log by
// rendering the shopper-facing message instead.
func friendly(err error) error {
	if apperrors.IsTransport(err) || apperrors.IsRejected(err) {
		return errors.New(apperrors.UserMessage(err))
	}
	return err
}
