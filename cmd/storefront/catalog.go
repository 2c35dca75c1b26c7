package main

import (
	"context"
	"os"
	"text/tabwriter"

	"golang.org/x/sync/errgroup"

	domainauth "github.com/slicelab/storefront/internal/domain/auth"
	"github.com/slicelab/storefront/internal/domain/catalog"
	"github.com/slicelab/storefront/internal/service"
)

func runCatalog(cmdCtx *commandContext, _ []string) error {
	_, backend, err := buildSession(cmdCtx)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, backendCallTimeout)
	defer cancel()

	products, err := service.NewCatalogService(backend).List(ctx)
	if err != nil {
		return friendly(err)
	}
	return printCatalog(products)
}

// runShop fetches the catalog and the cart concurrently and prints both. The
// cart half is skipped when nobody is signed in.
func runShop(cmdCtx *commandContext, _ []string) error {
	manager, backend, err := buildSession(cmdCtx)
	if err != nil {
		return err
	}

	var email string
	if manager.Load(cmdCtx.Ctx) == domainauth.StateAuthenticated {
		id, _ := manager.Identity()
		email = id.Email
	}

	ctx, cancel := context.WithTimeout(cmdCtx.Ctx, backendCallTimeout)
	defer cancel()

	cart := bootstrapCart(cmdCtx, backend)

	var products []catalog.Product
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		listed, listErr := service.NewCatalogService(backend).List(gctx)
		if listErr != nil {
			return listErr
		}
		products = listed
		return nil
	})
	g.Go(func() error {
		return cart.Refresh(gctx, email)
	})
	if err := g.Wait(); err != nil {
		return friendly(err)
	}

	if err := printCatalog(products); err != nil {
		return err
	}
	if email == "" {
		return writef(os.Stdout, "\nSign in to see your cart.\n")
	}
	if err := writef(os.Stdout, "\n"); err != nil {
		return err
	}
	return printCart(cart)
}

func printCatalog(products []catalog.Product) error {
	if len(products) == 0 {
		return writef(os.Stdout, "The catalog is empty.\n")
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	if err := writef(w, "PIZZA\tPRICE\n"); err != nil {
		return err
	}
	for _, p := range products {
		if err := writef(w, "%s\t%s\n", p.Name, p.Price); err != nil {
			return err
		}
	}
	return w.Flush()
}
