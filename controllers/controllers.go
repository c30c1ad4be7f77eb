// Package controllers is the thin HTTP surface over the core services.
// Handlers translate bodies and typed errors; every business rule lives in
// the service packages.
package controllers

import (
	"tokopos/auth"
	"tokopos/cart"
	"tokopos/catalog"
	"tokopos/checkout"
	"tokopos/sales"
	"tokopos/storedb"
)

// Set wires every controller over one shared record store.
type Set struct {
	Auth     *auth.Service
	Products *ProductController
	Cart     *CartController
	Sales    *SalesController
	Users    *UserController
}

func NewSet(store storedb.Store) *Set {
	authSvc := auth.NewService(store)
	catalogSvc := catalog.NewService(store)
	cartSvc := cart.NewService(store)
	orchestrator := checkout.NewOrchestrator(store, cartSvc)
	salesSvc := sales.NewService(store)

	return &Set{
		Auth:     authSvc,
		Products: &ProductController{Catalog: catalogSvc},
		Cart:     &CartController{Cart: cartSvc, Checkout: orchestrator, Auth: authSvc, Catalog: catalogSvc},
		Sales:    &SalesController{Sales: salesSvc},
		Users:    &UserController{Auth: authSvc, Cart: cartSvc},
	}
}
