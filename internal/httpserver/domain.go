package httpserver

import (
	"context"

	bookingHTTP "shareit/internal/booking/delivery/http"
	bookingUC "shareit/internal/booking/usecase"
	commentHTTP "shareit/internal/comment/delivery/http"
	commentUC "shareit/internal/comment/usecase"
	itemHTTP "shareit/internal/item/delivery/http"
	itemUC "shareit/internal/item/usecase"
	"shareit/internal/middleware"
	requestHTTP "shareit/internal/request/delivery/http"
	requestUC "shareit/internal/request/usecase"
	userHTTP "shareit/internal/user/delivery/http"
	userUC "shareit/internal/user/usecase"
)

// setupDomains builds every use case over repos and registers its routes.
//
// Use cases are built in dependency order:
//  1. users     (identity store, needed by everyone)
//  2. bookings  (reads items straight from the item repository)
//  3. comments  (asks bookings whether the author finished a booking)
//  4. items     (attaches bookings and comments to listings)
//  5. requests  (attaches the items answering each request)
func (srv HTTPServer) setupDomains(ctx context.Context, repos repositories, mw middleware.Middleware) {
	users := userUC.New(repos.users, srv.l)
	bookings := bookingUC.New(repos.bookings, repos.txm, users, repos.items, srv.calendar, srv.l)
	comments := commentUC.New(repos.comments, repos.txm, users, repos.items, bookings, srv.l)
	items := itemUC.New(repos.items, repos.txm, users, repos.requests, bookings, comments, srv.l)
	requests := requestUC.New(repos.requests, users, items, srv.l)

	userHTTP.RegisterRoutes(srv.gin.Group("/users"), userHTTP.New(srv.l, users, srv.reporter))
	itemHTTP.RegisterRoutes(srv.gin.Group("/items"), itemHTTP.New(srv.l, items, srv.reporter), mw)
	commentHTTP.RegisterRoutes(srv.gin.Group("/items"), commentHTTP.New(srv.l, comments, srv.reporter), mw)
	requestHTTP.RegisterRoutes(srv.gin.Group("/requests"), requestHTTP.New(srv.l, requests, srv.reporter), mw)
	bookingHTTP.RegisterRoutes(srv.gin.Group("/bookings"), bookingHTTP.New(srv.l, bookings, srv.reporter), mw)

	if srv.calendar != nil {
		srv.l.Infof(ctx, "Booking calendar sync enabled")
	}
}
