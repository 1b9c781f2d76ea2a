// Package http implements the inbound HTTP adapter. The Server type
// satisfies the generated ServerInterface and translates between the wire
// representation and the application's commands and queries.
package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/model/session"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
	"marketplace/internal/generated/servers"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerMerchantHandler  commands.RegisterMerchantCommandHandler
	registerBuyerHandler     commands.RegisterBuyerCommandHandler
	logInHandler             commands.LogInCommandHandler
	logOutHandler            commands.LogOutCommandHandler
	placeOrderHandler        commands.PlaceOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	deleteOrderHandler       commands.DeleteOrderCommandHandler

	// Query handlers
	getShopsHandler           queries.GetShopsQueryHandler
	getDashboardHandler       queries.GetMerchantDashboardQueryHandler
	getDashboardBuyersHandler queries.GetMerchantBuyerOrdersQueryHandler
	getBuyerOrdersHandler     queries.GetBuyerOrdersQueryHandler

	sessions ports.SessionStore
	policy   services.AccessPolicy
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	registerMerchantHandler commands.RegisterMerchantCommandHandler,
	registerBuyerHandler commands.RegisterBuyerCommandHandler,
	logInHandler commands.LogInCommandHandler,
	logOutHandler commands.LogOutCommandHandler,
	placeOrderHandler commands.PlaceOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getShopsHandler queries.GetShopsQueryHandler,
	getDashboardHandler queries.GetMerchantDashboardQueryHandler,
	getDashboardBuyersHandler queries.GetMerchantBuyerOrdersQueryHandler,
	getBuyerOrdersHandler queries.GetBuyerOrdersQueryHandler,
	sessions ports.SessionStore,
	policy services.AccessPolicy,
) *Server {
	return &Server{
		registerMerchantHandler:   registerMerchantHandler,
		registerBuyerHandler:      registerBuyerHandler,
		logInHandler:              logInHandler,
		logOutHandler:             logOutHandler,
		placeOrderHandler:         placeOrderHandler,
		changeOrderStatusHandler:  changeOrderStatusHandler,
		deleteOrderHandler:        deleteOrderHandler,
		getShopsHandler:           getShopsHandler,
		getDashboardHandler:       getDashboardHandler,
		getDashboardBuyersHandler: getDashboardBuyersHandler,
		getBuyerOrdersHandler:     getBuyerOrdersHandler,
		sessions:                  sessions,
		policy:                    policy,
	}
}

// RegisterMerchant handles POST /api/v1/merchants/register.
func (s *Server) RegisterMerchant(ctx echo.Context) error {
	var body servers.NewMerchant
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterMerchantCommand(kernel.NewUUID(), body.Username, body.Password, body.ShopName)
	if err != nil {
		return badRequest(ctx, "Invalid merchant data: "+err.Error())
	}

	if err := s.registerMerchantHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// RegisterBuyer handles POST /api/v1/buyers/register.
func (s *Server) RegisterBuyer(ctx echo.Context) error {
	var body servers.NewBuyer
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterBuyerCommand(kernel.NewUUID(), body.Username, body.Password)
	if err != nil {
		return badRequest(ctx, "Invalid buyer data: "+err.Error())
	}

	if err := s.registerBuyerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// LoginMerchant handles POST /api/v1/merchants/login.
func (s *Server) LoginMerchant(ctx echo.Context) error {
	return s.login(ctx, session.RoleMerchant)
}

// LoginBuyer handles POST /api/v1/buyers/login.
func (s *Server) LoginBuyer(ctx echo.Context) error {
	return s.login(ctx, session.RoleBuyer)
}

func (s *Server) login(ctx echo.Context, role session.Role) error {
	var body servers.Credentials
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewLogInCommand(role, body.Username, body.Password)
	if err != nil {
		return badRequest(ctx, "Invalid credentials payload: "+err.Error())
	}

	sess, err := s.logInHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.SessionToken{Token: sess.Token()})
}

// Logout handles POST /api/v1/logout.
func (s *Server) Logout(ctx echo.Context) error {
	token := bearerToken(ctx)
	if token == "" {
		return unauthorized(ctx)
	}

	cmd, err := commands.NewLogOutCommand(token)
	if err != nil {
		return unauthorized(ctx)
	}

	if err := s.logOutHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetShops handles GET /api/v1/shops.
func (s *Server) GetShops(ctx echo.Context) error {
	if _, err := s.authenticate(ctx, session.RoleBuyer); err != nil {
		return unauthorized(ctx)
	}

	shops, err := s.getShopsHandler.Handle(ctx.Request().Context(), queries.NewGetShopsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Shop, len(shops))
	for i, shop := range shops {
		response[i] = servers.Shop{Name: shop.ShopName}
	}

	return ctx.JSON(http.StatusOK, response)
}

// PlaceOrder handles POST /api/v1/shops/{shopName}/orders.
func (s *Server) PlaceOrder(ctx echo.Context, shopName string) error {
	sess, err := s.authenticate(ctx, session.RoleBuyer)
	if err != nil {
		return unauthorized(ctx)
	}

	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	pairs := make([]order.ItemPair, len(body.Items))
	for i, item := range body.Items {
		pairs[i] = order.ItemPair{Name: item.Name, Quantity: item.Qty}
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewPlaceOrderCommand(orderID, shopName, sess.Username(), pairs)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err := s.placeOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderId{Id: orderID.Bytes()})
}

// GetDashboard handles GET /api/v1/dashboard.
func (s *Server) GetDashboard(ctx echo.Context) error {
	sess, err := s.authenticate(ctx, session.RoleMerchant)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetMerchantDashboardQuery(sess.Username())
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getDashboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetDashboardBuyerOrders handles GET /api/v1/dashboard/buyers/{username}.
func (s *Server) GetDashboardBuyerOrders(ctx echo.Context, username string) error {
	sess, err := s.authenticate(ctx, session.RoleMerchant)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetMerchantBuyerOrdersQuery(sess.Username(), username)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getDashboardBuyersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// GetBuyerOrders handles GET /api/v1/orders.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	sess, err := s.authenticate(ctx, session.RoleBuyer)
	if err != nil {
		return unauthorized(ctx)
	}

	query, err := queries.NewGetBuyerOrdersQuery(sess.Username())
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getBuyerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(orders))
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	sess, err := s.authenticate(ctx, session.RoleMerchant)
	if err != nil {
		return unauthorized(ctx)
	}

	var body servers.StatusChange
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	newStatus, err := order.StatusFromString(string(body.Status))
	if err != nil {
		return badRequest(ctx, "Unknown status: "+string(body.Status))
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(id, sess.Username(), newStatus)
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	if err := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	sess, err := s.authenticate(ctx, session.RoleMerchant)
	if err != nil {
		return unauthorized(ctx)
	}

	id, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(id, sess.Username())
	if err != nil {
		return badRequest(ctx, "Invalid delete request: "+err.Error())
	}

	if err := s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// authenticate resolves the bearer token to a live session with the
// required role.
func (s *Server) authenticate(ctx echo.Context, role session.Role) (session.Session, error) {
	token := bearerToken(ctx)
	if token == "" {
		return session.Session{}, errs.NewUnauthorizedError("missing bearer token")
	}

	sess, err := s.sessions.Get(token)
	if err != nil {
		return session.Session{}, errs.NewUnauthorizedErrorWithCause("unknown session", err)
	}

	if err := s.policy.RequireRole(sess, role, time.Now()); err != nil {
		return session.Session{}, err
	}

	return sess, nil
}

func bearerToken(ctx echo.Context) string {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

func toOrderResponses(orders []queries.OrderResponse) []servers.Order {
	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		items := make([]servers.OrderItem, len(o.Items))
		for j, item := range o.Items {
			items[j] = servers.OrderItem{Name: item.Name(), Qty: item.Quantity()}
		}

		response[i] = servers.Order{
			Id:            o.ID.Bytes(),
			ShopName:      o.ShopName,
			BuyerUsername: o.BuyerUsername,
			Items:         items,
			Status:        servers.OrderStatus(o.Status.String()),
		}
	}
	return response
}

// writeError maps application errors to HTTP status codes. Ownership
// violations come back 403; a missing or stale session is 401 and is
// handled before commands run.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return jsonError(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrInvalidCredentials):
		return jsonError(ctx, http.StatusUnauthorized, err.Error())
	case errors.Is(err, errs.ErrUnauthorized):
		return jsonError(ctx, http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return jsonError(ctx, http.StatusBadRequest, err.Error())
	default:
		return jsonError(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func badRequest(ctx echo.Context, message string) error {
	return jsonError(ctx, http.StatusBadRequest, message)
}

func unauthorized(ctx echo.Context) error {
	return jsonError(ctx, http.StatusUnauthorized, "Authentication required")
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: message,
	})
}
