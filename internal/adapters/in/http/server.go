package http

import (
	"errors"
	"net/http"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/generated/servers"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/validation"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createCustomerHandler  commands.CreateCustomerCommandHandler
	renameCustomerHandler  commands.RenameCustomerCommandHandler
	createPurchaseHandler  commands.CreatePurchaseCommandHandler
	addPurchaseLineHandler commands.AddPurchaseLineCommandHandler
	placePurchaseHandler   commands.PlacePurchaseCommandHandler

	// Query handlers
	getAllCustomersHandler       queries.GetAllCustomersQueryHandler
	getUnsettledPurchasesHandler queries.GetUnsettledPurchasesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createCustomerHandler commands.CreateCustomerCommandHandler,
	renameCustomerHandler commands.RenameCustomerCommandHandler,
	createPurchaseHandler commands.CreatePurchaseCommandHandler,
	addPurchaseLineHandler commands.AddPurchaseLineCommandHandler,
	placePurchaseHandler commands.PlacePurchaseCommandHandler,
	getAllCustomersHandler queries.GetAllCustomersQueryHandler,
	getUnsettledPurchasesHandler queries.GetUnsettledPurchasesQueryHandler,
) *Server {
	return &Server{
		createCustomerHandler:        createCustomerHandler,
		renameCustomerHandler:        renameCustomerHandler,
		createPurchaseHandler:        createPurchaseHandler,
		addPurchaseLineHandler:       addPurchaseLineHandler,
		placePurchaseHandler:         placePurchaseHandler,
		getAllCustomersHandler:       getAllCustomersHandler,
		getUnsettledPurchasesHandler: getUnsettledPurchasesHandler,
	}
}

// GetCustomers handles GET /api/v1/customers - retrieves all customers.
func (s *Server) GetCustomers(ctx echo.Context) error {
	query := queries.NewGetAllCustomersQuery()

	customers, err := s.getAllCustomersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve customers",
		})
	}

	response := make([]servers.Customer, len(customers))
	for i, customer := range customers {
		googleUUID := customer.ID.Bytes()

		response[i] = servers.Customer{
			Id:   googleUUID,
			Name: customer.Name,
			Age:  customer.Age,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCustomer handles POST /api/v1/customers - creates a new customer.
func (s *Server) CreateCustomer(ctx echo.Context) error {
	var newCustomer servers.NewCustomer
	if err := ctx.Bind(&newCustomer); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateCustomerCommand(newCustomer.Name, newCustomer.Age)
	if err != nil {
		return invalidDataResponse(ctx, "Invalid customer data", err)
	}

	if handleErr := s.createCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to create customer",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// RenameCustomer handles PUT /api/v1/customers/{customerId}/name - renames a customer.
func (s *Server) RenameCustomer(ctx echo.Context, customerId servers.CustomerId) error {
	customerID, err := kernel.UUIDFromBytes(customerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer identifier",
		})
	}

	var renameCustomer servers.RenameCustomer
	if err := ctx.Bind(&renameCustomer); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewRenameCustomerCommand(customerID, renameCustomer.Name)
	if err != nil {
		return invalidDataResponse(ctx, "Invalid customer data", err)
	}

	if handleErr := s.renameCustomerHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Customer not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to rename customer",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreatePurchase handles POST /api/v1/purchases - opens a new draft purchase.
func (s *Server) CreatePurchase(ctx echo.Context) error {
	var newPurchase servers.NewPurchase
	if err := ctx.Bind(&newPurchase); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromBytes(newPurchase.CustomerId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid customer identifier",
		})
	}

	cmd, err := commands.NewCreatePurchaseCommand(customerID)
	if err != nil {
		return invalidDataResponse(ctx, "Invalid purchase data", err)
	}

	if handleErr := s.createPurchaseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Customer not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to create purchase",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetPurchases handles GET /api/v1/purchases/active - retrieves unsettled purchases.
func (s *Server) GetPurchases(ctx echo.Context) error {
	query := queries.NewGetUnsettledPurchasesQuery()

	purchases, err := s.getUnsettledPurchasesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve purchases",
		})
	}

	response := make([]servers.Purchase, len(purchases))
	for i, p := range purchases {
		response[i] = servers.Purchase{
			Id:         p.ID.Bytes(),
			CustomerId: p.CustomerID.Bytes(),
			Status:     p.Status.String(),
			LineCount:  p.LineCount,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddPurchaseLine handles POST /api/v1/purchases/{purchaseId}/lines - adds a
// line to a draft purchase.
func (s *Server) AddPurchaseLine(ctx echo.Context, purchaseId servers.PurchaseId) error {
	purchaseID, err := kernel.UUIDFromBytes(purchaseId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid purchase identifier",
		})
	}

	var newLine servers.NewLine
	if err := ctx.Bind(&newLine); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewAddPurchaseLineCommand(
		purchaseID,
		newLine.Product,
		newLine.Quantity,
		newLine.PriceAmount,
		newLine.PriceCurrency,
	)
	if err != nil {
		return invalidDataResponse(ctx, "Invalid line data", err)
	}

	if handleErr := s.addPurchaseLineHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Purchase not found",
			})
		case errors.Is(handleErr, errs.ErrValueIsInvalid):
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "Purchase cannot be amended in its current status",
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, servers.Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to add purchase line",
			})
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PlacePurchase handles POST /api/v1/purchases/{purchaseId}/place - places a
// draft purchase.
func (s *Server) PlacePurchase(ctx echo.Context, purchaseId servers.PurchaseId) error {
	purchaseID, err := kernel.UUIDFromBytes(purchaseId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid purchase identifier",
		})
	}

	cmd, err := commands.NewPlacePurchaseCommand(purchaseID)
	if err != nil {
		return invalidDataResponse(ctx, "Invalid purchase data", err)
	}

	if handleErr := s.placePurchaseHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Purchase not found",
			})
		case errors.Is(handleErr, errs.ErrValueIsInvalid):
			return ctx.JSON(http.StatusConflict, servers.Error{
				Code:    http.StatusConflict,
				Message: "Purchase cannot be placed in its current status",
			})
		default:
			return ctx.JSON(http.StatusInternalServerError, servers.Error{
				Code:    http.StatusInternalServerError,
				Message: "Failed to place purchase",
			})
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// invalidDataResponse renders constructor failures. Aggregated rule violations
// become a 422 listing every violated attribute with its rule tags; anything
// else is a plain 400.
func invalidDataResponse(ctx echo.Context, message string, err error) error {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		violations := make(map[string][]string, len(vErr.Attributes()))
		for _, attribute := range vErr.Attributes() {
			kinds := vErr.Kinds(attribute)
			tags := make([]string, len(kinds))
			for i, kind := range kinds {
				tags[i] = string(kind)
			}
			violations[attribute] = tags
		}

		return ctx.JSON(http.StatusUnprocessableEntity, servers.ValidationError{
			Code:       http.StatusUnprocessableEntity,
			Message:    message,
			Violations: violations,
		})
	}

	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message + ": " + err.Error(),
	})
}
