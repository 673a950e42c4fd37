package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sharpfade/barbershop-api/internal/audit"
	"github.com/sharpfade/barbershop-api/internal/httperr"
	"github.com/sharpfade/barbershop-api/internal/middleware"
	"github.com/sharpfade/barbershop-api/internal/models"
	"github.com/sharpfade/barbershop-api/internal/payments"
)

// ======================================================
// HANDLER
// ======================================================

type OrderHandler struct {
	db       *gorm.DB
	payments *payments.Provider
	audit    *audit.Dispatcher
}

func NewOrderHandler(db *gorm.DB, p *payments.Provider, d *audit.Dispatcher) *OrderHandler {
	return &OrderHandler{db: db, payments: p, audit: d}
}

// ======================================================
// REQUESTS
// ======================================================

type OrderItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

type PublicCreateOrderRequest struct {
	ClientName  string             `json:"client_name" binding:"required"`
	ClientPhone string             `json:"client_phone" binding:"required"`
	ClientEmail string             `json:"client_email"`
	Items       []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE (PUBLIC)
// ======================================================

func (h *OrderHandler) PublicCreate(c *gin.Context) {
	slug := c.Param("slug")

	var shop models.Barbershop
	if err := h.db.Where("slug = ?", slug).First(&shop).Error; err != nil {
		httperr.NotFound(c, "barbershop_not_found", "Barbershop not found.")
		return
	}

	var req PublicCreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var client models.Client
	if err := h.db.
		Where("barbershop_id = ? AND phone = ?", shop.ID, req.ClientPhone).
		First(&client).Error; err != nil {

		client = models.Client{
			BarbershopID: shop.ID,
			Name:         req.ClientName,
			Phone:        req.ClientPhone,
			Email:        req.ClientEmail,
		}
		h.db.Create(&client)
	}

	var order models.Order

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var items []models.OrderItem
		var total float64

		for _, it := range req.Items {
			var product models.Product
			if err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ? AND barbershop_id = ? AND active = true", it.ProductID, shop.ID).
				First(&product).Error; err != nil {
				return httperr.ErrBusiness("product_not_found")
			}

			if product.Stock < it.Quantity {
				return httperr.ErrBusiness("insufficient_stock")
			}

			if err := tx.Model(&product).
				Update("stock", gorm.Expr("stock - ?", it.Quantity)).Error; err != nil {
				return err
			}

			items = append(items, models.OrderItem{
				ProductID: product.ID,
				Product:   product,
				Quantity:  it.Quantity,
				UnitPrice: product.Price,
			})
			total += product.Price * float64(it.Quantity)
		}

		order = models.Order{
			Number:       uuid.NewString(),
			BarbershopID: shop.ID,
			ClientID:     client.ID,
			Items:        items,
			Total:        total,
			Status:       "pending_payment",
		}

		return tx.Create(&order).Error
	})

	if err != nil {
		switch httperr.BusinessCode(err) {
		case "product_not_found":
			httperr.BadRequest(c, "product_not_found", "One of the products does not exist.")
		case "insufficient_stock":
			httperr.Conflict(c, "insufficient_stock", "Not enough stock for one of the products.")
		default:
			httperr.Internal(c, "failed_to_create_order", "Could not create the order.")
		}
		return
	}

	// Checkout link is best effort. The order stays payable from the
	// staff side when the provider is down or not configured.
	prefID, payURL, err := h.payments.CreatePreference(c.Request.Context(), &order)
	if err != nil {
		logCheckoutFailure(order.Number, err)
	} else if prefID != "" {
		order.PaymentPreferenceID = prefID
		order.PaymentURL = payURL
		h.db.Model(&order).Updates(map[string]any{
			"payment_preference_id": prefID,
			"payment_url":           payURL,
		})
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		Action:       "order_created",
		Entity:       "order",
		EntityID:     &order.ID,
		Metadata:     map[string]any{"number": order.Number, "total": order.Total},
	})

	c.JSON(http.StatusCreated, order)
}

// ======================================================
// LIST (STAFF)
// ======================================================

func (h *OrderHandler) List(c *gin.Context) {
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	status := strings.TrimSpace(c.Query("status"))

	q := h.db.
		Preload("Client").
		Preload("Items").
		Preload("Items.Product").
		Where("barbershop_id = ?", barbershopID)

	if status != "" {
		q = q.Where("status = ?", status)
	}

	var orders []models.Order
	if err := q.Order("created_at DESC").Find(&orders).Error; err != nil {
		httperr.Internal(c, "failed_to_list_orders", "Could not list orders.")
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ======================================================
// STATUS (STAFF)
// ======================================================

func logCheckoutFailure(orderNumber string, err error) {
	zap.L().Warn("checkout preference failed",
		zap.String("order", orderNumber),
		zap.Error(err),
	)
}

var orderTransitions = map[string][]string{
	"pending_payment": {"paid", "cancelled"},
	"paid":            {"fulfilled", "cancelled"},
}

func orderCanTransition(from, to string) bool {
	for _, allowed := range orderTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_order_id", "Invalid order id.")
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var order models.Order
	if err := h.db.
		Preload("Items").
		Where("id = ? AND barbershop_id = ?", id, barbershopID).
		First(&order).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "order_not_found", "Order not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_order", "Could not load order.")
		return
	}

	if !orderCanTransition(order.Status, req.Status) {
		httperr.BadRequest(c, "invalid_state", "The order cannot change to that status.")
		return
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		// Cancelling puts reserved stock back on the shelf.
		if req.Status == "cancelled" {
			for _, it := range order.Items {
				if err := tx.Model(&models.Product{}).
					Where("id = ?", it.ProductID).
					Update("stock", gorm.Expr("stock + ?", it.Quantity)).Error; err != nil {
					return err
				}
			}
		}

		order.Status = req.Status
		return tx.Save(&order).Error
	})

	if err != nil {
		httperr.Internal(c, "failed_to_update_order", "Could not update the order.")
		return
	}

	h.audit.Dispatch(audit.Event{
		BarbershopID: barbershopID,
		UserID:       &barberID,
		Action:       "order_" + req.Status,
		Entity:       "order",
		EntityID:     &order.ID,
	})

	c.JSON(http.StatusOK, order)
}
