package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryLowStockEvent is emitted when stock drops to or below the
// reorder threshold.
type InventoryLowStockEvent struct {
	BaseEvent
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	SKU             string `json:"sku"`
	CurrentStock    int    `json:"current_stock"`
	Threshold       int    `json:"threshold"`
	WarehouseID     string `json:"warehouse_id"`
	ReorderQuantity *int   `json:"reorder_quantity,omitempty"`
	SupplierID      string `json:"supplier_id,omitempty"`
}

// NewInventoryLowStockEvent validates fields and builds an InventoryLowStockEvent.
func NewInventoryLowStockEvent(fields Fields) (*InventoryLowStockEvent, error) {
	r := newReader(fields)
	e := &InventoryLowStockEvent{
		BaseEvent:       r.base(InventoryLowStock, false),
		ProductID:       r.requiredString("product_id"),
		ProductName:     r.requiredString("product_name"),
		SKU:             r.requiredString("sku"),
		CurrentStock:    r.requiredInt("current_stock"),
		Threshold:       r.requiredInt("threshold"),
		WarehouseID:     r.requiredString("warehouse_id"),
		ReorderQuantity: r.optionalInt("reorder_quantity"),
		SupplierID:      r.optionalString("supplier_id"),
	}
	r.minInt("current_stock", e.CurrentStock, 0)
	r.minInt("threshold", e.Threshold, 0)
	r.minIntPtr("reorder_quantity", e.ReorderQuantity, 1)
	if err := r.err("InventoryLowStockEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// InventoryOutOfStockEvent is emitted when a product has no stock left in
// a warehouse.
type InventoryOutOfStockEvent struct {
	BaseEvent
	ProductID           string     `json:"product_id"`
	ProductName         string     `json:"product_name"`
	SKU                 string     `json:"sku"`
	WarehouseID         string     `json:"warehouse_id"`
	LastStockDate       *time.Time `json:"last_stock_date,omitempty"`
	PendingOrders       int        `json:"pending_orders"`
	ExpectedRestockDate *time.Time `json:"expected_restock_date,omitempty"`
}

// NewInventoryOutOfStockEvent validates fields and builds an InventoryOutOfStockEvent.
func NewInventoryOutOfStockEvent(fields Fields) (*InventoryOutOfStockEvent, error) {
	r := newReader(fields)
	e := &InventoryOutOfStockEvent{
		BaseEvent:           r.base(InventoryOutOfStock, false),
		ProductID:           r.requiredString("product_id"),
		ProductName:         r.requiredString("product_name"),
		SKU:                 r.requiredString("sku"),
		WarehouseID:         r.requiredString("warehouse_id"),
		LastStockDate:       r.optionalTime("last_stock_date"),
		PendingOrders:       r.intDefault("pending_orders", 0),
		ExpectedRestockDate: r.optionalTime("expected_restock_date"),
	}
	r.minInt("pending_orders", e.PendingOrders, 0)
	if err := r.err("InventoryOutOfStockEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// InventoryRestockedEvent is emitted when stock is received.
type InventoryRestockedEvent struct {
	BaseEvent
	ProductID       string           `json:"product_id"`
	ProductName     string           `json:"product_name"`
	SKU             string           `json:"sku"`
	WarehouseID     string           `json:"warehouse_id"`
	QuantityAdded   int              `json:"quantity_added"`
	PreviousStock   int              `json:"previous_stock"`
	NewStock        int              `json:"new_stock"`
	SupplierID      string           `json:"supplier_id,omitempty"`
	UnitCost        *decimal.Decimal `json:"unit_cost,omitempty"`
	PurchaseOrderID string           `json:"purchase_order_id,omitempty"`
}

// NewInventoryRestockedEvent validates fields and builds an InventoryRestockedEvent.
func NewInventoryRestockedEvent(fields Fields) (*InventoryRestockedEvent, error) {
	r := newReader(fields)
	e := &InventoryRestockedEvent{
		BaseEvent:       r.base(InventoryRestocked, false),
		ProductID:       r.requiredString("product_id"),
		ProductName:     r.requiredString("product_name"),
		SKU:             r.requiredString("sku"),
		WarehouseID:     r.requiredString("warehouse_id"),
		QuantityAdded:   r.requiredInt("quantity_added"),
		PreviousStock:   r.requiredInt("previous_stock"),
		NewStock:        r.requiredInt("new_stock"),
		SupplierID:      r.optionalString("supplier_id"),
		UnitCost:        r.optionalDecimal("unit_cost"),
		PurchaseOrderID: r.optionalString("purchase_order_id"),
	}
	r.minInt("quantity_added", e.QuantityAdded, 1)
	r.minInt("previous_stock", e.PreviousStock, 0)
	r.minInt("new_stock", e.NewStock, 0)
	r.nonNegativeDecimalPtr("unit_cost", e.UnitCost)
	if err := r.err("InventoryRestockedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}
