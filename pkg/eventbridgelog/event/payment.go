package event

import (
	"github.com/shopspring/decimal"
)

// PaymentProcessedEvent is emitted when a processor captures a payment.
type PaymentProcessedEvent struct {
	BaseEvent
	PaymentID        string           `json:"payment_id"`
	OrderID          string           `json:"order_id"`
	OrderNumber      string           `json:"order_number"`
	PaymentMethod    string           `json:"payment_method"`
	PaymentAmount    decimal.Decimal  `json:"payment_amount"`
	PaymentCurrency  string           `json:"payment_currency"`
	TransactionID    string           `json:"transaction_id"`
	Processor        string           `json:"processor"`
	ProcessingTimeMs int              `json:"processing_time_ms"`
	CustomerID       string           `json:"customer_id"`
	CustomerEmail    string           `json:"customer_email"`
	FeeAmount        *decimal.Decimal `json:"fee_amount,omitempty"`
}

// NewPaymentProcessedEvent validates fields and builds a PaymentProcessedEvent.
func NewPaymentProcessedEvent(fields Fields) (*PaymentProcessedEvent, error) {
	r := newReader(fields)
	e := &PaymentProcessedEvent{
		BaseEvent:        r.base(PaymentProcessed, false),
		PaymentID:        r.requiredString("payment_id"),
		OrderID:          r.requiredString("order_id"),
		OrderNumber:      r.requiredString("order_number"),
		PaymentMethod:    r.requiredString("payment_method"),
		PaymentAmount:    r.requiredDecimal("payment_amount"),
		PaymentCurrency:  r.stringDefault("payment_currency", "USD"),
		TransactionID:    r.requiredString("transaction_id"),
		Processor:        r.requiredString("processor"),
		ProcessingTimeMs: r.requiredInt("processing_time_ms"),
		CustomerID:       r.requiredString("customer_id"),
		CustomerEmail:    r.requiredEmail("customer_email"),
		FeeAmount:        r.optionalDecimal("fee_amount"),
	}
	r.nonNegativeDecimal("payment_amount", e.PaymentAmount)
	r.minInt("processing_time_ms", e.ProcessingTimeMs, 0)
	r.nonNegativeDecimalPtr("fee_amount", e.FeeAmount)
	if err := r.err("PaymentProcessedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// Amount is an alias for PaymentAmount.
func (e *PaymentProcessedEvent) Amount() decimal.Decimal {
	return e.PaymentAmount
}

// Currency is an alias for PaymentCurrency.
func (e *PaymentProcessedEvent) Currency() string {
	return e.PaymentCurrency
}

// PaymentFailedEvent is emitted when a processor declines or errors.
type PaymentFailedEvent struct {
	BaseEvent
	PaymentID       string          `json:"payment_id"`
	OrderID         string          `json:"order_id"`
	PaymentMethod   string          `json:"payment_method"`
	PaymentAmount   decimal.Decimal `json:"payment_amount"`
	PaymentCurrency string          `json:"payment_currency"`
	Processor       string          `json:"processor"`
	FailureReason   string          `json:"failure_reason"`
	FailureCode     string          `json:"failure_code,omitempty"`
	RetryCount      int             `json:"retry_count"`
	IsRetryable     bool            `json:"is_retryable"`
}

// NewPaymentFailedEvent validates fields and builds a PaymentFailedEvent.
func NewPaymentFailedEvent(fields Fields) (*PaymentFailedEvent, error) {
	r := newReader(fields)
	e := &PaymentFailedEvent{
		BaseEvent:       r.base(PaymentFailed, false),
		PaymentID:       r.requiredString("payment_id"),
		OrderID:         r.requiredString("order_id"),
		PaymentMethod:   r.requiredString("payment_method"),
		PaymentAmount:   r.requiredDecimal("payment_amount"),
		PaymentCurrency: r.stringDefault("payment_currency", "USD"),
		Processor:       r.requiredString("processor"),
		FailureReason:   r.requiredString("failure_reason"),
		FailureCode:     r.optionalString("failure_code"),
		RetryCount:      r.intDefault("retry_count", 0),
		IsRetryable:     r.boolDefault("is_retryable", false),
	}
	r.nonNegativeDecimal("payment_amount", e.PaymentAmount)
	r.minInt("retry_count", e.RetryCount, 0)
	if err := r.err("PaymentFailedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}

// PaymentRefundedEvent is emitted when money is returned to the customer.
type PaymentRefundedEvent struct {
	BaseEvent
	RefundID       string          `json:"refund_id"`
	PaymentID      string          `json:"payment_id"`
	OrderID        string          `json:"order_id"`
	RefundAmount   decimal.Decimal `json:"refund_amount"`
	OriginalAmount decimal.Decimal `json:"original_amount"`
	RefundCurrency string          `json:"refund_currency"`
	RefundReason   string          `json:"refund_reason"`
	Processor      string          `json:"processor"`
	IsPartial      bool            `json:"is_partial"`
}

// NewPaymentRefundedEvent validates fields and builds a PaymentRefundedEvent.
// A refund may not exceed the original amount.
func NewPaymentRefundedEvent(fields Fields) (*PaymentRefundedEvent, error) {
	r := newReader(fields)
	e := &PaymentRefundedEvent{
		BaseEvent:      r.base(PaymentRefunded, false),
		RefundID:       r.requiredString("refund_id"),
		PaymentID:      r.requiredString("payment_id"),
		OrderID:        r.requiredString("order_id"),
		RefundAmount:   r.requiredDecimal("refund_amount"),
		OriginalAmount: r.requiredDecimal("original_amount"),
		RefundCurrency: r.stringDefault("refund_currency", "USD"),
		RefundReason:   r.requiredString("refund_reason"),
		Processor:      r.requiredString("processor"),
		IsPartial:      r.boolDefault("is_partial", false),
	}
	r.nonNegativeDecimal("refund_amount", e.RefundAmount)
	r.nonNegativeDecimal("original_amount", e.OriginalAmount)
	if e.RefundAmount.GreaterThan(e.OriginalAmount) {
		r.fail("refund_amount", "must not exceed original_amount", e.RefundAmount.String())
	}
	if err := r.err("PaymentRefundedEvent"); err != nil {
		return nil, err
	}
	return e, nil
}
