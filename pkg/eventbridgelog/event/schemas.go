package event

func newDefaultRegistry() *Registry {
	r := NewRegistry()

	// User
	r.MustRegister(NewSchema(UserRegistered, NewUserRegisteredEvent,
		WithDescription("A new user account was created"),
		WithTags("user", "lifecycle", "pii"),
		WithExample(Fields{
			"user_id":             "user_123",
			"email":               "jane.doe@example.com",
			"username":            "janedoe",
			"first_name":          "Jane",
			"last_name":           "Doe",
			"registration_method": "email",
			"terms_accepted":      true,
			"marketing_consent":   false,
			"source":              "auth-service",
		}),
	))
	r.MustRegister(NewSchema(UserLogin, NewUserLoginEvent,
		WithDescription("A user attempted to log in"),
		WithTags("user", "auth", "security"),
		WithExample(Fields{
			"user_id":          "user_123",
			"session_id":       "sess_123",
			"login_method":     "password",
			"login_successful": true,
			"ip_address":       "192.168.1.1",
			"user_agent":       "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)",
			"mfa_used":         true,
			"source":           "auth-service",
		}),
	))
	r.MustRegister(NewSchema(UserLogout, NewUserLogoutEvent,
		WithDescription("A user session ended"),
		WithTags("user", "auth"),
		WithExample(Fields{
			"user_id":          "user_123",
			"session_id":       "sess_123",
			"logout_reason":    "user_initiated",
			"session_duration": 1800,
			"source":           "auth-service",
		}),
	))
	r.MustRegister(NewSchema(UserProfileUpdated, NewUserProfileUpdatedEvent,
		WithDescription("A user changed profile fields"),
		WithTags("user", "lifecycle", "pii"),
		WithExample(Fields{
			"user_id":         "user_123",
			"updated_fields":  []string{"first_name", "phone"},
			"previous_values": map[string]any{"first_name": "Jane", "phone": "555-0100"},
			"new_values":      map[string]any{"first_name": "Janet", "phone": "555-0199"},
			"update_source":   "account_settings",
			"source":          "user-service",
		}),
	))
	r.MustRegister(NewSchema(UserDeleted, NewUserDeletedEvent,
		WithDescription("A user account was deleted"),
		WithTags("user", "lifecycle", "compliance"),
		WithExample(Fields{
			"user_id":             "user_123",
			"deletion_reason":     "user_request",
			"deleted_by":          "user_123",
			"data_retention_days": 30,
			"hard_delete":         false,
			"source":              "user-service",
		}),
	))

	// Ecommerce
	r.MustRegister(NewSchema(ProductViewed, NewProductViewedEvent,
		WithDescription("A product detail page was shown"),
		WithTags("product", "engagement"),
		WithExample(Fields{
			"user_id":          "user_123",
			"product_id":       "prod_123",
			"product_name":     "Wireless Headphones",
			"product_category": "electronics",
			"product_price":    "149.99",
			"currency":         "USD",
			"product_brand":    "AudioCo",
			"is_authenticated": true,
			"view_source":      "search_results",
			"session_id":       "sess_123",
			"source":           "frontend",
		}),
	))
	r.MustRegister(NewSchema(ProductSearched, NewProductSearchedEvent,
		WithDescription("A catalogue search was performed"),
		WithTags("product", "engagement", "search"),
		WithExample(Fields{
			"user_id":       "user_123",
			"search_query":  "wireless headphones",
			"results_count": 42,
			"filters":       map[string]any{"category": "electronics", "max_price": 200},
			"sort_order":    "relevance",
			"page":          1,
			"session_id":    "sess_123",
			"source":        "frontend",
		}),
	))
	r.MustRegister(NewSchema(CartItemAdded, NewCartItemAddedEvent,
		WithDescription("A product was added to a cart"),
		WithTags("cart", "conversion"),
		WithExample(Fields{
			"user_id":      "user_123",
			"cart_id":      "cart_123",
			"product_id":   "prod_123",
			"product_name": "Wireless Headphones",
			"quantity":     2,
			"unit_price":   "149.99",
			"cart_total":   "299.98",
			"currency":     "USD",
			"source":       "cart-service",
		}),
	))
	r.MustRegister(NewSchema(CartItemRemoved, NewCartItemRemovedEvent,
		WithDescription("A product was removed from a cart"),
		WithTags("cart"),
		WithExample(Fields{
			"user_id":        "user_123",
			"cart_id":        "cart_123",
			"product_id":     "prod_123",
			"quantity":       1,
			"unit_price":     "149.99",
			"cart_total":     "149.99",
			"removal_reason": "changed_mind",
			"source":         "cart-service",
		}),
	))
	r.MustRegister(NewSchema(CartAbandoned, NewCartAbandonedEvent,
		WithDescription("A cart expired without checkout"),
		WithTags("cart", "conversion"),
		WithExample(Fields{
			"user_id":    "user_123",
			"cart_id":    "cart_123",
			"cart_total": "149.99",
			"item_count": 1,
			"items": []map[string]any{
				{"product_id": "prod_123", "quantity": 1, "unit_price": "149.99"},
			},
			"abandonment_stage":    "shipping",
			"time_in_cart_seconds": 3600,
			"source":               "cart-service",
		}),
	))
	r.MustRegister(NewSchema(OrderCreated, NewOrderCreatedEvent,
		WithDescription("An order was placed at checkout"),
		WithTags("order", "conversion", "revenue"),
		WithExample(Fields{
			"user_id":      "user_123",
			"order_id":     "order_123",
			"order_number": "ORD-2024-001",
			"order_total":  "299.98",
			"order_status": "created",
			"currency":     "USD",
			"items": []map[string]any{
				{"product_id": "prod_123", "quantity": 2, "unit_price": "149.99"},
			},
			"item_count":       2,
			"customer_email":   "jane.doe@example.com",
			"shipping_address": map[string]any{"line1": "1 Main St", "city": "Springfield", "country": "US"},
			"billing_address":  map[string]any{"line1": "1 Main St", "city": "Springfield", "country": "US"},
			"payment_method":   "credit_card",
			"shipping_method":  "standard",
			"tax_amount":       "24.00",
			"shipping_cost":    "5.99",
			"source":           "checkout-service",
		}),
	))
	r.MustRegister(NewSchema(OrderPaid, NewOrderPaidEvent,
		WithDescription("Payment for an order was captured"),
		WithTags("order", "revenue"),
		WithExample(Fields{
			"user_id":        "user_123",
			"order_id":       "order_123",
			"order_number":   "ORD-2024-001",
			"payment_id":     "pay_123",
			"payment_amount": "299.98",
			"payment_method": "credit_card",
			"currency":       "USD",
			"paid_at":        "2024-01-15T10:05:00Z",
			"source":         "checkout-service",
		}),
	))
	r.MustRegister(NewSchema(OrderShipped, NewOrderShippedEvent,
		WithDescription("An order left the warehouse"),
		WithTags("order", "fulfillment"),
		WithExample(Fields{
			"user_id":            "user_123",
			"order_id":           "order_123",
			"order_number":       "ORD-2024-001",
			"tracking_number":    "1Z999AA10123456784",
			"carrier":            "UPS",
			"shipping_method":    "standard",
			"estimated_delivery": "2024-01-18T17:00:00Z",
			"shipped_items": []map[string]any{
				{"product_id": "prod_123", "quantity": 2},
			},
			"source": "fulfillment-service",
		}),
	))
	r.MustRegister(NewSchema(OrderDelivered, NewOrderDeliveredEvent,
		WithDescription("An order was delivered"),
		WithTags("order", "fulfillment"),
		WithExample(Fields{
			"user_id":            "user_123",
			"order_id":           "order_123",
			"order_number":       "ORD-2024-001",
			"tracking_number":    "1Z999AA10123456784",
			"carrier":            "UPS",
			"delivered_at":       "2024-01-18T14:32:00Z",
			"delivery_signature": "J. Doe",
			"source":             "fulfillment-service",
		}),
	))
	r.MustRegister(NewSchema(OrderCancelled, NewOrderCancelledEvent,
		WithDescription("An order was cancelled"),
		WithTags("order", "revenue"),
		WithExample(Fields{
			"user_id":             "user_123",
			"order_id":            "order_123",
			"order_number":        "ORD-2024-001",
			"cancellation_reason": "customer_request",
			"cancelled_by":        "user_123",
			"refund_amount":       "299.98",
			"refund_issued":       true,
			"source":              "checkout-service",
		}),
	))

	// Inventory
	r.MustRegister(NewSchema(InventoryLowStock, NewInventoryLowStockEvent,
		WithDescription("Stock fell to or below the reorder threshold"),
		WithTags("inventory", "alert"),
		WithExample(Fields{
			"product_id":       "prod_123",
			"product_name":     "Wireless Headphones",
			"sku":              "WH-1000-BLK",
			"current_stock":    5,
			"threshold":        10,
			"warehouse_id":     "wh_east_1",
			"reorder_quantity": 100,
			"supplier_id":      "sup_42",
			"source":           "inventory-service",
		}),
	))
	r.MustRegister(NewSchema(InventoryOutOfStock, NewInventoryOutOfStockEvent,
		WithDescription("A product has no stock left in a warehouse"),
		WithTags("inventory", "alert"),
		WithExample(Fields{
			"product_id":            "prod_123",
			"product_name":          "Wireless Headphones",
			"sku":                   "WH-1000-BLK",
			"warehouse_id":          "wh_east_1",
			"last_stock_date":       "2024-01-14T23:10:00Z",
			"pending_orders":        3,
			"expected_restock_date": "2024-01-21T00:00:00Z",
			"source":                "inventory-service",
		}),
	))
	r.MustRegister(NewSchema(InventoryRestocked, NewInventoryRestockedEvent,
		WithDescription("Stock was received into a warehouse"),
		WithTags("inventory"),
		WithExample(Fields{
			"product_id":        "prod_123",
			"product_name":      "Wireless Headphones",
			"sku":               "WH-1000-BLK",
			"warehouse_id":      "wh_east_1",
			"quantity_added":    100,
			"previous_stock":    0,
			"new_stock":         100,
			"supplier_id":       "sup_42",
			"unit_cost":         "62.50",
			"purchase_order_id": "po_9001",
			"source":            "inventory-service",
		}),
	))

	// Payment
	r.MustRegister(NewSchema(PaymentProcessed, NewPaymentProcessedEvent,
		WithDescription("A payment was captured by the processor"),
		WithTags("payment", "revenue"),
		WithExample(Fields{
			"user_id":            "user_123",
			"payment_id":         "pay_123",
			"order_id":           "order_123",
			"order_number":       "ORD-2024-001",
			"payment_method":     "credit_card",
			"payment_amount":     "299.98",
			"payment_currency":   "USD",
			"transaction_id":     "txn_123",
			"processor":          "stripe",
			"processing_time_ms": 120,
			"customer_id":        "user_123",
			"customer_email":     "jane.doe@example.com",
			"fee_amount":         "8.99",
			"source":             "payment-service",
		}),
	))
	r.MustRegister(NewSchema(PaymentFailed, NewPaymentFailedEvent,
		WithDescription("A payment was declined or errored"),
		WithTags("payment", "alert"),
		WithExample(Fields{
			"user_id":          "user_123",
			"payment_id":       "pay_124",
			"order_id":         "order_123",
			"payment_method":   "credit_card",
			"payment_amount":   "299.98",
			"payment_currency": "USD",
			"processor":        "stripe",
			"failure_reason":   "card_declined",
			"failure_code":     "insufficient_funds",
			"retry_count":      1,
			"is_retryable":     true,
			"source":           "payment-service",
		}),
	))
	r.MustRegister(NewSchema(PaymentRefunded, NewPaymentRefundedEvent,
		WithDescription("Money was returned to the customer"),
		WithTags("payment", "revenue"),
		WithExample(Fields{
			"user_id":         "user_123",
			"refund_id":       "ref_123",
			"payment_id":      "pay_123",
			"order_id":        "order_123",
			"refund_amount":   "149.99",
			"original_amount": "299.98",
			"refund_currency": "USD",
			"refund_reason":   "item_returned",
			"processor":       "stripe",
			"is_partial":      true,
			"source":          "payment-service",
		}),
	))

	// Analytics
	r.MustRegister(NewSchema(ReviewSubmitted, NewReviewSubmittedEvent,
		WithDescription("A user submitted a product review"),
		WithTags("analytics", "engagement", "product"),
		WithExample(Fields{
			"review_id":         "rev_123",
			"product_id":        "prod_123",
			"product_name":      "Wireless Headphones",
			"rating":            5,
			"title":             "Excellent sound quality!",
			"content":           "These headphones have amazing sound quality and great battery life.",
			"reviewer_name":     "John Doe",
			"verified_purchase": true,
			"review_source":     "product_page",
			"helpful_votes":     12,
			"is_approved":       true,
			"source":            "frontend",
			"user_id":           "user_123",
		}),
	))
	r.MustRegister(NewSchema(UserSession, NewUserSessionEvent,
		WithDescription("Session tracking and engagement metrics"),
		WithTags("analytics", "engagement", "session"),
		WithExample(Fields{
			"session_id":        "sess_123",
			"session_start":     "2024-01-15T10:00:00Z",
			"session_end":       "2024-01-15T11:30:00Z",
			"session_duration":  5400,
			"user_agent":        "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)...",
			"ip_address":        "192.168.1.1",
			"device_type":       "desktop",
			"browser":           "Chrome 120.0.0.0",
			"operating_system":  "macOS 10.15.7",
			"country":           "US",
			"region":            "CA",
			"city":              "San Francisco",
			"page_views":        8,
			"actions_performed": 15,
			"conversion_events": []string{"add_to_cart", "view_product"},
			"time_on_site":      5400,
			"bounce_rate":       0.0,
			"source":            "analytics-service",
			"user_id":           "user_123",
		}),
	))
	r.MustRegister(NewSchema(PageView, NewPageViewEvent,
		WithDescription("A user viewed a page"),
		WithTags("analytics", "engagement"),
		WithExample(Fields{
			"page_url":        "https://example.com/products/wireless-headphones",
			"page_title":      "Wireless Headphones - Example Store",
			"page_category":   "product",
			"referrer_url":    "https://google.com/search?q=wireless+headphones",
			"referrer_domain": "google.com",
			"search_query":    "wireless headphones",
			"time_on_page":    45,
			"scroll_depth":    75.5,
			"page_load_time":  1200,
			"page_size":       256000,
			"content_type":    "product",
			"content_id":      "prod_123",
			"session_id":      "sess_123",
			"page_sequence":   3,
			"is_bounce":       false,
			"exit_page":       false,
			"source":          "frontend",
			"user_id":         "user_123",
		}),
	))

	return r
}
