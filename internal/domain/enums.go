package domain

// OrderType indicates whether an order buys or sells.
type OrderType string

const (
	OrderTypeBuy  OrderType = "BUY"
	OrderTypeSell OrderType = "SELL"
)

// Valid reports whether t is one of the known order types.
func (t OrderType) Valid() bool {
	switch t {
	case OrderTypeBuy, OrderTypeSell:
		return true
	}
	return false
}

// OrderStyle distinguishes market orders from limit orders.
type OrderStyle string

const (
	OrderStyleMarket OrderStyle = "MARKET"
	OrderStyleLimit  OrderStyle = "LIMIT"
)

// Valid reports whether s is one of the known order styles.
func (s OrderStyle) Valid() bool {
	switch s {
	case OrderStyleMarket, OrderStyleLimit:
		return true
	}
	return false
}

// OrderStatus represents the lifecycle state of an order.
// NEW and CANCELLED are reserved; orders are created PLACED and
// executed within the same request.
type OrderStatus string

const (
	OrderStatusNew       OrderStatus = "NEW"
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusExecuted  OrderStatus = "EXECUTED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// Valid reports whether s is one of the known order statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusNew, OrderStatusPlaced, OrderStatusExecuted, OrderStatusCancelled:
		return true
	}
	return false
}

// InstrumentType classifies a tradable instrument.
type InstrumentType string

const (
	InstrumentTypeEquity  InstrumentType = "EQUITY"
	InstrumentTypeFutures InstrumentType = "FUTURES"
	InstrumentTypeOptions InstrumentType = "OPTIONS"
)

// Valid reports whether t is one of the known instrument types.
func (t InstrumentType) Valid() bool {
	switch t {
	case InstrumentTypeEquity, InstrumentTypeFutures, InstrumentTypeOptions:
		return true
	}
	return false
}

// Exchange is the venue an instrument is listed on.
type Exchange string

const (
	ExchangeNSE Exchange = "NSE"
	ExchangeBSE Exchange = "BSE"
)

// Valid reports whether e is one of the known exchanges.
func (e Exchange) Valid() bool {
	switch e {
	case ExchangeNSE, ExchangeBSE:
		return true
	}
	return false
}
