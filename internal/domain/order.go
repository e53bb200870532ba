package domain

import (
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is a step of the linear order lifecycle
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "Placed"
	StatusPacked    OrderStatus = "Packed"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
)

// OrderStatuses lists the lifecycle in order
var OrderStatuses = []OrderStatus{StatusPlaced, StatusPacked, StatusShipped, StatusDelivered}

// Elapsed-time thresholds for the derived status timeline
const (
	packedAfter    = 90 * time.Second
	shippedAfter   = 3 * time.Minute
	deliveredAfter = 6 * time.Minute
)

// ShippingFlat is the flat shipping charge for any non-empty cart
const ShippingFlat = 15

// OrderIDPattern matches identifiers produced by NewOrderID
var OrderIDPattern = regexp.MustCompile(`^GT-[0-9A-F]{4}-[0-9A-F]{4}-[0-9A-Z]{4}$`)

// ParseOrderStatus accepts only the exact status literals.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// StatusRank is the position of s in the lifecycle, or -1 if unknown.
func StatusRank(s OrderStatus) int {
	for i, st := range OrderStatuses {
		if st == s {
			return i
		}
	}
	return -1
}

// DeriveStatus computes the display status from the time elapsed since
// creation. It never looks at the status stored on the order.
func DeriveStatus(createdAt, now time.Time) OrderStatus {
	elapsed := now.Sub(createdAt)
	switch {
	case elapsed < packedAfter:
		return StatusPlaced
	case elapsed < shippedAfter:
		return StatusPacked
	case elapsed < deliveredAfter:
		return StatusShipped
	default:
		return StatusDelivered
	}
}

// Address is the delivery address captured at checkout
type Address struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Line  string `json:"line"`
	City  string `json:"city"`
}

// Complete reports whether every address field is filled in.
func (a Address) Complete() bool {
	return a.Name != "" && a.Phone != "" && a.Line != "" && a.City != ""
}

// Totals are the client-computed money amounts of an order
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// LineItem is one (product, size) pair with its quantity, frozen at checkout
type LineItem struct {
	Key       string  `json:"key"`
	ProductID int64   `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Size      string  `json:"size"`
	Qty       int     `json:"qty"`
}

// Order is a placed order. Items is a snapshot of the cart and does not
// follow later product changes.
type Order struct {
	ID            string      `json:"id" db:"id"`
	UserID        int64       `json:"user_id" db:"user_id"`
	Status        OrderStatus `json:"status" db:"status"`
	Totals        Totals      `json:"totals"`
	Address       Address     `json:"address"`
	Items         []LineItem  `json:"items" db:"items_json"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	CustomerEmail *string     `json:"customer_email,omitempty" db:"user_email"`
}

// NewOrderID returns an id shaped GT-XXXX-YYYY-ZZZZ. XXXX and YYYY are
// independent random hex groups, ZZZZ the trailing base-36 digits of now in
// milliseconds.
func NewOrderID(now time.Time) string {
	return "GT-" + randomHexGroup() + "-" + randomHexGroup() + "-" + timestampGroup(now)
}

// NormalizeOrderID upper-cases a user supplied id before lookup.
func NormalizeOrderID(id string) string {
	return strings.ToUpper(strings.TrimSpace(id))
}

func randomHexGroup() string {
	// The first bytes of a v4 UUID carry no version or variant bits.
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:2]))
}

func timestampGroup(now time.Time) string {
	ts := strings.ToUpper(strconv.FormatInt(now.UnixMilli(), 36))
	if len(ts) < 4 {
		ts = strings.Repeat("0", 4-len(ts)) + ts
	}
	return ts[len(ts)-4:]
}
