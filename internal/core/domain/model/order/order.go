package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ordermanager/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderIDIsAssigned is returned when storage tries to assign an identity twice.
	ErrOrderIDIsAssigned = errors.New("order ID is already assigned")
)

// Field bounds shared with the request validation of the HTTP layer.
const (
	MinCustomerNameLength    = 2
	MaxCustomerNameLength    = 100
	MinProductNameLength     = 1
	MaxProductNameLength     = 200
	MinQuantity              = 1
	MaxQuantity              = 1000
	MinShippingAddressLength = 10
	MaxShippingAddressLength = 500
)

var (
	MinUnitPrice = decimal.RequireFromString("0.01")
	MaxUnitPrice = decimal.RequireFromString("999999.99")
)

// moneyScale is the number of decimal places kept for prices and totals.
const moneyScale = 2

var emailValidator = validator.New()

// Details holds the caller-supplied, mutable fields of an order.
type Details struct {
	CustomerName    string
	CustomerEmail   string
	ProductName     string
	Quantity        int
	UnitPrice       decimal.Decimal
	ShippingAddress string
}

// Order represents one customer purchase tracked through its status lifecycle.
//
// Order follows these invariants:
//   - Identity is assigned once by storage and never changes
//   - Details are always valid (see Details bounds)
//   - TotalAmount equals UnitPrice × Quantity after every PrepareForSave
//   - CreatedAt is set on the first save, UpdatedAt on every save
//
// Every mutation records a Change that is turned into a ChangedEvent once the
// surrounding transaction commits.
type Order struct {
	id          int64
	details     Details
	totalAmount decimal.Decimal
	status      Status
	createdAt   time.Time
	updatedAt   time.Time

	changes []Change

	isConstructed bool
}

// NewOrder creates a new, not yet persisted order.
//
// A status of Unknown defaults to Pending. Every field of details is validated
// and all violations are reported together.
//
// Example:
//
//	o, err := order.NewOrder(order.Details{
//	    CustomerName:    "John Doe",
//	    CustomerEmail:   "john@example.com",
//	    ProductName:     "Widget",
//	    Quantity:        2,
//	    UnitPrice:       decimal.RequireFromString("10.00"),
//	    ShippingAddress: "123 Main St City",
//	}, order.Unknown)
func NewOrder(details Details, status Status) (*Order, error) {
	if status == Unknown {
		status = Pending
	}

	o := &Order{isConstructed: true}
	if err := errors.Join(
		o.setDetails(details),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.totalAmount = CalculateTotal(o.details.UnitPrice, o.details.Quantity)
	o.record(ChangeCreated, Unknown)
	return o, nil
}

// RestoreOrder rebuilds a persisted order. It does not record a change.
// The stored total is ignored and recomputed from price and quantity.
func RestoreOrder(
	id int64,
	details Details,
	status Status,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}

	o := &Order{
		id:            id,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}
	if err := errors.Join(
		o.setDetails(details),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.totalAmount = CalculateTotal(o.details.UnitPrice, o.details.Quantity)
	return o, nil
}

// CalculateTotal returns unitPrice × quantity rounded to cents.
func CalculateTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity))).Round(moneyScale)
}

// Validate ensures the Order instance was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() int64 {
	return o.id
}

// IsNew reports whether the order has not been stored yet.
func (o *Order) IsNew() bool {
	return o.id == 0
}

func (o *Order) Details() Details {
	return o.details
}

func (o *Order) CustomerName() string {
	return o.details.CustomerName
}

func (o *Order) CustomerEmail() string {
	return o.details.CustomerEmail
}

func (o *Order) ProductName() string {
	return o.details.ProductName
}

func (o *Order) Quantity() int {
	return o.details.Quantity
}

func (o *Order) UnitPrice() decimal.Decimal {
	return o.details.UnitPrice
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) ShippingAddress() string {
	return o.details.ShippingAddress
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AssignID sets the storage-generated identity. It may only be called once.
func (o *Order) AssignID(id int64) error {
	if o.id != 0 {
		return ErrOrderIDIsAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", id))
	}
	o.id = id
	return nil
}

// Update overwrites every mutable field. A status of Unknown keeps the
// current status. The policy decides whether the order may be modified at all
// and whether the status change is accepted.
//
// On error the order is left unchanged.
func (o *Order) Update(details Details, status Status, policy TransitionPolicy) error {
	if err := policy.CheckModifiable(o.id, o.status); err != nil {
		return err
	}

	if status == Unknown {
		status = o.status
	}
	if err := policy.CheckTransition(o.status, status); err != nil {
		return err
	}

	candidate := &Order{}
	if err := candidate.setDetails(details); err != nil {
		return err
	}

	previous := o.status
	o.details = candidate.details
	o.status = status
	o.totalAmount = CalculateTotal(o.details.UnitPrice, o.details.Quantity)
	o.record(ChangeUpdated, previous)
	return nil
}

// ChangeStatus moves the order to status if the policy accepts it.
func (o *Order) ChangeStatus(status Status, policy TransitionPolicy) error {
	if err := policy.CheckTransition(o.status, status); err != nil {
		return err
	}

	previous := o.status
	o.status = status
	o.record(ChangeStatusChanged, previous)
	return nil
}

// MarkDeleted records the removal of the order.
func (o *Order) MarkDeleted() {
	o.record(ChangeDeleted, o.status)
}

// PrepareForSave recomputes the total and stamps timestamps. It must be
// called immediately before every persistence call.
func (o *Order) PrepareForSave(now time.Time) {
	now = now.UTC().Truncate(time.Microsecond)

	o.totalAmount = CalculateTotal(o.details.UnitPrice, o.details.Quantity)
	if o.createdAt.IsZero() {
		o.createdAt = now
	}
	o.updatedAt = now
}

// PendingChanges returns the changes recorded since the last ClearChanges.
func (o *Order) PendingChanges() []Change {
	return o.changes
}

// ClearChanges drops recorded changes once they have been published.
func (o *Order) ClearChanges() {
	o.changes = nil
}

func (o *Order) record(kind ChangeKind, previous Status) {
	o.changes = append(o.changes, Change{
		Kind:           kind,
		PreviousStatus: previous,
		OccurredAt:     time.Now().UTC(),
	})
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setDetails validates every field. Text is kept as sent: a value made only of
// whitespace counts as missing, and lengths include surrounding spaces.
func (o *Order) setDetails(d Details) error {
	if err := errors.Join(
		validateText("customerName", "Customer name", d.CustomerName, MinCustomerNameLength, MaxCustomerNameLength),
		validateEmail(d.CustomerEmail),
		validateText("productName", "Product name", d.ProductName, MinProductNameLength, MaxProductNameLength),
		validateQuantity(d.Quantity),
		validateUnitPrice(d.UnitPrice),
		validateText("shippingAddress", "Shipping address", d.ShippingAddress,
			MinShippingAddressLength, MaxShippingAddressLength),
	); err != nil {
		return err
	}

	d.UnitPrice = d.UnitPrice.Round(moneyScale)
	o.details = d
	return nil
}

func validateText(param, label, value string, minLen, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredErrorWithCause(param, fmt.Errorf("%s is required", label))
	}
	if n := utf8.RuneCountInString(value); n < minLen || n > maxLen {
		return errs.NewValueIsOutOfRangeErrorWithCause(param, n, minLen, maxLen,
			fmt.Errorf("%s must be between %d and %d characters", label, minLen, maxLen))
	}
	return nil
}

func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.NewValueIsRequiredErrorWithCause("customerEmail", errors.New("Customer email is required"))
	}
	if err := emailValidator.Var(email, "email"); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customerEmail",
			errors.New("Please provide a valid email address"))
	}
	return nil
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", errors.New("Quantity must be greater than 0"))
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeErrorWithCause("quantity", quantity, MinQuantity, MaxQuantity,
			fmt.Errorf("Quantity cannot exceed %d", MaxQuantity))
	}
	return nil
}

func validateUnitPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", errors.New("Unit price must be greater than 0"))
	}
	if price.LessThan(MinUnitPrice) || price.GreaterThan(MaxUnitPrice) {
		return errs.NewValueIsOutOfRangeErrorWithCause("unitPrice", price, MinUnitPrice, MaxUnitPrice,
			fmt.Errorf("Unit price must be between %s and %s", MinUnitPrice, MaxUnitPrice))
	}
	return nil
}
