package purchase

import (
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
	"purchasing/internal/pkg/immutable"
)

var (
	// ErrPurchaseIsNotConstructed is returned when a Purchase instance was not
	// created through the NewPurchase factory method.
	ErrPurchaseIsNotConstructed = errors.New("Purchase must be created via NewPurchase constructor")

	// ErrLineNotFound is returned when a line referenced by identity is not
	// part of the purchase.
	ErrLineNotFound = errors.New("line not found in this purchase")

	// ErrPurchaseHasNoLines is returned when placing or totalling a purchase
	// without lines.
	ErrPurchaseHasNoLines = errors.New("purchase has no lines")
)

// Purchase is the aggregate root of the purchasing domain. It holds an
// ordered collection of immutable lines and a lifecycle status.
//
// Purchase follows the clone-then-derive pattern: no operation mutates an
// existing instance. WithLine and WithReplacedLine derive a new purchase
// with a changed line collection; Place and Settle derive a new purchase in
// the next lifecycle state. Because every inserted line has already passed
// its own validating constructor, line-collection derivations operate on a
// deep clone directly; they cannot introduce an attribute the construction
// gate would have rejected.
//
// The line collection never aliases: accessors and derivations copy, so two
// purchase versions never share mutable state.
type Purchase struct {
	// id is the unique identifier of the purchase
	id kernel.UUID

	// customerID references the buying customer
	customerID kernel.UUID

	// status is the current lifecycle state
	status Status

	// lines is the ordered collection of purchase positions
	lines []*Line

	// guard ensures the purchase was created via a constructor
	guard guard.ConstructorGuard
}

// NewPurchase creates an empty Draft purchase for the given customer.
func NewPurchase(id kernel.UUID, customerID kernel.UUID) (*Purchase, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	return &Purchase{
		id:         id,
		customerID: customerID,
		status:     Draft,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestorePurchase reconstructs a Purchase from persistent storage, including
// its status and lines. All lines must be properly constructed.
func RestorePurchase(id kernel.UUID, customerID kernel.UUID, status Status, lines []*Line) (*Purchase, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := customerID.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
	}

	restored := &Purchase{
		id:         id,
		customerID: customerID,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}
	restored.lines = cloneLines(lines)
	return restored, nil
}

// Validate checks that the Purchase was created through a constructor.
func (p *Purchase) Validate() error {
	if p == nil {
		return ErrPurchaseIsNotConstructed
	}
	return p.guard.Validate(ErrPurchaseIsNotConstructed)
}

// IsEqual compares two purchases by identity.
func (p *Purchase) IsEqual(other *Purchase) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the purchase's unique identifier.
func (p *Purchase) ID() kernel.UUID {
	return p.id
}

// CustomerID returns the buying customer's identifier.
func (p *Purchase) CustomerID() kernel.UUID {
	return p.customerID
}

// Status returns the current lifecycle state.
func (p *Purchase) Status() Status {
	return p.status
}

// Lines returns the purchase's lines in order. The returned slice is a copy;
// the held collection cannot be modified through it.
func (p *Purchase) Lines() []*Line {
	out := make([]*Line, len(p.lines))
	copy(out, p.lines)
	return out
}

// Clone returns a structurally identical copy of the purchase. Lines are
// deep-copied, so the clone owns its collection outright.
func (p *Purchase) Clone() *Purchase {
	clone := *p
	clone.lines = cloneLines(p.lines)
	return &clone
}

// WithLine derives a new Purchase with line appended to the collection.
// The receiver keeps its collection unchanged. Only Draft purchases accept
// line changes.
func (p *Purchase) WithLine(line *Line) (*Purchase, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := line.Validate(); err != nil {
		return nil, err
	}
	if err := p.status.ValidateAmend(); err != nil {
		return nil, err
	}

	return immutable.Derive(p, func(clone *Purchase) {
		clone.lines = append(clone.lines, line.Clone())
	}), nil
}

// WithReplacedLine derives a new Purchase in which the line sharing the
// given line's identity is replaced at its position. The rest of the
// collection and the receiver are untouched. Returns ErrLineNotFound when no
// held line has that identity.
func (p *Purchase) WithReplacedLine(line *Line) (*Purchase, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := line.Validate(); err != nil {
		return nil, err
	}
	if err := p.status.ValidateAmend(); err != nil {
		return nil, err
	}

	index := -1
	for i, held := range p.lines {
		if held.IsEqual(line) {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrLineNotFound
	}

	return immutable.Derive(p, func(clone *Purchase) {
		clone.lines[index] = line.Clone()
	}), nil
}

// Place derives a new Purchase in Placed status. The purchase must be a
// Draft with at least one line. The receiver stays a Draft.
func (p *Purchase) Place() (*Purchase, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := p.status.Place()
	if err != nil {
		return nil, err
	}
	if len(p.lines) == 0 {
		return nil, ErrPurchaseHasNoLines
	}

	return immutable.Derive(p, func(clone *Purchase) {
		clone.status = newStatus
	}), nil
}

// Settle derives a new Purchase in Settled status. The purchase must be
// Placed. The receiver is unchanged.
func (p *Purchase) Settle() (*Purchase, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	newStatus, err := p.status.Settle()
	if err != nil {
		return nil, err
	}

	return immutable.Derive(p, func(clone *Purchase) {
		clone.status = newStatus
	}), nil
}

// Total sums the line totals. All lines of one purchase carry the same
// currency by construction of the API surface; mixing currencies surfaces as
// ErrCurrencyMismatch from the addition.
func (p *Purchase) Total() (kernel.Money, error) {
	if err := p.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if len(p.lines) == 0 {
		return kernel.Money{}, ErrPurchaseHasNoLines
	}

	total, err := p.lines[0].Total()
	if err != nil {
		return kernel.Money{}, err
	}
	for _, line := range p.lines[1:] {
		lineTotal, lineErr := line.Total()
		if lineErr != nil {
			return kernel.Money{}, lineErr
		}
		total, err = total.Add(lineTotal)
		if err != nil {
			return kernel.Money{}, err
		}
	}

	return total, nil
}

func cloneLines(lines []*Line) []*Line {
	if lines == nil {
		return nil
	}
	out := make([]*Line, len(lines))
	for i, line := range lines {
		out[i] = line.Clone()
	}
	return out
}
