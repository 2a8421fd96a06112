package ticket

import "antriqu/internal/pkg/errs"

var (
	ErrInvalidInput      = errs.New("invalid input")
	ErrNotFound          = errs.New("ticket not found")
	ErrInvalidTransition = errs.New("invalid ticket transition")
	ErrDuplicateID       = errs.New("duplicate ticket id")

	// ErrCorruptedCollection marks a restored collection that no sequence of transitions could produce.
	ErrCorruptedCollection = errs.New("corrupted ticket collection")

	ErrEmptyHolderName = errs.Mark(errs.New("holder name cannot be empty"), ErrInvalidInput)
	ErrInvalidCategory = errs.Mark(errs.New("invalid service category"), ErrInvalidInput)
	ErrInvalidStatus   = errs.Mark(errs.New("invalid ticket status"), ErrInvalidInput)
	ErrInvalidCounter  = errs.Mark(errs.New("counter must be a positive integer"), ErrInvalidInput)
)

type Status string

const (
	StatusWaiting   Status = "waiting"
	StatusCalling   Status = "calling"
	StatusCompleted Status = "completed"
	StatusSkipped   Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusCalling, StatusCompleted, StatusSkipped:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition may leave s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusSkipped
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

type Category string

const (
	CategoryGeneral         Category = "general"
	CategoryFinance         Category = "finance"
	CategoryCustomerService Category = "customer_service"
	CategoryTechnical       Category = "technical"
)

type categoryInfo struct {
	prefix string
	label  string
}

var categories = map[Category]categoryInfo{
	CategoryGeneral:         {prefix: "A", label: "Umum"},
	CategoryFinance:         {prefix: "B", label: "Keuangan"},
	CategoryCustomerService: {prefix: "C", label: "Customer Service"},
	CategoryTechnical:       {prefix: "D", label: "Teknis"},
}

// Categories lists every service category in prefix order.
func Categories() []Category {
	return []Category{CategoryGeneral, CategoryFinance, CategoryCustomerService, CategoryTechnical}
}

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	_, ok := categories[c]
	return ok
}

func (c Category) Prefix() string {
	return categories[c].prefix
}

func (c Category) Label() string {
	return categories[c].label
}

func NewCategory(s string) (Category, error) {
	category := Category(s)
	if !category.IsValid() {
		return "", ErrInvalidCategory
	}
	return category, nil
}
