//go:build unit

package ticket_test

import (
	"strings"
	"testing"
	"time"

	"antriqu/internal/domain/ticket"
	"antriqu/internal/pkg/errs"
	"antriqu/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(ticket.Ticket{}),
}

type testCase struct {
	name   string
	mutate func(*builder.TicketBuilder)
	errIs  error
}

func TestNewTicket(t *testing.T) {
	t.Run("creates a waiting ticket", func(t *testing.T) {
		b := builder.NewTicketBuilder()
		actual, err := b.BuildNew()
		require.NoError(t, err)

		assert.Equal(t, b.ID, actual.ID())
		assert.Equal(t, "A-001", actual.DisplayNumber())
		assert.Equal(t, "Ana", actual.HolderName())
		assert.Equal(t, ticket.CategoryGeneral, actual.Category())
		assert.Equal(t, ticket.StatusWaiting, actual.Status())
		assert.Equal(t, builder.BaseTime, actual.CreatedAt())
		assert.Nil(t, actual.CalledAt())
		assert.Nil(t, actual.Counter())
	})

	t.Run("generates an id when none is given", func(t *testing.T) {
		actual, err := builder.NewTicketBuilder().With(func(b *builder.TicketBuilder) { b.ID = uuid.Nil }).BuildNew()
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, actual.ID())
	})

	t.Run("holder name", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "plain name OK", mutate: func(b *builder.TicketBuilder) { b.WithName("Budi") }},
			{name: "long name OK", mutate: func(b *builder.TicketBuilder) { b.WithName(strings.Repeat("x", 200)) }},
			{name: "empty name NG", mutate: func(b *builder.TicketBuilder) { b.WithName("") }, errIs: ticket.ErrEmptyHolderName},
			{name: "whitespace only NG", mutate: func(b *builder.TicketBuilder) { b.WithName("   \t") }, errIs: ticket.ErrEmptyHolderName},
		})
	})

	t.Run("category", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "finance OK", mutate: func(b *builder.TicketBuilder) { b.WithCategory(ticket.CategoryFinance) }},
			{name: "technical OK", mutate: func(b *builder.TicketBuilder) { b.WithCategory(ticket.CategoryTechnical) }},
			{name: "unknown NG", mutate: func(b *builder.TicketBuilder) { b.WithCategory("lounge") }, errIs: ticket.ErrInvalidCategory},
			{name: "empty NG", mutate: func(b *builder.TicketBuilder) { b.WithCategory("") }, errIs: ticket.ErrInvalidCategory},
		})
	})

	t.Run("surrounding whitespace is trimmed from the name", func(t *testing.T) {
		actual, err := builder.NewTicketBuilder().WithName("  Citra  ").BuildNew()
		require.NoError(t, err)
		assert.Equal(t, "Citra", actual.HolderName())
	})

	t.Run("validation errors are invalid input", func(t *testing.T) {
		_, err := builder.NewTicketBuilder().WithName("").BuildNew()
		assert.True(t, errs.Is(err, ticket.ErrInvalidInput))
	})
}

func TestReconstructTicket(t *testing.T) {
	t.Run("accessors return copies", func(t *testing.T) {
		actual := builder.NewTicketBuilder().CallingAt(2, time.Minute).BuildDomain()

		counter := actual.Counter()
		*counter = 99
		calledAt := actual.CalledAt()
		*calledAt = time.Time{}

		assert.Equal(t, 2, *actual.Counter())
		assert.Equal(t, builder.BaseTime.Add(time.Minute), *actual.CalledAt())
	})

	t.Run("round trips every field", func(t *testing.T) {
		b := builder.NewTicketBuilder().WithCategory(ticket.CategoryFinance).WithNumber("B-007").CallingAt(3, time.Hour)
		first := b.BuildDomain()
		second := ticket.ReconstructTicket(first.ID(), first.DisplayNumber(), first.HolderName(), first.Category(),
			first.Status(), first.CreatedAt(), first.CalledAt(), first.Counter())

		if diff := cmp.Diff(first, second, cmp.AllowUnexported(ticket.Ticket{})); diff != "" {
			t.Errorf("Ticket mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("IsCallingAt", func(t *testing.T) {
		calling := builder.NewTicketBuilder().CallingAt(2, time.Minute).BuildDomain()
		assert.True(t, calling.IsCallingAt(2))
		assert.False(t, calling.IsCallingAt(1))

		done := builder.NewTicketBuilder().CallingAt(2, time.Minute).Finished(ticket.StatusCompleted).BuildDomain()
		assert.False(t, done.IsCallingAt(2))
	})
}

func TestCategory(t *testing.T) {
	tests := []struct {
		category ticket.Category
		prefix   string
		label    string
	}{
		{ticket.CategoryGeneral, "A", "Umum"},
		{ticket.CategoryFinance, "B", "Keuangan"},
		{ticket.CategoryCustomerService, "C", "Customer Service"},
		{ticket.CategoryTechnical, "D", "Teknis"},
	}

	seen := map[string]bool{}
	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			assert.Equal(t, tt.prefix, tt.category.Prefix())
			assert.Equal(t, tt.label, tt.category.Label())
			assert.False(t, seen[tt.prefix], "prefix shared")
			seen[tt.prefix] = true
		})
	}

	assert.Equal(t, []ticket.Category{
		ticket.CategoryGeneral, ticket.CategoryFinance, ticket.CategoryCustomerService, ticket.CategoryTechnical,
	}, ticket.Categories())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			b := builder.NewTicketBuilder().With(c.mutate)
			actual, err := b.BuildNew()

			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, actual)
				if diff := cmp.Diff(b.BuildDomain(), actual, cmpOpts...); diff != "" {
					t.Errorf("Ticket mismatch (-want +got):\n%s", diff)
				}
				return
			}
			require.Error(t, err)
			assert.Nil(t, actual)
			assert.True(t, errs.Is(err, c.errIs), "want %v, got %v", c.errIs, err)
		})
	}
}
