package option_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-fp/option"
)

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestSome(t *testing.T) {
	o := option.Some(1)
	assert.True(t, o.IsDefined())
	assert.False(t, o.IsEmpty())
}

func TestSomeNilIsPresent(t *testing.T) {
	var p *int
	o := option.Some(p)
	assert.True(t, o.IsDefined(), "Some(nil) must stay present")
}

func TestNothing(t *testing.T) {
	o := option.Nothing[int]()
	assert.False(t, o.IsDefined())
	assert.True(t, o.IsEmpty())
}

func TestZeroValueIsNothing(t *testing.T) {
	var o option.Option[string]
	assert.True(t, o.IsEmpty())
}

func TestFrom(t *testing.T) {
	five := 5
	tests := []struct {
		name    string
		defined bool
		got     interface{ IsDefined() bool }
	}{
		{"nil pointer", false, option.From[*int](nil)},
		{"nil error", false, option.From[error](nil)},
		{"nil map", false, option.From[map[string]int](nil)},
		{"nil slice", false, option.From[[]int](nil)},
		{"nil func", false, option.From[func()](nil)},
		{"nil any", false, option.From[any](nil)},
		{"int", true, option.From(5)},
		{"zero int", true, option.From(0)},
		{"empty string", true, option.From("")},
		{"pointer", true, option.From(&five)},
		{"empty slice", true, option.From([]int{})},
		{"error", true, option.From(errors.New("boom"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.defined, tt.got.IsDefined())
		})
	}
}

func TestFromGet(t *testing.T) {
	v, err := option.From(5).Get()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestFromPtr(t *testing.T) {
	assert.True(t, option.FromPtr[int](nil).IsEmpty())

	n := 3
	o := option.FromPtr(&n)
	n = 4 // the Option holds a copy
	assert.Equal(t, 3, o.OrElse(0))
}

func TestFromOk(t *testing.T) {
	m := map[string]int{"a": 1}

	v, ok := m["a"]
	assert.Equal(t, option.Some(1), option.FromOk(v, ok))

	v, ok = m["b"]
	assert.True(t, option.FromOk(v, ok).IsEmpty())
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestGet(t *testing.T) {
	v, err := option.Some(2).Get()
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestGetOnNothing(t *testing.T) {
	v, err := option.Nothing[int]().Get()
	assert.ErrorIs(t, err, option.ErrInvalidState)
	assert.Zero(t, v)
}

func TestMustGet(t *testing.T) {
	assert.Equal(t, "x", option.Some("x").MustGet())
	assert.PanicsWithError(t, option.ErrInvalidState.Error(), func() {
		option.Nothing[string]().MustGet()
	})
}

func TestOrElse(t *testing.T) {
	assert.Equal(t, 2, option.Some(2).OrElse(3))
	assert.Equal(t, 2, option.Nothing[int]().OrElse(2))
}

func TestOrElseGet(t *testing.T) {
	called := false
	fallback := func() int {
		called = true
		return 9
	}

	assert.Equal(t, 1, option.Some(1).OrElseGet(fallback))
	assert.False(t, called, "fallback must not run for Some")

	assert.Equal(t, 9, option.Nothing[int]().OrElseGet(fallback))
	assert.True(t, called)
}

func TestUnwrap(t *testing.T) {
	v, ok := option.Some("a").Unwrap()
	assert.True(t, ok)
	assert.Equal(t, "a", v)

	v, ok = option.Nothing[string]().Unwrap()
	assert.False(t, ok)
	assert.Equal(t, "", v)
}

func TestToPtr(t *testing.T) {
	assert.Nil(t, option.Nothing[int]().ToPtr())

	p := option.Some(7).ToPtr()
	require.NotNil(t, p)
	assert.Equal(t, 7, *p)
}

func TestString(t *testing.T) {
	assert.Equal(t, "Some(42)", option.Some(42).String())
	assert.Equal(t, "Nothing", option.Nothing[int]().String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

func TestMapNothingRemainsNothing(t *testing.T) {
	called := false
	got := option.Map(option.Nothing[int](), func(int) int {
		called = true
		return 2
	})
	assert.True(t, got.IsEmpty())
	assert.False(t, called, "fn must not be called on Nothing")
}

func TestMapSome(t *testing.T) {
	three := option.Map(option.Some(2), func(int) int { return 3 })
	assert.Equal(t, 3, three.OrElse(1))
}

func TestMapChangesType(t *testing.T) {
	s := option.Map(option.Some(1), func(n int) string { return string(rune('0' + n)) })
	assert.Equal(t, "1", s.OrElse(""))
}

func TestMapPanicPropagates(t *testing.T) {
	assert.PanicsWithValue(t, "bad", func() {
		option.Map(option.Some(1), func(int) int { panic("bad") })
	})
}

func TestFlatMap(t *testing.T) {
	half := func(n int) option.Option[int] {
		if n%2 != 0 {
			return option.Nothing[int]()
		}
		return option.Some(n / 2)
	}
	assert.Equal(t, option.Some(2), option.FlatMap(option.Some(4), half))
	assert.True(t, option.FlatMap(option.Some(3), half).IsEmpty())
	assert.True(t, option.FlatMap(option.Nothing[int](), half).IsEmpty())
}

func TestFilter(t *testing.T) {
	even := func(n int) bool { return n%2 == 0 }
	assert.Equal(t, option.Some(2), option.Some(2).Filter(even))
	assert.True(t, option.Some(3).Filter(even).IsEmpty())
	assert.True(t, option.Nothing[int]().Filter(even).IsEmpty())
}

func TestOr(t *testing.T) {
	assert.Equal(t, option.Some(1), option.Some(1).Or(option.Some(2)))
	assert.Equal(t, option.Some(2), option.Nothing[int]().Or(option.Some(2)))
}

func TestMatch(t *testing.T) {
	describe := func(o option.Option[int]) string {
		return option.Match(o,
			func(n int) string { return "some" },
			func() string { return "none" },
		)
	}
	assert.Equal(t, "some", describe(option.Some(1)))
	assert.Equal(t, "none", describe(option.Nothing[int]()))
}

func TestEqual(t *testing.T) {
	assert.True(t, option.Equal(option.Some(1), option.Some(1)))
	assert.False(t, option.Equal(option.Some(1), option.Some(2)))
	assert.False(t, option.Equal(option.Some(0), option.Nothing[int]()))
	assert.True(t, option.Equal(option.Nothing[int](), option.Nothing[int]()))
}
