package interval

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/henderiw/allen/pkg/compare"
	"github.com/stretchr/testify/assert"
)

var allowInt = cmp.AllowUnexported(Interval[int]{})

func TestIsEnclosing(t *testing.T) {
	cases := map[string]struct {
		i        Interval[int]
		is       []Interval[int]
		expected bool
	}{
		"Encloses": {
			i:        New(0, 10),
			is:       []Interval[int]{New(2, 4), New(1, 3)},
			expected: true,
		},
		"StartsTooLate": {
			i:        New(2, 10),
			is:       []Interval[int]{New(1, 3)},
			expected: false,
		},
		"EndsTooEarly": {
			i:        New(0, 3),
			is:       []Interval[int]{New(1, 4)},
			expected: false,
		},
		"TouchingBounds": {
			i:        New(1, 4),
			is:       []Interval[int]{New(1, 3), New(2, 4)},
			expected: true,
		},
		"IndefiniteStartElement": {
			i:        New(0, 10),
			is:       []Interval[int]{New(2, 4), Until(5)},
			expected: false,
		},
		"IndefiniteEndElement": {
			i:        New(0, 10),
			is:       []Interval[int]{From(5)},
			expected: false,
		},
		"IndefiniteEnclosing": {
			i:        From(0),
			is:       []Interval[int]{New(2, 4)},
			expected: false,
		},
		"FullyIndefiniteEnclosing": {
			i:        Indefinite[int](),
			is:       []Interval[int]{New(2, 4)},
			expected: false,
		},
		// an empty collection is vacuously enclosed, even by an indefinite
		// interval; IsMinimalEnclosing disagrees on purpose
		"EmptyIndefinite": {
			i:        Indefinite[int](),
			is:       nil,
			expected: true,
		},
		"EmptyDefinite": {
			i:        New(1, 2),
			is:       []Interval[int]{},
			expected: true,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsEnclosing(tc.i, tc.is, nil))
			assert.Equal(t, tc.expected, IsEnclosing(tc.i, tc.is, compare.Ordered[int]()))
		})
	}
}

func TestIsMinimalEnclosing(t *testing.T) {
	is := []Interval[int]{New(2, 4), New(1, 3)}

	cases := map[string]struct {
		i        Interval[int]
		is       []Interval[int]
		expected bool
	}{
		"Minimal":        {i: New(1, 4), is: is, expected: true},
		"StartTooLoose":  {i: New(0, 4), is: is, expected: false},
		"EndTooLoose":    {i: New(1, 5), is: is, expected: false},
		"NotEnclosing":   {i: New(2, 4), is: is, expected: false},
		"SingleInterval": {i: New(2, 4), is: []Interval[int]{New(2, 4)}, expected: true},
		"Indefinite":     {i: From(1), is: is, expected: false},
		// vacuous minimality is rejected, see EmptyIndefinite in TestIsEnclosing
		"EmptyIndefinite": {i: Indefinite[int](), is: nil, expected: false},
		"EmptyDefinite":   {i: New(1, 4), is: nil, expected: false},
		"IndefiniteStartElement": {
			i:        New(1, 4),
			is:       []Interval[int]{New(1, 4), Until(3)},
			expected: false,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, IsMinimalEnclosing(tc.i, tc.is, nil))
		})
	}
}

func TestMinimalEnclosing(t *testing.T) {
	cases := map[string]struct {
		is       []Interval[int]
		expected Interval[int]
	}{
		"Empty": {
			is:       nil,
			expected: Indefinite[int](),
		},
		"Single": {
			is:       []Interval[int]{New(3, 7)},
			expected: New(3, 7),
		},
		"Two": {
			is:       []Interval[int]{New(2, 4), New(1, 3)},
			expected: New(1, 4),
		},
		"Disjoint": {
			is:       []Interval[int]{New(20, 30), New(-5, -1), New(4, 6)},
			expected: New(-5, 30),
		},
		"IndefiniteStartFirst": {
			is:       []Interval[int]{Until(3), New(-10, 4)},
			expected: Until(4),
		},
		"IndefiniteStartLast": {
			is:       []Interval[int]{New(-10, 4), New(0, 2), Until(3)},
			expected: Until(4),
		},
		"IndefiniteEnd": {
			is:       []Interval[int]{New(2, 4), From(3), New(8, 9)},
			expected: From(2),
		},
		"BothIndefinite": {
			is:       []Interval[int]{Until(3), From(5)},
			expected: Indefinite[int](),
		},
		"OnlyIndefinite": {
			is:       []Interval[int]{Indefinite[int]()},
			expected: Indefinite[int](),
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := MinimalEnclosing(tc.is, nil)
			if diff := cmp.Diff(tc.expected, got, allowInt); diff != "" {
				t.Errorf("%s: -want, +got:\n%s", name, diff)
			}
			// the fold does not depend on the order of the input
			reversed := make([]Interval[int], 0, len(tc.is))
			for i := len(tc.is) - 1; i >= 0; i-- {
				reversed = append(reversed, tc.is[i])
			}
			if diff := cmp.Diff(tc.expected, MinimalEnclosing(reversed, nil), allowInt); diff != "" {
				t.Errorf("%s reversed: -want, +got:\n%s", name, diff)
			}
		})
	}
}

func TestMinimalEnclosingIsMinimal(t *testing.T) {
	cases := map[string][]Interval[int]{
		"Two":      {New(2, 4), New(1, 3)},
		"Nested":   {New(0, 10), New(2, 3)},
		"Disjoint": {New(0, 1), New(5, 6), New(8, 9)},
	}
	for name, is := range cases {
		t.Run(name, func(t *testing.T) {
			m := MinimalEnclosing(is, nil)
			assert.True(t, IsEnclosing(m, is, nil))
			assert.True(t, IsMinimalEnclosing(m, is, nil))
			for _, j := range is {
				assert.True(t, Relate(m, j, nil).Implies(Encloses), "%s relates to %s by %s", m, j, Relate(m, j, nil))
			}
		})
	}
}

func TestMinimalEnclosingIndefiniteStart(t *testing.T) {
	is := []Interval[int]{New(1, 2), Until(5), New(0, 3)}
	m := MinimalEnclosing(is, nil)
	assert.False(t, m.HasStart())
	for _, candidate := range []Interval[int]{New(0, 5), New(-100, 5), From(-100)} {
		assert.False(t, IsMinimalEnclosing(candidate, is, nil))
	}
}

func TestMinimalEnclosingTime(t *testing.T) {
	t0 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	is := []Interval[time.Time]{
		New(t0.Add(2*time.Hour), t0.Add(3*time.Hour)),
		New(t0, t0.Add(time.Hour)),
	}
	byMethod := compare.ByMethod[time.Time]()
	for _, fn := range []compare.Func[time.Time]{nil, byMethod} {
		m := MinimalEnclosing(is, fn)
		assert.True(t, m.Equal(New(t0, t0.Add(3*time.Hour)), byMethod))
		assert.True(t, IsMinimalEnclosing(m, is, fn))
	}
}

func TestIntervalAccessors(t *testing.T) {
	i := New(1, 5)
	s, ok := i.Start()
	assert.True(t, ok)
	assert.Equal(t, 1, s)
	e, ok := i.End()
	assert.True(t, ok)
	assert.Equal(t, 5, e)
	assert.True(t, i.IsDefinite())
	assert.Equal(t, "[1, 5]", i.String())

	open := i.WithoutEnd()
	assert.False(t, open.HasEnd())
	assert.True(t, i.HasEnd(), "intervals are values")
	assert.Equal(t, "[1, ?]", open.String())
	assert.Equal(t, "[?, ?]", Indefinite[int]().String())
	assert.True(t, Indefinite[int]().IsIndefinite())

	var nilStart *int
	five := 5
	p := New(nilStart, &five)
	assert.False(t, p.HasStart())
	assert.True(t, p.HasEnd())

	assert.True(t, New(1, 5).Equal(New(1, 5), nil))
	assert.False(t, New(1, 5).Equal(From(1), nil))
	assert.False(t, New(1, 5).Equal(New(1, 6), nil))
	assert.True(t, Until(5).Equal(Until(5), nil))
}
