package maxkit_test

import (
	"cmp"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"go.llib.dev/featurebook/pkg/maxkit"
	"go.llib.dev/featurebook/pkg/pointer"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/let"
)

func ExampleOf() {
	fmt.Println(maxkit.Of(7, 42))
	fmt.Println(maxkit.Of(42, 7))
	fmt.Println(maxkit.Of("abc", "def"))
	fmt.Println(maxkit.Of(6.7, 7.22))
	// Output:
	// 42
	// 42
	// def
	// 7.22
}

func ExamplePointee() {
	x, y := 7, 42
	fmt.Println(maxkit.Pointee(&x, &y))
	// Output:
	// 42
}

func TestOf(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		a = let.Int(s)
		b = let.Int(s)
	)
	act := let.Act(func(t *testcase.T) int {
		return maxkit.Of(a.Get(t), b.Get(t))
	})

	s.Then("the result is not less than either operand", func(t *testcase.T) {
		got := act(t)
		assert.True(t, a.Get(t) <= got)
		assert.True(t, b.Get(t) <= got)
	})

	s.Then("the result is one of the operands", func(t *testcase.T) {
		got := act(t)
		assert.True(t, got == a.Get(t) || got == b.Get(t))
	})

	s.Then("the operand order does not matter", func(t *testcase.T) {
		assert.Equal(t, act(t), maxkit.Of(b.Get(t), a.Get(t)))
	})

	s.When("a is less than b", func(s *testcase.Spec) {
		a.LetValue(s, 7)
		b.LetValue(s, 42)

		s.Then("b is returned", func(t *testcase.T) {
			assert.Equal(t, 42, act(t))
		})
	})

	s.When("a is greater than b", func(s *testcase.Spec) {
		a.LetValue(s, 42)
		b.LetValue(s, 7)

		s.Then("a is returned", func(t *testcase.T) {
			assert.Equal(t, 42, act(t))
		})
	})
}

func TestOf_strings(t *testing.T) {
	assert.Equal(t, "def", maxkit.Of("abc", "def"))
	assert.Equal(t, "def", maxkit.Of("def", "abc"))
}

func TestOf_floats(t *testing.T) {
	assert.Equal(t, 7.22, maxkit.Of(6.7, 7.22))
}

type version struct{ major, minor int }

func (v version) Compare(o version) int {
	if c := cmp.Compare(v.major, o.major); c != 0 {
		return c
	}
	return cmp.Compare(v.minor, o.minor)
}

func TestOfFunc(t *testing.T) {
	a, b := version{1, 2}, version{1, 10}
	assert.Equal(t, b, maxkit.OfFunc(a, b))
	assert.Equal(t, b, maxkit.OfFunc(b, a))
	assert.Equal(t, b, maxkit.PointeeFunc(&a, &b))
}

func TestPointee(t *testing.T) {
	s := testcase.NewSpec(t)

	var (
		x = let.Int(s)
		y = let.Int(s)
	)

	s.Then("the result equals the comparison of the referenced values", func(t *testcase.T) {
		xv, yv := x.Get(t), y.Get(t)
		assert.Equal(t, maxkit.Of(xv, yv), maxkit.Pointee(&xv, &yv))
	})

	s.When("the values are 7 and 42", func(s *testcase.Spec) {
		x.LetValue(s, 7)
		y.LetValue(s, 42)

		s.Then("42 is returned by value", func(t *testcase.T) {
			xv, yv := x.Get(t), y.Get(t)
			assert.Equal(t, 42, maxkit.Pointee(&xv, &yv))
			assert.Equal(t, 42, maxkit.Pointee(&yv, &xv))
		})
	})
}

func TestPointee_nil(t *testing.T) {
	var x = 42
	for name, args := range map[string][2]*int{
		"first operand is nil":  {nil, &x},
		"second operand is nil": {&x, nil},
		"both operands are nil": {nil, nil},
	} {
		t.Run(name, func(t *testing.T) {
			out := assert.Panic(t, func() { maxkit.Pointee(args[0], args[1]) })
			err, ok := out.(error)
			assert.True(t, ok)
			assert.True(t, errors.Is(err, maxkit.ErrNilPointer))
			assert.True(t, errors.Is(err, pointer.ErrNil))
			assert.Contain(t, err.Error(), "*int")
		})
	}
}

func TestPointee2(t *testing.T) {
	x, y := 7, 42
	px, py := &x, &y
	assert.Equal(t, 42, maxkit.Pointee2(&px, &py))

	var pnil *int
	assert.Panic(t, func() { maxkit.Pointee2(&px, &pnil) })
}

func TestIndirect(t *testing.T) {
	var a, b atomic.Pointer[int]
	a.Store(pointer.Of(18))
	b.Store(pointer.Of(42))
	assert.Equal(t, 42, maxkit.Indirect[*atomic.Pointer[int], int](&a, &b))

	t.Run("empty wrapper", func(t *testing.T) {
		var empty atomic.Pointer[int]
		out := assert.Panic(t, func() { maxkit.Indirect[*atomic.Pointer[int], int](&a, &empty) })
		assert.True(t, errors.Is(out.(error), maxkit.ErrNilPointer))
	})

	t.Run("nil wrapper", func(t *testing.T) {
		var nilWrapper *atomic.Pointer[int]
		out := assert.Panic(t, func() { maxkit.Indirect[*atomic.Pointer[int], int](nilWrapper, &b) })
		assert.True(t, errors.Is(out.(error), maxkit.ErrNilPointer))
	})
}
