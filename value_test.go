package sortedlist

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKind(t *testing.T) {
	assert := assert.New(t)

	k, err := ParseKind("string")
	assert.Nil(err)
	assert.Equal(KindString, k)
	assert.Equal("string", k.String())

	k, err = ParseKind("integer")
	assert.Nil(err)
	assert.Equal(KindInteger, k)
	assert.Equal("integer", k.String())

	for _, name := range []string{"invalidType", "int", "String", ""} {
		k, err = ParseKind(name)
		assert.ErrorIs(err, ErrInvalidKind, name)
		assert.False(k.Valid())
	}
}

func TestOf(t *testing.T) {
	assert := assert.New(t)

	v, err := Of("10")
	assert.Nil(err)
	assert.Equal(KindString, v.Kind())
	assert.Equal("10", v.String())

	for _, x := range []any{int(10), int8(10), int16(10), int32(10), int64(10)} {
		v, err = Of(x)
		assert.Nil(err)
		assert.Equal(Int(10), v)
	}

	v, err = Of(Int(3))
	assert.Nil(err)
	assert.Equal(Int(3), v)

	for _, x := range []any{1.5, uint(1), []byte("a"), nil, true} {
		_, err = Of(x)
		assert.ErrorIs(err, ErrTypeMismatch)
	}
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		a, b Value
		want int
	}{
		{Int(1), Int(2), -1},
		{Int(2), Int(2), 0},
		{Int(3), Int(2), 1},
		{Int(-1 << 63), Int(1<<63 - 1), -1},
		{Int(1<<63 - 1), Int(-1 << 63), 1},
		{String("Symfony"), String("aweSome"), -1},
		{String("php"), String("php8.3"), -1},
		{String("linux"), String("linux"), 0},
		{String("linux2"), String("linux"), 1},
	}
	for _, c := range cases {
		got, err := c.a.Compare(c.b)
		assert.Nil(err)
		assert.Equal(c.want, sign(got), c)
	}

	_, err := Int(10).Compare(String("10"))
	assert.ErrorIs(err, ErrTypeMismatch)

	_, err = Value{}.Compare(Value{})
	assert.ErrorIs(err, ErrTypeMismatch)
}

func TestNodeCompare(t *testing.T) {
	assert := assert.New(t)

	a := &node{value: Int(1)}
	b := &node{value: Int(2)}
	c, err := a.compareNode(b)
	assert.Nil(err)
	assert.Negative(c)

	c, err = b.compareNode(a)
	assert.Nil(err)
	assert.Positive(c)

	_, err = a.compareNode(&node{value: String("1")})
	assert.ErrorIs(err, ErrTypeMismatch)
}

func TestLogValue(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	l := getList(t, KindString, strs("b", "a")...)
	logger.Info("list", "list", l, "value", String("a"), "num", Int(42))

	out := buf.String()
	assert.True(strings.Contains(out, "list.kind=string"), out)
	assert.True(strings.Contains(out, "list.size=2"), out)
	assert.True(strings.Contains(out, "value=a"), out)
	assert.True(strings.Contains(out, "num=42"), out)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}
