package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseValueSegments(t *testing.T) {
	t.Run("amount only", func(t *testing.T) {
		v, err := parseValue("test.journal", []byte("$10.00"), 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, string(v.Amount.Body), "$10.00")
		assert.Zero(t, v.Eq)
		assert.Zero(t, v.At)
	})

	t.Run("empty value", func(t *testing.T) {
		v, err := parseValue("test.journal", nil, 1, 1)
		assert.NoError(t, err)
		assert.True(t, v.IsZero())
	})

	t.Run("amount assertion and price", func(t *testing.T) {
		v, err := parseValue("test.journal", []byte("$1 = $100 @ €0.9"), 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, string(v.Amount.Body), "$1")
		assert.Equal(t, string(v.Eq.Op), "=")
		assert.Equal(t, string(v.Eq.Body), "$100")
		assert.Equal(t, string(v.At.Op), "@")
		assert.Equal(t, string(v.At.Body), "€0.9")
	})

	t.Run("segments in any input order", func(t *testing.T) {
		v, err := parseValue("test.journal", []byte("$1 @ €0.9 = $100"), 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, string(v.Eq.Body), "$100")
		assert.Equal(t, string(v.At.Body), "€0.9")
	})

	t.Run("assertion without amount", func(t *testing.T) {
		v, err := parseValue("test.journal", []byte("= $100"), 1, 1)
		assert.NoError(t, err)
		assert.Zero(t, v.Amount)
		assert.Equal(t, string(v.Eq.Body), "$100")
	})
}

func TestParseValueOperators(t *testing.T) {
	tests := []struct {
		raw string
		op  string
	}{
		{"$1 = $2", "="},
		{"$1 == $2", "=="},
		{"$1 =* $2", "=*"},
		{"$1 ==* $2", "==*"},
	}
	for _, tt := range tests {
		t.Run(tt.op, func(t *testing.T) {
			v, err := parseValue("test.journal", []byte(tt.raw), 1, 1)
			assert.NoError(t, err)
			assert.Equal(t, string(v.Eq.Op), tt.op)
			assert.Equal(t, string(v.Eq.Body), "$2")
		})
	}

	t.Run("total price", func(t *testing.T) {
		v, err := parseValue("test.journal", []byte("2 VTI @@ $100"), 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, string(v.At.Op), "@@")
		assert.Equal(t, string(v.At.Body), "$100")
	})
}

func TestParseValueOperatorBoundaries(t *testing.T) {
	t.Run("equals inside a commodity is literal", func(t *testing.T) {
		v, err := parseValue("test.journal", []byte("1 USD=X"), 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, string(v.Amount.Body), "1 USD=X")
		assert.Zero(t, v.Eq)
	})

	t.Run("equals after whitespace opens an assertion", func(t *testing.T) {
		v, err := parseValue("test.journal", []byte("1 USD =2"), 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, string(v.Amount.Body), "1 USD")
		assert.Equal(t, string(v.Eq.Body), "2")
	})

	t.Run("at inside a quoted commodity is literal", func(t *testing.T) {
		v, err := parseValue("test.journal", []byte(`5 "a@b" @ $2`), 1, 1)
		assert.NoError(t, err)
		assert.Equal(t, string(v.Amount.Body), `5 "a@b"`)
		assert.Equal(t, string(v.At.Body), "$2")
	})
}

func TestParseValueErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		kind ErrorKind
	}{
		{"price without amount", "$1 @", MalformedAmount},
		{"assertion without amount", "$1 =", MalformedAmount},
		{"two assertions", "$1 = $2 == $3", DuplicateValueOperator},
		{"two prices", "$1 @ $2 @@ $3", DuplicateValueOperator},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseValue("test.journal", []byte(tt.raw), 1, 1)
			se, ok := err.(*SyntaxError)
			assert.True(t, ok)
			assert.Equal(t, se.Kind, tt.kind)
		})
	}
}

func TestSplitAmount(t *testing.T) {
	tests := []struct {
		body    string
		prefix  string
		integer string
	}{
		{"$10", "$", "10"},
		{"$-10", "$", "-10"},
		{"$ 10", "$", " 10"},
		{"$+10", "$", "+10"},
		{"10", "", "10"},
		{"-10", "", "-10"},
		{"1,234", "", "1,234"},
		{"1,234.56", "", "1,234"},
		{"1.234,56", "", "1.234"},
		{"10 EUR", "", "10"},
		{"2 VTI", "", "2"},
		{"VTI 5", "VTI", " 5"},
		{"€10.00", "€", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			prefix, integer := splitAmount([]byte(tt.body))
			assert.Equal(t, string(prefix), tt.prefix)
			assert.Equal(t, string(integer), tt.integer)
		})
	}
}

func TestNewSegmentWidths(t *testing.T) {
	seg, err := newSegment("test.journal", nil, []byte("€-1.234,56"), 1, 1)
	assert.NoError(t, err)
	assert.Equal(t, seg.Prefix, uint16(1))
	assert.Equal(t, seg.Integer, uint16(6))
	assert.Equal(t, seg.Fraction, uint16(3))
}
