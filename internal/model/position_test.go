package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_Constructors(t *testing.T) {
	testCases := []struct {
		name string
		got  Position
		want Position
	}{
		{"first", First(), Position{Mode: PositionFirst}},
		{"last", Last(), Position{Mode: PositionLast}},
		{"before", Before("company", "last_name"), Position{Mode: PositionBefore, Keys: []string{"company", "last_name"}}},
		{"after", After("country"), Position{Mode: PositionAfter, Keys: []string{"country"}}},
		{"before without keys degrades", Before(), Last()},
		{"after with blank keys degrades", After("", ""), Last()},
		{"blank keys are dropped", Before("", "company"), Position{Mode: PositionBefore, Keys: []string{"company"}}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.got)
		})
	}
}

func TestParsePosition(t *testing.T) {
	assert.Equal(t, First(), ParsePosition("first"))
	assert.Equal(t, First(), ParsePosition(" FIRST "))
	assert.Equal(t, Last(), ParsePosition("last"))
	assert.Equal(t, Last(), ParsePosition("somewhere"))
	assert.Equal(t, Last(), ParsePosition(""))
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "first", First().String())
	assert.Equal(t, "last", Last().String())
	assert.Equal(t, "before(company,last_name)", Before("company", "last_name").String())
	assert.Equal(t, "after(country)", After("country").String())
}
