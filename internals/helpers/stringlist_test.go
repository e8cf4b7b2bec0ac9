package helper

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListDecodeArray(t *testing.T) {
	var l StringList
	err := sonic.Unmarshal([]byte(`[" React ", "D3.js", "", "Node.js "]`), &l)
	require.NoError(t, err)
	assert.Equal(t, StringList{"React", "D3.js", "Node.js"}, l)
}

func TestStringListDecodeCommaString(t *testing.T) {
	var l StringList
	err := sonic.Unmarshal([]byte(`"React, D3.js , ,Weather API"`), &l)
	require.NoError(t, err)
	assert.Equal(t, StringList{"React", "D3.js", "Weather API"}, l)
}

func TestStringListDecodeInvalid(t *testing.T) {
	var l StringList
	err := sonic.Unmarshal([]byte(`{"nope": 1}`), &l)
	assert.Error(t, err)
}

func TestStringListInsideStruct(t *testing.T) {
	type payload struct {
		TechStack StringList `json:"tech_stack"`
	}

	var fromArray payload
	require.NoError(t, sonic.Unmarshal([]byte(`{"tech_stack":["Go","Fiber"]}`), &fromArray))
	assert.Equal(t, StringList{"Go", "Fiber"}, fromArray.TechStack)

	var fromString payload
	require.NoError(t, sonic.Unmarshal([]byte(`{"tech_stack":"Go, Fiber"}`), &fromString))
	assert.Equal(t, StringList{"Go", "Fiber"}, fromString.TechStack)
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitAndTrim(" a , b "))
	assert.Empty(t, SplitAndTrim("  ,  , "))
}

func TestTrimListKeepsOrder(t *testing.T) {
	assert.Equal(t, []string{"c", "a", "b"}, TrimList([]string{" c", "a ", "", " b "}))
}
