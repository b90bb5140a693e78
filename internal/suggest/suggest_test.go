package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	engine := NewDefaultEngine()

	tests := []struct {
		name  string
		note  string
		want  string
		match bool
	}{
		{name: "swiggy order", note: "Swiggy order", want: "2", match: true},
		{name: "uppercase keyword", note: "ZOMATO dinner treat", want: "2", match: true},
		{name: "tiffin", note: "morning tiffin", want: "3", match: true},
		{name: "groceries", note: "dmart run", want: "4", match: true},
		{name: "commute", note: "uber to office", want: "6", match: true},
		{name: "recharge", note: "jio recharge for the month", want: "7", match: true},
		{name: "electricity bill", note: "electricity bill may", want: "8", match: true},
		{name: "netflix", note: "netflix subscription", want: "9", match: true},
		{name: "pharmacy", note: "apollo pharmacy", want: "10", match: true},
		{name: "shopping", note: "flipkart sale", want: "11", match: true},
		{name: "train ticket", note: "irctc booking", want: "12", match: true},
		{name: "substring inside word", note: "caboose", want: "6", match: true},
		{name: "empty note", note: "", match: false},
		{name: "no keyword", note: "random text xyz", match: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := engine.Suggest(tt.note)
			require.Equal(t, tt.match, ok)
			if tt.match {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

// "hotel" appears under both Mess/Food ("2") and Travel ("12"). The rule
// table resolves the ambiguity by enumeration order, not specificity, so
// it must suggest Mess/Food. Changing this silently would break saved
// user expectations.
func TestSuggestAmbiguousKeywordResolvesByRuleOrder(t *testing.T) {
	engine := NewDefaultEngine()

	got, ok := engine.Suggest("taj hotel booking")
	require.True(t, ok)
	assert.Equal(t, "2", got)
}

func TestSuggestDeterministic(t *testing.T) {
	engine := NewDefaultEngine()

	first, ok1 := engine.Suggest("paytm wallet top-up")
	second, ok2 := engine.Suggest("paytm wallet top-up")
	require.True(t, ok1)
	require.True(t, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, "5", first)
}

func TestSuggestCustomRuleOrder(t *testing.T) {
	// Reversing rule order flips the winner for overlapping keywords.
	rules := []Rule{
		{CategoryID: "12", Keywords: []string{"hotel"}},
		{CategoryID: "2", Keywords: []string{"hotel"}},
	}
	engine := NewEngine(rules)

	got, ok := engine.Suggest("hotel stay")
	require.True(t, ok)
	assert.Equal(t, "12", got)
}
