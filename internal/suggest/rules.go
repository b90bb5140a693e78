package suggest

// Rule maps a category to the note keywords that imply it. Rules are
// evaluated in slice order and the first match wins, so overlapping
// keywords (e.g. "hotel" under both Mess/Food and Travel) resolve to the
// earlier rule. That enumeration-order tie-break is a load-bearing
// behavior, not an accident.
type Rule struct {
	CategoryID string
	Keywords   []string
}

// DefaultRules returns the built-in keyword table, ordered by category id.
func DefaultRules() []Rule {
	return []Rule{
		{CategoryID: "2", Keywords: []string{"zomato", "swiggy", "food", "restaurant", "hotel", "mess", "biryani", "pizza", "burger"}},
		{CategoryID: "3", Keywords: []string{"tiffin", "lunch", "breakfast", "dinner"}},
		{CategoryID: "4", Keywords: []string{"dmart", "big bazaar", "spencer", "reliance fresh", "grocery", "supermarket", "vegetables", "fruits"}},
		{CategoryID: "5", Keywords: []string{"phonepe", "paytm", "gpay", "amazon pay", "wallet", "upi"}},
		{CategoryID: "6", Keywords: []string{"uber", "ola", "metro", "auto", "bus", "taxi", "cab", "bmtc", "dmrc", "commute"}},
		{CategoryID: "7", Keywords: []string{"jio", "airtel", "vi", "vodafone", "idea", "mobile", "recharge", "data", "internet"}},
		{CategoryID: "8", Keywords: []string{"electricity", "water", "gas", "utility", "power", "bill"}},
		{CategoryID: "9", Keywords: []string{"movie", "cinema", "netflix", "prime", "hotstar", "entertainment", "game", "spotify"}},
		{CategoryID: "10", Keywords: []string{"pharmacy", "medicine", "doctor", "hospital", "health", "medical", "apollo"}},
		{CategoryID: "11", Keywords: []string{"amazon", "flipkart", "shopping", "myntra", "clothes", "shoes"}},
		{CategoryID: "12", Keywords: []string{"flight", "train", "hotel", "travel", "irctc", "makemytrip", "goibibo"}},
	}
}
