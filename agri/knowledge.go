package agri

import (
	"regexp"
	"strings"
	"sync"
)

// KnowledgeEntry — one canned answer and the keywords that trigger it.
type KnowledgeEntry struct {
	Keywords []string
	Response string
}

// GreetingResponse doubles as the bot's opening line and the reply to a
// greeting.
const GreetingResponse = "Namaste! I'm your farming assistant. Ask me about crops, fertilizers, pests or prices."

// OfflineFallback is returned when no knowledge-base entry matches.
const OfflineFallback = "I'm using local knowledge. For better answers, please add a Google Gemini API Key in settings."

// KnowledgeBase is scanned top to bottom and the FIRST whole-word match wins.
// Declaration order is part of the contract: an input mentioning both wheat
// and a disease keyword gets the wheat answer because the wheat entry comes
// first. Do not reorder or convert to a map.
var KnowledgeBase = []KnowledgeEntry{
	{Keywords: []string{"hi", "hello", "namaste", "hey"}, Response: GreetingResponse},
	{Keywords: []string{"wheat", "gehu"}, Response: "Wheat is a Rabi crop. Best sown in Nov-Dec. Requires cool climate and 4-5 irrigations. Recommended variety: HD-2967."},
	{Keywords: []string{"rice", "paddy", "dhan"}, Response: "Paddy needs standing water. Transplanting is done in Kharif (June-July). Nitrogen application is crucial at tillering stage."},
	{Keywords: []string{"tomato", "tamatar"}, Response: "Tomatoes thrive in warm soil. Watch out for Early Blight. Staking helps improve fruit quality."},
	{Keywords: []string{"summer", "zaid"}, Response: "Best crops for summer (Zaid season) are Watermelon, Muskmelon, Cucumber, Pumpkin, and Moong Dal. Ensure good irrigation."},
	{Keywords: []string{"fertilizer", "khad", "urea", "npk"}, Response: "Soil testing is recommended before applying fertilizer. Generally, NPK 4:2:1 ratio is good for grains."},
	{Keywords: []string{"pest", "insect", "bug", "worm"}, Response: "For pests, first identify the insect. Neem oil spray is a good organic deterrent using 5ml/liter water. For severe infestation, consult a local expert."},
	{Keywords: []string{"anthracnose", "fungus", "fungicide", "blight", "rust", "disease"}, Response: "For fungal diseases like Anthracnose or Blight, you can use fungicides like Mancozeb (2.5g/L) or Carbendazim (1g/L). Ensure good drainage."},
	{Keywords: []string{"weather", "rain"}, Response: "I can't check live weather yet, but usually, monsoon starts in June. Ensure drainage if heavy rain is expected."},
	{Keywords: []string{"price", "rate", "mandi"}, Response: "For exact prices, please visit the 'Price Forecasting' section in the app. Prices change daily based on demand."},
}

var (
	keywordRe   = map[string]*regexp.Regexp{}
	keywordOnce sync.Once
)

func compileKeywords() {
	for _, entry := range KnowledgeBase {
		for _, kw := range entry.Keywords {
			keywordRe[kw] = regexp.MustCompile(`\b` + regexp.QuoteMeta(kw) + `\b`)
		}
	}
}

// MatchKnowledge scans the knowledge base in declaration order and returns
// the first entry with a whole-word keyword match. The fallback message is
// returned when nothing matches.
func MatchKnowledge(input string) string {
	keywordOnce.Do(compileKeywords)
	lower := strings.ToLower(input)
	for _, entry := range KnowledgeBase {
		for _, kw := range entry.Keywords {
			if keywordRe[kw].MatchString(lower) {
				return entry.Response
			}
		}
	}
	return OfflineFallback
}
