package agri

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKnowledge(t *testing.T) {
	wheatAnswer := KnowledgeBase[1].Response
	fungalAnswer := KnowledgeBase[7].Response

	t.Run("wheat entry wins over disease entry by table order", func(t *testing.T) {
		// "rust" is a fungal keyword, but the wheat entry is declared first
		// and the scan is first-match-wins.
		assert.Equal(t, wheatAnswer, MatchKnowledge("My wheat has rust"))
	})

	t.Run("fungal entry matches when no earlier entry does", func(t *testing.T) {
		assert.Equal(t, fungalAnswer, MatchKnowledge("how to treat leaf rust?"))
	})

	t.Run("whole words only", func(t *testing.T) {
		// "hi" inside "think" must not trigger the greeting
		assert.Equal(t, OfflineFallback, MatchKnowledge("thinking about irrigation pumps"))
	})

	t.Run("case insensitive", func(t *testing.T) {
		assert.Equal(t, GreetingResponse, MatchKnowledge("HELLO there"))
	})

	t.Run("no match falls back to the api-key hint", func(t *testing.T) {
		assert.Equal(t, OfflineFallback, MatchKnowledge("how do I fix my tractor engine"))
	})
}
