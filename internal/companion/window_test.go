package companion

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendTurn_FIFOEviction(t *testing.T) {
	var history []Turn
	for i := 1; i <= 8; i++ {
		history = AppendTurn(history, Turn{Role: RoleUser, Content: fmt.Sprintf("t%d", i)}, 6)
	}

	require.Len(t, history, 6)
	for i, want := range []string{"t3", "t4", "t5", "t6", "t7", "t8"} {
		assert.Equal(t, want, history[i].Content)
	}
}

func TestAppendTurn_Unbounded(t *testing.T) {
	var history []Turn
	for i := 0; i < 20; i++ {
		history = AppendTurn(history, Turn{Role: RoleUser, Content: "x"}, 0)
	}
	assert.Len(t, history, 20)
}

func TestPromptMessages_ChronologicalOrder(t *testing.T) {
	history := []Turn{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
		{Role: RoleUser, Content: "how are you"},
	}

	msgs := PromptMessages(history)
	require.Len(t, msgs, 3)
	assert.Equal(t, "user", msgs[0].Role)
	assert.Equal(t, "hi", msgs[0].Content)
	assert.Equal(t, "assistant", msgs[1].Role)
	assert.Equal(t, "how are you", msgs[2].Content)
}
