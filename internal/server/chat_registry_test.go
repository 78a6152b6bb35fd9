package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/portfolioai/internal/chat"
)

func TestChatRegistry_PutGetRemove(t *testing.T) {
	reg := newChatRegistry()
	id := uuid.New()

	assert.Nil(t, reg.get(id))

	session := &chatSession{userID: uuid.New(), title: "My Portfolio", intake: chat.NewIntake()}
	reg.put(id, session)
	require.Same(t, session, reg.get(id))

	reg.remove(id)
	assert.Nil(t, reg.get(id))
}

func TestChatRegistry_SessionsAreIndependent(t *testing.T) {
	reg := newChatRegistry()
	a, b := uuid.New(), uuid.New()

	reg.put(a, &chatSession{intake: chat.NewIntake()})
	reg.put(b, &chatSession{intake: chat.NewIntake()})

	require.NoError(t, reg.get(a).intake.Submit("Jane Doe"))

	done, total := reg.get(a).intake.Progress()
	assert.Equal(t, 1, done)
	assert.Equal(t, len(chat.DefaultQuestions), total)

	done, _ = reg.get(b).intake.Progress()
	assert.Zero(t, done, "answering in one session must not advance another")
}
