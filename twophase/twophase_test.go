package twophase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func recordSequence(p *Protocol, txID string, types ...MessageType) {
	for _, t := range types {
		sender, receiver := "coordinator", "participant1"
		if t == Prepared || t == Committed || t == Aborted {
			sender, receiver = receiver, sender
		}
		p.AddMessage(NewMessage(t, txID, sender, receiver))
	}
}

func TestCommitSequence(t *testing.T) {
	p := NewProtocol(zaptest.NewLogger(t))
	txID := NewTransactionID()

	recordSequence(p, txID, Prepare, Prepared, Commit, Committed)

	assert.True(t, p.ValidateSequence(txID))
	assert.Equal(t, StateCommitted, p.TransactionState(txID))
	require.Len(t, p.Messages(txID), 4)
}

func TestAbortSequence(t *testing.T) {
	p := NewProtocol(nil)
	txID := NewTransactionID()

	recordSequence(p, txID, Prepare, Prepared, Abort, Aborted)

	assert.True(t, p.ValidateSequence(txID))
	assert.Equal(t, StateAborted, p.TransactionState(txID))
}

func TestInvalidSequence(t *testing.T) {
	tests := []struct {
		name  string
		types []MessageType
	}{
		{name: "commit without prepared", types: []MessageType{Prepare, Commit}},
		{name: "committed after abort", types: []MessageType{Prepare, Prepared, Abort, Committed}},
		{name: "prepared twice", types: []MessageType{Prepare, Prepared, Prepared}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewProtocol(nil)
			txID := NewTransactionID()
			recordSequence(p, txID, tt.types...)
			assert.False(t, p.ValidateSequence(txID))
		})
	}
}

func TestValidateUnknownTransaction(t *testing.T) {
	p := NewProtocol(nil)
	assert.False(t, p.ValidateSequence("missing"))
	assert.Equal(t, StateInitial, p.TransactionState("missing"))
}

func TestTransactionsInterleave(t *testing.T) {
	p := NewProtocol(nil)
	tx1 := NewTransactionID()
	tx2 := NewTransactionID()

	p.AddMessage(NewMessage(Prepare, tx1, "coordinator", "participant1"))
	p.AddMessage(NewMessage(Prepare, tx2, "coordinator", "participant2"))
	p.AddMessage(NewMessage(Prepared, tx1, "participant1", "coordinator"))
	p.AddMessage(NewMessage(Prepared, tx2, "participant2", "coordinator"))
	p.AddMessage(NewMessage(Commit, tx1, "coordinator", "participant1"))
	p.AddMessage(NewMessage(Committed, tx1, "participant1", "coordinator"))

	assert.True(t, p.ValidateSequence(tx1))
	assert.True(t, p.ValidateSequence(tx2))
	assert.Equal(t, StateCommitted, p.TransactionState(tx1))
	assert.Equal(t, StatePrepared, p.TransactionState(tx2))
	assert.Len(t, p.Messages(tx1), 4)
	assert.Len(t, p.Messages(tx2), 2)
}

func TestDetectRepeats(t *testing.T) {
	p := NewProtocol(nil)

	// Two identical commit rounds for the same transaction produce recurring
	// two-message windows in the ring.
	msg := func(t MessageType) Message {
		return Message{Type: t, TransactionID: "tx", Sender: "c", Receiver: "p", Timestamp: 1}
	}
	for i := 0; i < 2; i++ {
		p.AddMessage(msg(Prepare))
		p.AddMessage(msg(Prepared))
	}

	repeats := p.DetectRepeats()
	assert.Contains(t, repeats, "PREPARE -> PREPARED")
}
