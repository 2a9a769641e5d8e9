// Package twophase models two-phase-commit message sequences on top of an
// alternating cycle. Orientation 0 corresponds to coordinator sends and
// orientation 1 to participant responses, so the ring's alternation mirrors
// the request/response rhythm of the protocol.
package twophase

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mobiusdev/altercycle"
)

// MessageType identifies a protocol message.
type MessageType string

const (
	Prepare   MessageType = "PREPARE"   // coordinator -> participant
	Prepared  MessageType = "PREPARED"  // participant -> coordinator
	Commit    MessageType = "COMMIT"    // coordinator -> participant
	Committed MessageType = "COMMITTED" // participant -> coordinator
	Abort     MessageType = "ABORT"     // coordinator -> participant
	Aborted   MessageType = "ABORTED"   // participant -> coordinator
)

// State is a transaction's current protocol state.
type State string

const (
	StateInitial    State = "INITIAL"
	StatePreparing  State = "PREPARING"
	StatePrepared   State = "PREPARED"
	StateCommitting State = "COMMITTING"
	StateCommitted  State = "COMMITTED"
	StateAborting   State = "ABORTING"
	StateAborted    State = "ABORTED"
)

// stateAfter maps a message type to the transaction state it produces.
var stateAfter = map[MessageType]State{
	Prepare:   StatePreparing,
	Prepared:  StatePrepared,
	Commit:    StateCommitting,
	Committed: StateCommitted,
	Abort:     StateAborting,
	Aborted:   StateAborted,
}

// validNext maps each message type to the message types allowed to follow it
// within the same transaction.
var validNext = map[MessageType]map[MessageType]bool{
	Prepare:  {Prepared: true, Aborted: true},
	Prepared: {Commit: true, Abort: true},
	Commit:   {Committed: true},
	Abort:    {Aborted: true},
}

// Message is one protocol message. All fields are comparable so a Message can
// be carried as a cycle payload and matched by value.
type Message struct {
	Type          MessageType
	TransactionID string
	Sender        string
	Receiver      string
	Timestamp     int64
}

// NewMessage stamps a message with the current time.
func NewMessage(t MessageType, txID, sender, receiver string) Message {
	return Message{
		Type:          t,
		TransactionID: txID,
		Sender:        sender,
		Receiver:      receiver,
		Timestamp:     time.Now().UnixNano(),
	}
}

// Protocol records two-phase-commit message sequences and tracks per
// transaction state. Messages from every transaction share one ring, as the
// protocol log is a single totally ordered sequence.
type Protocol struct {
	sequence *altercycle.Cycle[Message]
	mu       sync.Mutex
	states   map[string]State
	logger   *zap.Logger
}

// NewProtocol creates an empty protocol log. A nil logger disables logging.
func NewProtocol(logger *zap.Logger) *Protocol {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Protocol{
		sequence: altercycle.New[Message](),
		states:   make(map[string]State),
		logger:   logger,
	}
}

// NewTransactionID returns a fresh transaction identifier.
func NewTransactionID() string {
	return uuid.NewString()
}

// AddMessage appends a message to the protocol sequence and advances the
// transaction's state.
func (p *Protocol) AddMessage(msg Message) {
	p.mu.Lock()
	defer p.mu.Unlock()

	state, ok := p.states[msg.TransactionID]
	if !ok {
		state = StateInitial
	}
	p.sequence.Append(msg, map[string]any{
		"timestamp":      msg.Timestamp,
		"transaction_id": msg.TransactionID,
		"state":          string(state),
	})
	if next, ok := stateAfter[msg.Type]; ok {
		p.states[msg.TransactionID] = next
	}

	p.logger.Info("message recorded",
		zap.String("type", string(msg.Type)),
		zap.String("transaction_id", msg.TransactionID),
		zap.String("sender", msg.Sender),
		zap.String("receiver", msg.Receiver),
	)
}

// TransactionState returns the tracked state for a transaction, or
// StateInitial when no message has been recorded for it.
func (p *Protocol) TransactionState(txID string) State {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.states[txID]; ok {
		return s
	}
	return StateInitial
}

// Messages returns the recorded messages for one transaction in sequence
// order.
func (p *Protocol) Messages(txID string) []Message {
	var out []Message
	for msg := range p.sequence.All() {
		if msg.TransactionID == txID {
			out = append(out, msg)
		}
	}
	return out
}

// ValidateSequence reports whether the recorded messages for a transaction
// follow the protocol's allowed ordering. A transaction with no messages is
// invalid.
func (p *Protocol) ValidateSequence(txID string) bool {
	messages := p.Messages(txID)
	if len(messages) == 0 {
		return false
	}
	for i := 0; i < len(messages)-1; i++ {
		allowed, ok := validNext[messages[i].Type]
		if ok && !allowed[messages[i+1].Type] {
			return false
		}
	}
	return true
}

// DetectRepeats surfaces message-type sequences that recur in the log, via
// the ring's pattern mining. Each entry is rendered as "A -> B".
func (p *Protocol) DetectRepeats() []string {
	var repeats []string
	for _, pattern := range p.sequence.FindPatterns(2) {
		types := make([]string, 0, len(pattern.Window))
		for _, pair := range pattern.Window {
			types = append(types, string(pair.Value.Type))
		}
		repeats = append(repeats, strings.Join(types, " -> "))
	}
	return repeats
}
