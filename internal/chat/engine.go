package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Obed2006p/Rincon-De-Lore/internal/cart"
	"github.com/Obed2006p/Rincon-De-Lore/internal/catalog"
	"github.com/Obed2006p/Rincon-De-Lore/internal/checkout"
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrTurnInFlight    = errors.New("a turn is already in flight for this session")
	ErrEmptyMessage    = errors.New("empty message")
)

// OrderRecorder archives orders produced by handoff directives.
// Recording is best effort; a failure never reaches the customer.
type OrderRecorder interface {
	Record(ctx context.Context, lines []checkout.OrderLine, customer checkout.CustomerDetails) error
}

// Session is one chat conversation: the transcript, the menu snapshot
// it was opened with, and the instruction built from that snapshot.
// Closing the session discards all of it; reopening starts from just
// the greeting.
type Session struct {
	ID     string
	CartID string

	mu          sync.Mutex
	busy        bool
	phase       Phase
	transcript  []Message
	menu        []catalog.MenuItem
	instruction string
}

// Messages returns a copy of the transcript.
func (s *Session) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Message, len(s.transcript))
	copy(out, s.transcript)
	return out
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// TurnResult is what one customer turn produces.
type TurnResult struct {
	Message  Message `json:"reply"`
	OpenCart bool    `json:"openCart"`
	Phase    string  `json:"phase"`
}

// Engine runs the turn protocol: append the customer message, ask the
// hosted model for exactly one reply, classify it, execute directives
// against the session's cart, and append the message shown to the
// customer.
type Engine struct {
	client     Client
	catalog    *catalog.Service
	carts      *cart.Manager
	dispatcher *checkout.Dispatcher
	orders     OrderRecorder
	flow       Flow
	log        *logrus.Logger

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewEngine(
	client Client,
	catalogService *catalog.Service,
	carts *cart.Manager,
	dispatcher *checkout.Dispatcher,
	orders OrderRecorder,
	flow Flow,
	log *logrus.Logger,
) *Engine {
	return &Engine{
		client:     client,
		catalog:    catalogService,
		carts:      carts,
		dispatcher: dispatcher,
		orders:     orders,
		flow:       flow,
		log:        log,
		sessions:   make(map[string]*Session),
	}
}

// Open starts a session: snapshot the catalog, build the system
// instruction once, bind a cart and append the canned greeting. No
// model call happens here.
func (e *Engine) Open(ctx context.Context) *Session {
	menu, err := e.catalog.Snapshot(ctx)
	if err != nil {
		// The assistant still opens; it just knows an empty menu.
		e.log.WithError(err).Warn("chat: catalog snapshot failed, opening with empty menu")
		menu = nil
	}

	sessionCart := e.carts.Create()

	s := &Session{
		ID:          uuid.New().String(),
		CartID:      sessionCart.ID,
		phase:       PhaseOrdering,
		transcript:  []Message{{Sender: SenderBot, Text: Greeting}},
		menu:        menu,
		instruction: BuildSystemInstruction(menu, e.flow),
	}

	e.mu.Lock()
	e.sessions[s.ID] = s
	e.mu.Unlock()

	return s
}

func (e *Engine) Get(id string) (*Session, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s, ok := e.sessions[id]
	return s, ok
}

// Close discards the session. An in-flight turn for it finishes
// harmlessly against the detached session value.
func (e *Engine) Close(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sessions[id]; !ok {
		return false
	}
	delete(e.sessions, id)
	return true
}

// Send runs one customer turn. The customer message is appended
// before the model is contacted and stays in the transcript no matter
// how the request ends. Overlapping turns on one session are refused.
func (e *Engine) Send(ctx context.Context, sessionID, text string) (TurnResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return TurnResult{}, ErrEmptyMessage
	}

	s, ok := e.Get(sessionID)
	if !ok {
		return TurnResult{}, ErrSessionNotFound
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return TurnResult{}, ErrTurnInFlight
	}
	s.busy = true
	s.transcript = append(s.transcript, Message{Sender: SenderUser, Text: text})
	// Everything after the canned greeting goes to the model; the
	// greeting itself is redundant context.
	apiMessages := make([]Message, len(s.transcript)-1)
	copy(apiMessages, s.transcript[1:])
	instruction := s.instruction
	s.mu.Unlock()

	raw, err := e.client.Complete(ctx, apiMessages, instruction)

	var result TurnResult
	if err != nil {
		e.log.WithError(err).Warn("chat: model request failed")
		result.Message = Message{Sender: SenderBot, Text: Apology}
	} else {
		result = e.execute(ctx, s, Classify(raw))
	}

	s.mu.Lock()
	s.transcript = append(s.transcript, result.Message)
	s.busy = false
	result.Phase = s.phase.String()
	s.mu.Unlock()

	return result, nil
}

// execute applies a classified reply to the session. Plain text is
// passed through verbatim; directives mutate the cart or build the
// WhatsApp handoff, and the customer sees a synthesized confirmation
// instead of the raw JSON.
func (e *Engine) execute(ctx context.Context, s *Session, reply Reply) TurnResult {
	switch {
	case reply.AddToCart != nil:
		return e.executeAddToCart(s, reply.AddToCart)
	case reply.Handoff != nil:
		return e.executeHandoff(ctx, s, reply.Handoff)
	default:
		return TurnResult{Message: Message{Sender: SenderBot, Text: reply.Text}}
	}
}

func (e *Engine) executeAddToCart(s *Session, directive *AddToCart) TurnResult {
	sessionCart, ok := e.carts.Get(s.CartID)
	if !ok {
		// The cart surface is gone; nothing left to mutate.
		e.log.WithField("cart_id", s.CartID).Warn("chat: cart no longer exists, dropping directive")
		return TurnResult{Message: Message{Sender: SenderBot, Text: Apology}}
	}

	var applied []string
	for _, entry := range directive.Items {
		item, found := catalog.Resolve(s.menu, entry.Name)
		if !found || entry.Quantity <= 0 {
			e.log.WithFields(logrus.Fields{
				"name":     entry.Name,
				"quantity": entry.Quantity,
			}).Warn("chat: skipping invalid directive item")
			continue
		}

		sessionCart.AddOrIncrement(item, entry.Quantity)
		applied = append(applied, fmt.Sprintf("%dx %s", entry.Quantity, item.Name))
	}

	if len(applied) == 0 {
		return TurnResult{Message: Message{
			Sender: SenderBot,
			Text:   "¡Uy! No encontré esos platillos en el menú de hoy. ¿Quieres intentar con otro?",
		}}
	}

	s.mu.Lock()
	if e.flow == FlowThreePhase && s.phase == PhaseOrdering {
		s.phase = PhaseDelivery
	}
	s.mu.Unlock()

	return TurnResult{
		Message: Message{
			Sender: SenderBot,
			Text: fmt.Sprintf(
				"¡Listo! Agregué %s a tu carrito. Ya puedes verlo si gustas.",
				strings.Join(applied, ", "),
			),
		},
		OpenCart: true,
	}
}

func (e *Engine) executeHandoff(ctx context.Context, s *Session, directive *Handoff) TurnResult {
	lines := make([]checkout.OrderLine, 0, len(directive.OrderItems))
	for _, entry := range directive.OrderItems {
		line := checkout.OrderLine{Name: entry.Name, Quantity: entry.Quantity}
		if item, found := catalog.Resolve(s.menu, entry.Name); found {
			line.Name = item.Name
			line.UnitPrice = item.Price
		} else {
			e.log.WithField("name", entry.Name).Warn("chat: handoff item not in menu, pricing as zero")
		}
		lines = append(lines, line)
	}

	s.mu.Lock()
	if s.phase == PhaseOrdering {
		// The model skipped the delivery phase; the handoff still
		// goes through, but the transcript and phase disagree.
		e.log.WithField("session_id", s.ID).Warn("chat: handoff received while still ordering")
	}
	s.phase = PhaseConfirmed
	s.mu.Unlock()

	if e.orders != nil {
		if err := e.orders.Record(ctx, lines, directive.Customer); err != nil {
			e.log.WithError(err).Warn("chat: failed to archive handoff order")
		}
	}

	return TurnResult{
		Message: Message{
			Sender:   SenderBot,
			Text:     "¡Excelente! Tu pedido está listo para ser enviado. Haz clic abajo para confirmar y mandar tu orden por WhatsApp.",
			Link:     e.dispatcher.WhatsAppURL(lines, directive.Customer),
			LinkText: "Enviar Pedido por WhatsApp",
		},
	}
}
