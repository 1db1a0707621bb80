package client

import (
	"encoding/json"
	"fmt"
	"spa_manager/model"
)

// CustomerSession drives the kiosk view: build a cart, confirm it, then
// follow the transaction through its lifecycle on a private channel.
type CustomerSession struct {
	socket Socket
	store  Store

	Ctx   *SessionContext
	Timer *Countdown

	// Notify surfaces server-reported errors to the user.
	Notify func(message string)
	// OnRemaining receives the formatted countdown each tick.
	OnRemaining func(display string)

	txnId uint
}

func NewCustomerSession(socket Socket, router *Router, store Store, display func(string)) *CustomerSession {
	s := &CustomerSession{
		socket: socket,
		store:  store,
		Notify: func(string) {},
		Timer:  &Countdown{},
	}
	s.Ctx = NewSessionContext(store, RenderCustomer, display)

	s.Timer.OnTick = func(remaining int) {
		if s.OnRemaining != nil {
			s.OnRemaining(FormatHMS(remaining))
		}
	}
	s.Timer.OnExpire = func() {
		s.Ctx.Refresh()
	}

	router.Bind("customer_selection_received", s.onSelectionReceived)
	router.Bind("customer_txn_update", s.onTxnUpdate)
	router.Bind("error", s.onError)
	return s
}

// Cart returns the persisted selection, empty when nothing survives.
func (s *CustomerSession) Cart() []model.SelectionItemInput {
	var items []model.SelectionItemInput
	s.store.Get(KeyCart, &items)
	return items
}

func (s *CustomerSession) AddToCart(item model.SelectionItemInput) {
	items := append(s.Cart(), item)
	s.store.Set(KeyCart, items)
}

func (s *CustomerSession) ClearCart() {
	s.store.Delete(KeyCart)
}

// ConfirmSelection submits the cart. The transaction itself arrives via
// customer_selection_received.
func (s *CustomerSession) ConfirmSelection() error {
	items := s.Cart()
	if len(items) == 0 {
		return fmt.Errorf("at least one service is required")
	}
	return s.socket.Emit("customer_confirm_selection", model.ConfirmSelectionInput{Items: items})
}

func (s *CustomerSession) onSelectionReceived(data json.RawMessage) {
	var received model.SelectionReceived
	if err := json.Unmarshal(data, &received); err != nil || received.TransactionId == 0 {
		return
	}

	s.txnId = received.TransactionId
	s.ClearCart()
	s.socket.Emit("join_room", model.JoinRoomInput{Room: fmt.Sprintf("txn_%d", received.TransactionId)})

	if received.Transaction != nil {
		s.adopt(received.Transaction)
	}
}

func (s *CustomerSession) onTxnUpdate(data json.RawMessage) {
	var txn model.TransactionPayload
	if err := json.Unmarshal(data, &txn); err != nil {
		return
	}
	// Foreign or stale updates never touch local state
	if s.txnId == 0 || txn.Id != s.txnId {
		return
	}
	s.adopt(&txn)
}

func (s *CustomerSession) adopt(txn *model.TransactionPayload) {
	s.Ctx.SetCurrent(txn)

	if txn.Status == "in_service" && txn.ServiceStartAt != nil {
		s.Timer.Start(*txn.ServiceStartAt, txn.TotalDurationSeconds)
	} else {
		s.Timer.Stop()
	}
}

func (s *CustomerSession) onError(data json.RawMessage) {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
		s.Notify(payload.Error)
	}
}

// Restore picks the persisted transaction back up after a reload and
// rejoins its channel so updates keep flowing.
func (s *CustomerSession) Restore() {
	txn := s.Ctx.Restore()
	if txn == nil {
		return
	}
	s.txnId = txn.Id
	s.socket.Emit("join_room", model.JoinRoomInput{Room: fmt.Sprintf("txn_%d", txn.Id)})
	s.adopt(txn)
}
