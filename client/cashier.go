package client

import (
	"encoding/json"
	"errors"
	"spa_manager/model"
)

var (
	errNoCurrentTransaction = errors.New("no current transaction")
	errInsufficientPayment  = errors.New("Insufficient payment")
)

// CashierSession drives the payment counter view: claim the next
// finished customer, collect payment, move on.
type CashierSession struct {
	socket Socket

	Ctx *SessionContext

	Notify         func(message string)
	OnQueueChanged func()

	// PayEnabled gates the pay control; a failed payment re-enables it
	// without clearing the claimed transaction.
	PayEnabled bool
}

func NewCashierSession(socket Socket, router *Router, store Store, display func(string)) *CashierSession {
	s := &CashierSession{
		socket: socket,
		Notify: func(string) {},
	}
	s.Ctx = NewSessionContext(store, RenderCashier, display)

	router.Bind("cashier_claim_result", s.onClaimResult)
	router.Bind("cashier_pay_result", s.onPayResult)
	router.Bind("cashier_current_transaction", s.onCurrentTransaction)
	router.Bind("cashier_queue_updated", func(json.RawMessage) {
		if s.OnQueueChanged != nil {
			s.OnQueueChanged()
		}
	})
	router.Bind("error", func(data json.RawMessage) {
		var payload struct {
			Error string `json:"error"`
		}
		if err := json.Unmarshal(data, &payload); err == nil && payload.Error != "" {
			s.Notify(payload.Error)
		}
	})
	return s
}

func (s *CashierSession) Subscribe() error {
	return s.socket.Emit("cashier_subscribe", struct{}{})
}

func (s *CashierSession) ClaimNext(name, counterNumber string) error {
	return s.socket.Emit("cashier_claim_next", model.CashierClaimInput{
		CashierName:   name,
		CounterNumber: counterNumber,
	})
}

// Pay validates the amount locally before any round-trip: an
// insufficient amount keeps the control disabled and never reaches the
// server.
func (s *CashierSession) Pay(amountPaid float64, method string) error {
	txn := s.Ctx.Current()
	if txn == nil {
		return errNoCurrentTransaction
	}
	if amountPaid < txn.TotalAmount {
		return errInsufficientPayment
	}
	if method == "" {
		method = "cash"
	}

	s.PayEnabled = false
	return s.socket.Emit("cashier_pay", model.CashierPayInput{
		TransactionId: txn.Id,
		AmountPaid:    amountPaid,
		Method:        method,
	})
}

func (s *CashierSession) RestoreCurrent() error {
	return s.socket.Emit("cashier_get_current_transaction", struct{}{})
}

func (s *CashierSession) onClaimResult(data json.RawMessage) {
	var result model.OpResult
	if err := json.Unmarshal(data, &result); err != nil {
		return
	}
	if !result.Ok {
		s.Notify(result.Error)
		return
	}
	s.PayEnabled = true
	s.Ctx.SetCurrent(result.Transaction)
}

func (s *CashierSession) onPayResult(data json.RawMessage) {
	var result model.OpResult
	if err := json.Unmarshal(data, &result); err != nil {
		return
	}
	if !result.Ok {
		s.PayEnabled = true
		s.Notify(result.Error)
		return
	}
	s.Ctx.SetCurrent(nil)
	if s.OnQueueChanged != nil {
		s.OnQueueChanged()
	}
}

func (s *CashierSession) onCurrentTransaction(data json.RawMessage) {
	if len(data) == 0 || string(data) == "null" {
		s.Ctx.SetCurrent(nil)
		return
	}
	var txn model.TransactionPayload
	if err := json.Unmarshal(data, &txn); err != nil {
		return
	}
	s.PayEnabled = true
	s.Ctx.SetCurrent(&txn)
}
