package client

import (
	"encoding/json"
	"spa_manager/model"
	"sync"
)

// TherapistSession drives the therapist work view: claim the next
// waiting customer, run the session timer, edit items, finish.
type TherapistSession struct {
	socket Socket

	Ctx   *SessionContext
	Timer *Countdown

	Notify      func(message string)
	OnRemaining func(display string)
	// OnQueueChanged fires on therapist_queue_updated; the view pulls a
	// fresh snapshot, never mutates the tracked transaction from it.
	OnQueueChanged func()

	// finishEnabled gates the finish control; it re-enables when the
	// countdown expires or a finish attempt fails. The countdown flips
	// it from the ticker goroutine, hence the mutex.
	mu            sync.Mutex
	finishEnabled bool
}

func (s *TherapistSession) FinishEnabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.finishEnabled
}

func (s *TherapistSession) setFinishEnabled(v bool) {
	s.mu.Lock()
	s.finishEnabled = v
	s.mu.Unlock()
}

func NewTherapistSession(socket Socket, router *Router, store Store, display func(string)) *TherapistSession {
	s := &TherapistSession{
		socket: socket,
		Notify: func(string) {},
		Timer:  &Countdown{},
	}
	s.Ctx = NewSessionContext(store, RenderTherapist, display)

	s.Timer.OnTick = func(remaining int) {
		if s.OnRemaining != nil {
			s.OnRemaining(FormatHMS(remaining))
		}
	}
	s.Timer.OnExpire = func() {
		s.setFinishEnabled(true)
		s.Ctx.Refresh()
	}

	router.Bind("therapist_confirm_result", s.onConfirmResult)
	router.Bind("customer_txn_update", s.onTxnUpdate)
	router.Bind("therapist_edit_done", s.onEditDone)
	router.Bind("therapist_finish_result", s.onFinishResult)
	router.Bind("therapist_current_transaction", s.onCurrentTransaction)
	router.Bind("therapist_queue_updated", func(json.RawMessage) {
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

func (s *TherapistSession) Subscribe() error {
	return s.socket.Emit("therapist_subscribe", struct{}{})
}

func (s *TherapistSession) ConfirmNext(name, roomNumber string) error {
	return s.socket.Emit("therapist_confirm_next", model.TherapistConfirmInput{
		TherapistName: name,
		RoomNumber:    roomNumber,
	})
}

func (s *TherapistSession) StartService() error {
	txn := s.Ctx.Current()
	if txn == nil {
		return errNoCurrentTransaction
	}
	return s.socket.Emit("therapist_start_service", model.StartServiceInput{TransactionId: txn.Id})
}

func (s *TherapistSession) AddService(serviceId, classificationId uint) error {
	txn := s.Ctx.Current()
	if txn == nil {
		return errNoCurrentTransaction
	}
	return s.socket.Emit("therapist_add_service", model.AddServiceInput{
		TransactionId:           txn.Id,
		ServiceId:               serviceId,
		ServiceClassificationId: classificationId,
	})
}

func (s *TherapistSession) RemoveItem(itemId uint) error {
	return s.socket.Emit("therapist_remove_item", model.RemoveItemInput{TransactionItemId: itemId})
}

func (s *TherapistSession) FinishService() error {
	txn := s.Ctx.Current()
	if txn == nil {
		return errNoCurrentTransaction
	}
	s.setFinishEnabled(false)
	return s.socket.Emit("therapist_finish_service", model.FinishServiceInput{TransactionId: txn.Id})
}

// RestoreCurrent asks the server which transaction, if any, this
// therapist still owns after a reload.
func (s *TherapistSession) RestoreCurrent() error {
	return s.socket.Emit("therapist_get_current_transaction", struct{}{})
}

func (s *TherapistSession) onConfirmResult(data json.RawMessage) {
	var result model.OpResult
	if err := json.Unmarshal(data, &result); err != nil {
		return
	}
	if !result.Ok {
		s.Notify(result.Error)
		return
	}
	s.adopt(result.Transaction)
}

func (s *TherapistSession) onEditDone(data json.RawMessage) {
	var result model.OpResult
	if err := json.Unmarshal(data, &result); err != nil {
		return
	}
	if !result.Ok {
		s.Notify(result.Error)
		return
	}
	s.adopt(result.Transaction)
}

func (s *TherapistSession) onFinishResult(data json.RawMessage) {
	var result model.OpResult
	if err := json.Unmarshal(data, &result); err != nil {
		return
	}
	if !result.Ok {
		s.setFinishEnabled(true)
		s.Notify(result.Error)
		return
	}
	s.Timer.Stop()
	s.Ctx.SetCurrent(nil)
	if s.OnQueueChanged != nil {
		s.OnQueueChanged()
	}
}

func (s *TherapistSession) onCurrentTransaction(data json.RawMessage) {
	if len(data) == 0 || string(data) == "null" {
		s.Ctx.SetCurrent(nil)
		return
	}
	var txn model.TransactionPayload
	if err := json.Unmarshal(data, &txn); err != nil {
		return
	}
	s.adopt(&txn)
}

func (s *TherapistSession) adopt(txn *model.TransactionPayload) {
	s.Ctx.SetCurrent(txn)
	if txn == nil {
		s.Timer.Stop()
		return
	}
	if txn.Status == "in_service" && txn.ServiceStartAt != nil {
		s.setFinishEnabled(false)
		s.Timer.Start(*txn.ServiceStartAt, txn.TotalDurationSeconds)
	} else {
		s.Timer.Stop()
	}
}

// onTxnUpdate follows the per-transaction channel the session joined
// when claiming: service start lands here, not in a *_result reply.
func (s *TherapistSession) onTxnUpdate(data json.RawMessage) {
	var txn model.TransactionPayload
	if err := json.Unmarshal(data, &txn); err != nil {
		return
	}
	current := s.Ctx.Current()
	if current == nil || txn.Id != current.Id {
		return
	}
	s.adopt(&txn)
}
