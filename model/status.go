package model

// TransactionStatus is the linear lifecycle every view tracks:
// pending_therapist → therapist_confirmed → in_service → finished →
// payment_assigned → paid. There is no cancellation status; stale
// selections are swept server-side instead.
type TransactionStatus string

const (
	StatusPendingTherapist   TransactionStatus = "pending_therapist"
	StatusTherapistConfirmed TransactionStatus = "therapist_confirmed"
	StatusInService          TransactionStatus = "in_service"
	StatusFinished           TransactionStatus = "finished"
	StatusPaymentAssigned    TransactionStatus = "payment_assigned"
	StatusPaid               TransactionStatus = "paid"
)

var statusRank = map[TransactionStatus]int{
	StatusPendingTherapist:   0,
	StatusTherapistConfirmed: 1,
	StatusInService:          2,
	StatusFinished:           3,
	StatusPaymentAssigned:    4,
	StatusPaid:               5,
}

func (s TransactionStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo allows only the single next step in the chain.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to == from+1
}

func (s TransactionStatus) Terminal() bool {
	return s == StatusPaid
}
