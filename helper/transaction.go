package helper

import (
	"fmt"
	"spa_manager/database"
	"spa_manager/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NextTransactionCode hands out the next 4-digit queue code from the
// shared counter row. Must run inside the caller's transaction so two
// therapists confirming at once cannot get the same code.
func NextTransactionCode(tx *gorm.DB) (string, error) {
	var counter model.TransactionCounter
	if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&counter).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return "", err
		}
		counter = model.TransactionCounter{NextNumber: 1}
		if err := tx.Create(&counter).Error; err != nil {
			return "", err
		}
	}

	current := counter.NextNumber
	counter.NextNumber++
	if err := tx.Save(&counter).Error; err != nil {
		return "", err
	}

	return fmt.Sprintf("%04d", current), nil
}

// RecomputeTotals reloads the items and persists the new aggregates.
func RecomputeTotals(tx *gorm.DB, txn *model.Transaction) error {
	if err := tx.Where("transaction_id = ?", txn.ID).
		Order("id asc").
		Find(&txn.Items).Error; err != nil {
		return err
	}
	txn.RecomputeTotals()
	return tx.Model(&model.Transaction{}).Where("id = ?", txn.ID).
		Updates(map[string]any{
			"total_amount":           txn.TotalAmount,
			"total_duration_minutes": txn.TotalDurationMinutes,
		}).Error
}

// LoadTransaction fetches a transaction with everything the serializer needs.
func LoadTransaction(db *gorm.DB, id uint) (*model.Transaction, error) {
	var txn model.Transaction
	if err := db.
		Preload("Items", func(q *gorm.DB) *gorm.DB { return q.Order("transaction_items.id asc") }).
		Preload("Items.Service").
		Preload("Items.ServiceClassification").
		Preload("Therapist").
		Preload("AssignedCashier").
		First(&txn, id).Error; err != nil {
		return nil, err
	}
	return &txn, nil
}

// SerializeTransaction builds the canonical wire payload. This is the one
// place minutes become seconds; nothing past this boundary sees minutes.
func SerializeTransaction(txn *model.Transaction) *model.TransactionPayload {
	if txn == nil {
		return nil
	}

	payload := &model.TransactionPayload{
		Id:                   txn.ID,
		Code:                 txn.Code,
		Status:               string(txn.Status),
		RoomNumber:           txn.RoomNumber,
		TotalAmount:          txn.TotalAmount,
		TotalDurationSeconds: txn.TotalDurationMinutes * 60,
		ServiceStartAt:       txn.ServiceStartAt,
		ServiceFinishAt:      txn.ServiceFinishAt,
		Items:                []model.TransactionItemPayload{},
	}
	if txn.Therapist != nil {
		payload.Therapist = &txn.Therapist.Name
	}
	if txn.AssignedCashier != nil {
		payload.Cashier = &txn.AssignedCashier.Name
		payload.Counter = txn.AssignedCashier.CounterNumber
	}

	for _, item := range txn.Items {
		payload.Items = append(payload.Items, model.TransactionItemPayload{
			Id:                 item.ID,
			ServiceId:          item.ServiceId,
			ServiceName:        item.Service.ServiceName,
			ClassificationName: item.ServiceClassification.ClassificationName,
			Price:              item.Price,
			DurationSeconds:    item.DurationMinutes * 60,
		})
	}
	return payload
}

// CurrentTherapistTransaction finds the transaction a therapist is working
// on, for reload recovery on the service page.
func CurrentTherapistTransaction(therapistId uint) (*model.Transaction, error) {
	var txn model.Transaction
	err := database.DB.
		Where("therapist_id = ? AND status IN ?", therapistId,
			[]model.TransactionStatus{model.StatusTherapistConfirmed, model.StatusInService}).
		Order("therapist_confirmed_at desc").
		First(&txn).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return LoadTransaction(database.DB, txn.ID)
}

// CurrentCashierTransaction finds the transaction a cashier has claimed
// but not yet collected.
func CurrentCashierTransaction(cashierId uint) (*model.Transaction, error) {
	var txn model.Transaction
	err := database.DB.
		Where("assigned_cashier_id = ? AND status = ?", cashierId, model.StatusPaymentAssigned).
		Order("cashier_claimed_at desc").
		First(&txn).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return LoadTransaction(database.DB, txn.ID)
}
