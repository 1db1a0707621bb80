package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"spa_manager/constants"
	"spa_manager/database"
	"spa_manager/helper"
	"spa_manager/model"
	"spa_manager/validate"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const redisChannelPrefix = "spa:"

var (
	redisClient = newRedisClient()

	rooms      = make(map[string]map[*websocket.Conn]bool)
	subscribed = make(map[string]bool)
	mu         sync.Mutex

	writeMu sync.Mutex
)

func newRedisClient() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	return redis.NewClient(&redis.Options{Addr: addr})
}

type wsFrame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type wsEnvelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

func emit(c *websocket.Conn, event string, data any) {
	writeMu.Lock()
	defer writeMu.Unlock()
	if err := c.WriteJSON(wsEnvelope{Event: event, Data: data}); err != nil {
		log.Printf("socket write failed for %s: %v", event, err)
	}
}

func emitError(c *websocket.Conn, message string) {
	emit(c, "error", fiber.Map{"error": message})
}

// broadcast publishes through redis so every server instance fans the
// event out to its local connections in the room.
func broadcast(room, event string, data any) {
	payload, err := json.Marshal(wsEnvelope{Event: event, Data: data})
	if err != nil {
		log.Printf("failed to marshal broadcast %s: %v", event, err)
		return
	}
	if err := redisClient.Publish(context.Background(), redisChannelPrefix+room, payload).Err(); err != nil {
		log.Printf("failed to publish %s to %s: %v", event, room, err)
	}
}

func joinRoom(room string, c *websocket.Conn) {
	mu.Lock()
	if rooms[room] == nil {
		rooms[room] = make(map[*websocket.Conn]bool)
	}
	rooms[room][c] = true
	startSub := !subscribed[room]
	subscribed[room] = true
	mu.Unlock()

	if startSub {
		go subscribeRoom(room)
	}
}

func leaveAllRooms(c *websocket.Conn) {
	mu.Lock()
	for _, conns := range rooms {
		delete(conns, c)
	}
	mu.Unlock()
}

func subscribeRoom(room string) {
	pubsub := redisClient.Subscribe(context.Background(), redisChannelPrefix+room)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		mu.Lock()
		conns := make([]*websocket.Conn, 0, len(rooms[room]))
		for conn := range rooms[room] {
			conns = append(conns, conn)
		}
		mu.Unlock()

		for _, conn := range conns {
			writeMu.Lock()
			err := conn.WriteMessage(websocket.TextMessage, payload)
			writeMu.Unlock()
			if err != nil {
				conn.Close()
				mu.Lock()
				delete(rooms[room], conn)
				mu.Unlock()
			}
		}
	}
}

func txnRoom(id uint) string {
	return fmt.Sprintf("%s%d", constants.TxnRoomPrefix, id)
}

type socketClient struct {
	conn   *websocket.Conn
	claim  model.TokenClaim
	authed bool
}

// ServiceSocket is the realtime endpoint every view connects to. Frames
// are handled sequentially in receipt order; a bad frame answers the
// sender only and never tears the connection down.
func ServiceSocket(c *websocket.Conn) {
	client := &socketClient{conn: c}
	client.claim, client.authed = helper.ParseClaimFromTokenString(c.Query("token"))

	defer func() {
		leaveAllRooms(c)
		c.Close()
	}()

	emit(c, "connected", fiber.Map{"message": "connected"})

	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			return
		}

		var frame wsFrame
		if err := json.Unmarshal(raw, &frame); err != nil || frame.Event == "" {
			emitError(c, "malformed frame")
			continue
		}

		dispatch(client, frame)
	}
}

func dispatch(client *socketClient, frame wsFrame) {
	switch frame.Event {
	case "join_room":
		onJoinRoom(client, frame.Data)
	case "therapist_subscribe":
		joinRoom(constants.RoomTherapistQueue, client.conn)
	case "cashier_subscribe":
		joinRoom(constants.RoomCashierQueue, client.conn)
	case "monitor_subscribe":
		joinRoom(constants.RoomMonitor, client.conn)
	case "customer_confirm_selection":
		onCustomerConfirmSelection(client, frame.Data)
	case "therapist_confirm_next":
		onTherapistConfirmNext(client, frame.Data)
	case "therapist_start_service":
		onTherapistStartService(client, frame.Data)
	case "therapist_add_service":
		onTherapistAddService(client, frame.Data)
	case "therapist_remove_item":
		onTherapistRemoveItem(client, frame.Data)
	case "therapist_finish_service":
		onTherapistFinishService(client, frame.Data)
	case "therapist_get_current_transaction":
		onTherapistGetCurrent(client)
	case "cashier_claim_next":
		onCashierClaimNext(client, frame.Data)
	case "cashier_pay":
		onCashierPay(client, frame.Data)
	case "cashier_get_current_transaction":
		onCashierGetCurrent(client)
	default:
		emitError(client.conn, "unknown event")
	}
}

func onJoinRoom(client *socketClient, data json.RawMessage) {
	var input model.JoinRoomInput
	if err := json.Unmarshal(data, &input); err != nil || input.Room == "" {
		emitError(client.conn, "room required")
		return
	}
	joinRoom(input.Room, client.conn)
	emit(client.conn, "joined_room", fiber.Map{"room": input.Room})
}

func onCustomerConfirmSelection(client *socketClient, data json.RawMessage) {
	var input model.ConfirmSelectionInput
	if err := json.Unmarshal(data, &input); err != nil {
		emitError(client.conn, "malformed selection")
		return
	}
	if err := validate.Struct(input); err != nil {
		emitError(client.conn, "at least one service is required")
		return
	}

	var created model.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		code, err := helper.NextTransactionCode(tx)
		if err != nil {
			return err
		}

		now := time.Now()
		created = model.Transaction{
			Code:                 code,
			Status:               model.StatusPendingTherapist,
			SelectionConfirmedAt: &now,
		}
		if err := tx.Create(&created).Error; err != nil {
			return err
		}

		for _, item := range input.Items {
			var classification model.ServiceClassification
			q := tx.Where("service_id = ?", item.ServiceId)
			if item.ServiceClassificationId != 0 {
				q = q.Where("id = ?", item.ServiceClassificationId)
			}
			// Unknown services are skipped, matching the lenient intake
			if err := q.Order("id asc").First(&classification).Error; err != nil {
				continue
			}
			if err := tx.Create(&model.TransactionItem{
				TransactionId:           created.ID,
				ServiceId:               classification.ServiceId,
				ServiceClassificationId: classification.ID,
				Price:                   classification.Price,
				DurationMinutes:         classification.DurationMinutes,
			}).Error; err != nil {
				return err
			}
		}

		return helper.RecomputeTotals(tx, &created)
	})
	if err != nil {
		log.Printf("confirm_selection failed: %v", err)
		emitError(client.conn, "could not create transaction")
		return
	}

	full, err := helper.LoadTransaction(database.DB, created.ID)
	if err != nil {
		emitError(client.conn, "could not load transaction")
		return
	}
	payload := helper.SerializeTransaction(full)

	broadcast(constants.RoomTherapistQueue, "therapist_queue_updated", fiber.Map{})
	broadcast(constants.RoomMonitor, "monitor_updated", fiber.Map{})
	broadcast(constants.RoomMonitor, "monitor_customer_confirmed", fiber.Map{"code": payload.Code})

	emit(client.conn, "customer_selection_received", model.SelectionReceived{
		TransactionId: created.ID,
		Transaction:   payload,
	})
}

func onTherapistConfirmNext(client *socketClient, data json.RawMessage) {
	var input model.TherapistConfirmInput
	if len(data) > 0 {
		if err := json.Unmarshal(data, &input); err != nil {
			emitError(client.conn, "malformed confirm payload")
			return
		}
	}

	therapist, err := resolveTherapist(client, input)
	if err != nil {
		emit(client.conn, "therapist_confirm_result", model.OpResult{Ok: false, Error: "Login required"})
		return
	}

	roomNumber := input.RoomNumber
	if therapist.RoomNumber != nil && *therapist.RoomNumber != "" {
		roomNumber = *therapist.RoomNumber
	}
	if roomNumber == "" {
		emit(client.conn, "therapist_confirm_result", model.OpResult{Ok: false, Error: "No room assigned"})
		return
	}

	var claimed model.Transaction
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status = ?", model.StatusPendingTherapist).
			Order("selection_confirmed_at asc").
			First(&claimed).Error; err != nil {
			return err
		}

		now := time.Now()
		if err := tx.Model(&claimed).Updates(map[string]any{
			"status":                 model.StatusTherapistConfirmed,
			"therapist_id":           therapist.ID,
			"room_number":            roomNumber,
			"therapist_confirmed_at": now,
		}).Error; err != nil {
			return err
		}

		return helper.OccupyRoom(tx, roomNumber, claimed.ID)
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		emit(client.conn, "therapist_confirm_result", model.OpResult{Ok: false, Error: "No pending customers."})
		return
	}
	if err != nil {
		log.Printf("therapist_confirm_next failed: %v", err)
		emit(client.conn, "therapist_confirm_result", model.OpResult{Ok: false, Error: "Could not claim next customer"})
		return
	}

	full, err := helper.LoadTransaction(database.DB, claimed.ID)
	if err != nil {
		emit(client.conn, "therapist_confirm_result", model.OpResult{Ok: false, Error: "Could not load transaction"})
		return
	}
	payload := helper.SerializeTransaction(full)

	room := txnRoom(claimed.ID)
	joinRoom(room, client.conn)
	emit(client.conn, "joined_room", fiber.Map{"room": room})

	broadcast(constants.RoomTherapistQueue, "therapist_queue_updated", fiber.Map{})
	broadcast(constants.RoomMonitor, "monitor_updated", fiber.Map{})
	broadcast(constants.RoomMonitor, "monitor_therapist_confirmed", fiber.Map{
		"code":      payload.Code,
		"therapist": therapist.Name,
		"room":      roomNumber,
	})
	broadcast(room, "customer_txn_update", payload)

	emit(client.conn, "therapist_confirm_result", model.OpResult{Ok: true, Transaction: payload})
}

// resolveTherapist prefers the authenticated identity; the name fallback
// keeps parity with unauthenticated kiosk setups.
func resolveTherapist(client *socketClient, input model.TherapistConfirmInput) (*model.Therapist, error) {
	if client.authed && client.claim.Role == constants.ROLE_THERAPIST {
		therapist, err := helper.GetTherapistById(client.claim.StaffId)
		if err == nil && therapist != nil {
			return therapist, nil
		}
	}

	if input.TherapistName == "" {
		return nil, errors.New("login required")
	}

	var therapist model.Therapist
	err := database.DB.Where("name = ?", input.TherapistName).First(&therapist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		therapist = model.Therapist{
			Username:     input.TherapistName,
			PasswordHash: "!locked",
			Name:         input.TherapistName,
			RoomNumber:   &input.RoomNumber,
		}
		if err := database.DB.Create(&therapist).Error; err != nil {
			return nil, err
		}
		return &therapist, nil
	}
	if err != nil {
		return nil, err
	}
	return &therapist, nil
}

func onTherapistStartService(client *socketClient, data json.RawMessage) {
	var input model.StartServiceInput
	if err := json.Unmarshal(data, &input); err != nil {
		emitError(client.conn, "malformed start payload")
		return
	}
	if err := validate.Struct(input); err != nil {
		emitError(client.conn, "transaction_id required")
		return
	}

	txn, err := helper.LoadTransaction(database.DB, input.TransactionId)
	if err != nil {
		emitError(client.conn, "Transaction not found")
		return
	}
	if !txn.Status.CanTransitionTo(model.StatusInService) {
		emitError(client.conn, "Invalid transaction state")
		return
	}

	now := time.Now()
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Transaction{}).Where("id = ?", txn.ID).Updates(map[string]any{
			"status":           model.StatusInService,
			"service_start_at": now,
		}).Error; err != nil {
			return err
		}
		if txn.RoomNumber != nil {
			return helper.StartRoomService(tx, *txn.RoomNumber)
		}
		return nil
	})
	if err != nil {
		log.Printf("therapist_start_service failed: %v", err)
		emitError(client.conn, "Could not start service")
		return
	}

	txn.Status = model.StatusInService
	txn.ServiceStartAt = &now
	payload := helper.SerializeTransaction(txn)

	therapistName := ""
	if txn.Therapist != nil {
		therapistName = txn.Therapist.Name
	}
	broadcast(constants.RoomMonitor, "monitor_updated", fiber.Map{})
	broadcast(constants.RoomMonitor, "monitor_service_started", fiber.Map{
		"code":      payload.Code,
		"therapist": therapistName,
	})
	broadcast(txnRoom(txn.ID), "customer_txn_update", payload)
}

func onTherapistAddService(client *socketClient, data json.RawMessage) {
	var input model.AddServiceInput
	if err := json.Unmarshal(data, &input); err != nil {
		emitError(client.conn, "malformed add payload")
		return
	}
	if err := validate.Struct(input); err != nil {
		emitError(client.conn, "Invalid transaction or service")
		return
	}

	txn, err := helper.LoadTransaction(database.DB, input.TransactionId)
	if err != nil {
		emitError(client.conn, "Invalid transaction or service")
		return
	}
	if txn.Status != model.StatusTherapistConfirmed && txn.Status != model.StatusInService {
		emitError(client.conn, "Cannot edit in current state")
		return
	}

	var classification model.ServiceClassification
	q := database.DB.Where("service_id = ?", input.ServiceId)
	if input.ServiceClassificationId != 0 {
		q = q.Where("id = ?", input.ServiceClassificationId)
	}
	if err := q.Order("id asc").First(&classification).Error; err != nil {
		emitError(client.conn, "Invalid transaction or service")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.TransactionItem{
			TransactionId:           txn.ID,
			ServiceId:               classification.ServiceId,
			ServiceClassificationId: classification.ID,
			Price:                   classification.Price,
			DurationMinutes:         classification.DurationMinutes,
		}).Error; err != nil {
			return err
		}
		return helper.RecomputeTotals(tx, txn)
	})
	if err != nil {
		log.Printf("therapist_add_service failed: %v", err)
		emitError(client.conn, "Could not add service")
		return
	}

	finishEdit(client, txn.ID)
}

func onTherapistRemoveItem(client *socketClient, data json.RawMessage) {
	var input model.RemoveItemInput
	if err := json.Unmarshal(data, &input); err != nil {
		emitError(client.conn, "malformed remove payload")
		return
	}
	if err := validate.Struct(input); err != nil {
		emitError(client.conn, "transaction_item_id required")
		return
	}

	var item model.TransactionItem
	if err := database.DB.First(&item, input.TransactionItemId).Error; err != nil {
		emitError(client.conn, "Item not found")
		return
	}

	txn, err := helper.LoadTransaction(database.DB, item.TransactionId)
	if err != nil {
		emitError(client.conn, "Transaction not found")
		return
	}
	if txn.Status != model.StatusTherapistConfirmed && txn.Status != model.StatusInService {
		emitError(client.conn, "Cannot remove in current state")
		return
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.TransactionItem{}, item.ID).Error; err != nil {
			return err
		}
		return helper.RecomputeTotals(tx, txn)
	})
	if err != nil {
		log.Printf("therapist_remove_item failed: %v", err)
		emitError(client.conn, "Could not remove item")
		return
	}

	finishEdit(client, txn.ID)
}

func finishEdit(client *socketClient, transactionId uint) {
	full, err := helper.LoadTransaction(database.DB, transactionId)
	if err != nil {
		emitError(client.conn, "Could not load transaction")
		return
	}
	payload := helper.SerializeTransaction(full)

	broadcast(txnRoom(transactionId), "customer_txn_update", payload)
	broadcast(constants.RoomMonitor, "monitor_updated", fiber.Map{})

	emit(client.conn, "therapist_edit_done", model.OpResult{Ok: true, Transaction: payload})
}

func onTherapistFinishService(client *socketClient, data json.RawMessage) {
	var input model.FinishServiceInput
	if err := json.Unmarshal(data, &input); err != nil {
		emitError(client.conn, "malformed finish payload")
		return
	}
	if err := validate.Struct(input); err != nil {
		emit(client.conn, "therapist_finish_result", model.OpResult{Ok: false, Error: "transaction_id required"})
		return
	}

	txn, err := helper.LoadTransaction(database.DB, input.TransactionId)
	if err != nil {
		emit(client.conn, "therapist_finish_result", model.OpResult{Ok: false, Error: "Transaction not found"})
		return
	}
	if !txn.Status.CanTransitionTo(model.StatusFinished) {
		emit(client.conn, "therapist_finish_result", model.OpResult{Ok: false, Error: "Invalid transaction state"})
		return
	}

	now := time.Now()
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Transaction{}).Where("id = ?", txn.ID).Updates(map[string]any{
			"status":            model.StatusFinished,
			"service_finish_at": now,
		}).Error; err != nil {
			return err
		}
		if txn.RoomNumber != nil {
			return helper.ReleaseRoom(tx, *txn.RoomNumber)
		}
		return nil
	})
	if err != nil {
		log.Printf("therapist_finish_service failed: %v", err)
		emit(client.conn, "therapist_finish_result", model.OpResult{Ok: false, Error: "Could not finish service"})
		return
	}

	txn.Status = model.StatusFinished
	txn.ServiceFinishAt = &now
	payload := helper.SerializeTransaction(txn)

	emit(client.conn, "therapist_finish_result", model.OpResult{Ok: true, Transaction: payload})

	therapistName := ""
	if txn.Therapist != nil {
		therapistName = txn.Therapist.Name
	}
	broadcast(constants.RoomCashierQueue, "cashier_queue_updated", fiber.Map{})
	broadcast(constants.RoomMonitor, "monitor_updated", fiber.Map{})
	broadcast(constants.RoomMonitor, "monitor_service_finished", fiber.Map{
		"code":      payload.Code,
		"therapist": therapistName,
	})
}

func onTherapistGetCurrent(client *socketClient) {
	if !client.authed || client.claim.Role != constants.ROLE_THERAPIST {
		emit(client.conn, "therapist_current_transaction", nil)
		return
	}

	txn, err := helper.CurrentTherapistTransaction(client.claim.StaffId)
	if err != nil || txn == nil {
		emit(client.conn, "therapist_current_transaction", nil)
		return
	}

	// Rejoin the customer's channel so edits after a reload still land
	joinRoom(txnRoom(txn.ID), client.conn)
	emit(client.conn, "therapist_current_transaction", helper.SerializeTransaction(txn))
}

func onCashierClaimNext(client *socketClient, data json.RawMessage) {
	if !client.authed || client.claim.Role != constants.ROLE_CASHIER {
		emit(client.conn, "cashier_claim_result", model.OpResult{Ok: false, Error: "Login required"})
		return
	}

	cashier, err := helper.GetCashierById(client.claim.StaffId)
	if err != nil || cashier == nil {
		emit(client.conn, "cashier_claim_result", model.OpResult{Ok: false, Error: "Login required"})
		return
	}

	var input model.CashierClaimInput
	if len(data) > 0 {
		if err := json.Unmarshal(data, &input); err != nil {
			emit(client.conn, "cashier_claim_result", model.OpResult{Ok: false, Error: "malformed claim payload"})
			return
		}
	}
	if input.CounterNumber != "" {
		cashier.CounterNumber = &input.CounterNumber
		database.DB.Model(cashier).Update("counter_number", input.CounterNumber)
	}

	var claimed model.Transaction
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
			Where("status = ?", model.StatusFinished).
			Order("service_finish_at asc").
			First(&claimed).Error; err != nil {
			return err
		}

		now := time.Now()
		return tx.Model(&claimed).Updates(map[string]any{
			"status":              model.StatusPaymentAssigned,
			"assigned_cashier_id": cashier.ID,
			"cashier_claimed_at":  now,
		}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		emit(client.conn, "cashier_claim_result", model.OpResult{Ok: false, Error: "No finished customers."})
		return
	}
	if err != nil {
		log.Printf("cashier_claim_next failed: %v", err)
		emit(client.conn, "cashier_claim_result", model.OpResult{Ok: false, Error: "Could not claim next customer"})
		return
	}

	full, err := helper.LoadTransaction(database.DB, claimed.ID)
	if err != nil {
		emit(client.conn, "cashier_claim_result", model.OpResult{Ok: false, Error: "Could not load transaction"})
		return
	}
	payload := helper.SerializeTransaction(full)

	counter := ""
	if cashier.CounterNumber != nil {
		counter = *cashier.CounterNumber
	}
	broadcast(constants.RoomMonitor, "monitor_updated", fiber.Map{})
	broadcast(constants.RoomMonitor, "monitor_payment_counter", fiber.Map{
		"code":    payload.Code,
		"cashier": cashier.Name,
		"counter": counter,
	})
	broadcast(constants.RoomCashierQueue, "cashier_queue_updated", fiber.Map{})

	emit(client.conn, "cashier_claim_result", model.OpResult{Ok: true, Transaction: payload})
}

func onCashierPay(client *socketClient, data json.RawMessage) {
	if !client.authed || client.claim.Role != constants.ROLE_CASHIER {
		emit(client.conn, "cashier_pay_result", model.OpResult{Ok: false, Error: "Login required"})
		return
	}

	cashier, err := helper.GetCashierById(client.claim.StaffId)
	if err != nil || cashier == nil {
		emit(client.conn, "cashier_pay_result", model.OpResult{Ok: false, Error: "Login required"})
		return
	}

	var input model.CashierPayInput
	if err := json.Unmarshal(data, &input); err != nil {
		emit(client.conn, "cashier_pay_result", model.OpResult{Ok: false, Error: "malformed pay payload"})
		return
	}
	if err := validate.Struct(input); err != nil {
		emit(client.conn, "cashier_pay_result", model.OpResult{Ok: false, Error: "Invalid payment input"})
		return
	}
	if input.Method == "" {
		input.Method = "cash"
	}

	txn, err := helper.LoadTransaction(database.DB, input.TransactionId)
	if err != nil || txn.Status != model.StatusPaymentAssigned {
		emit(client.conn, "cashier_pay_result", model.OpResult{Ok: false, Error: "Invalid transaction state"})
		return
	}

	if input.AmountPaid < txn.TotalAmount {
		emit(client.conn, "cashier_pay_result", model.OpResult{Ok: false, Error: "Insufficient payment"})
		return
	}

	change := float64(int64((input.AmountPaid-txn.TotalAmount)*100+0.5)) / 100
	now := time.Now()
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model.Payment{
			TransactionId: txn.ID,
			CashierId:     cashier.ID,
			AmountDue:     txn.TotalAmount,
			AmountPaid:    input.AmountPaid,
			ChangeAmount:  change,
			Method:        input.Method,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&model.Transaction{}).Where("id = ?", txn.ID).Updates(map[string]any{
			"status":  model.StatusPaid,
			"paid_at": now,
		}).Error
	})
	if err != nil {
		log.Printf("cashier_pay failed: %v", err)
		emit(client.conn, "cashier_pay_result", model.OpResult{Ok: false, Error: "Could not record payment"})
		return
	}

	txn.Status = model.StatusPaid
	txn.PaidAt = &now
	payload := helper.SerializeTransaction(txn)

	broadcast(constants.RoomMonitor, "monitor_updated", fiber.Map{})
	broadcast(constants.RoomMonitor, "monitor_payment_completed", fiber.Map{
		"code":    payload.Code,
		"cashier": cashier.Name,
	})
	broadcast(constants.RoomCashierQueue, "cashier_queue_updated", fiber.Map{})

	emit(client.conn, "cashier_pay_result", model.OpResult{Ok: true, Transaction: payload})
}

func onCashierGetCurrent(client *socketClient) {
	if !client.authed || client.claim.Role != constants.ROLE_CASHIER {
		emit(client.conn, "cashier_current_transaction", nil)
		return
	}

	txn, err := helper.CurrentCashierTransaction(client.claim.StaffId)
	if err != nil || txn == nil {
		emit(client.conn, "cashier_current_transaction", nil)
		return
	}

	joinRoom(txnRoom(txn.ID), client.conn)
	emit(client.conn, "cashier_current_transaction", helper.SerializeTransaction(txn))
}
