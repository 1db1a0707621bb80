package client

import (
	"fmt"
	"spa_manager/model"
	"strings"
)

// The renderers are pure: everything they show is derived from the value
// passed in, so the router can call them repeatedly without drift.
// Missing pieces render as placeholders, never as errors.

func statusLabel(status string) string {
	switch status {
	case "pending_therapist":
		return "Waiting for therapist"
	case "therapist_confirmed":
		return "Therapist confirmed"
	case "in_service":
		return "In service"
	case "finished":
		return "Finished"
	case "payment_assigned":
		return "At payment counter"
	case "paid":
		return "Paid"
	default:
		return status
	}
}

func itemLine(item model.TransactionItemPayload) string {
	name := item.ServiceName
	if name == "" {
		name = "Unknown service"
	}
	label := name
	if item.ClassificationName != "" {
		label = fmt.Sprintf("%s (%s)", name, item.ClassificationName)
	}
	return fmt.Sprintf("  - %s  %d min  %.2f", label, item.DurationSeconds/60, item.Price)
}

func writeItems(b *strings.Builder, items []model.TransactionItemPayload) {
	if len(items) == 0 {
		b.WriteString("  No services selected\n")
		return
	}
	for _, item := range items {
		b.WriteString(itemLine(item))
		b.WriteByte('\n')
	}
}

func RenderCustomer(txn *model.TransactionPayload) string {
	if txn == nil {
		return "No active transaction.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Transaction %s - %s\n", txn.Code, statusLabel(txn.Status))
	writeItems(&b, txn.Items)
	fmt.Fprintf(&b, "Total: %.2f  (%d min)\n", txn.TotalAmount, txn.TotalDurationSeconds/60)

	switch txn.Status {
	case "pending_therapist":
		b.WriteString("Please wait, a therapist will call your code.\n")
	case "therapist_confirmed":
		room := "your room"
		if txn.RoomNumber != nil {
			room = "room " + *txn.RoomNumber
		}
		fmt.Fprintf(&b, "Please proceed to %s.\n", room)
	case "payment_assigned":
		if txn.Counter != nil {
			fmt.Fprintf(&b, "Please pay at counter %s.\n", *txn.Counter)
		} else {
			b.WriteString("Please proceed to the payment counter.\n")
		}
	case "paid":
		b.WriteString("Thank you for your visit!\n")
	}
	return b.String()
}

func RenderTherapist(txn *model.TransactionPayload) string {
	if txn == nil {
		return "No customer claimed.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Customer %s - %s\n", txn.Code, statusLabel(txn.Status))
	if txn.RoomNumber != nil {
		fmt.Fprintf(&b, "Room %s\n", *txn.RoomNumber)
	}
	writeItems(&b, txn.Items)
	fmt.Fprintf(&b, "Total: %.2f  (%d min)\n", txn.TotalAmount, txn.TotalDurationSeconds/60)

	switch txn.Status {
	case "therapist_confirmed":
		b.WriteString("[Start service]\n")
	case "in_service":
		b.WriteString("[Finish service]\n")
	}
	return b.String()
}

func RenderCashier(txn *model.TransactionPayload) string {
	if txn == nil {
		return "No customer at counter.\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Customer %s\n", txn.Code)
	if txn.Therapist != nil {
		fmt.Fprintf(&b, "Therapist: %s\n", *txn.Therapist)
	}
	writeItems(&b, txn.Items)
	fmt.Fprintf(&b, "Amount due: %.2f\n", txn.TotalAmount)
	return b.String()
}

func renderMonitorGroup(b *strings.Builder, title string, txns []model.TransactionPayload) {
	fmt.Fprintf(b, "%s:\n", title)
	if len(txns) == 0 {
		b.WriteString("  No customers\n")
		return
	}
	for _, txn := range txns {
		line := "  " + txn.Code
		if txn.RoomNumber != nil {
			line += "  room " + *txn.RoomNumber
		}
		if txn.Therapist != nil {
			line += "  " + *txn.Therapist
		}
		if txn.Counter != nil {
			line += "  counter " + *txn.Counter
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// RenderMonitor draws the board from a queue snapshot pull.
func RenderMonitor(snapshot *model.MonitorSnapshot) string {
	var b strings.Builder
	if snapshot == nil {
		snapshot = &model.MonitorSnapshot{}
	}
	renderMonitorGroup(&b, "Waiting", snapshot.Waiting)
	renderMonitorGroup(&b, "In service", snapshot.Serving)
	renderMonitorGroup(&b, "Finished", snapshot.Finished)
	renderMonitorGroup(&b, "Payment", snapshot.PaymentAssigned)
	return b.String()
}
