package constants

const (
	MISSING_LOGIN_INPUT      = "MISSING_LOGIN_INPUT"
	INVALID_USERNAME         = "INVALID_USERNAME"
	INVALID_PASSWORD         = "INVALID_PASSWORD"
	ACCOUNT_NOT_ACTIVE       = "ACCOUNT_NOT_ACTIVE"
	ERROR_INTERNAL_ERROR     = "ERROR_INTERNAL_ERROR"
	DATA_INPUT_IS_NOT_NUMBER = "DATA_INPUT_IS_NOT_NUMBER"
	NOT_FOUND                = "NOT_FOUND"
	FORBIDDEN                = "FORBIDDEN"
)

const (
	ROLE_THERAPIST = "THERAPIST"
	ROLE_CASHIER   = "CASHIER"
)

// Socket broadcast rooms. Per-transaction rooms use TxnRoomPrefix + id.
const (
	RoomTherapistQueue = "therapist_queue"
	RoomCashierQueue   = "cashier_queue"
	RoomMonitor        = "monitor"
	TxnRoomPrefix      = "txn_"
)
