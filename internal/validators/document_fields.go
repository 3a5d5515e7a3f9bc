package validators

// Field paths of protocol documents. Nested fields use dot notation.
const (
	FieldSerial    = "serial"
	FieldFirmware  = "firmware"
	FieldHardware  = "hardware"
	FieldTimestamp = "timestamp"
	FieldValue     = "value"
	FieldTag       = "tag"

	FieldState   = "state"
	FieldSense   = "sense"
	FieldMessage = "message"
	FieldCode    = "code"

	FieldRPC          = "rpc"
	FieldRPCUUID      = "rpc.uuid"
	FieldRPCResult    = "rpc.result"
	FieldRPCStatus    = "rpc.status"
	FieldRPCTimestamp = "rpc.timestamp"
)

// Required field sets per endpoint.
var (
	StateFields  = []string{FieldState}
	SenseFields  = []string{FieldSense}
	ErrorFields  = []string{FieldMessage, FieldCode}
	RPCFields    = []string{FieldRPCUUID, FieldRPCResult, FieldRPCStatus}
	HeaderFields = []string{FieldSerial, FieldFirmware, FieldHardware, FieldTimestamp}
)
