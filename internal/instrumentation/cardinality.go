package instrumentation

// Calendar API operation names used for metric labels and span names.
// The set is closed so the operation label stays low-cardinality.
const (
	OperationInsert = "insert"
	OperationGet    = "get"
	OperationPatch  = "patch"
	OperationDelete = "delete"
	OperationList   = "list"

	// operationOther replaces any operation outside the set above.
	operationOther = "other"
)

// KnownOperation reports whether op is one of the Calendar API operations.
func KnownOperation(op string) bool {
	switch op {
	case OperationInsert, OperationGet, OperationPatch, OperationDelete, OperationList:
		return true
	}
	return false
}
