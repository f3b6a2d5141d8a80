package rob

import "fmt"

// ContractCode identifies the kind of lifecycle contract violation.
type ContractCode int

// Stable contract codes - do not change values.
const (
	CodeNilAddress      ContractCode = 101 // ROB101: nil address given to a constructor
	CodeUseAfterConsume ContractCode = 102 // ROB102: operation on a consumed or released container
)

// String returns the code as "ROB101" format.
func (c ContractCode) String() string {
	return fmt.Sprintf("ROB%d", c)
}

// ContractError is the panic payload raised when a container is used in
// violation of its lifecycle contract. Only cold-path operations check the
// contract; the read path performs no validation.
type ContractError struct {
	Code    ContractCode
	Message string
}

// Error implements the error interface.
func (e *ContractError) Error() string {
	return fmt.Sprintf("contract violation %s: %s", e.Code, e.Message)
}

func contractPanic(code ContractCode, msg string) {
	panic(&ContractError{Code: code, Message: msg})
}
