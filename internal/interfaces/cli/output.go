package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/google/uuid"
	"github.com/retail/retailctl/internal/domain/shared"
)

// printJSON writes v as indented JSON, the output format of every command
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatError renders an error the way the CLI reports it to users.
// Domain errors carry a user-facing message already; anything else is
// passed through as-is.
func FormatError(err error) string {
	if de, ok := err.(*shared.DomainError); ok {
		return fmt.Sprintf("Error: %s", de.Message)
	}
	return fmt.Sprintf("Error: %s", err)
}

func parseOrderID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("'%s' is not a valid order id", arg))
	}
	return id, nil
}

func parseID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("'%s' is not a valid id", arg))
	}
	return id, nil
}
