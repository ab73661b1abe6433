package helpers

import (
	"fmt"
	"net/http"
	"strconv"
)

// PathInt64 reads the named path wildcard and parses it as a base-10 integer.
func PathInt64(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	if raw == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return id, nil
}
